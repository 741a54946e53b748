// Package drs is a small dynamic-response system: entities own response
// actors, components queue named signals with a context variable collection
// on them, and registered responses react when the queue is processed.
package drs

import (
	"github.com/sirupsen/logrus"

	"github.com/younwookim/interactor/internal/domain/entity"
	"github.com/younwookim/interactor/internal/infrastructure/logger"
)

// Well-known context variable names
const (
	VarVerb           = "Verb"
	VarIsInteractedOn = "IsInteractedOn"
)

// historySize is how many processed signals are kept for inspection.
const historySize = 16

// Context is a variable collection sent along with a signal.
type Context struct {
	vars  map[string]any
	names []string
}

// NewContext creates an empty variable collection
func NewContext() *Context {
	return &Context{vars: make(map[string]any)}
}

// Set creates or overwrites a variable and returns the context for chaining
func (c *Context) Set(name string, value any) *Context {
	if _, ok := c.vars[name]; !ok {
		c.names = append(c.names, name)
	}
	c.vars[name] = value
	return c
}

// Get returns a variable
func (c *Context) Get(name string) (any, bool) {
	v, ok := c.vars[name]
	return v, ok
}

// String returns a string variable
func (c *Context) String(name string) (string, bool) {
	v, ok := c.vars[name].(string)
	return v, ok
}

// Bool returns a bool variable
func (c *Context) Bool(name string) (bool, bool) {
	v, ok := c.vars[name].(bool)
	return v, ok
}

// Names returns variable names in creation order
func (c *Context) Names() []string {
	return append([]string(nil), c.names...)
}

// Fields converts the collection into log fields
func (c *Context) Fields() logrus.Fields {
	f := make(logrus.Fields, len(c.vars))
	for k, v := range c.vars {
		f[k] = v
	}
	return f
}

// Signal is a queued or processed signal
type Signal struct {
	Name    string
	Target  entity.EntityID
	Context *Context
}

// Response reacts to a processed signal
type Response func(sig Signal)

// ResponseActor is an entity's handle into the response system
type ResponseActor struct {
	entity entity.EntityID
	system *System
}

// Entity returns the entity the actor belongs to
func (a *ResponseActor) Entity() entity.EntityID {
	return a.entity
}

// QueueSignal queues a signal for this actor; a nil context sends an empty one.
func (a *ResponseActor) QueueSignal(name string, ctx *Context) {
	if ctx == nil {
		ctx = NewContext()
	}
	a.system.queue = append(a.system.queue, Signal{Name: name, Target: a.entity, Context: ctx})
}

// System holds response actors, the signal queue and response rules
type System struct {
	actors    map[entity.EntityID]*ResponseActor
	queue     []Signal
	responses map[string][]Response
	history   []Signal
}

// NewSystem creates an empty response system
func NewSystem() *System {
	return &System{
		actors:    make(map[entity.EntityID]*ResponseActor),
		responses: make(map[string][]Response),
	}
}

// CreateContext creates a fresh variable collection
func (s *System) CreateContext() *Context {
	return NewContext()
}

// Actor returns the response actor for id, creating it on first use
func (s *System) Actor(id entity.EntityID) *ResponseActor {
	if a, ok := s.actors[id]; ok {
		return a
	}
	a := &ResponseActor{entity: id, system: s}
	s.actors[id] = a
	return a
}

// RemoveActor drops id's response actor and any signals queued for it
func (s *System) RemoveActor(id entity.EntityID) {
	delete(s.actors, id)
	kept := s.queue[:0]
	for _, sig := range s.queue {
		if sig.Target != id {
			kept = append(kept, sig)
		}
	}
	s.queue = kept
}

// AddResponse registers r for signals named name
func (s *System) AddResponse(name string, r Response) {
	s.responses[name] = append(s.responses[name], r)
}

// Pending returns the queued signals
func (s *System) Pending() []Signal {
	return append([]Signal(nil), s.queue...)
}

// History returns the most recently processed signals, oldest first
func (s *System) History() []Signal {
	return append([]Signal(nil), s.history...)
}

// Update processes every signal queued before the call and returns how many
// were handled. Signals queued by responses wait for the next Update.
func (s *System) Update() int {
	batch := s.queue
	s.queue = nil

	for _, sig := range batch {
		logger.Log.WithFields(sig.Context.Fields()).WithFields(logrus.Fields{
			"signal": sig.Name,
			"target": sig.Target,
		}).Debug("drs signal")

		for _, r := range s.responses[sig.Name] {
			r(sig)
		}

		s.history = append(s.history, sig)
		if len(s.history) > historySize {
			s.history = s.history[len(s.history)-historySize:]
		}
	}
	return len(batch)
}
