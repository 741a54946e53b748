package system

import (
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/younwookim/interactor/internal/domain/entity"
	"github.com/younwookim/interactor/internal/domain/interaction"
	"github.com/younwookim/interactor/internal/ecs"
	"github.com/younwookim/interactor/internal/infrastructure/config"
	"github.com/younwookim/interactor/internal/infrastructure/logger"
)

// Offer is one verb the player can pick right now
type Offer struct {
	Entity entity.EntityID
	Name   string
	Entry  interaction.Entry
}

// Label returns the localisation key of the offered verb
func (o Offer) Label() string { return o.Entry.Interaction.VerbUI() }

// InteractionSystem routes player intents to the interaction registries of
// nearby entities. It owns the verb selection and remembers which registry
// holds the interaction the player started.
type InteractionSystem struct {
	world    *ecs.World
	cfg      config.InteractionConfig
	selected int
	held     int
	active   entity.EntityID
}

// NewInteractionSystem creates a new interaction system
func NewInteractionSystem(w *ecs.World, cfg config.InteractionConfig) *InteractionSystem {
	if cfg.Range <= 0 {
		cfg.Range = 1
	}
	return &InteractionSystem{world: w, cfg: cfg}
}

// Offers lists the verbs available to the player: carried items first, then
// the faced tile, then everything else in range by distance. Verbs of one
// entity keep their registration order.
func (s *InteractionSystem) Offers() []Offer {
	w := s.world
	player := w.Player()
	if player == nil {
		return nil
	}
	origin := w.Position[w.PlayerID]
	fx, fy := player.Facing()
	faced := origin.Add(fx, fy)

	type candidate struct {
		id   entity.EntityID
		rank int
		dist int
	}
	var cands []candidate
	for id, reg := range w.Interactor {
		if id == w.PlayerID || reg.Len() == 0 {
			continue
		}
		switch {
		case player.Holds(id):
			cands = append(cands, candidate{id: id, rank: 0})
		case w.InRoom(id):
			p := w.Position[id]
			d := origin.DistanceTo(p)
			if d > s.cfg.Range {
				continue
			}
			rank := 2
			if p == faced {
				rank = 1
			}
			cands = append(cands, candidate{id: id, rank: rank, dist: d})
		}
	}
	sort.Slice(cands, func(i, j int) bool {
		a, b := cands[i], cands[j]
		if a.rank != b.rank {
			return a.rank < b.rank
		}
		if a.dist != b.dist {
			return a.dist < b.dist
		}
		return a.id < b.id
	})

	var out []Offer
	for _, c := range cands {
		for _, e := range w.Interactor[c.id].Offered() {
			out = append(out, Offer{Entity: c.id, Name: w.Name[c.id], Entry: e})
		}
	}
	return out
}

// Selected returns the highlighted offer
func (s *InteractionSystem) Selected() (Offer, bool) {
	offers := s.Offers()
	if len(offers) == 0 {
		return Offer{}, false
	}
	return offers[s.selectedIndex(len(offers))], true
}

// SelectedIndex returns the index of the highlighted offer in Offers
func (s *InteractionSystem) SelectedIndex() int {
	return s.selectedIndex(len(s.Offers()))
}

func (s *InteractionSystem) selectedIndex(n int) int {
	if n == 0 {
		return 0
	}
	return ((s.selected % n) + n) % n
}

// Active returns the interaction the player is engaged in
func (s *InteractionSystem) Active() (Offer, bool) {
	reg, ok := s.world.Interactor[s.active]
	if !ok {
		return Offer{}, false
	}
	e, ok := reg.Active()
	if !ok {
		return Offer{}, false
	}
	return Offer{Entity: s.active, Name: s.world.Name[s.active], Entry: e}, true
}

// Apply handles one frame of intents
func (s *InteractionSystem) Apply(intents []Intent) {
	if player := s.world.Player(); player != nil {
		player.SetInputDeltas(0, 0)
	}
	s.dropStale()
	for _, in := range intents {
		s.Handle(in)
	}
}

// Handle processes a single intent
func (s *InteractionSystem) Handle(in Intent) {
	switch in := in.(type) {
	case MoveIntent:
		if s.active != 0 {
			return
		}
		if ecs.MoveActor(s.world, in.EntityID, in.DX, in.DY) {
			s.selected = 0
		}
	case LookIntent:
		if a, ok := s.world.Actor[in.EntityID]; ok {
			a.SetInputDeltas(float64(in.DY)*s.cfg.LookScale, float64(in.DX)*s.cfg.LookScale)
		}
	case SelectVerbIntent:
		if s.active == 0 {
			s.selected += in.Step
		}
	case InteractIntent:
		s.interact(in)
	}
}

func (s *InteractionSystem) interact(in InteractIntent) {
	a, ok := s.world.Actor[in.EntityID]
	if !ok {
		return
	}

	if in.Phase == PhasePress {
		if s.active != 0 {
			return
		}
		offer, ok := s.Selected()
		if !ok {
			return
		}
		if a.Busy() {
			s.log(offer).Debug("Actor busy, press ignored")
			return
		}
		if err := s.world.Interactor[offer.Entity].Start(offer.Entry.Handle, a); err != nil {
			s.log(offer).WithError(err).Debug("Interaction refused")
			return
		}
		s.log(offer).Debug("Interaction started")
		s.active = offer.Entity
		s.held = 0
		return
	}

	target := s.active
	reg, ok := s.world.Interactor[target]
	if !ok {
		return
	}
	var err error
	switch in.Phase {
	case PhaseHold:
		s.held++
		if s.held < s.cfg.HoldThreshold {
			return
		}
		err = reg.Tick(a)
	case PhaseRelease:
		err = reg.Complete(a)
		s.active, s.selected = 0, 0
	case PhaseCancel:
		err = reg.Cancel(a)
		s.active, s.selected = 0, 0
	}
	if err != nil {
		logger.Log.WithFields(logrus.Fields{
			"entity": uint64(target),
			"phase":  in.Phase.String(),
		}).WithError(err).Debug("Interaction phase dropped")
	}
}

// dropStale forgets an active interaction whose registry no longer has one
func (s *InteractionSystem) dropStale() {
	if s.active == 0 {
		return
	}
	reg, ok := s.world.Interactor[s.active]
	if !ok {
		s.active = 0
		return
	}
	if _, ok := reg.Active(); !ok {
		s.active = 0
	}
}

// Reset forgets selection and the active interaction
func (s *InteractionSystem) Reset() {
	s.selected = 0
	s.held = 0
	s.active = 0
}

func (s *InteractionSystem) log(o Offer) *logrus.Entry {
	return logger.Entity(uint64(o.Entity), o.Name).WithField("verb", string(o.Entry.Interaction.Verb()))
}
