package animation

// Queue plays actions one after another.
type Queue struct {
	current *Action
	pending []*Action
}

// NewQueue creates an empty action queue
func NewQueue() *Queue {
	return &Queue{}
}

// Push appends an action. It enters on the next Update.
func (q *Queue) Push(a *Action) {
	q.pending = append(q.pending, a)
}

// Current returns the running action, or nil
func (q *Queue) Current() *Action {
	return q.current
}

// Len returns the number of running and pending actions
func (q *Queue) Len() int {
	n := len(q.pending)
	if q.current != nil {
		n++
	}
	return n
}

// Update advances the running action by dt seconds, starting the next
// pending one when idle.
func (q *Queue) Update(dt float32) {
	if q.current == nil {
		if len(q.pending) == 0 {
			return
		}
		q.current = q.pending[0]
		q.pending = q.pending[1:]
		q.current.enter()
	}

	if q.current.advance(dt) {
		q.current = nil
	}
}

// Clear fails the running action and drops pending ones. Pending actions
// never entered, so they are dropped silently.
func (q *Queue) Clear(reason Failure) {
	if q.current != nil {
		cur := q.current
		q.current = nil
		cur.fail(reason)
	}
	q.pending = nil
}
