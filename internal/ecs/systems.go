package ecs

// MoveActor steps an actor one tile in (dx, dy) and turns it to face that
// way. Walls and closed doors block; an actor held by an interaction does
// not move. Reports whether the actor moved.
func MoveActor(w *World, id EntityID, dx, dy int) bool {
	a, ok := w.Actor[id]
	if !ok || (dx == 0 && dy == 0) {
		return false
	}
	a.SetFacing(sign(dx), sign(dy))
	if a.Busy() {
		return false
	}

	next := w.Position[id].Add(sign(dx), sign(dy))
	if w.Room != nil && w.Room.IsSolidAt(next.X, next.Y) {
		return false
	}
	if blockedByDoor(w, next) {
		return false
	}
	w.Position[id] = next
	return true
}

func blockedByDoor(w *World, p Position) bool {
	for id, door := range w.Door {
		if w.Position[id] == p && door.Blocks() {
			return true
		}
	}
	return false
}

// UpdateActors advances every actor's action queue
func UpdateActors(w *World, dt float32) {
	for _, a := range w.Actor {
		a.Update(dt)
	}
}

// UpdateDoors advances door swing tweens
func UpdateDoors(w *World, dt float32) {
	for _, d := range w.Door {
		d.Update(dt)
	}
}

// UpdatePets moves pets toward their owners
func UpdatePets(w *World) {
	for _, p := range w.Pet {
		p.Update()
	}
}

// UpdateWorld runs one frame of every world system, then delivers the
// responses and signals the frame produced.
func UpdateWorld(w *World, dt float32) {
	UpdateActors(w, dt)
	UpdateDoors(w, dt)
	UpdatePets(w)
	w.Cameras.Update(dt)
	w.Responses.Update()
	w.Signals.Process()
}
