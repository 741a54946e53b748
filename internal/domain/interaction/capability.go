package interaction

// Examinable zooms in on an entity for a closer look.
type Examinable interface {
	OnExamineStart(actor Actor)
	OnExamineComplete(actor Actor)
	OnExamineCancel(actor Actor)
}

// Interactable is the generic "use" capability for entities with a single
// obvious way of being interacted with.
type Interactable interface {
	OnInteractStart(actor Actor)
	OnInteractTick(actor Actor)
	OnInteractComplete(actor Actor)
	OnInteractCancel(actor Actor)
}

// ResponseTrigger fires a dynamic-response signal configured on the component.
type ResponseTrigger interface {
	OnResponseFire()
}

// Switchable is anything with an on and an off state.
type Switchable interface {
	OnSwitchToggle(actor Actor)
	OnSwitchOn(actor Actor)
	OnSwitchOff(actor Actor)
}

// Item is something that can be picked up, inspected, dropped or tossed.
type Item interface {
	OnItemInspect(actor Actor)
	OnItemPickup(actor Actor)
	OnItemDrop(actor Actor)
	OnItemToss(actor Actor)
}

// Openable can be opened and closed.
type Openable interface {
	OnOpen(actor Actor)
	OnClose(actor Actor)
}

// Lockable can be locked and unlocked.
type Lockable interface {
	OnLock(actor Actor)
	OnUnlock(actor Actor)
}

// Capability names a family of interactions.
type Capability int

const (
	CapabilityExamine Capability = iota
	CapabilityInteract
	CapabilityResponse
	CapabilitySwitch
	CapabilityItem
	CapabilityOpenable
	CapabilityLockable
)

// String returns the capability name
func (c Capability) String() string {
	switch c {
	case CapabilityExamine:
		return "Examine"
	case CapabilityInteract:
		return "Interact"
	case CapabilityResponse:
		return "DRS"
	case CapabilitySwitch:
		return "Switch"
	case CapabilityItem:
		return "Item"
	case CapabilityOpenable:
		return "Openable"
	case CapabilityLockable:
		return "Lockable"
	default:
		return "Unknown"
	}
}
