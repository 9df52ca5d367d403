package air

import (
	"ember/internal/sparse"
)

// StackSlotID identifies a stack slot within a code unit.
type StackSlotID int32

// NoStackSlotID is the invalid stack-slot sentinel.
const NoStackSlotID StackSlotID = -1

// IsValid reports whether the id refers to a registered slot.
func (id StackSlotID) IsValid() bool { return id >= 0 }

// StackSlotKind distinguishes allocator-created spill storage from
// slots the program pinned itself.
type StackSlotKind uint8

const (
	// StackSlotSpill is storage the register allocator invented; it
	// may be coalesced or dropped.
	StackSlotSpill StackSlotKind = iota
	// StackSlotLocked is storage the program addresses directly.
	StackSlotLocked
)

func (k StackSlotKind) String() string {
	if k == StackSlotLocked {
		return "Locked"
	}
	return "Spill"
}

// StackSlot is a chunk of frame storage. Offset is assigned by frame
// layout, well after slots are created.
type StackSlot struct {
	Size      uint32
	Alignment uint32
	Kind      StackSlotKind
	Offset    int32
}

// StackSlots is the arena of stack slots for one code unit.
type StackSlots struct {
	slots sparse.Collection[StackSlot]
}

// Add registers a new slot and returns its permanent id.
func (s *StackSlots) Add(size, alignment uint32, kind StackSlotKind) StackSlotID {
	return StackSlotID(s.slots.Add(StackSlot{Size: size, Alignment: alignment, Kind: kind}))
}

// At returns the slot with the given id.
func (s *StackSlots) At(id StackSlotID) *StackSlot {
	return s.slots.At(int32(id))
}

// Len reports the number of registered slots.
func (s *StackSlots) Len() int {
	return s.slots.Len()
}
