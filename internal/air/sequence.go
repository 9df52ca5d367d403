package air

import (
	"fmt"

	"fortio.org/safecast"
)

// InstID identifies an instruction within a sequence.
type InstID int32

// NoInstID is the invalid instruction sentinel.
const NoInstID InstID = -1

// IsValid reports whether the id refers to an adopted instruction.
func (id InstID) IsValid() bool { return id >= 0 }

// Sequence is an ordered instruction stream, typically one lowered
// basic block. Appending adopts the instruction: only then does its
// stream index become meaningful.
type Sequence struct {
	insts []Inst
}

// Append adopts inst, assigns its stream index and returns its id.
func (s *Sequence) Append(inst Inst) InstID {
	raw, err := safecast.Conv[int32](len(s.insts))
	if err != nil {
		panic(fmt.Errorf("air: inst id overflow: %w", err))
	}
	inst.Index = int(raw)
	s.insts = append(s.insts, inst)
	return InstID(raw)
}

// At returns the instruction with the given id.
func (s *Sequence) At(id InstID) *Inst {
	return &s.insts[id]
}

// Len reports the number of adopted instructions.
func (s *Sequence) Len() int {
	return len(s.insts)
}

// PaddingPoints returns the indexes i where a scheduling barrier must
// separate instruction i from instruction i+1.
func (s *Sequence) PaddingPoints() []int {
	var points []int
	for i := 0; i+1 < len(s.insts); i++ {
		if NeedsPadding(&s.insts[i], &s.insts[i+1]) {
			points = append(points, i)
		}
	}
	return points
}
