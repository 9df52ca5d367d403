package air

import (
	"fmt"
	"slices"
	"strings"

	"ember/internal/ir"
)

// Inst is one lowered instruction: an opcode, the value it came from,
// and its operands. Operand metadata is not stored here; traversal
// derives it from the form table.
//
// Index is the instruction's position in its owning sequence; it is
// the NoIndex sentinel until the instruction is adopted and is ignored
// by Equal and Clone.
type Inst struct {
	Args   []Arg
	Origin ir.ValueID
	Kind   Kind
	Index  int
}

// NoIndex marks an instruction not yet inserted into a sequence.
const NoIndex = -1

// NewInst builds a free-standing instruction.
func NewInst(kind Kind, origin ir.ValueID, args ...Arg) Inst {
	return Inst{Args: args, Origin: origin, Kind: kind, Index: NoIndex}
}

// Equal compares structurally: opcode, operands and origin. The
// stream index is transient and does not participate.
func (inst *Inst) Equal(other *Inst) bool {
	return inst.Kind == other.Kind &&
		inst.Origin == other.Origin &&
		slices.Equal(inst.Args, other.Args)
}

// Clone copies the instruction, resetting the stream index.
func (inst *Inst) Clone() Inst {
	return NewInst(inst.Kind, inst.Origin, slices.Clone(inst.Args)...)
}

func (inst *Inst) String() string {
	var b strings.Builder
	b.WriteString(inst.Kind.String())
	for i := range inst.Args {
		if i == 0 {
			b.WriteString(" ")
		} else {
			b.WriteString(", ")
		}
		b.WriteString(inst.Args[i].String())
	}
	return b.String()
}

// forEachArgSimple is the table-driven traversal path. The operand
// count must match an arity the opcode's metadata defines; a mismatch
// is undefined behavior, not checked here.
func (inst *Inst) forEachArgSimple(f func(Arg, ArgRole, Bank, Width)) {
	n := len(inst.Args)
	base := int(inst.Kind.Opcode)*formRowStride + formOffset(n)
	for i := 0; i < n; i++ {
		form := formTable[base+i]
		f(inst.Args[i], decodeFormRole(form), decodeFormBank(form), decodeFormWidth(form))
	}
}

func (inst *Inst) forEachArgSimpleMut(f func(*Arg, ArgRole, Bank, Width)) {
	n := len(inst.Args)
	base := int(inst.Kind.Opcode)*formRowStride + formOffset(n)
	for i := 0; i < n; i++ {
		form := formTable[base+i]
		f(&inst.Args[i], decodeFormRole(form), decodeFormBank(form), decodeFormWidth(form))
	}
}

// checkRegular rejects the opcodes whose operand shape the form table
// cannot describe. Completing them needs opcode-specific encoding
// knowledge; until then traversal is an explicit hard stop rather
// than silently wrong metadata.
func (inst *Inst) checkRegular() {
	if inst.Kind.Opcode.IsIrregular() {
		panic(fmt.Errorf("air: operand traversal for %s not implemented", inst.Kind.Opcode))
	}
}

// ForEachArg visits (operand, role, bank, width) for every operand.
func (inst *Inst) ForEachArg(f func(Arg, ArgRole, Bank, Width)) {
	inst.checkRegular()
	inst.forEachArgSimple(f)
}

// ForEachArgMut is ForEachArg with in-place operand mutation.
func (inst *Inst) ForEachArgMut(f func(*Arg, ArgRole, Bank, Width)) {
	inst.checkRegular()
	inst.forEachArgSimpleMut(f)
}

// ForEachTmp visits every temporary the operands expand to. One
// operand may contribute zero, one or several temporaries; an Index
// address contributes both its base and its index.
func (inst *Inst) ForEachTmp(f func(Tmp, ArgRole, Bank, Width)) {
	inst.ForEachArg(func(arg Arg, role ArgRole, bank Bank, width Width) {
		arg.forEachTmp(role, bank, width, f)
	})
}

// ForEachTmpMut is ForEachTmp with in-place mutation.
func (inst *Inst) ForEachTmpMut(f func(*Tmp, ArgRole, Bank, Width)) {
	inst.ForEachArgMut(func(arg *Arg, role ArgRole, bank Bank, width Width) {
		arg.forEachTmpMut(role, bank, width, f)
	})
}

// ForEachTmpFast visits temporaries without deriving metadata.
func (inst *Inst) ForEachTmpFast(f func(Tmp)) {
	inst.ForEachArg(func(arg Arg, role ArgRole, bank Bank, width Width) {
		arg.forEachTmp(role, bank, width, func(tmp Tmp, _ ArgRole, _ Bank, _ Width) {
			f(tmp)
		})
	})
}

// ForEachTmpFastMut is ForEachTmpFast with in-place mutation.
func (inst *Inst) ForEachTmpFastMut(f func(*Tmp)) {
	inst.ForEachArgMut(func(arg *Arg, role ArgRole, bank Bank, width Width) {
		arg.forEachTmpMut(role, bank, width, func(tmp *Tmp, _ ArgRole, _ Bank, _ Width) {
			f(tmp)
		})
	})
}

// ForEachReg visits the register-backed subset of the temporaries.
func (inst *Inst) ForEachReg(f func(Reg, ArgRole, Bank, Width)) {
	inst.ForEachTmp(func(tmp Tmp, role ArgRole, bank Bank, width Width) {
		if tmp.IsReg() {
			f(tmp.Reg(), role, bank, width)
		}
	})
}

// ForEachRegMut is ForEachReg with in-place mutation: writes through
// the *Reg land back in the holding operand.
func (inst *Inst) ForEachRegMut(f func(*Reg, ArgRole, Bank, Width)) {
	inst.ForEachTmpMut(func(tmp *Tmp, role ArgRole, bank Bank, width Width) {
		if !tmp.IsReg() {
			return
		}
		reg := tmp.Reg()
		f(&reg, role, bank, width)
		*tmp = TmpForReg(reg)
	})
}

// ForEachRegFast visits registers without deriving metadata.
func (inst *Inst) ForEachRegFast(f func(Reg)) {
	inst.ForEachTmpFast(func(tmp Tmp) {
		if tmp.IsReg() {
			f(tmp.Reg())
		}
	})
}

// ForEachRegFastMut is ForEachRegFast with in-place mutation.
func (inst *Inst) ForEachRegFastMut(f func(*Reg)) {
	inst.ForEachTmpFastMut(func(tmp *Tmp) {
		if !tmp.IsReg() {
			return
		}
		reg := tmp.Reg()
		f(&reg)
		*tmp = TmpForReg(reg)
	})
}

// ForEachStackSlot visits every stack-slot reference in the operands.
func (inst *Inst) ForEachStackSlot(f func(StackSlotID, ArgRole, Bank, Width)) {
	inst.ForEachArg(func(arg Arg, role ArgRole, bank Bank, width Width) {
		arg.forEachStackSlot(role, bank, width, f)
	})
}

// ForEachStackSlotMut is ForEachStackSlot with in-place mutation.
func (inst *Inst) ForEachStackSlotMut(f func(*StackSlotID, ArgRole, Bank, Width)) {
	inst.ForEachArgMut(func(arg *Arg, role ArgRole, bank Bank, width Width) {
		arg.forEachStackSlotMut(role, bank, width, f)
	})
}

// ForEachStackSlotFast visits stack slots without deriving metadata.
func (inst *Inst) ForEachStackSlotFast(f func(StackSlotID)) {
	inst.ForEachStackSlot(func(slot StackSlotID, _ ArgRole, _ Bank, _ Width) {
		f(slot)
	})
}

// ForEachStackSlotFastMut is ForEachStackSlotFast with in-place
// mutation.
func (inst *Inst) ForEachStackSlotFastMut(f func(*StackSlotID)) {
	inst.ForEachStackSlotMut(func(slot *StackSlotID, _ ArgRole, _ Bank, _ Width) {
		f(slot)
	})
}

// HasLateUseOrDef reports whether any operand is read or written at
// the end of execution.
func (inst *Inst) HasLateUseOrDef() bool {
	result := false
	inst.ForEachArg(func(_ Arg, role ArgRole, _ Bank, _ Width) {
		result = result || role.IsLateUse() || role.IsLateDef()
	})
	return result
}

// HasEarlyDef reports whether any operand is written at the start of
// execution.
func (inst *Inst) HasEarlyDef() bool {
	result := false
	inst.ForEachArg(func(_ Arg, role ArgRole, _ Bank, _ Width) {
		result = result || role.IsEarlyDef()
	})
	return result
}

// NeedsPadding reports whether adjacent instructions prev and next
// form an anti-dependency hazard: prev touches storage at the end of
// its execution while next writes storage at the start of its own, so
// a scheduling barrier must separate them.
func NeedsPadding(prev, next *Inst) bool {
	return prev.HasLateUseOrDef() && next.HasEarlyDef()
}
