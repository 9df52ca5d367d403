package air

import "fmt"

// Cond is a condition code carried by comparison and branch operands.
type Cond uint8

const (
	CondEqual Cond = iota
	CondNotEqual
	CondLessThan
	CondGreaterThan
	CondLessEqual
	CondGreaterEqual
	CondAbove
	CondBelow
	CondAboveEqual
	CondBelowEqual
	CondOverflow
	CondZero
	CondNonZero

	numConds
)

var condNames = [numConds]string{
	CondEqual:        "Equal",
	CondNotEqual:     "NotEqual",
	CondLessThan:     "LessThan",
	CondGreaterThan:  "GreaterThan",
	CondLessEqual:    "LessEqual",
	CondGreaterEqual: "GreaterEqual",
	CondAbove:        "Above",
	CondBelow:        "Below",
	CondAboveEqual:   "AboveEqual",
	CondBelowEqual:   "BelowEqual",
	CondOverflow:     "Overflow",
	CondZero:         "Zero",
	CondNonZero:      "NonZero",
}

func (c Cond) String() string {
	if c < numConds {
		return condNames[c]
	}
	return fmt.Sprintf("Cond(%d)", uint8(c))
}

// ArgKind enumerates operand addressing forms.
type ArgKind uint8

const (
	ArgInvalid ArgKind = iota
	// ArgTmp is a virtual temporary or physical register.
	ArgTmp
	// ArgImm is a small immediate that fits instruction encodings.
	ArgImm
	// ArgBigImm is a full-width immediate.
	ArgBigImm
	// ArgAddr is base + offset addressing.
	ArgAddr
	// ArgIndex is base + index*scale + offset addressing.
	ArgIndex
	// ArgStack references a stack slot plus offset.
	ArgStack
	// ArgRelCond is a relational condition code.
	ArgRelCond
	// ArgResCond is a result condition code.
	ArgResCond
	// ArgSpecial defers operand semantics to an attached special.
	ArgSpecial
)

// Arg is one instruction operand. Which fields are meaningful depends
// on Kind. An Arg carries no role/bank/width of its own; that metadata
// is derived from the opcode's form table at traversal time.
type Arg struct {
	Kind   ArgKind
	Tmp    Tmp         // ArgTmp
	Base   Tmp         // ArgAddr, ArgIndex
	Index  Tmp         // ArgIndex
	Scale  uint8       // ArgIndex: 1, 2, 4 or 8
	Offset int64       // ArgAddr, ArgIndex, ArgStack
	Imm    int64       // ArgImm, ArgBigImm
	Slot   StackSlotID // ArgStack
	Cond   Cond        // ArgRelCond, ArgResCond
}

// TmpArg wraps a temporary as an operand.
func TmpArg(t Tmp) Arg {
	return Arg{Kind: ArgTmp, Tmp: t, Slot: NoStackSlotID}
}

// RegArg wraps a physical register as an operand.
func RegArg(r Reg) Arg {
	return TmpArg(TmpForReg(r))
}

// ImmArg builds a small-immediate operand.
func ImmArg(value int64) Arg {
	return Arg{Kind: ArgImm, Imm: value, Slot: NoStackSlotID}
}

// BigImmArg builds a full-width immediate operand.
func BigImmArg(value int64) Arg {
	return Arg{Kind: ArgBigImm, Imm: value, Slot: NoStackSlotID}
}

// AddrArg builds a base+offset memory operand.
func AddrArg(base Tmp, offset int64) Arg {
	return Arg{Kind: ArgAddr, Base: base, Offset: offset, Slot: NoStackSlotID}
}

// IndexArg builds a base+index*scale+offset memory operand.
func IndexArg(base, index Tmp, scale uint8, offset int64) Arg {
	switch scale {
	case 1, 2, 4, 8:
	default:
		panic(fmt.Errorf("air: invalid index scale %d", scale))
	}
	return Arg{Kind: ArgIndex, Base: base, Index: index, Scale: scale, Offset: offset, Slot: NoStackSlotID}
}

// StackArg builds a stack-slot operand.
func StackArg(slot StackSlotID, offset int64) Arg {
	return Arg{Kind: ArgStack, Slot: slot, Offset: offset}
}

// RelCondArg builds a relational-condition operand.
func RelCondArg(c Cond) Arg {
	return Arg{Kind: ArgRelCond, Cond: c, Slot: NoStackSlotID}
}

// ResCondArg builds a result-condition operand.
func ResCondArg(c Cond) Arg {
	return Arg{Kind: ArgResCond, Cond: c, Slot: NoStackSlotID}
}

// IsTmp reports whether the operand is a bare temporary.
func (a *Arg) IsTmp() bool {
	return a.Kind == ArgTmp
}

// IsMemory reports whether the operand addresses memory.
func (a *Arg) IsMemory() bool {
	switch a.Kind {
	case ArgAddr, ArgIndex, ArgStack:
		return true
	}
	return false
}

func (a Arg) String() string {
	switch a.Kind {
	case ArgInvalid:
		return "<invalid>"
	case ArgTmp:
		return a.Tmp.String()
	case ArgImm:
		return fmt.Sprintf("$%d", a.Imm)
	case ArgBigImm:
		return fmt.Sprintf("$$%d", a.Imm)
	case ArgAddr:
		return fmt.Sprintf("%d(%s)", a.Offset, a.Base)
	case ArgIndex:
		return fmt.Sprintf("%d(%s,%s,%d)", a.Offset, a.Base, a.Index, a.Scale)
	case ArgStack:
		return fmt.Sprintf("%d(stack%d)", a.Offset, a.Slot)
	case ArgRelCond, ArgResCond:
		return a.Cond.String()
	case ArgSpecial:
		return "<special>"
	}
	return fmt.Sprintf("Arg(%d)", uint8(a.Kind))
}

// forEachTmp visits every temporary the operand expands to, each
// tagged with the operand's metadata. Address components are uses of
// pointer-width GP values regardless of the operand's own role.
func (a *Arg) forEachTmp(role ArgRole, bank Bank, width Width, f func(Tmp, ArgRole, Bank, Width)) {
	switch a.Kind {
	case ArgTmp:
		f(a.Tmp, role, bank, width)
	case ArgAddr:
		if a.Base.IsValid() {
			f(a.Base, RoleUse, GP, pointerWidth)
		}
	case ArgIndex:
		if a.Base.IsValid() {
			f(a.Base, RoleUse, GP, pointerWidth)
		}
		if a.Index.IsValid() {
			f(a.Index, RoleUse, GP, pointerWidth)
		}
	}
}

// forEachTmpMut is forEachTmp with in-place mutation of the visited
// temporaries.
func (a *Arg) forEachTmpMut(role ArgRole, bank Bank, width Width, f func(*Tmp, ArgRole, Bank, Width)) {
	switch a.Kind {
	case ArgTmp:
		f(&a.Tmp, role, bank, width)
	case ArgAddr:
		if a.Base.IsValid() {
			f(&a.Base, RoleUse, GP, pointerWidth)
		}
	case ArgIndex:
		if a.Base.IsValid() {
			f(&a.Base, RoleUse, GP, pointerWidth)
		}
		if a.Index.IsValid() {
			f(&a.Index, RoleUse, GP, pointerWidth)
		}
	}
}

// forEachStackSlot visits the operand's stack-slot reference, if any.
func (a *Arg) forEachStackSlot(role ArgRole, bank Bank, width Width, f func(StackSlotID, ArgRole, Bank, Width)) {
	if a.Kind == ArgStack {
		f(a.Slot, role, bank, width)
	}
}

// forEachStackSlotMut is forEachStackSlot with in-place mutation.
func (a *Arg) forEachStackSlotMut(role ArgRole, bank Bank, width Width, f func(*StackSlotID, ArgRole, Bank, Width)) {
	if a.Kind == ArgStack {
		f(&a.Slot, role, bank, width)
	}
}
