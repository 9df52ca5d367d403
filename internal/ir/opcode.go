package ir

import "fmt"

// Opcode enumerates mid-level value operations. The set and its
// classification predicates are inputs to this layer; passes switch on
// classes, not on individual opcodes.
type Opcode uint8

const (
	Nop Opcode = iota
	Identity

	// Constants.
	Const32
	Const64
	ConstFloat
	ConstDouble

	// Incoming argument, by register convention.
	ArgumentReg

	// Binary arithmetic. Operand types must match.
	Add
	Sub
	Mul
	Div
	Mod
	BitAnd
	BitOr
	BitXor
	Shl
	SShr
	ZShr

	// Binary comparisons. Operand types must match.
	Equal
	NotEqual
	LessThan
	GreaterThan
	LessEqual
	GreaterEqual
	Above
	Below
	AboveEqual
	BelowEqual

	// Conversions and casts.
	BitwiseCast
	SExt8
	SExt16
	SExt32
	ZExt32
	Trunc
	IToD
	DToI
	IToF
	FToI

	// Variable access.
	Get
	Set

	// Memory. Narrow loads widen to Int32.
	Load8Z
	Load8S
	Load16Z
	Load16S
	Load
	Store8
	Store16
	Store

	// Terminals.
	Return
	Jump
	Branch
	Oops

	NumOpcodes
)

// IsBinary reports whether op is a two-operand arithmetic or comparison
// operation with matching operand types.
func (op Opcode) IsBinary() bool {
	return op >= Add && op <= BelowEqual
}

// IsCompare reports whether op is a comparison.
func (op Opcode) IsCompare() bool {
	return op >= Equal && op <= BelowEqual
}

// IsConstant reports whether op is a constant.
func (op Opcode) IsConstant() bool {
	return op >= Const32 && op <= ConstDouble
}

// IsLoad reports whether op reads memory.
func (op Opcode) IsLoad() bool {
	return op >= Load8Z && op <= Load
}

// IsNarrowLoad reports whether op is a sub-32-bit load.
func (op Opcode) IsNarrowLoad() bool {
	return op >= Load8Z && op <= Load16S
}

// IsStore reports whether op writes memory.
func (op Opcode) IsStore() bool {
	return op >= Store8 && op <= Store
}

// IsTerminal reports whether op ends a basic block.
func (op Opcode) IsTerminal() bool {
	return op >= Return && op <= Oops
}

// NumSuccessors reports how many successor edges a block ending in op
// carries. Only meaningful for terminal opcodes.
func (op Opcode) NumSuccessors() int {
	switch op {
	case Jump:
		return 1
	case Branch:
		return 2
	default:
		return 0
	}
}

var opcodeNames = [NumOpcodes]string{
	Nop:          "Nop",
	Identity:     "Identity",
	Const32:      "Const32",
	Const64:      "Const64",
	ConstFloat:   "ConstFloat",
	ConstDouble:  "ConstDouble",
	ArgumentReg:  "ArgumentReg",
	Add:          "Add",
	Sub:          "Sub",
	Mul:          "Mul",
	Div:          "Div",
	Mod:          "Mod",
	BitAnd:       "BitAnd",
	BitOr:        "BitOr",
	BitXor:       "BitXor",
	Shl:          "Shl",
	SShr:         "SShr",
	ZShr:         "ZShr",
	Equal:        "Equal",
	NotEqual:     "NotEqual",
	LessThan:     "LessThan",
	GreaterThan:  "GreaterThan",
	LessEqual:    "LessEqual",
	GreaterEqual: "GreaterEqual",
	Above:        "Above",
	Below:        "Below",
	AboveEqual:   "AboveEqual",
	BelowEqual:   "BelowEqual",
	BitwiseCast:  "BitwiseCast",
	SExt8:        "SExt8",
	SExt16:       "SExt16",
	SExt32:       "SExt32",
	ZExt32:       "ZExt32",
	Trunc:        "Trunc",
	IToD:         "IToD",
	DToI:         "DToI",
	IToF:         "IToF",
	FToI:         "FToI",
	Get:          "Get",
	Set:          "Set",
	Load8Z:       "Load8Z",
	Load8S:       "Load8S",
	Load16Z:      "Load16Z",
	Load16S:      "Load16S",
	Load:         "Load",
	Store8:       "Store8",
	Store16:      "Store16",
	Store:        "Store",
	Return:       "Return",
	Jump:         "Jump",
	Branch:       "Branch",
	Oops:         "Oops",
}

func (op Opcode) String() string {
	if op < NumOpcodes && opcodeNames[op] != "" {
		return opcodeNames[op]
	}
	return fmt.Sprintf("Opcode(%d)", uint8(op))
}
