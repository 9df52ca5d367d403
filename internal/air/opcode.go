package air

import "fmt"

// Opcode enumerates low-level instruction kinds. The operand shapes an
// opcode accepts live in the form table, not here.
type Opcode uint8

const (
	Nop Opcode = iota

	// Moves double as loads and stores via memory operands.
	Move
	Move32
	MoveFloat
	MoveDouble

	Add32
	Add64
	AddFloat
	AddDouble
	Sub32
	Sub64
	Mul32
	Mul64
	Neg32
	Neg64
	And32
	And64
	Or32
	Or64
	Xor32
	Xor64
	Lshift32
	Lshift64
	Rshift32
	Rshift64
	Urshift32
	Urshift64

	Lea32
	Lea64

	Compare32
	Compare64
	Test32
	Test64

	AtomicStrongCAS32
	AtomicStrongCAS64

	// Terminals.
	Jump
	BranchTest32
	BranchTest64
	RetVoid
	Ret32
	Ret64
	RetFloat
	RetDouble

	// Irregular operand shapes; their arity is not fixed, so the form
	// table cannot describe them and generic traversal rejects them.
	EntrySwitch
	Shuffle
	Patch
	CCall
	ColdCCall
	WasmBoundsCheck

	NumOpcodes
)

// IsIrregular reports whether op needs bespoke operand handling
// instead of the table-driven path.
func (op Opcode) IsIrregular() bool {
	switch op {
	case EntrySwitch, Shuffle, Patch, CCall, ColdCCall, WasmBoundsCheck:
		return true
	}
	return false
}

// IsTerminal reports whether op ends an instruction sequence.
func (op Opcode) IsTerminal() bool {
	switch op {
	case Jump, BranchTest32, BranchTest64, RetVoid, Ret32, Ret64, RetFloat, RetDouble, EntrySwitch:
		return true
	}
	return false
}

var airOpcodeNames = [NumOpcodes]string{
	Nop:               "Nop",
	Move:              "Move",
	Move32:            "Move32",
	MoveFloat:         "MoveFloat",
	MoveDouble:        "MoveDouble",
	Add32:             "Add32",
	Add64:             "Add64",
	AddFloat:          "AddFloat",
	AddDouble:         "AddDouble",
	Sub32:             "Sub32",
	Sub64:             "Sub64",
	Mul32:             "Mul32",
	Mul64:             "Mul64",
	Neg32:             "Neg32",
	Neg64:             "Neg64",
	And32:             "And32",
	And64:             "And64",
	Or32:              "Or32",
	Or64:              "Or64",
	Xor32:             "Xor32",
	Xor64:             "Xor64",
	Lshift32:          "Lshift32",
	Lshift64:          "Lshift64",
	Rshift32:          "Rshift32",
	Rshift64:          "Rshift64",
	Urshift32:         "Urshift32",
	Urshift64:         "Urshift64",
	Lea32:             "Lea32",
	Lea64:             "Lea64",
	Compare32:         "Compare32",
	Compare64:         "Compare64",
	Test32:            "Test32",
	Test64:            "Test64",
	AtomicStrongCAS32: "AtomicStrongCAS32",
	AtomicStrongCAS64: "AtomicStrongCAS64",
	Jump:              "Jump",
	BranchTest32:      "BranchTest32",
	BranchTest64:      "BranchTest64",
	RetVoid:           "RetVoid",
	Ret32:             "Ret32",
	Ret64:             "Ret64",
	RetFloat:          "RetFloat",
	RetDouble:         "RetDouble",
	EntrySwitch:       "EntrySwitch",
	Shuffle:           "Shuffle",
	Patch:             "Patch",
	CCall:             "CCall",
	ColdCCall:         "ColdCCall",
	WasmBoundsCheck:   "WasmBoundsCheck",
}

func (op Opcode) String() string {
	if op < NumOpcodes && airOpcodeNames[op] != "" {
		return airOpcodeNames[op]
	}
	return fmt.Sprintf("Opcode(%d)", uint8(op))
}

// opcodeIndex maps opcode names back to values, for the operand-spec
// loader.
var opcodeIndex = buildOpcodeIndex()

func buildOpcodeIndex() map[string]Opcode {
	index := make(map[string]Opcode, NumOpcodes)
	for op := Opcode(0); op < NumOpcodes; op++ {
		index[airOpcodeNames[op]] = op
	}
	return index
}
