// Package air implements the low-level, register-allocation-facing
// instruction representation. An instruction is an opcode plus a small
// operand list; per-operand role/bank/width metadata lives in a flat
// table keyed by (opcode, arity, position), so allocation, scheduling
// and encoding walk operands generically instead of switching over
// opcodes.
package air

import "fmt"

// Bank is the register-class domain an operand's storage comes from.
type Bank uint8

const (
	GP Bank = iota // general-purpose registers
	FP             // floating-point registers

	NumBanks
)

func (b Bank) String() string {
	switch b {
	case GP:
		return "GP"
	case FP:
		return "FP"
	}
	return fmt.Sprintf("Bank(%d)", uint8(b))
}
