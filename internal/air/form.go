package air

import "fmt"

// The form table is a dense mapping from (opcode, arity, position) to
// one packed metadata byte. Each opcode owns a row of formRowStride
// bytes holding one sub-table per possible arity, packed back to back:
// the sub-table for n operands starts at the (n-1)-th triangular
// number, so looking an operand up is pure arithmetic.
const (
	// maxFormOperands is the largest fixed arity the table describes.
	maxFormOperands = 6
	// formRowStride is the per-opcode row length: the sum of all
	// sub-table sizes, i.e. the maxFormOperands-th triangular number.
	formRowStride = maxFormOperands * (maxFormOperands + 1) / 2
)

// formOffset returns the offset of the arity-n sub-table within an
// opcode's row.
func formOffset(numOperands int) int {
	return (numOperands - 1) * numOperands / 2
}

// Packed layout: bit 7 marks a defined slot, bits 0-3 the role, bit 4
// the bank, bits 5-6 the width exponent.
const (
	formDefined    = 1 << 7
	formRoleMask   = 0x0F
	formBankShift  = 4
	formBankMask   = 0x01
	formWidthShift = 5
	formWidthMask  = 0x03
)

// OperandForm is one decoded table entry.
type OperandForm struct {
	Role  ArgRole
	Bank  Bank
	Width Width
}

func packForm(f OperandForm) uint8 {
	if f.Role >= NumRoles || f.Bank >= NumBanks || f.Width >= NumWidths {
		panic(fmt.Errorf("air: unpackable operand form %+v", f))
	}
	return formDefined |
		uint8(f.Role) |
		uint8(f.Bank)<<formBankShift |
		uint8(f.Width)<<formWidthShift
}

func formIsDefined(b uint8) bool {
	return b&formDefined != 0
}

func decodeFormRole(b uint8) ArgRole {
	return ArgRole(b & formRoleMask)
}

func decodeFormBank(b uint8) Bank {
	return Bank(b >> formBankShift & formBankMask)
}

func decodeFormWidth(b uint8) Width {
	return Width(b >> formWidthShift & formWidthMask)
}

// OperandForms returns the decoded metadata for op at the given
// operand count, or ok=false if the opcode defines no such arity.
// Arity zero is trivially defined for every regular opcode.
func OperandForms(op Opcode, numOperands int) ([]OperandForm, bool) {
	if op.IsIrregular() || numOperands < 0 || numOperands > maxFormOperands {
		return nil, false
	}
	if numOperands == 0 {
		return nil, true
	}
	base := int(op)*formRowStride + formOffset(numOperands)
	forms := make([]OperandForm, numOperands)
	for i := range forms {
		b := formTable[base+i]
		if !formIsDefined(b) {
			return nil, false
		}
		forms[i] = OperandForm{
			Role:  decodeFormRole(b),
			Bank:  decodeFormBank(b),
			Width: decodeFormWidth(b),
		}
	}
	return forms, true
}

// Arities returns the operand counts op defines forms for, smallest
// first. Zero-operand opcodes report no entries; arity zero needs no
// metadata.
func Arities(op Opcode) []int {
	var arities []int
	for n := 1; n <= maxFormOperands; n++ {
		if _, ok := OperandForms(op, n); ok {
			arities = append(arities, n)
		}
	}
	return arities
}
