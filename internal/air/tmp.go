package air

import "fmt"

// Tmp is a virtual temporary or a physical register, the unit the
// register allocator assigns. The zero value is invalid.
type Tmp struct {
	bank Bank
	// 0 = invalid; 1..numRegsPerBank = physical register index+1;
	// above that = virtual temporary.
	value int32
}

// NewTmp returns the index-th virtual temporary of the given bank.
func NewTmp(bank Bank, index int32) Tmp {
	if index < 0 {
		panic(fmt.Errorf("air: negative tmp index %d", index))
	}
	return Tmp{bank: bank, value: numRegsPerBank + 1 + index}
}

// TmpForReg wraps a physical register as a Tmp.
func TmpForReg(r Reg) Tmp {
	return Tmp{bank: r.Bank(), value: int32(r.code)}
}

// IsValid reports whether t names a temporary or register.
func (t Tmp) IsValid() bool {
	return t.value != 0
}

// IsReg reports whether t is backed by a physical register.
func (t Tmp) IsReg() bool {
	return t.value >= 1 && t.value <= numRegsPerBank
}

// IsVirtual reports whether t is an unallocated temporary.
func (t Tmp) IsVirtual() bool {
	return t.value > numRegsPerBank
}

// Bank returns the temporary's register-class domain.
func (t Tmp) Bank() Bank {
	return t.bank
}

// Reg unwraps a register-backed Tmp.
func (t Tmp) Reg() Reg {
	if !t.IsReg() {
		panic(fmt.Errorf("air: Reg on non-register tmp %s", t))
	}
	return Reg{bank: t.bank, code: uint8(t.value)}
}

// VirtualIndex returns the temporary's index within its bank.
func (t Tmp) VirtualIndex() int32 {
	if !t.IsVirtual() {
		panic(fmt.Errorf("air: VirtualIndex on non-virtual tmp %s", t))
	}
	return t.value - numRegsPerBank - 1
}

func (t Tmp) String() string {
	switch {
	case !t.IsValid():
		return "tmp(invalid)"
	case t.IsReg():
		return t.Reg().String()
	case t.bank == FP:
		return fmt.Sprintf("ftmp%d", t.VirtualIndex())
	default:
		return fmt.Sprintf("tmp%d", t.VirtualIndex())
	}
}
