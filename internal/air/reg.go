package air

import "fmt"

// numRegsPerBank is the size of each register file on the abstract
// target.
const numRegsPerBank = 32

// Reg is a physical register: a bank plus an index within it.
// The zero value is an invalid register.
type Reg struct {
	bank Bank
	code uint8 // 0 = invalid, otherwise index+1
}

// NewReg returns the index-th register of the given bank.
func NewReg(bank Bank, index uint8) Reg {
	if index >= numRegsPerBank {
		panic(fmt.Errorf("air: register index %d out of range", index))
	}
	return Reg{bank: bank, code: index + 1}
}

// IsValid reports whether r names a register.
func (r Reg) IsValid() bool {
	return r.code != 0
}

// Bank returns the register's bank.
func (r Reg) Bank() Bank {
	return r.bank
}

// Index returns the register's index within its bank.
func (r Reg) Index() uint8 {
	if !r.IsValid() {
		panic("air: Index on invalid register")
	}
	return r.code - 1
}

func (r Reg) String() string {
	if !r.IsValid() {
		return "reg(invalid)"
	}
	if r.bank == FP {
		return fmt.Sprintf("f%d", r.Index())
	}
	return fmt.Sprintf("r%d", r.Index())
}
