package air

import "fmt"

// ArgRole is an operand's timing classification relative to instruction
// execution. Liveness and scheduling read operands through these
// predicates, never through the raw enum.
type ArgRole uint8

const (
	// RoleUse reads the operand at the start of execution.
	RoleUse ArgRole = iota
	// RoleColdUse is a use on a slow path; the allocator may punish it.
	RoleColdUse
	// RoleLateUse reads the operand at the end of execution, after
	// ordinary defs have landed.
	RoleLateUse
	// RoleLateColdUse is a late use on a slow path.
	RoleLateColdUse
	// RoleDef writes the operand at the end of execution.
	RoleDef
	// RoleZDef is a def that also zeroes the rest of the register.
	RoleZDef
	// RoleUseDef reads at the start and writes at the end.
	RoleUseDef
	// RoleUseZDef is a UseDef whose write zero-extends.
	RoleUseZDef
	// RoleEarlyDef writes at the start of execution, so the storage
	// must not overlap any use of the same instruction.
	RoleEarlyDef
	// RoleEarlyZDef is an EarlyDef whose write zero-extends.
	RoleEarlyZDef
	// RoleScratch is an early def plus late use private to the
	// instruction.
	RoleScratch
	// RoleUseAddr consumes the operand's address, not its value.
	RoleUseAddr

	NumRoles
)

// IsAnyUse reports whether the operand's value is read.
func (r ArgRole) IsAnyUse() bool {
	switch r {
	case RoleUse, RoleColdUse, RoleLateUse, RoleLateColdUse, RoleUseDef, RoleUseZDef:
		return true
	}
	return false
}

// IsColdUse reports whether the read happens on a slow path only.
func (r ArgRole) IsColdUse() bool {
	return r == RoleColdUse || r == RoleLateColdUse
}

// IsWarmUse reports a read on the fast path.
func (r ArgRole) IsWarmUse() bool {
	return r.IsAnyUse() && !r.IsColdUse()
}

// IsEarlyUse reports whether the read happens at the start of
// execution.
func (r ArgRole) IsEarlyUse() bool {
	switch r {
	case RoleUse, RoleColdUse, RoleUseDef, RoleUseZDef:
		return true
	}
	return false
}

// IsLateUse reports whether the read happens at the end of execution.
func (r ArgRole) IsLateUse() bool {
	switch r {
	case RoleLateUse, RoleLateColdUse, RoleScratch:
		return true
	}
	return false
}

// IsAnyDef reports whether the operand's storage is written.
func (r ArgRole) IsAnyDef() bool {
	switch r {
	case RoleDef, RoleZDef, RoleUseDef, RoleUseZDef, RoleEarlyDef, RoleEarlyZDef, RoleScratch:
		return true
	}
	return false
}

// IsEarlyDef reports whether the write lands at the start of
// execution.
func (r ArgRole) IsEarlyDef() bool {
	switch r {
	case RoleEarlyDef, RoleEarlyZDef, RoleScratch:
		return true
	}
	return false
}

// IsLateDef reports whether the write lands at the end of execution.
func (r ArgRole) IsLateDef() bool {
	switch r {
	case RoleDef, RoleZDef, RoleUseDef, RoleUseZDef:
		return true
	}
	return false
}

// IsZDef reports whether the write zero-extends the full register.
func (r ArgRole) IsZDef() bool {
	switch r {
	case RoleZDef, RoleUseZDef, RoleEarlyZDef:
		return true
	}
	return false
}

var roleNames = [NumRoles]string{
	RoleUse:         "Use",
	RoleColdUse:     "ColdUse",
	RoleLateUse:     "LateUse",
	RoleLateColdUse: "LateColdUse",
	RoleDef:         "Def",
	RoleZDef:        "ZDef",
	RoleUseDef:      "UseDef",
	RoleUseZDef:     "UseZDef",
	RoleEarlyDef:    "EarlyDef",
	RoleEarlyZDef:   "EarlyZDef",
	RoleScratch:     "Scratch",
	RoleUseAddr:     "UseAddr",
}

func (r ArgRole) String() string {
	if r < NumRoles {
		return roleNames[r]
	}
	return fmt.Sprintf("ArgRole(%d)", uint8(r))
}
