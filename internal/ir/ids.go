// Package ir implements the block-structured value graph a procedure is
// optimized in: a control-flow graph of basic blocks holding ordered
// value computations, plus the mutation API passes rely on.
//
// Everything is addressed through dense integer ids into arena storage
// owned by the Procedure; the graph has mutual back-references (block to
// block, value to owning block), so no object holds a direct reference
// to another.
package ir

// ValueID identifies a value within a procedure.
type ValueID int32

// BlockID identifies a basic block within a procedure.
type BlockID int32

// VariableID identifies a mutable variable slot within a procedure.
type VariableID int32

// Invalid id sentinels.
const (
	NoValueID    ValueID    = -1
	NoBlockID    BlockID    = -1
	NoVariableID VariableID = -1
)

// IsValid reports whether the id refers to a registered object.
func (id ValueID) IsValid() bool    { return id >= 0 }
func (id BlockID) IsValid() bool    { return id >= 0 }
func (id VariableID) IsValid() bool { return id >= 0 }
