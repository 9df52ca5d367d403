package ir

import (
	"fmt"
	"math"
	"strings"
)

// HeapRange is a half-open byte range in the abstract heap, used for
// alias reasoning on memory operations.
type HeapRange struct {
	Lo uint32
	Hi uint32
}

// FullHeapRange covers the whole abstract heap.
func FullHeapRange() HeapRange {
	return HeapRange{Lo: 0, Hi: math.MaxUint32}
}

// MemValue is the payload of load and store values.
type MemValue struct {
	Offset int32
	Range  HeapRange // bytes the access may alias
	Fence  HeapRange // bytes the access orders against, empty if none
}

// Value is one node of the value graph: an operation, its result type,
// and its operands as ids of other values. The payload fields are
// meaningful only for the opcodes that use them.
type Value struct {
	Kind     Kind
	Type     Type
	Children []ValueID

	// Owner is the containing block, stamped in batch by
	// Procedure.ResetValueOwners, NoBlockID until then.
	Owner BlockID

	ConstInt  int64      // Const32 (truncated), Const64
	ConstBits uint64     // ConstFloat (low 32 bits), ConstDouble
	Variable  VariableID // Get, Set
	ArgIndex  int32      // ArgumentReg
	Mem       MemValue   // loads, stores
}

// NewValue builds a plain value with no payload.
func NewValue(kind Kind, typ Type, children ...ValueID) Value {
	return Value{Kind: kind, Type: typ, Children: children, Owner: NoBlockID, Variable: NoVariableID}
}

// Opcode is shorthand for v.Kind.Opcode.
func (v *Value) Opcode() Opcode {
	return v.Kind.Opcode
}

// ConstFloatValue returns the ConstFloat payload as a float32.
func (v *Value) ConstFloatValue() float32 {
	return math.Float32frombits(uint32(v.ConstBits))
}

// ConstDoubleValue returns the ConstDouble payload as a float64.
func (v *Value) ConstDoubleValue() float64 {
	return math.Float64frombits(v.ConstBits)
}

// format renders the value for procedure dumps:
//
//	v3 = Add(v1, v2) : Int32
func (v *Value) format(id ValueID) string {
	var b strings.Builder
	fmt.Fprintf(&b, "v%d = %s", id, v.Kind)

	var extras []string
	switch v.Opcode() {
	case Const32, Const64:
		extras = append(extras, fmt.Sprintf("%d", v.ConstInt))
	case ConstFloat:
		extras = append(extras, fmt.Sprintf("%v", v.ConstFloatValue()))
	case ConstDouble:
		extras = append(extras, fmt.Sprintf("%v", v.ConstDoubleValue()))
	case ArgumentReg:
		extras = append(extras, fmt.Sprintf("arg%d", v.ArgIndex))
	case Get, Set:
		extras = append(extras, fmt.Sprintf("var%d", v.Variable))
	}
	for _, child := range v.Children {
		extras = append(extras, fmt.Sprintf("v%d", child))
	}
	fmt.Fprintf(&b, "(%s)", strings.Join(extras, ", "))

	if v.Opcode().IsLoad() || v.Opcode().IsStore() {
		fmt.Fprintf(&b, " offset=%d", v.Mem.Offset)
	}
	if v.Type != Void {
		fmt.Fprintf(&b, " : %s", v.Type)
	}
	return b.String()
}
