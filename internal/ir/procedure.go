package ir

import (
	"fmt"
	"math"

	"fortio.org/safecast"

	"ember/internal/cfg"
	"ember/internal/sparse"
)

// Procedure owns one compiled function: its value arena, its basic
// blocks and its variables, plus lazily cached control-flow analyses.
//
// A single pass mutates a Procedure at a time. The cached analyses are
// plain memoized fields with no staleness tracking: a pass that
// mutates the CFG must call InvalidateCFG before the next reader runs.
type Procedure struct {
	values    sparse.Collection[Value]
	blocks    []*BasicBlock
	variables sparse.Collection[Variable]

	dominators   *cfg.Dominators
	naturalLoops *cfg.NaturalLoops
}

// NewProcedure returns an empty procedure.
func NewProcedure() *Procedure {
	return &Procedure{}
}

// Add registers a value and returns its permanent id. The value is not
// inserted into any block; that is a separate, explicit step.
func (p *Procedure) Add(val Value) ValueID {
	return ValueID(p.values.Add(val))
}

// Value returns the value with the given id.
func (p *Procedure) Value(id ValueID) *Value {
	return p.values.At(int32(id))
}

// NumValues reports the number of registered values.
func (p *Procedure) NumValues() int {
	return p.values.Len()
}

// EachValue visits every registered value in id order.
func (p *Procedure) EachValue(f func(id ValueID, v *Value)) {
	p.values.Each(func(raw int32, v *Value) {
		f(ValueID(raw), v)
	})
}

// CloneValue registers a copy of an existing value, returning the
// fresh id. The copy shares nothing with the original.
func (p *Procedure) CloneValue(id ValueID) ValueID {
	val := *p.Value(id)
	val.Children = append([]ValueID(nil), val.Children...)
	return p.Add(val)
}

// Block returns the block with the given id.
func (p *Procedure) Block(id BlockID) *BasicBlock {
	return p.blocks[id]
}

// NumBlocks reports the number of blocks, including unreachable ones.
func (p *Procedure) NumBlocks() int {
	return len(p.blocks)
}

// Entry returns the entry block id. Block 0 is the entry by convention.
func (p *Procedure) Entry() BlockID {
	return 0
}

// AddBlock appends a new empty block at the next index.
func (p *Procedure) AddBlock(frequency float64) BlockID {
	raw, err := safecast.Conv[int32](len(p.blocks))
	if err != nil {
		panic(fmt.Errorf("ir: block id overflow: %w", err))
	}
	id := BlockID(raw)
	p.blocks = append(p.blocks, newBasicBlock(id, frequency))
	return id
}

// AddToBlock appends an already-registered value to a block.
func (p *Procedure) AddToBlock(block BlockID, value ValueID) {
	p.blocks[block].Append(value)
}

// Successors returns the successor edges of a block.
func (p *Procedure) Successors(id BlockID) []FrequentBlock {
	return p.blocks[id].Successors()
}

// Predecessors returns the predecessor list of a block.
func (p *Procedure) Predecessors(id BlockID) []BlockID {
	return p.blocks[id].Predecessors()
}

// Variable returns the variable with the given id.
func (p *Procedure) Variable(id VariableID) *Variable {
	return p.variables.At(int32(id))
}

// NumVariables reports the number of registered variables.
func (p *Procedure) NumVariables() int {
	return p.variables.Len()
}

// AddVariable registers a new variable of the given type.
func (p *Procedure) AddVariable(typ Type) VariableID {
	id := VariableID(p.variables.Add(Variable{Type: typ}))
	p.variables.At(int32(id)).Index = id
	return id
}

// ResetValueOwners stamps every value with its current containing
// block. This is the only mechanism keeping value-to-owner data
// consistent; rerun it after structural edits before owner-dependent
// logic executes.
func (p *Procedure) ResetValueOwners() {
	for _, block := range p.blocks {
		for _, value := range block.Values() {
			p.Value(value).Owner = block.Index()
		}
	}
}

// --- value constructors -------------------------------------------------
//
// Constructors validate their preconditions and panic on violation: a
// bad call signals a bug in an earlier pass, not bad user input, so
// there is no error path.

// AddIntConstant registers a constant of the given type holding value,
// numerically converted.
func (p *Procedure) AddIntConstant(typ Type, value int64) ValueID {
	val := NewValue(KindFor(opcodeForConstant(typ)), typ)
	switch typ {
	case Int32:
		val.ConstInt = int64(int32(value))
	case Int64:
		val.ConstInt = value
	case Float:
		val.ConstBits = uint64(math.Float32bits(float32(value)))
	case Double:
		val.ConstBits = math.Float64bits(float64(value))
	}
	return p.Add(val)
}

// AddBitsConstant registers a constant whose payload is the raw bit
// pattern, reinterpreted rather than numerically converted.
func (p *Procedure) AddBitsConstant(typ Type, bits uint64) ValueID {
	val := NewValue(KindFor(opcodeForConstant(typ)), typ)
	switch typ {
	case Int32:
		val.ConstInt = int64(int32(bits))
	case Int64:
		val.ConstInt = int64(bits)
	case Float:
		val.ConstBits = uint64(uint32(bits))
	case Double:
		val.ConstBits = bits
	}
	return p.Add(val)
}

func opcodeForConstant(typ Type) Opcode {
	switch typ {
	case Int32:
		return Const32
	case Int64:
		return Const64
	case Float:
		return ConstFloat
	case Double:
		return ConstDouble
	}
	panic(fmt.Errorf("ir: invalid type for constant: %s", typ))
}

// AddBinary registers a two-operand operation. Operand types must be
// identical and the opcode must be classified binary.
func (p *Procedure) AddBinary(kind Kind, lhs, rhs ValueID) ValueID {
	typ := p.Value(lhs).Type
	if rhsType := p.Value(rhs).Type; typ != rhsType {
		panic(fmt.Errorf("ir: binary operation with different types: %s and %s", typ, rhsType))
	}
	if !kind.Opcode.IsBinary() {
		panic(fmt.Errorf("ir: opcode is not a binary operation: %s", kind.Opcode))
	}
	return p.Add(NewValue(kind, typ, lhs, rhs))
}

// AddBitcast registers a bit-pattern reinterpreting cast to typ.
func (p *Procedure) AddBitcast(value ValueID, typ Type) ValueID {
	return p.Add(NewValue(KindFor(BitwiseCast), typ, value))
}

// AddLoad registers a load. Narrow (8/16-bit) loads must produce a
// 32-bit integer result.
func (p *Procedure) AddLoad(kind Kind, typ Type, pointer ValueID, offset int32, rng, fence HeapRange) ValueID {
	if !kind.Opcode.IsLoad() {
		panic(fmt.Errorf("ir: invalid opcode for load: %s", kind.Opcode))
	}
	if kind.Opcode.IsNarrowLoad() && typ != Int32 {
		panic(fmt.Errorf("ir: can load only as 32-bit integer: %s", kind.Opcode))
	}
	val := NewValue(kind, typ, pointer)
	val.Mem = MemValue{Offset: offset, Range: rng, Fence: fence}
	return p.Add(val)
}

// AddLoad32 registers a load producing Int32.
func (p *Procedure) AddLoad32(kind Kind, pointer ValueID, offset int32, rng, fence HeapRange) ValueID {
	return p.AddLoad(kind, Int32, pointer, offset, rng, fence)
}

// AddStore registers a store of value through pointer.
func (p *Procedure) AddStore(kind Kind, value, pointer ValueID, offset int32, rng, fence HeapRange) ValueID {
	if !kind.Opcode.IsStore() {
		panic(fmt.Errorf("ir: opcode is not a store: %s", kind.Opcode))
	}
	val := NewValue(kind, Void, value, pointer)
	val.Mem = MemValue{Offset: offset, Range: rng, Fence: fence}
	return p.Add(val)
}

// AddArgument registers an incoming-argument value.
func (p *Procedure) AddArgument(typ Type, index int32) ValueID {
	val := NewValue(KindFor(ArgumentReg), typ)
	val.ArgIndex = index
	return p.Add(val)
}

// AddI2D registers an int-to-double conversion.
func (p *Procedure) AddI2D(value ValueID) ValueID {
	return p.Add(NewValue(KindFor(IToD), Double, value))
}

// AddD2I registers a double-to-int conversion.
func (p *Procedure) AddD2I(value ValueID) ValueID {
	return p.Add(NewValue(KindFor(DToI), Int32, value))
}

// AddI2F registers an int-to-float conversion.
func (p *Procedure) AddI2F(value ValueID) ValueID {
	return p.Add(NewValue(KindFor(IToF), Float, value))
}

// AddF2I registers a float-to-int conversion.
func (p *Procedure) AddF2I(value ValueID) ValueID {
	return p.Add(NewValue(KindFor(FToI), Int32, value))
}

// AddVariableGet registers a read of a variable; the result type is
// the variable's type.
func (p *Procedure) AddVariableGet(variable VariableID) ValueID {
	val := NewValue(KindFor(Get), p.Variable(variable).Type)
	val.Variable = variable
	return p.Add(val)
}

// AddVariableSet registers a write of value into a variable.
func (p *Procedure) AddVariableSet(variable VariableID, value ValueID) ValueID {
	val := NewValue(KindFor(Set), Void, value)
	val.Variable = variable
	return p.Add(val)
}

// AddReturn registers a return of value.
func (p *Procedure) AddReturn(value ValueID) ValueID {
	return p.Add(NewValue(KindFor(Return), Void, value))
}

// AddJump registers a jump terminal. The successor edge is installed
// separately, normally by the Builder.
func (p *Procedure) AddJump() ValueID {
	return p.Add(NewValue(KindFor(Jump), Void))
}

// AddBranch registers a conditional-branch terminal on condition.
func (p *Procedure) AddBranch(condition ValueID) ValueID {
	return p.Add(NewValue(KindFor(Branch), Void, condition))
}

// --- cached analyses ----------------------------------------------------

// Dominators returns the cached dominator tree. It must have been
// computed; querying before computing is a caller bug.
func (p *Procedure) Dominators() *cfg.Dominators {
	if p.dominators == nil {
		panic("ir: dominators not computed")
	}
	return p.dominators
}

// DominatorsOrCompute returns the cached dominator tree, computing it
// on first demand. The cache is valid until the next CFG mutation;
// invalidation is the mutating pass's responsibility.
func (p *Procedure) DominatorsOrCompute() *cfg.Dominators {
	if p.dominators == nil {
		p.dominators = cfg.ComputeDominators(p.CFG())
	}
	return p.dominators
}

// NaturalLoops returns the cached natural-loop set. It must have been
// computed.
func (p *Procedure) NaturalLoops() *cfg.NaturalLoops {
	if p.naturalLoops == nil {
		panic("ir: natural loops not computed")
	}
	return p.naturalLoops
}

// NaturalLoopsOrCompute returns the cached natural loops, computing
// them on first demand. Loop recognition is defined via dominance, so
// this forces the dominator tree to exist first.
func (p *Procedure) NaturalLoopsOrCompute() *cfg.NaturalLoops {
	if p.naturalLoops == nil {
		doms := p.DominatorsOrCompute()
		p.naturalLoops = cfg.ComputeNaturalLoops(p.CFG(), doms)
	}
	return p.naturalLoops
}

// InvalidateCFG drops the cached analyses. Call it after any
// structural CFG edit made once an analysis has been computed.
func (p *Procedure) InvalidateCFG() {
	p.dominators = nil
	p.naturalLoops = nil
}

// --- graph capability ---------------------------------------------------

// procGraph adapts a Procedure to the cfg.Graph capability, so the
// generic analyses never see IR types.
type procGraph struct {
	p *Procedure
}

// CFG returns the procedure's control-flow graph capability.
func (p *Procedure) CFG() cfg.Graph {
	return procGraph{p: p}
}

func (g procGraph) NumNodes() int {
	return len(g.p.blocks)
}

func (g procGraph) Root() int {
	return int(g.p.Entry())
}

func (g procGraph) Predecessors(node int) []int {
	preds := g.p.blocks[node].Predecessors()
	result := make([]int, len(preds))
	for i, p := range preds {
		result[i] = int(p)
	}
	return result
}

func (g procGraph) Successors(node int) []int {
	succs := g.p.blocks[node].Successors()
	result := make([]int, len(succs))
	for i, s := range succs {
		result[i] = int(s.Block)
	}
	return result
}
