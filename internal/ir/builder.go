package ir

// Builder is a scoped façade bound to one (procedure, block) pair. It
// fuses value construction with appending to the block, and for
// terminal-producing operations also performs the CFG-edge bookkeeping
// in the same call, so the successor list and the reciprocal
// predecessor lists never disagree in between.
//
// The Builder holds the whole procedure for its lifetime: installing a
// terminal touches both the source block and the target block's
// predecessor list.
type Builder struct {
	Proc  *Procedure
	Block BlockID
}

// NewBuilder returns a builder appending to block.
func NewBuilder(proc *Procedure, block BlockID) *Builder {
	return &Builder{Proc: proc, Block: block}
}

// Append inserts an already-constructed value at the end of the block.
func (b *Builder) Append(value ValueID) {
	b.Proc.AddToBlock(b.Block, value)
}

// AddIntConstant constructs and appends an integer constant.
func (b *Builder) AddIntConstant(typ Type, value int64) ValueID {
	id := b.Proc.AddIntConstant(typ, value)
	b.Append(id)
	return id
}

// AddBitsConstant constructs and appends a bit-pattern constant.
func (b *Builder) AddBitsConstant(typ Type, bits uint64) ValueID {
	id := b.Proc.AddBitsConstant(typ, bits)
	b.Append(id)
	return id
}

// AddBinary constructs and appends a binary operation.
func (b *Builder) AddBinary(kind Kind, lhs, rhs ValueID) ValueID {
	id := b.Proc.AddBinary(kind, lhs, rhs)
	b.Append(id)
	return id
}

// AddBitcast constructs and appends a bitwise cast.
func (b *Builder) AddBitcast(value ValueID, typ Type) ValueID {
	id := b.Proc.AddBitcast(value, typ)
	b.Append(id)
	return id
}

// AddArgument constructs and appends an incoming-argument value.
func (b *Builder) AddArgument(typ Type, index int32) ValueID {
	id := b.Proc.AddArgument(typ, index)
	b.Append(id)
	return id
}

// AddLoad constructs and appends a load.
func (b *Builder) AddLoad(kind Kind, typ Type, pointer ValueID, offset int32, rng, fence HeapRange) ValueID {
	id := b.Proc.AddLoad(kind, typ, pointer, offset, rng, fence)
	b.Append(id)
	return id
}

// AddStore constructs and appends a store.
func (b *Builder) AddStore(kind Kind, value, pointer ValueID, offset int32, rng, fence HeapRange) ValueID {
	id := b.Proc.AddStore(kind, value, pointer, offset, rng, fence)
	b.Append(id)
	return id
}

// AddVariableGet constructs and appends a variable read.
func (b *Builder) AddVariableGet(variable VariableID) ValueID {
	id := b.Proc.AddVariableGet(variable)
	b.Append(id)
	return id
}

// AddVariableSet constructs and appends a variable write.
func (b *Builder) AddVariableSet(variable VariableID, value ValueID) ValueID {
	id := b.Proc.AddVariableSet(variable, value)
	b.Append(id)
	return id
}

// AddReturn constructs and appends a return terminal. Return carries
// no successor edges.
func (b *Builder) AddReturn(value ValueID) ValueID {
	id := b.Proc.AddReturn(value)
	b.Append(id)
	return id
}

// AddJump seals the block with a jump to to: it clears any existing
// successors, appends the Jump terminal, installs the single
// (to, Normal) edge and registers the reciprocal predecessor on the
// target. The steps are one atomic operation; any other order risks a
// dangling edge.
func (b *Builder) AddJump(to BlockID) ValueID {
	block := b.Proc.Block(b.Block)
	block.succs = block.succs[:0]
	id := b.Proc.AddJump()
	b.Append(id)
	block.SetSuccessors(FrequentBlock{Block: to, Freq: FrequencyNormal})
	b.Proc.Block(to).AddPredecessor(b.Block)
	return id
}

// AddBranch seals the block with a conditional branch: successor 0 is
// the taken edge (always Normal), successor 1 the not-taken edge with
// the caller-supplied frequency (Rare for error paths and the like).
// Predecessor edges on both targets are registered in the same call.
func (b *Builder) AddBranch(condition ValueID, taken BlockID, notTaken FrequentBlock) ValueID {
	block := b.Proc.Block(b.Block)
	block.succs = block.succs[:0]
	id := b.Proc.AddBranch(condition)
	b.Append(id)
	block.SetSuccessors2(FrequentBlock{Block: taken, Freq: FrequencyNormal}, notTaken)
	b.Proc.Block(taken).AddPredecessor(b.Block)
	b.Proc.Block(notTaken.Block).AddPredecessor(b.Block)
	return id
}
