package snapshot_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ember/internal/ir"
	"ember/internal/snapshot"
)

// diamondProc builds entry -> branch(left, right), both joining in a
// final return block, with one variable in play.
func diamondProc(t *testing.T) *ir.Procedure {
	t.Helper()
	proc := ir.NewProcedure()
	entry := proc.AddBlock(1.0)
	left := proc.AddBlock(1.0)
	right := proc.AddBlock(0.1)
	exit := proc.AddBlock(1.0)

	v := proc.AddVariable(ir.Int32)

	eb := ir.NewBuilder(proc, entry)
	arg := eb.AddArgument(ir.Int32, 0)
	zero := eb.AddIntConstant(ir.Int32, 0)
	cond := eb.AddBinary(ir.KindFor(ir.Equal), arg, zero)
	eb.AddBranch(cond, left, ir.FrequentBlock{Block: right, Freq: ir.FrequencyRare})

	lb := ir.NewBuilder(proc, left)
	one := lb.AddIntConstant(ir.Int32, 1)
	lb.AddVariableSet(v, one)
	lb.AddJump(exit)

	rb := ir.NewBuilder(proc, right)
	two := rb.AddIntConstant(ir.Int32, 2)
	rb.AddVariableSet(v, two)
	rb.AddJump(exit)

	xb := ir.NewBuilder(proc, exit)
	result := xb.AddVariableGet(v)
	xb.AddReturn(result)

	proc.ResetValueOwners()
	require.NoError(t, ir.Validate(proc))
	return proc
}

func TestRoundTrip(t *testing.T) {
	proc := diamondProc(t)

	data, err := snapshot.Marshal(proc)
	require.NoError(t, err)

	got, err := snapshot.Unmarshal(data)
	require.NoError(t, err)

	assert.Equal(t, proc.NumValues(), got.NumValues())
	assert.Equal(t, proc.NumBlocks(), got.NumBlocks())
	assert.Equal(t, proc.NumVariables(), got.NumVariables())

	// Ids must survive, so a textual dump is a faithful fingerprint.
	assert.Equal(t, ir.FormatProcedure(proc), ir.FormatProcedure(got))

	// Edges and edge frequencies survive too.
	require.NoError(t, ir.Validate(got))
	entry := got.Block(got.Entry())
	require.Len(t, entry.Successors(), 2)
	assert.Equal(t, ir.FrequencyNormal, entry.Taken().Freq)
	assert.Equal(t, ir.FrequencyRare, entry.NotTaken().Freq)

	// Owners were stamped before the snapshot and must come back.
	got.EachValue(func(id ir.ValueID, v *ir.Value) {
		assert.Equal(t, proc.Value(id).Owner, v.Owner, "owner of v%d", id)
	})
}

func TestRoundTripMemoryPayload(t *testing.T) {
	proc := ir.NewProcedure()
	entry := proc.AddBlock(1.0)
	b := ir.NewBuilder(proc, entry)
	ptr := b.AddArgument(ir.Int64, 0)
	loaded := b.AddLoad(ir.KindFor(ir.Load), ir.Int32, ptr, 16,
		ir.HeapRange{Lo: 16, Hi: 20}, ir.HeapRange{})
	b.AddStore(ir.KindFor(ir.Store), loaded, ptr, 24, ir.FullHeapRange(), ir.FullHeapRange())
	b.AddReturn(loaded)

	data, err := snapshot.Marshal(proc)
	require.NoError(t, err)
	got, err := snapshot.Unmarshal(data)
	require.NoError(t, err)

	ld := got.Value(loaded)
	assert.Equal(t, int32(16), ld.Mem.Offset)
	assert.Equal(t, ir.HeapRange{Lo: 16, Hi: 20}, ld.Mem.Range)
	assert.Equal(t, ir.HeapRange{}, ld.Mem.Fence)
	assert.Equal(t, ir.FormatProcedure(proc), ir.FormatProcedure(got))
}

func TestFileRoundTrip(t *testing.T) {
	proc := diamondProc(t)
	path := filepath.Join(t.TempDir(), "cache", "proc.mp")

	require.NoError(t, snapshot.WriteFile(path, proc))
	got, err := snapshot.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, ir.FormatProcedure(proc), ir.FormatProcedure(got))
}

func TestReadFileMissing(t *testing.T) {
	_, err := snapshot.ReadFile(filepath.Join(t.TempDir(), "nope.mp"))
	assert.Error(t, err)
}

func TestUnmarshalGarbage(t *testing.T) {
	_, err := snapshot.Unmarshal([]byte("not msgpack at all"))
	assert.Error(t, err)
}
