package ir_test

import (
	"math"
	"testing"

	"ember/internal/ir"
)

func TestAddIntConstant(t *testing.T) {
	p := ir.NewProcedure()

	id := p.AddIntConstant(ir.Int32, 42)
	v := p.Value(id)
	if v.Opcode() != ir.Const32 || v.Type != ir.Int32 {
		t.Fatalf("got %s : %s, want Const32 : Int32", v.Kind, v.Type)
	}
	if v.ConstInt != 42 {
		t.Fatalf("payload = %d, want 42", v.ConstInt)
	}
}

func TestAddBitsConstantReinterprets(t *testing.T) {
	p := ir.NewProcedure()

	// 0x3F800000 is the bit pattern of float 1.0. A numeric cast would
	// have produced 1065353216.0 instead.
	id := p.AddBitsConstant(ir.Float, 0x3F800000)
	v := p.Value(id)
	if v.Opcode() != ir.ConstFloat {
		t.Fatalf("opcode = %s, want ConstFloat", v.Kind)
	}
	if got := v.ConstFloatValue(); got != 1.0 {
		t.Fatalf("ConstFloatValue = %v, want 1.0", got)
	}

	intID := p.AddIntConstant(ir.Float, 1)
	if got := p.Value(intID).ConstFloatValue(); got != 1.0 {
		t.Fatalf("AddIntConstant(Float, 1) = %v, want 1.0", got)
	}

	dblID := p.AddBitsConstant(ir.Double, math.Float64bits(2.5))
	if got := p.Value(dblID).ConstDoubleValue(); got != 2.5 {
		t.Fatalf("ConstDoubleValue = %v, want 2.5", got)
	}
}

func TestAddBinaryChecksTypes(t *testing.T) {
	p := ir.NewProcedure()
	lhs := p.AddIntConstant(ir.Int32, 1)
	rhs := p.AddIntConstant(ir.Int64, 2)

	defer func() {
		if recover() == nil {
			t.Fatalf("AddBinary with mismatched operand types should panic")
		}
	}()
	p.AddBinary(ir.KindFor(ir.Add), lhs, rhs)
}

func TestAddBinaryChecksOpcodeClass(t *testing.T) {
	p := ir.NewProcedure()
	lhs := p.AddIntConstant(ir.Int32, 1)
	rhs := p.AddIntConstant(ir.Int32, 2)

	defer func() {
		if recover() == nil {
			t.Fatalf("AddBinary with a non-binary opcode should panic")
		}
	}()
	p.AddBinary(ir.KindFor(ir.Jump), lhs, rhs)
}

func TestAddLoadChecksNarrowResultType(t *testing.T) {
	p := ir.NewProcedure()
	ptr := p.AddIntConstant(ir.Int64, 0)

	defer func() {
		if recover() == nil {
			t.Fatalf("narrow load with a non-Int32 result should panic")
		}
	}()
	p.AddLoad(ir.KindFor(ir.Load16S), ir.Int64, ptr, 0, ir.FullHeapRange(), ir.HeapRange{})
}

func TestAddStoreChecksOpcodeClass(t *testing.T) {
	p := ir.NewProcedure()
	val := p.AddIntConstant(ir.Int32, 1)
	ptr := p.AddIntConstant(ir.Int64, 0)

	defer func() {
		if recover() == nil {
			t.Fatalf("AddStore with a load opcode should panic")
		}
	}()
	p.AddStore(ir.KindFor(ir.Load), val, ptr, 0, ir.FullHeapRange(), ir.HeapRange{})
}

func TestConstructorsDoNotInsert(t *testing.T) {
	p := ir.NewProcedure()
	entry := p.AddBlock(1)

	id := p.AddIntConstant(ir.Int32, 7)
	if got := p.Block(entry).NumValues(); got != 0 {
		t.Fatalf("constructor inserted into a block: %d values", got)
	}
	p.AddToBlock(entry, id)
	if got := p.Block(entry).NumValues(); got != 1 {
		t.Fatalf("AddToBlock did not insert: %d values", got)
	}
}

func TestVariables(t *testing.T) {
	p := ir.NewProcedure()
	v := p.AddVariable(ir.Double)

	if got := p.Variable(v).Type; got != ir.Double {
		t.Fatalf("variable type = %s, want Double", got)
	}

	get := p.AddVariableGet(v)
	if got := p.Value(get).Type; got != ir.Double {
		t.Fatalf("Get result type = %s, want the variable's type", got)
	}

	val := p.AddIntConstant(ir.Double, 3)
	set := p.AddVariableSet(v, val)
	sv := p.Value(set)
	if sv.Type != ir.Void || sv.Variable != v || len(sv.Children) != 1 || sv.Children[0] != val {
		t.Fatalf("Set value malformed: %+v", sv)
	}
}

func TestCloneValueIsIndependent(t *testing.T) {
	p := ir.NewProcedure()
	lhs := p.AddIntConstant(ir.Int32, 1)
	rhs := p.AddIntConstant(ir.Int32, 2)
	add := p.AddBinary(ir.KindFor(ir.Add), lhs, rhs)

	clone := p.CloneValue(add)
	if clone == add {
		t.Fatalf("clone returned the original id")
	}
	p.Value(clone).Children[0] = rhs
	if got := p.Value(add).Children[0]; got != lhs {
		t.Fatalf("mutating the clone changed the original's children")
	}
}

func TestResetValueOwners(t *testing.T) {
	p := ir.NewProcedure()
	entry := p.AddBlock(1)
	other := p.AddBlock(1)

	a := p.AddIntConstant(ir.Int32, 1)
	b := p.AddIntConstant(ir.Int32, 2)
	p.AddToBlock(entry, a)
	p.AddToBlock(other, b)

	if got := p.Value(a).Owner; got != ir.NoBlockID {
		t.Fatalf("owner stamped before ResetValueOwners: %d", got)
	}

	p.ResetValueOwners()
	if got := p.Value(a).Owner; got != entry {
		t.Fatalf("owner of v%d = block%d, want block%d", a, got, entry)
	}
	if got := p.Value(b).Owner; got != other {
		t.Fatalf("owner of v%d = block%d, want block%d", b, got, other)
	}
}

func TestAnalysisQueriesBeforeComputePanic(t *testing.T) {
	p := ir.NewProcedure()
	p.AddBlock(1)

	defer func() {
		if recover() == nil {
			t.Fatalf("Dominators before DominatorsOrCompute should panic")
		}
	}()
	p.Dominators()
}
