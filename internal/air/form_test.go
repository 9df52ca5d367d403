package air

import "testing"

func TestPackFormRoundTrip(t *testing.T) {
	for role := ArgRole(0); role < NumRoles; role++ {
		for _, bank := range []Bank{GP, FP} {
			for _, width := range []Width{W8, W16, W32, W64} {
				in := OperandForm{Role: role, Bank: bank, Width: width}
				b := packForm(in)
				if !formIsDefined(b) {
					t.Fatalf("packed %+v reads as undefined", in)
				}
				out := OperandForm{
					Role:  decodeFormRole(b),
					Bank:  decodeFormBank(b),
					Width: decodeFormWidth(b),
				}
				if out != in {
					t.Fatalf("round trip %+v -> %#x -> %+v", in, b, out)
				}
			}
		}
	}
}

func TestFormOffsetIsTriangular(t *testing.T) {
	// Sub-tables for arities 1..maxFormOperands must tile the row
	// exactly, with no gaps and no overlap.
	next := 0
	for n := 1; n <= maxFormOperands; n++ {
		if got := formOffset(n); got != next {
			t.Fatalf("formOffset(%d) = %d, want %d", n, got, next)
		}
		next += n
	}
	if next != formRowStride {
		t.Fatalf("sub-tables cover %d bytes, row stride is %d", next, formRowStride)
	}
}

func TestArities(t *testing.T) {
	tests := []struct {
		op   Opcode
		want []int
	}{
		{Add32, []int{2, 3}},
		{Neg32, []int{1}},
		{Compare32, []int{4}},
		{Nop, nil},
		{Patch, nil},
	}
	for _, tt := range tests {
		got := Arities(tt.op)
		if len(got) != len(tt.want) {
			t.Errorf("Arities(%s) = %v, want %v", tt.op, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("Arities(%s) = %v, want %v", tt.op, got, tt.want)
				break
			}
		}
	}
}
