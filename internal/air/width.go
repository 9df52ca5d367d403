package air

import "fmt"

// Width is an operand bit width.
type Width uint8

const (
	W8 Width = iota
	W16
	W32
	W64

	NumWidths
)

// pointerWidth is the width of address computations on the abstract
// 64-bit target.
const pointerWidth = W64

// Bits returns the width in bits.
func (w Width) Bits() int {
	return 8 << w
}

// Bytes returns the width in bytes.
func (w Width) Bytes() int {
	return 1 << w
}

func (w Width) String() string {
	if w < NumWidths {
		return fmt.Sprintf("%d", w.Bits())
	}
	return fmt.Sprintf("Width(%d)", uint8(w))
}
