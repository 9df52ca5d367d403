package ir

import "fmt"

// Type is the result type of a value. The type system itself is an
// input artifact; only classification matters here.
type Type uint8

const (
	Void Type = iota
	Int32
	Int64
	Float
	Double
)

// IsInt reports whether t is an integer type.
func (t Type) IsInt() bool {
	return t == Int32 || t == Int64
}

// IsFloat reports whether t is a floating-point type.
func (t Type) IsFloat() bool {
	return t == Float || t == Double
}

// IsNumeric reports whether t carries a value at all.
func (t Type) IsNumeric() bool {
	return t != Void
}

func (t Type) String() string {
	switch t {
	case Void:
		return "Void"
	case Int32:
		return "Int32"
	case Int64:
		return "Int64"
	case Float:
		return "Float"
	case Double:
		return "Double"
	}
	return fmt.Sprintf("Type(%d)", uint8(t))
}
