package ir

// Kind is an opcode plus effect qualifiers. Chill marks an operation
// that yields a default instead of trapping on bad input (e.g. chill
// Div); Traps marks an operation whose side exit must be preserved.
type Kind struct {
	Opcode Opcode
	Chill  bool
	Traps  bool
}

// KindFor wraps a bare opcode with no qualifiers.
func KindFor(op Opcode) Kind {
	return Kind{Opcode: op}
}

// Chilled returns k with the chill qualifier set.
func (k Kind) Chilled() Kind {
	k.Chill = true
	return k
}

// Trapping returns k with the traps qualifier set.
func (k Kind) Trapping() Kind {
	k.Traps = true
	return k
}

func (k Kind) String() string {
	s := k.Opcode.String()
	if k.Chill {
		s += "<Chill>"
	}
	if k.Traps {
		s += "<Traps>"
	}
	return s
}
