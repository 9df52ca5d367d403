package air

// Kind is an opcode plus effect qualifiers. Effects marks an
// instruction whose side effects must survive even if its results are
// unused.
type Kind struct {
	Opcode  Opcode
	Effects bool
}

// KindFor wraps a bare opcode with no qualifiers.
func KindFor(op Opcode) Kind {
	return Kind{Opcode: op}
}

func (k Kind) String() string {
	s := k.Opcode.String()
	if k.Effects {
		s += "<Effects>"
	}
	return s
}
