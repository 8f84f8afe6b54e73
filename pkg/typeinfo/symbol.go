package typeinfo

// Symbol is a unique identity value. Two symbols are equal only when one was
// copied from the other, whatever their descriptions.
type Symbol struct {
	s *symbol
}

type symbol struct {
	description string
}

func NewSymbol(description string) Symbol {
	return Symbol{s: &symbol{description: description}}
}

func (s Symbol) Description() string {
	if s.s == nil {
		return ""
	}
	return s.s.description
}

func (s Symbol) String() string {
	return "Symbol(" + s.Description() + ")"
}
