package mapping

import "fmt"

// Kind is the rule category
type Kind int

const (
	KindDirect Kind = iota
	KindComposite
	KindGlob
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindDirect:
		return "direct"
	case KindComposite:
		return "composite"
	case KindGlob:
		return "glob"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// MarshalText implements encoding.TextMarshaler
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}
