package symbol

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// Symbol is one interned member of a Set. Symbols are created exactly once,
// while their set is constructed, and live for the life of the process;
// equality between symbols of the same set is pointer equality.
//
// A Symbol returned by TryResolve for a raw value the set does not know is
// "unowned": its name is empty, Known reports false, and membership tests
// against any set fail. It still carries the raw value so decoding code can
// round-trip payload fields it does not recognize.
type Symbol[V comparable] struct {
	name  string
	value V
	set   *Set[V]
}

// Name returns the canonical name the symbol was first declared under.
// Aliases share the symbol of their canonical name, so looking up an alias
// still reports the canonical name here. Unowned symbols have no name.
func (s *Symbol[V]) Name() string { return s.name }

// Value returns the raw wire value the symbol encodes to and decoded from.
func (s *Symbol[V]) Value() V { return s.value }

// Known reports whether the symbol is an interned member of a set. It is
// false for nil and for the unowned pass-through symbols TryResolve builds
// around unrecognized raw values.
func (s *Symbol[V]) Known() bool { return s != nil && s.set != nil }

// String renders the symbol according to its set's render mode. Unowned
// symbols render their raw value.
func (s *Symbol[V]) String() string {
	if s == nil {
		return "<nil>"
	}
	if s.set == nil {
		return fmt.Sprintf("%v", s.value)
	}
	switch s.set.render {
	case RenderValue:
		return fmt.Sprintf("%v", s.value)
	case RenderName:
		return s.name
	default:
		return s.set.name + "." + s.name
	}
}

// GoString renders the symbol for %#v debugging output.
func (s *Symbol[V]) GoString() string {
	if s == nil {
		return "<nil>"
	}
	if s.set == nil {
		return fmt.Sprintf("<unknown: %#v>", s.value)
	}
	return fmt.Sprintf("<%s.%s: %#v>", s.set.name, s.name, s.value)
}

// MarshalJSON encodes the symbol as its raw value. This is the
// re-serialization contract toward the HTTP layer: a decoded symbol written
// back into an outgoing payload produces exactly the wire value it decoded
// from, whether or not the symbol is a known member.
func (s *Symbol[V]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.value)
}
