package symbol

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/fogfish/opts"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

var (
	// ErrInvalidValue is wrapped by Resolve when a raw value has no member.
	ErrInvalidValue = errors.New("not a valid member value")
	// ErrUnknownName is wrapped by Lookup when a name has no member.
	ErrUnknownName = errors.New("unknown member name")
	// ErrImmutable is returned by every mutation attempt on a finished set.
	ErrImmutable = errors.New("symbol sets are immutable")
)

// reservedPrefix marks entry names used for internal bookkeeping; entries
// carrying it are skipped during construction and never become members.
const reservedPrefix = "_"

// Entry declares one (name, raw value) pair of a set.
type Entry[V comparable] struct {
	Name  string
	Value V
}

// E is shorthand for building an Entry in a set declaration literal.
func E[V comparable](name string, value V) Entry[V] {
	return Entry[V]{Name: name, Value: value}
}

// Render selects how symbols of a set print via String.
type Render uint8

const (
	// RenderQualified prints "SetName.member" (the default).
	RenderQualified Render = iota
	// RenderName prints the bare canonical member name.
	RenderName
	// RenderValue prints the raw value; string-valued sets such as
	// timestamp styles use this so String output is wire-ready.
	RenderValue
)

// Set is a frozen symbol set. All backing structures are built once inside
// New and never mutated afterward, so every method is safe for unbounded
// concurrent readers.
type Set[V comparable] struct {
	name    string
	byValue map[V]*Symbol[V]
	byName  *orderedmap.OrderedMap[string, *Symbol[V]]
	members []*Symbol[V]
	render  Render
}

// WithRender configures the String render mode of the set under
// construction.
func WithRender[V comparable](r Render) opts.Option[Set[V]] {
	return opts.Type[Set[V]](func(s *Set[V]) error {
		s.render = r
		return nil
	})
}

// New builds a frozen set from entries, in declaration order, and registers
// it in the process-global set registry.
//
// The first declaration of a raw value creates the member and fixes its
// canonical name; later entries with the same raw value become aliases that
// resolve to the same *Symbol and do not count as members. Entries whose
// name starts with "_" are reserved bookkeeping and skipped.
//
// Malformed declarations (empty set name, empty or duplicate entry names,
// reused set name) panic: sets are package-level variables and must be
// correct before anything else loads.
func New[V comparable](name string, entries []Entry[V], options ...opts.Option[Set[V]]) *Set[V] {
	if name == "" {
		panic("symbol: set name must not be empty")
	}

	s := &Set[V]{
		name:    name,
		byValue: make(map[V]*Symbol[V], len(entries)),
		byName:  orderedmap.New[string, *Symbol[V]](orderedmap.WithCapacity[string, *Symbol[V]](len(entries))),
	}
	if err := opts.Apply(s, options); err != nil {
		panic(fmt.Sprintf("symbol: invalid options for set %q: %v", name, err))
	}

	for _, e := range entries {
		if e.Name == "" {
			panic(fmt.Sprintf("symbol: set %q declares a member with an empty name", name))
		}
		if strings.HasPrefix(e.Name, reservedPrefix) {
			continue
		}
		if _, dup := s.byName.Get(e.Name); dup {
			panic(fmt.Sprintf("symbol: set %q declares member %q twice", name, e.Name))
		}

		sym, seen := s.byValue[e.Value]
		if !seen {
			sym = &Symbol[V]{name: e.Name, value: e.Value, set: s}
			s.byValue[e.Value] = sym
			s.members = append(s.members, sym)
		}
		s.byName.Set(e.Name, sym)
	}

	register(s)
	return s
}

// Name returns the set's name.
func (s *Set[V]) Name() string { return s.name }

// Len returns the number of distinct members. Aliases do not count.
func (s *Set[V]) Len() int { return len(s.members) }

// Resolve returns the canonical symbol for a raw wire value, or an error
// wrapping ErrInvalidValue when the set has no member with that value.
func (s *Set[V]) Resolve(v V) (*Symbol[V], error) {
	if sym, ok := s.byValue[v]; ok {
		return sym, nil
	}
	return nil, fmt.Errorf("%v is not a valid %s: %w", v, s.name, ErrInvalidValue)
}

// TryResolve returns the canonical symbol for a raw wire value. When the set
// has no member with that value it returns an unowned symbol carrying the
// value unchanged instead of failing; this is the universal decode path for
// payload fields, tolerating raw values the server introduced after this
// client was built.
func (s *Set[V]) TryResolve(v V) *Symbol[V] {
	if sym, ok := s.byValue[v]; ok {
		return sym
	}
	return &Symbol[V]{value: v}
}

// Lookup returns the symbol declared under name, which may be an alias, or
// an error wrapping ErrUnknownName.
func (s *Set[V]) Lookup(name string) (*Symbol[V], error) {
	if sym, ok := s.byName.Get(name); ok {
		return sym, nil
	}
	return nil, fmt.Errorf("%s has no member named %q: %w", s.name, name, ErrUnknownName)
}

// Contains reports whether sym is a member of exactly this set. It compares
// the back-reference stamped onto the symbol at construction, so symbols of
// other sets, unowned symbols, and nil all report false.
func (s *Set[V]) Contains(sym *Symbol[V]) bool {
	return sym != nil && sym.set == s
}

// Members yields the distinct members in first-declaration order. Each call
// produces a fresh, restartable sequence.
func (s *Set[V]) Members() iter.Seq[*Symbol[V]] {
	return func(yield func(*Symbol[V]) bool) {
		for _, m := range s.members {
			if !yield(m) {
				return
			}
		}
	}
}

// Reversed yields the distinct members in reverse declaration order.
func (s *Set[V]) Reversed() iter.Seq[*Symbol[V]] {
	return func(yield func(*Symbol[V]) bool) {
		for i := len(s.members) - 1; i >= 0; i-- {
			if !yield(s.members[i]) {
				return
			}
		}
	}
}

// Names yields every declared name, aliases included, with the symbol it
// resolves to, in declaration order.
func (s *Set[V]) Names() iter.Seq2[string, *Symbol[V]] {
	return func(yield func(string, *Symbol[V]) bool) {
		for pair := s.byName.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}
}

// Define rejects the addition of a member to a finished set.
func (s *Set[V]) Define(name string, v V) error {
	return fmt.Errorf("%s: cannot define %q: %w", s.name, name, ErrImmutable)
}

// Remove rejects the removal of a member from a finished set.
func (s *Set[V]) Remove(name string) error {
	return fmt.Errorf("%s: cannot remove %q: %w", s.name, name, ErrImmutable)
}

// String identifies the set in log output.
func (s *Set[V]) String() string {
	return fmt.Sprintf("<symbol set %s (%d members)>", s.name, len(s.members))
}

// Describe returns the erased member listing used by the registry and
// presentation tooling.
func (s *Set[V]) Describe() []MemberInfo {
	infos := make([]MemberInfo, 0, len(s.members))
	for _, m := range s.members {
		info := MemberInfo{
			Name:  m.name,
			Value: fmt.Sprintf("%v", m.value),
		}
		for pair := s.byName.Oldest(); pair != nil; pair = pair.Next() {
			if pair.Value == m && pair.Key != m.name {
				info.Aliases = append(info.Aliases, pair.Key)
			}
		}
		infos = append(infos, info)
	}
	return infos
}
