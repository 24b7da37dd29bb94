// Package symbol implements the closed symbol-set engine that every typed
// constant in this library is built on. A symbol set is a named, frozen
// collection of (name, raw value) pairs declared once at process start;
// resolving a raw wire value through a set yields an interned *Symbol that
// carries its canonical name, its raw value, and a back-reference to the set
// that owns it.
//
// Design decisions:
//   - Explicit declaration: sets are built from an ordered []Entry literal
//     rather than discovered by reflection, so declaration order is visible
//     in the source and stable across builds
//   - Aliasing: several names may share one raw value; the first-declared
//     name wins as canonical and later names resolve to the same *Symbol
//     pointer, so alias identity is pointer identity
//   - Forward compatibility: TryResolve never fails; a raw value the set
//     does not know decodes to an unowned Symbol that still exposes the raw
//     value, so payloads from a newer server version survive decoding
//   - Immutability: construction is the only write; Define and Remove exist
//     solely to report ErrImmutable, and every read path is safe for
//     unbounded concurrent use without locks
//   - Membership by back-reference: Contains compares the symbol's owning
//     set pointer, not its structure, so symbols from two sets that happen
//     to share a raw value never satisfy each other's membership test
//
// Key concepts:
//   - Set: the frozen symbol set ("enumeration type")
//   - Symbol: one interned member, or an unowned carrier for an
//     unrecognized raw value
//   - Entry: a single (name, raw value) declaration
//   - Collection: the erased view of a Set kept in the process-global
//     registry for presentation and diagnostics
//
// Example usage:
//
//	var Suit = symbol.New("Suit", []symbol.Entry[int]{
//	    symbol.E("clubs", 0),
//	    symbol.E("diamonds", 1),
//	    symbol.E("hearts", 2),
//	    symbol.E("spades", 3),
//	})
//
//	s, err := Suit.Resolve(2)        // the hearts symbol
//	s = Suit.TryResolve(9)           // unowned, s.Known() == false, s.Value() == 9
//	s, err = Suit.Lookup("spades")   // by name, aliases included
//
// Resolution errors wrap the package sentinels ErrInvalidValue and
// ErrUnknownName so callers can branch with errors.Is.
package symbol
