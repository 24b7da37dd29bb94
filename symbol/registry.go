package symbol

import (
	"fmt"
	"sort"

	"github.com/strigidae/perch/internal/registry"
)

// MemberInfo is the erased description of one set member, used when a set's
// value type parameter is not known to the caller.
type MemberInfo struct {
	Name    string
	Value   string
	Aliases []string
}

// Collection is the type-erased view of a Set. Every Set implements it
// regardless of its value type parameter, which is what lets the global
// registry hold int-valued and string-valued sets side by side.
type Collection interface {
	Name() string
	Len() int
	Describe() []MemberInfo
}

var global = registry.New[Collection]()

// register adds a finished set to the process-global registry. Set names
// are unique per process; a collision is a declaration bug and aborts
// startup.
func register(c Collection) {
	if _, exists := global.Get(c.Name()); exists {
		panic(fmt.Sprintf("symbol: a set named %q is already registered", c.Name()))
	}
	global.Add(c.Name(), c)
}

// SetByName returns the registered set with the given name, if any.
func SetByName(name string) (Collection, bool) {
	return global.Get(name)
}

// Sets returns every registered set, sorted by name. Registration order is
// load order, which is not meaningful to callers, so the listing is sorted
// for stable presentation.
func Sets() []Collection {
	out := make([]Collection, 0, global.Len())
	global.ForEach(func(_ string, c Collection) bool {
		out = append(out, c)
		return true
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}
