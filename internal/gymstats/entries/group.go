package entries

import (
	"sort"
	"strings"
)

// MovementGroup is the history of a single movement.
// Entries are ordered by (date, createdAt) ascending.
type MovementGroup struct {
	Name    string  `json:"name"`
	Entries []Entry `json:"entries"`
}

type groupOptions struct {
	foldCase bool
}

type GroupOption func(*groupOptions)

// WithCaseInsensitiveNames groups "Squat" and "squat" together.
// The group takes the casing of the first entry seen in input order.
func WithCaseInsensitiveNames() GroupOption {
	return func(o *groupOptions) {
		o.foldCase = true
	}
}

// NameKey is the key a movement name is grouped under with the given options.
func NameKey(name string, opts ...GroupOption) string {
	var o groupOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.foldCase {
		return strings.ToLower(name)
	}
	return name
}

// GroupByName partitions entries by movement name, tracked or not.
// Groups are ordered alphabetically ignoring case; the input is not modified.
func GroupByName(entries []Entry, opts ...GroupOption) []MovementGroup {
	key2group := make(map[string]*MovementGroup)
	var keys []string
	for _, e := range entries {
		key := NameKey(e.Name, opts...)
		g, ok := key2group[key]
		if !ok {
			g = &MovementGroup{Name: e.Name}
			key2group[key] = g
			keys = append(keys, key)
		}
		g.Entries = append(g.Entries, e)
	}

	groups := make([]MovementGroup, 0, len(keys))
	for _, key := range keys {
		g := key2group[key]
		sort.SliceStable(g.Entries, func(i, j int) bool {
			return Before(g.Entries[i], g.Entries[j])
		})
		groups = append(groups, *g)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		li, lj := strings.ToLower(groups[i].Name), strings.ToLower(groups[j].Name)
		if li != lj {
			return li < lj
		}
		return groups[i].Name < groups[j].Name
	})

	return groups
}

// Tracked returns only the tracked entries of the group.
func (g MovementGroup) Tracked() []Entry {
	var tracked []Entry
	for _, e := range g.Entries {
		if e.Tracked {
			tracked = append(tracked, e)
		}
	}
	return tracked
}
