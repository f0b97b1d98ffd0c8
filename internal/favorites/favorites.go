// Package favorites tracks the tool ids a user has starred in the current
// session. Sets are values: Toggle returns a new set and never touches the
// receiver.
package favorites

import (
	"maps"
	"slices"
)

// Set is an immutable set of tool ids. The zero value is empty.
type Set struct {
	ids map[int]struct{}
}

// New returns a set holding ids.
func New(ids ...int) Set {
	m := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		m[id] = struct{}{}
	}
	return Set{ids: m}
}

// Toggle is the functional form of s.Toggle(id).
func Toggle(s Set, id int) Set { return s.Toggle(id) }

// Toggle returns a copy of s with id removed if present, added otherwise.
// Ids are not checked against the catalog.
func (s Set) Toggle(id int) Set {
	next := make(map[int]struct{}, len(s.ids)+1)
	maps.Copy(next, s.ids)
	if _, ok := next[id]; ok {
		delete(next, id)
	} else {
		next[id] = struct{}{}
	}
	return Set{ids: next}
}

// Contains reports whether id is in the set.
func (s Set) Contains(id int) bool {
	_, ok := s.ids[id]
	return ok
}

// Len returns the number of ids.
func (s Set) Len() int { return len(s.ids) }

// IDs returns the ids in ascending order.
func (s Set) IDs() []int {
	return slices.Sorted(maps.Keys(s.ids))
}

// Equal reports whether s and o hold the same ids.
func (s Set) Equal(o Set) bool {
	if len(s.ids) != len(o.ids) {
		return false
	}
	for id := range s.ids {
		if !o.Contains(id) {
			return false
		}
	}
	return true
}
