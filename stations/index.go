// Package stations maps station names to dense integer vertex ids and back.
//
// Ids are assigned deterministically: NewIndex sorts all distinct names
// lexicographically and numbers them 0..n-1 in that order, so two runs over
// the same input always agree on every id. Names interned after construction
// get the next free id in first-seen order.
package stations

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// ErrUnknownStation indicates a lookup for a name or id that was never interned.
var ErrUnknownStation = errors.New("stations: unknown station")

// Index is a bidirectional name <-> id mapping.
//
// The zero value is not usable; construct with NewIndex.
// All methods are safe for concurrent use.
type Index struct {
	mu    sync.RWMutex
	ids   map[string]int
	names []string
}

// NewIndex builds an Index from names. Names are normalized, empty names are
// dropped, duplicates collapse, and ids follow lexicographic order.
// Complexity: O(N log N).
func NewIndex(names []string) *Index {
	seen := make(map[string]struct{}, len(names))
	uniq := make([]string, 0, len(names))
	for _, raw := range names {
		n := Normalize(raw)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		uniq = append(uniq, n)
	}
	sort.Strings(uniq)

	idx := &Index{
		ids:   make(map[string]int, len(uniq)),
		names: uniq,
	}
	for i, n := range uniq {
		idx.ids[n] = i
	}

	return idx
}

// Intern returns the id of name, assigning the next dense id if the name is new.
// Empty names (after normalization) are rejected with ErrUnknownStation.
// Complexity: O(1) amortized.
func (x *Index) Intern(name string) (int, error) {
	n := Normalize(name)
	if n == "" {
		return 0, fmt.Errorf("%w: empty name", ErrUnknownStation)
	}

	x.mu.Lock()
	defer x.mu.Unlock()

	if id, ok := x.ids[n]; ok {
		return id, nil
	}
	id := len(x.names)
	x.ids[n] = id
	x.names = append(x.names, n)

	return id, nil
}

// ID returns the id of a previously interned name.
// Complexity: O(1).
func (x *Index) ID(name string) (int, error) {
	n := Normalize(name)

	x.mu.RLock()
	defer x.mu.RUnlock()

	id, ok := x.ids[n]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownStation, name)
	}

	return id, nil
}

// NameOf returns the name assigned to id.
// Complexity: O(1).
func (x *Index) NameOf(id int) (string, error) {
	x.mu.RLock()
	defer x.mu.RUnlock()

	if id < 0 || id >= len(x.names) {
		return "", fmt.Errorf("%w: id %d", ErrUnknownStation, id)
	}

	return x.names[id], nil
}

// Has reports whether name was interned.
func (x *Index) Has(name string) bool {
	_, err := x.ID(name)

	return err == nil
}

// Len returns the number of interned stations.
func (x *Index) Len() int {
	x.mu.RLock()
	defer x.mu.RUnlock()

	return len(x.names)
}

// Names returns a copy of all names ordered by id.
func (x *Index) Names() []string {
	x.mu.RLock()
	defer x.mu.RUnlock()

	out := make([]string, len(x.names))
	copy(out, x.names)

	return out
}

// Normalize trims surrounding whitespace and collapses internal whitespace
// runs to a single space, so "  King's  Cross " and "King's Cross" are the
// same station.
func Normalize(name string) string {
	return strings.Join(strings.Fields(name), " ")
}
