// Package rating keeps the per-criterion ratings of the running session.
// Ratings live in two disjoint namespaces and a criterion is either rated
// with a value in 1..5 or absent; zero is never stored.
package rating

import "fmt"

// Namespace is one of the two independent rating scopes.
type Namespace string

// The two rating namespaces of an evaluation session.
const (
	General    Namespace = "general"
	Department Namespace = "department"
)

// ParseNamespace validates a namespace string from an external caller.
func ParseNamespace(s string) (Namespace, error) {
	switch Namespace(s) {
	case General, Department:
		return Namespace(s), nil
	default:
		return "", fmt.Errorf("unknown rating namespace: %q", s)
	}
}

// Rating bounds.
const (
	MinValue = 1
	MaxValue = 5
)

// Store holds the session's ratings. It is not safe for concurrent use;
// the owning session serializes access.
type Store struct {
	entries map[Namespace]map[string]int
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		entries: map[Namespace]map[string]int{
			General:    {},
			Department: {},
		},
	}
}

// Set records or overwrites a rating. Out-of-range values are rejected
// with ErrInvalidRating and leave the store untouched.
func (s *Store) Set(ns Namespace, criterionID string, value int) error {
	if value < MinValue || value > MaxValue {
		return fmt.Errorf("%w: %d for criterion %q", ErrInvalidRating, value, criterionID)
	}
	m, ok := s.entries[ns]
	if !ok {
		return fmt.Errorf("%w: namespace %q", ErrInvalidRating, ns)
	}
	m[criterionID] = value
	return nil
}

// Get returns the rating for a criterion; the second result is false when
// the criterion has not been rated.
func (s *Store) Get(ns Namespace, criterionID string) (int, bool) {
	v, ok := s.entries[ns][criterionID]
	return v, ok
}

// Rated returns the ids of all rated criteria in a namespace.
func (s *Store) Rated(ns Namespace) []string {
	m := s.entries[ns]
	out := make([]string, 0, len(m))
	for id := range m {
		out = append(out, id)
	}
	return out
}

// Count returns how many criteria are rated in a namespace.
func (s *Store) Count(ns Namespace) int {
	return len(s.entries[ns])
}

// Reset drops every entry in a namespace.
func (s *Store) Reset(ns Namespace) {
	s.entries[ns] = map[string]int{}
}

// ResetAll drops every entry in both namespaces.
func (s *Store) ResetAll() {
	s.Reset(General)
	s.Reset(Department)
}
