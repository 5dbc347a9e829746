package finance

import "github.com/mamadbah2/agrobooks/internal/domain/models"

// OccupationSet is the ordered, growable set of breakdown dimensions for one
// aggregation run: the user's declared sub-occupations plus every occupation
// seen on a record plus the uncategorized sentinel. One instance is shared by
// both aggregators so occupations discovered mid-run still get zero-seeded
// entries on every day of the generated series.
type OccupationSet struct {
	order []string
	seen  map[string]struct{}
}

// NewOccupationSet builds a set from the declared occupations. The
// uncategorized sentinel is always a member.
func NewOccupationSet(declared ...string) *OccupationSet {
	s := &OccupationSet{seen: make(map[string]struct{}, len(declared)+1)}
	for _, name := range declared {
		s.Add(name)
	}
	s.Add(models.OccupationUncategorized)
	return s
}

// Add registers an occupation, keeping first-seen order. Empty names are
// ignored; records without an occupation resolve to the sentinel before they
// reach the set.
func (s *OccupationSet) Add(name string) {
	if name == "" {
		return
	}
	if _, ok := s.seen[name]; ok {
		return
	}
	s.seen[name] = struct{}{}
	s.order = append(s.order, name)
}

// Contains reports membership.
func (s *OccupationSet) Contains(name string) bool {
	_, ok := s.seen[name]
	return ok
}

// Names returns the occupations in registration order. The returned slice is a
// copy; mutating it does not affect the set.
func (s *OccupationSet) Names() []string {
	names := make([]string, len(s.order))
	copy(names, s.order)
	return names
}

// Len reports the number of occupations in the set.
func (s *OccupationSet) Len() int {
	return len(s.order)
}
