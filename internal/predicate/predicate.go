// Package predicate holds the candidate filters shared by search and
// reporting. Every filter takes a candidate snapshot and returns the set of
// matching candidate identifiers.
package predicate

import (
	"fmt"
	"strings"

	"go-recruitment-ops/internal/domain"
)

// IDSet is a set of candidate identifiers
type IDSet map[string]struct{}

// Has reports whether id is in the set
func (s IDSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// All returns every identifier of the snapshot
func All(snapshot []domain.Candidate) IDSet {
	ids := make(IDSet, len(snapshot))
	for _, c := range snapshot {
		ids[c.ID] = struct{}{}
	}
	return ids
}

// ByGender matches the gender field exactly. "All" matches every candidate.
func ByGender(snapshot []domain.Candidate, gender string) (IDSet, error) {
	switch gender {
	case domain.GenderAll:
		return All(snapshot), nil
	case domain.GenderMale, domain.GenderFemale:
	default:
		return nil, fmt.Errorf("%w: gender must be one of M, F, All, got %q", domain.ErrInvalidArgument, gender)
	}

	ids := make(IDSet)
	for _, c := range snapshot {
		if c.Gender == gender {
			ids[c.ID] = struct{}{}
		}
	}
	return ids, nil
}

// ByAgeRange keeps candidates whose age (currentYear - birth year) is
// strictly below youngerThan and strictly above olderThan. A nil bound is
// unbounded on that side.
func ByAgeRange(snapshot []domain.Candidate, youngerThan, olderThan *int, currentYear int) IDSet {
	ids := make(IDSet)
	for _, c := range snapshot {
		age := currentYear - c.BirthYear
		if youngerThan != nil && !(age < *youngerThan) {
			continue
		}
		if olderThan != nil && !(age > *olderThan) {
			continue
		}
		ids[c.ID] = struct{}{}
	}
	return ids
}

// ByFieldContains compares a field case-insensitively. With exactMatch the
// whole field must equal the criterion, otherwise the criterion must be a
// substring of the field. An empty criterion matches everything when
// exactMatch is false.
func ByFieldContains(snapshot []domain.Candidate, field domain.CandidateField, criterion string, exactMatch bool) IDSet {
	want := strings.ToLower(criterion)
	ids := make(IDSet)
	for _, c := range snapshot {
		value := strings.ToLower(c.Field(field))
		var ok bool
		if exactMatch {
			ok = value == want
		} else {
			ok = strings.Contains(value, want)
		}
		if ok {
			ids[c.ID] = struct{}{}
		}
	}
	return ids
}

// Intersect returns the identifiers present in every set. No sets yields an
// empty set.
func Intersect(sets ...IDSet) IDSet {
	if len(sets) == 0 {
		return IDSet{}
	}
	smallest := 0
	for i, s := range sets {
		if len(s) < len(sets[smallest]) {
			smallest = i
		}
	}

	out := make(IDSet, len(sets[smallest]))
	for id := range sets[smallest] {
		inAll := true
		for i, s := range sets {
			if i == smallest {
				continue
			}
			if !s.Has(id) {
				inAll = false
				break
			}
		}
		if inAll {
			out[id] = struct{}{}
		}
	}
	return out
}

// ByTag keeps candidates whose field, split on sep, contains tag exactly
func ByTag(snapshot []domain.Candidate, field domain.CandidateField, tag, sep string) IDSet {
	ids := make(IDSet)
	for _, c := range snapshot {
		value := c.Field(field)
		if value == "" {
			continue
		}
		for _, t := range strings.Split(value, sep) {
			if t == tag {
				ids[c.ID] = struct{}{}
				break
			}
		}
	}
	return ids
}
