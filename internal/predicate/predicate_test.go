package predicate_test

import (
	"errors"
	"testing"

	"go-recruitment-ops/internal/domain"
	"go-recruitment-ops/internal/predicate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshot() []domain.Candidate {
	return []domain.Candidate{
		{ID: "0001", Name: "Ana", Gender: "F", BirthYear: 1990, City: "Oslo", Major: "Economics"},
		{ID: "0002", Name: "Bo", Gender: "M", BirthYear: 1985, City: "Oslo", Major: "Law"},
		{ID: "0003", Name: "Cy", Gender: "M", BirthYear: 2000, City: "Bergen", Major: "Applied Economics"},
		{ID: "0004", Name: "Di", Gender: "F", BirthYear: 1996, City: "oslo", Major: ""},
	}
}

func ids(s predicate.IDSet) []string {
	out := make([]string, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	return out
}

func intPtr(v int) *int { return &v }

func TestByGender(t *testing.T) {
	snap := snapshot()

	t.Run("Should return exactly the matching subset", func(t *testing.T) {
		f, err := predicate.ByGender(snap, "F")
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"0001", "0004"}, ids(f))

		m, err := predicate.ByGender(snap, "M")
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"0002", "0003"}, ids(m))
	})

	t.Run("Should return everyone for All", func(t *testing.T) {
		all, err := predicate.ByGender(snap, "All")
		require.NoError(t, err)
		assert.Len(t, all, len(snap))
	})

	t.Run("Should reject anything else", func(t *testing.T) {
		for _, g := range []string{"", "m", "X", "all"} {
			_, err := predicate.ByGender(snap, g)
			assert.True(t, errors.Is(err, domain.ErrInvalidArgument), "gender %q", g)
		}
	})
}

func TestByAgeRange(t *testing.T) {
	snap := snapshot()
	const year = 2025 // ages: 35, 40, 25, 29

	t.Run("Should return everyone without bounds", func(t *testing.T) {
		assert.Len(t, predicate.ByAgeRange(snap, nil, nil, year), len(snap))
	})

	t.Run("Should treat youngerThan as exclusive upper bound", func(t *testing.T) {
		assert.ElementsMatch(t, []string{"0003", "0004"}, ids(predicate.ByAgeRange(snap, intPtr(30), nil, year)))
		assert.ElementsMatch(t, []string{"0003"}, ids(predicate.ByAgeRange(snap, intPtr(29), nil, year)))
	})

	t.Run("Should treat olderThan as exclusive lower bound", func(t *testing.T) {
		assert.ElementsMatch(t, []string{"0002"}, ids(predicate.ByAgeRange(snap, nil, intPtr(35), year)))
	})

	t.Run("Should exclude both edges when both bounds are given", func(t *testing.T) {
		assert.ElementsMatch(t, []string{"0004"}, ids(predicate.ByAgeRange(snap, intPtr(35), intPtr(25), year)))
	})
}

func TestByFieldContains(t *testing.T) {
	snap := snapshot()

	t.Run("Should match substrings case-insensitively", func(t *testing.T) {
		got := predicate.ByFieldContains(snap, domain.CandidateMajor, "ECONOMICS", false)
		assert.ElementsMatch(t, []string{"0001", "0003"}, ids(got))
	})

	t.Run("Should require full equality in exact mode", func(t *testing.T) {
		got := predicate.ByFieldContains(snap, domain.CandidateMajor, "economics", true)
		assert.ElementsMatch(t, []string{"0001"}, ids(got))

		city := predicate.ByFieldContains(snap, domain.CandidateCity, "OSLO", true)
		assert.ElementsMatch(t, []string{"0001", "0002", "0004"}, ids(city))
	})

	t.Run("Should match everything with an empty criterion", func(t *testing.T) {
		assert.Len(t, predicate.ByFieldContains(snap, domain.CandidateMajor, "", false), len(snap))
	})
}

func TestIntersect(t *testing.T) {
	a := predicate.IDSet{"1": {}, "2": {}, "3": {}}
	b := predicate.IDSet{"2": {}, "3": {}, "4": {}}
	c := predicate.IDSet{"3": {}, "2": {}}

	assert.ElementsMatch(t, []string{"2", "3"}, ids(predicate.Intersect(a, b, c)))
	assert.ElementsMatch(t, ids(predicate.Intersect(c, a, b)), ids(predicate.Intersect(a, b, c)))
	assert.Empty(t, predicate.Intersect())
	assert.Empty(t, predicate.Intersect(a, predicate.IDSet{}))
}

func TestByTag(t *testing.T) {
	snap := []domain.Candidate{
		{ID: "1", WorkExperience: "MNG-E:FIN"},
		{ID: "2", WorkExperience: "FIN"},
		{ID: "3", WorkExperience: "MNG-EX:FINANCE"},
		{ID: "4", WorkExperience: ""},
	}

	assert.ElementsMatch(t, []string{"1", "2"}, ids(predicate.ByTag(snap, domain.CandidateWorkExperience, "FIN", ":")))
	assert.ElementsMatch(t, []string{"1"}, ids(predicate.ByTag(snap, domain.CandidateWorkExperience, "MNG-E", ":")))
	assert.Empty(t, predicate.ByTag(snap, domain.CandidateWorkExperience, "", ":"))
}
