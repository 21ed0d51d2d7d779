package domain_test

import (
	"errors"
	"testing"

	"go-recruitment-ops/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchConditionsVector(t *testing.T) {
	t.Run("Should round-trip a full vector", func(t *testing.T) {
		v := []string{"F", "40", "25", "Oslo", "Law", "FIN", "Excel", "B", "English", "Clerk", "3", "False"}
		conditions, err := domain.SearchConditionsFromVector(v)
		require.NoError(t, err)
		assert.Equal(t, "Oslo", conditions.City)
		assert.Equal(t, "False", conditions.Blacklisted)
		assert.Equal(t, v, conditions.Vector())
	})

	t.Run("Should pad a short vector with empty slots", func(t *testing.T) {
		conditions, err := domain.SearchConditionsFromVector([]string{"M", "30"})
		require.NoError(t, err)
		got := conditions.Vector()
		require.Len(t, got, domain.SearchConditionCount)
		assert.Equal(t, []string{"M", "30", "", "", "", "", "", "", "", "", "", ""}, got)
	})

	t.Run("Should reject an oversized vector", func(t *testing.T) {
		_, err := domain.SearchConditionsFromVector(make([]string, domain.SearchConditionCount+1))
		assert.True(t, errors.Is(err, domain.ErrInvalidArgument))
	})
}
