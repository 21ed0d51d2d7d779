package usecase_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"net/http"
	"testing"

	"go-recruitment-ops/internal/domain"
	"go-recruitment-ops/internal/repository/memory"
	"go-recruitment-ops/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func searchFixture(t *testing.T) domain.SearchUsecase {
	t.Helper()
	r := newRepos(memory.NewStore(nil))
	seedCandidates(t, r,
		domain.Candidate{ID: "0001", Name: "Ana", Gender: "F", BirthYear: 1990, City: "Oslo", Major: "Economics",
			WorkExperience: "MNG-E:FIN", Languages: "English, Norwegian", TalentScore: "7"},
		domain.Candidate{ID: "0002", Name: "Bo", Gender: "M", BirthYear: 1985, City: "Oslo", Major: "Law",
			WorkExperience: "FIN", Languages: "English"},
		domain.Candidate{ID: "0003", Name: "Cy", Gender: "M", BirthYear: 2000, City: "Bergen", Major: "Applied Economics",
			Licences: "B", Blacklisted: domain.FlagTrue},
	)
	return usecase.NewSearchUsecase(r.candidates, fixedClock)
}

func search(t *testing.T, uc domain.SearchUsecase, vector ...string) []domain.SearchResult {
	t.Helper()
	conditions, err := domain.SearchConditionsFromVector(vector)
	require.NoError(t, err)
	results, err := uc.Search(context.Background(), conditions)
	require.NoError(t, err)
	return results
}

func TestSearch(t *testing.T) {
	uc := searchFixture(t)

	t.Run("Should find Ana by gender", func(t *testing.T) {
		results := search(t, uc, "F", "", "", "", "", "", "", "", "", "", "")
		assert.Equal(t, []domain.SearchResult{{"0001", "Ana"}}, results)
	})

	t.Run("Should return every candidate in snapshot order without conditions", func(t *testing.T) {
		results := search(t, uc)
		assert.Equal(t, []domain.SearchResult{{"0001", "Ana"}, {"0002", "Bo"}, {"0003", "Cy"}}, results)

		all := search(t, uc, "All", "", "", "", "", "", "", "", "", "", "", "")
		assert.Equal(t, results, all)
	})

	t.Run("Should AND every condition", func(t *testing.T) {
		results := search(t, uc, "M", "", "", "oslo", "", "fin")
		assert.Equal(t, []domain.SearchResult{{"0002", "Bo"}}, results)

		assert.Empty(t, search(t, uc, "F", "", "", "Bergen"))
	})

	t.Run("Should apply strict age bounds", func(t *testing.T) {
		// ages in 2025: Ana 35, Bo 40, Cy 25
		assert.Equal(t, []domain.SearchResult{{"0003", "Cy"}}, search(t, uc, "", "35"))
		assert.Equal(t, []domain.SearchResult{{"0002", "Bo"}}, search(t, uc, "", "", "35"))
		assert.Empty(t, search(t, uc, "", "40", "35"))
	})

	t.Run("Should match blacklisted and talent score as substrings", func(t *testing.T) {
		blacklisted := make([]string, domain.SearchConditionCount)
		blacklisted[11] = "true"
		assert.Equal(t, []domain.SearchResult{{"0003", "Cy"}}, search(t, uc, blacklisted...))

		scored := make([]string, domain.SearchConditionCount)
		scored[10] = "7"
		assert.Equal(t, []domain.SearchResult{{"0001", "Ana"}}, search(t, uc, scored...))
	})

	t.Run("Should only narrow when a condition is added", func(t *testing.T) {
		all := search(t, uc)
		inAll := make(map[string]bool)
		for _, r := range all {
			inAll[r[0]] = true
		}

		criteria := []string{"F", "36", "30", "oslo", "econ", "FIN", "", "B", "english", "", "7", "False"}
		for slot, criterion := range criteria {
			vector := make([]string, domain.SearchConditionCount)
			vector[slot] = criterion
			narrowed := search(t, uc, vector...)
			assert.LessOrEqual(t, len(narrowed), len(all), "slot %d", slot)
			for _, r := range narrowed {
				assert.True(t, inAll[r[0]], "slot %d added %s", slot, r[0])
			}
		}
	})

	t.Run("Should reject an unknown gender", func(t *testing.T) {
		_, err := uc.Search(context.Background(), domain.SearchConditions{Gender: "X"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrInvalidArgument))
		assert.Equal(t, http.StatusBadRequest, appCode(t, err))
	})

	t.Run("Should reject a non-numeric age bound", func(t *testing.T) {
		_, err := uc.Search(context.Background(), domain.SearchConditions{YoungerThan: "thirty"})
		assert.True(t, errors.Is(err, domain.ErrInvalidArgument))
	})

	t.Run("Should reject an oversized vector", func(t *testing.T) {
		_, err := domain.SearchConditionsFromVector(make([]string, domain.SearchConditionCount+1))
		assert.True(t, errors.Is(err, domain.ErrInvalidArgument))
	})
}

func TestSearchExport(t *testing.T) {
	uc := searchFixture(t)
	ctx := context.Background()

	t.Run("Should export matches as CSV", func(t *testing.T) {
		data, filename, err := uc.Export(ctx, domain.SearchExportRequest{
			Conditions: domain.SearchConditions{City: "oslo"},
			Format:     "csv",
		})
		require.NoError(t, err)
		assert.Equal(t, "candidate_search_20250601_120000.csv", filename)

		lines, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
		require.NoError(t, err)
		require.Len(t, lines, 3)
		assert.Equal(t, "candidate_id", lines[0][0])
		assert.Equal(t, "name_surname", lines[0][1])
		assert.Equal(t, []string{"0001", "Ana"}, lines[1][:2])
		assert.Equal(t, []string{"0002", "Bo"}, lines[2][:2])
	})

	t.Run("Should export matches as XLSX", func(t *testing.T) {
		data, filename, err := uc.Export(ctx, domain.SearchExportRequest{
			Conditions: domain.SearchConditions{Gender: "F"},
		})
		require.NoError(t, err)
		assert.Equal(t, "candidate_search_20250601_120000.xlsx", filename)

		f, err := excelize.OpenReader(bytes.NewReader(data))
		require.NoError(t, err)
		defer f.Close()
		name, err := f.GetCellValue("Candidates", "B2")
		require.NoError(t, err)
		assert.Equal(t, "Ana", name)
		header, err := f.GetCellValue("Candidates", "A1")
		require.NoError(t, err)
		assert.Equal(t, "CANDIDATE ID", header)
	})

	t.Run("Should reject an unknown format", func(t *testing.T) {
		_, _, err := uc.Export(ctx, domain.SearchExportRequest{Format: "pdf"})
		assert.True(t, errors.Is(err, domain.ErrInvalidArgument))
	})
}
