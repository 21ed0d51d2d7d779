package records_test

import (
	"context"
	"errors"
	"testing"

	"go-recruitment-ops/internal/domain"
	"go-recruitment-ops/internal/repository/memory"
	"go-recruitment-ops/internal/repository/records"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func candidateRow(id string, overrides map[domain.CandidateField]any) domain.Row {
	row := make(domain.Row, len(domain.TableColumns[domain.TableCandidates]))
	row[domain.CandidateID] = id
	row[domain.CandidateBlacklisted] = domain.FlagFalse
	for f, v := range overrides {
		row[f] = v
	}
	return row
}

func TestCandidateRepositoryDecode(t *testing.T) {
	ctx := context.Background()

	t.Run("Should decode loosely typed values", func(t *testing.T) {
		store := memory.NewStore(map[string][]domain.Row{
			domain.TableCandidates: {candidateRow("0001", map[domain.CandidateField]any{
				domain.CandidateName:                "Ana",
				domain.CandidateBirthYear:           "1990",
				domain.CandidateKnowledgeTest1Score: "72.5",
				domain.CandidateKnowledgeTest2Score: int64(80),
				domain.CandidateTalentScore:         float64(3),
			})},
		})

		got, err := records.NewCandidateRepository(store).List(ctx)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Ana", got[0].Name)
		assert.Equal(t, 1990, got[0].BirthYear)
		require.NotNil(t, got[0].KnowledgeTest1Score)
		assert.Equal(t, 72.5, *got[0].KnowledgeTest1Score)
		assert.Equal(t, 80.0, *got[0].KnowledgeTest2Score)
		assert.Equal(t, "3", got[0].TalentScore)
		assert.Equal(t, "", got[0].City)
	})

	t.Run("Should reject a row with the wrong arity", func(t *testing.T) {
		store := memory.NewStore(map[string][]domain.Row{domain.TableCandidates: {{"0001", "Ana"}}})
		_, err := records.NewCandidateRepository(store).List(ctx)
		assert.Error(t, err)
	})

	t.Run("Should reject a malformed birth year", func(t *testing.T) {
		store := memory.NewStore(map[string][]domain.Row{
			domain.TableCandidates: {candidateRow("0001", map[domain.CandidateField]any{domain.CandidateBirthYear: "nineteen"})},
		})
		_, err := records.NewCandidateRepository(store).List(ctx)
		assert.Error(t, err)
	})
}

func TestCandidateRepositoryWrites(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore(nil)
	repo := records.NewCandidateRepository(store)

	score := 64.0
	in := domain.Candidate{ID: "0001", Name: "Bo", Gender: "M", BirthYear: 1985, Blacklisted: domain.FlagFalse, KnowledgeTest1Score: &score}
	require.NoError(t, repo.Insert(ctx, in))

	in.City = "Oslo"
	in.KnowledgeTest1Score = nil
	require.NoError(t, repo.Update(ctx, in))

	got, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, in, got[0])

	err = repo.Insert(ctx, in)
	assert.True(t, errors.Is(err, domain.ErrWriteFailure))
}

func TestShortlistRepository(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore(nil)
	repo := records.NewShortlistRepository(store)

	require.NoError(t, repo.Insert(ctx, "0001", "0007"))
	require.NoError(t, repo.Insert(ctx, "0001", "0007"), "an existing pair is not an error")

	entries, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Nil(t, entries[0].Note)
	assert.Nil(t, entries[0].Rating)

	rating := 0
	require.NoError(t, repo.UpdateRating(ctx, "0001", "0007", &rating))
	require.NoError(t, repo.UpdateNote(ctx, "0001", "0007", "call back"))
	require.NoError(t, repo.UpdateStatus(ctx, "0001", "0007", domain.FlagFalse, domain.FlagTrue, domain.FlagFalse))

	entries, err = repo.List(ctx)
	require.NoError(t, err)
	require.NotNil(t, entries[0].Rating)
	assert.Equal(t, 0, *entries[0].Rating)
	assert.Equal(t, "call back", *entries[0].Note)
	assert.Equal(t, domain.FlagTrue, *entries[0].Reserve)
}

func TestClientAndProjectRepositories(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore(map[string][]domain.Row{
		domain.TableProjects: {{"0001", "0001", "Stores", "Cashier", "3", nil, "30k"}},
	})

	projects, err := records.NewProjectRepository(store).List(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, 3, projects[0].Headcount)
	assert.Equal(t, "", projects[0].Note)

	clients := records.NewClientRepository(store)
	require.NoError(t, clients.Insert(ctx, domain.Client{ID: "0001", Company: "Acme"}))
	list, err := clients.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Client{{ID: "0001", Company: "Acme"}}, list)
}
