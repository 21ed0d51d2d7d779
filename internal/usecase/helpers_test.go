package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-recruitment-ops/internal/domain"
	"go-recruitment-ops/internal/repository/memory"
	"go-recruitment-ops/internal/repository/records"
	"go-recruitment-ops/pkg/apperror"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

// repos bundles the record repositories of one store
type repos struct {
	store      domain.RecordStore
	clients    domain.ClientRepository
	projects   domain.ProjectRepository
	candidates domain.CandidateRepository
	shortlist  domain.ShortlistRepository
}

func newRepos(store domain.RecordStore) repos {
	return repos{
		store:      store,
		clients:    records.NewClientRepository(store),
		projects:   records.NewProjectRepository(store),
		candidates: records.NewCandidateRepository(store),
		shortlist:  records.NewShortlistRepository(store),
	}
}

func seedCandidates(t *testing.T, r repos, candidates ...domain.Candidate) {
	t.Helper()
	for _, c := range candidates {
		if c.Blacklisted == "" {
			c.Blacklisted = domain.FlagFalse
		}
		require.NoError(t, r.candidates.Insert(context.Background(), c))
	}
}

func seedClients(t *testing.T, r repos, clients ...domain.Client) {
	t.Helper()
	for _, c := range clients {
		require.NoError(t, r.clients.Insert(context.Background(), c))
	}
}

func seedProjects(t *testing.T, r repos, projects ...domain.Project) {
	t.Helper()
	for _, p := range projects {
		require.NoError(t, r.projects.Insert(context.Background(), p))
	}
}

func appCode(t *testing.T, err error) int {
	t.Helper()
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %v", err)
	return appErr.Code
}

// writeFailStore reads from memory and fails the writes the test configures
type writeFailStore struct {
	*memory.Store
	mock.Mock
}

func (s *writeFailStore) ExecuteWrite(ctx context.Context, stmt domain.Statement, args ...any) error {
	if err := s.Called(stmt.Table, stmt.Kind).Error(0); err != nil {
		return err
	}
	return s.Store.ExecuteWrite(ctx, stmt, args...)
}
