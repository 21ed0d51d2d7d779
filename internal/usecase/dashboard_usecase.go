package usecase

import (
	"context"
	"fmt"

	"go-recruitment-ops/internal/domain"
	"go-recruitment-ops/internal/predicate"
)

type dashboardUsecase struct {
	clients    domain.ClientRepository
	projects   domain.ProjectRepository
	candidates domain.CandidateRepository
}

// NewDashboardUsecase creates a new dashboard usecase instance
func NewDashboardUsecase(clients domain.ClientRepository, projects domain.ProjectRepository, candidates domain.CandidateRepository) domain.DashboardUsecase {
	return &dashboardUsecase{clients: clients, projects: projects, candidates: candidates}
}

// Statistics reads each table once and tabulates it
func (u *dashboardUsecase) Statistics(ctx context.Context) (*domain.Statistics, error) {
	clients, err := u.clients.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load clients: %w", err)
	}
	projects, err := u.projects.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load projects: %w", err)
	}
	candidates, err := u.candidates.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load candidates: %w", err)
	}

	return &domain.Statistics{
		Clients:                   len(clients),
		Projects:                  len(projects),
		CandidatesBasic:           candidateBasics(candidates),
		CandidatesWorkExpLevels:   tabulateTags(candidates, domain.WorkExperienceLevels),
		CandidatesWorkExpNoLevels: tabulateTags(candidates, domain.WorkExperienceNoLevels),
	}, nil
}

func candidateBasics(snapshot []domain.Candidate) domain.CandidateBasics {
	var b domain.CandidateBasics
	b[0] = len(snapshot)
	for _, c := range snapshot {
		if c.Interviewed() {
			b[1]++
		}
		if c.KnowledgeTested() {
			b[2]++
		}
		if c.TalentScored() {
			b[3]++
		}
		if c.IsBlacklisted() {
			b[4]++
		}
	}
	return b
}

// tabulateTags counts, per code and in vocabulary order, the candidates
// carrying that work-experience tag
func tabulateTags(snapshot []domain.Candidate, vocabulary []string) []int {
	counts := make([]int, len(vocabulary))
	for i, code := range vocabulary {
		counts[i] = len(predicate.ByTag(snapshot, domain.CandidateWorkExperience, code, ":"))
	}
	return counts
}
