package usecase

import (
	"context"
	"fmt"

	"go-recruitment-ops/internal/domain"
	"go-recruitment-ops/pkg/logger"

	"github.com/go-playground/validator/v10"
)

type candidateUsecase struct {
	repo     domain.CandidateRepository
	projects domain.ProjectRepository
	validate *validator.Validate
}

// NewCandidateUsecase creates a new candidate dossier usecase instance
func NewCandidateUsecase(repo domain.CandidateRepository, projects domain.ProjectRepository, validate *validator.Validate) domain.CandidateUsecase {
	return &candidateUsecase{repo: repo, projects: projects, validate: validate}
}

func (u *candidateUsecase) Get(ctx context.Context, candidateID string) (*domain.Candidate, error) {
	candidates, err := u.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load candidates: %w", err)
	}
	for i := range candidates {
		if candidates[i].ID == candidateID {
			return &candidates[i], nil
		}
	}
	return nil, appError(fmt.Errorf("%w: candidate %s", domain.ErrNotFound, candidateID))
}

func (u *candidateUsecase) Create(ctx context.Context, candidate domain.Candidate) (*domain.Candidate, error) {
	if err := u.validate.Struct(candidate); err != nil {
		return nil, validationFailed(err)
	}
	if err := u.checkProject(ctx, candidate.ProjectID); err != nil {
		return nil, err
	}

	candidates, err := u.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load candidates: %w", err)
	}
	ids := make([]string, len(candidates))
	for i, c := range candidates {
		ids[i] = c.ID
	}
	candidate.ID = nextID(ids)

	if err := u.repo.Insert(ctx, candidate); err != nil {
		return nil, appError(err)
	}
	logger.Log.Info("Candidate created", "candidate_id", candidate.ID)
	return &candidate, nil
}

func (u *candidateUsecase) Update(ctx context.Context, candidateID string, candidate domain.Candidate) (*domain.Candidate, error) {
	if err := u.validate.Struct(candidate); err != nil {
		return nil, validationFailed(err)
	}
	if _, err := u.Get(ctx, candidateID); err != nil {
		return nil, err
	}
	if err := u.checkProject(ctx, candidate.ProjectID); err != nil {
		return nil, err
	}

	candidate.ID = candidateID
	if err := u.repo.Update(ctx, candidate); err != nil {
		return nil, appError(err)
	}
	return &candidate, nil
}

// checkProject rejects an assignment to an unknown project. An empty project
// id leaves the candidate unassigned.
func (u *candidateUsecase) checkProject(ctx context.Context, projectID string) error {
	if projectID == "" {
		return nil
	}
	projects, err := u.projects.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to load projects: %w", err)
	}
	for _, p := range projects {
		if p.ID == projectID {
			return nil
		}
	}
	return appError(fmt.Errorf("%w: project %s does not exist", domain.ErrInvalidArgument, projectID))
}
