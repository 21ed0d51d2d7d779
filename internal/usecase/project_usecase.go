package usecase

import (
	"context"
	"fmt"

	"go-recruitment-ops/internal/domain"
	"go-recruitment-ops/pkg/logger"

	"github.com/go-playground/validator/v10"
)

type projectUsecase struct {
	repo     domain.ProjectRepository
	clients  domain.ClientRepository
	validate *validator.Validate
}

// NewProjectUsecase creates a new project usecase instance
func NewProjectUsecase(repo domain.ProjectRepository, clients domain.ClientRepository, validate *validator.Validate) domain.ProjectUsecase {
	return &projectUsecase{repo: repo, clients: clients, validate: validate}
}

func (u *projectUsecase) Preview(ctx context.Context) ([]domain.ProjectPreview, error) {
	projects, err := u.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load projects: %w", err)
	}
	previews := make([]domain.ProjectPreview, 0, len(projects))
	for _, p := range projects {
		previews = append(previews, domain.ProjectPreview{p.ID, p.ClientID, p.Name})
	}
	return previews, nil
}

func (u *projectUsecase) Get(ctx context.Context, projectID string) (*domain.Project, error) {
	projects, err := u.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load projects: %w", err)
	}
	for i := range projects {
		if projects[i].ID == projectID {
			return &projects[i], nil
		}
	}
	return nil, appError(fmt.Errorf("%w: project %s", domain.ErrNotFound, projectID))
}

func (u *projectUsecase) Create(ctx context.Context, project domain.Project) (*domain.Project, error) {
	if err := u.validate.Struct(project); err != nil {
		return nil, validationFailed(err)
	}
	if err := u.checkClient(ctx, project.ClientID); err != nil {
		return nil, err
	}

	projects, err := u.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load projects: %w", err)
	}
	ids := make([]string, len(projects))
	for i, p := range projects {
		ids[i] = p.ID
	}
	project.ID = nextID(ids)

	if err := u.repo.Insert(ctx, project); err != nil {
		return nil, appError(err)
	}
	logger.Log.Info("Project created", "project_id", project.ID, "client_id", project.ClientID)
	return &project, nil
}

func (u *projectUsecase) Update(ctx context.Context, projectID string, project domain.Project) (*domain.Project, error) {
	if err := u.validate.Struct(project); err != nil {
		return nil, validationFailed(err)
	}
	if _, err := u.Get(ctx, projectID); err != nil {
		return nil, err
	}
	if err := u.checkClient(ctx, project.ClientID); err != nil {
		return nil, err
	}

	project.ID = projectID
	if err := u.repo.Update(ctx, project); err != nil {
		return nil, appError(err)
	}
	return &project, nil
}

// checkClient rejects a project referencing an unknown client
func (u *projectUsecase) checkClient(ctx context.Context, clientID string) error {
	clients, err := u.clients.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to load clients: %w", err)
	}
	for _, c := range clients {
		if c.ID == clientID {
			return nil
		}
	}
	return appError(fmt.Errorf("%w: client %s does not exist", domain.ErrInvalidArgument, clientID))
}
