package usecase

import (
	"context"
	"fmt"

	"go-recruitment-ops/internal/domain"
	"go-recruitment-ops/pkg/logger"

	"github.com/go-playground/validator/v10"
)

type clientUsecase struct {
	repo     domain.ClientRepository
	validate *validator.Validate
}

// NewClientUsecase creates a new client usecase instance
func NewClientUsecase(repo domain.ClientRepository, validate *validator.Validate) domain.ClientUsecase {
	return &clientUsecase{repo: repo, validate: validate}
}

func (u *clientUsecase) Preview(ctx context.Context) ([]domain.ClientPreview, error) {
	clients, err := u.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load clients: %w", err)
	}
	previews := make([]domain.ClientPreview, 0, len(clients))
	for _, c := range clients {
		previews = append(previews, domain.ClientPreview{c.ID, c.Company})
	}
	return previews, nil
}

func (u *clientUsecase) Get(ctx context.Context, clientID string) (*domain.Client, error) {
	clients, err := u.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load clients: %w", err)
	}
	for i := range clients {
		if clients[i].ID == clientID {
			return &clients[i], nil
		}
	}
	return nil, appError(fmt.Errorf("%w: client %s", domain.ErrNotFound, clientID))
}

func (u *clientUsecase) Create(ctx context.Context, client domain.Client) (*domain.Client, error) {
	if err := u.validate.Struct(client); err != nil {
		return nil, validationFailed(err)
	}

	clients, err := u.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load clients: %w", err)
	}
	ids := make([]string, len(clients))
	for i, c := range clients {
		ids[i] = c.ID
	}
	client.ID = nextID(ids)

	if err := u.repo.Insert(ctx, client); err != nil {
		return nil, appError(err)
	}
	logger.Log.Info("Client created", "client_id", client.ID)
	return &client, nil
}

func (u *clientUsecase) Update(ctx context.Context, clientID string, client domain.Client) (*domain.Client, error) {
	if err := u.validate.Struct(client); err != nil {
		return nil, validationFailed(err)
	}
	if _, err := u.Get(ctx, clientID); err != nil {
		return nil, err
	}

	client.ID = clientID
	if err := u.repo.Update(ctx, client); err != nil {
		return nil, appError(err)
	}
	return &client, nil
}
