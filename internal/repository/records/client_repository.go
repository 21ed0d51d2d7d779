package records

import (
	"context"
	"fmt"

	"go-recruitment-ops/internal/domain"
)

type clientRepo struct {
	store domain.RecordStore
}

// NewClientRepository creates a client repository over the given store
func NewClientRepository(store domain.RecordStore) domain.ClientRepository {
	return &clientRepo{store: store}
}

func (r *clientRepo) List(ctx context.Context) ([]domain.Client, error) {
	rows, err := r.store.ReadTable(ctx, domain.TableClients)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", domain.TableClients, err)
	}

	clients := make([]domain.Client, 0, len(rows))
	for _, row := range rows {
		if err := checkArity(domain.TableClients, row); err != nil {
			return nil, err
		}
		clients = append(clients, domain.Client{
			ID:           asString(row[0]),
			Company:      asString(row[1]),
			City:         asString(row[2]),
			Industry:     asString(row[3]),
			Note:         asString(row[4]),
			ContactName:  asString(row[5]),
			ContactPhone: asString(row[6]),
			ContactEmail: asString(row[7]),
		})
	}
	return clients, nil
}

func (r *clientRepo) Insert(ctx context.Context, c domain.Client) error {
	err := r.store.ExecuteWrite(ctx, insertStatement(domain.TableClients),
		c.ID, c.Company, c.City, c.Industry, c.Note, c.ContactName, c.ContactPhone, c.ContactEmail)
	if err != nil {
		return writeFailure("insert client "+c.ID, err)
	}
	return nil
}

func (r *clientRepo) Update(ctx context.Context, c domain.Client) error {
	err := r.store.ExecuteWrite(ctx, updateStatement(domain.TableClients),
		c.Company, c.City, c.Industry, c.Note, c.ContactName, c.ContactPhone, c.ContactEmail, c.ID)
	if err != nil {
		return writeFailure("update client "+c.ID, err)
	}
	return nil
}
