package records

import (
	"context"
	"fmt"

	"go-recruitment-ops/internal/domain"
)

type projectRepo struct {
	store domain.RecordStore
}

// NewProjectRepository creates a project repository over the given store
func NewProjectRepository(store domain.RecordStore) domain.ProjectRepository {
	return &projectRepo{store: store}
}

func (r *projectRepo) List(ctx context.Context) ([]domain.Project, error) {
	rows, err := r.store.ReadTable(ctx, domain.TableProjects)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", domain.TableProjects, err)
	}

	projects := make([]domain.Project, 0, len(rows))
	for _, row := range rows {
		if err := checkArity(domain.TableProjects, row); err != nil {
			return nil, err
		}
		headcount, err := asInt(row[4])
		if err != nil {
			return nil, fmt.Errorf("%s: project %s: number_employees: %w", domain.TableProjects, asString(row[0]), err)
		}
		projects = append(projects, domain.Project{
			ID:           asString(row[0]),
			ClientID:     asString(row[1]),
			Name:         asString(row[2]),
			JobPosition:  asString(row[3]),
			Headcount:    headcount,
			Note:         asString(row[5]),
			Compensation: asString(row[6]),
		})
	}
	return projects, nil
}

func (r *projectRepo) Insert(ctx context.Context, p domain.Project) error {
	err := r.store.ExecuteWrite(ctx, insertStatement(domain.TableProjects),
		p.ID, p.ClientID, p.Name, p.JobPosition, p.Headcount, p.Note, p.Compensation)
	if err != nil {
		return writeFailure("insert project "+p.ID, err)
	}
	return nil
}

func (r *projectRepo) Update(ctx context.Context, p domain.Project) error {
	err := r.store.ExecuteWrite(ctx, updateStatement(domain.TableProjects),
		p.ClientID, p.Name, p.JobPosition, p.Headcount, p.Note, p.Compensation, p.ID)
	if err != nil {
		return writeFailure("update project "+p.ID, err)
	}
	return nil
}
