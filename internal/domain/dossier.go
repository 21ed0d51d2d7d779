package domain

import "context"

// ClientPreview is a [client_id, company] pair
type ClientPreview [2]string

// ProjectPreview is a [project_id, client_id, project_name] triple
type ProjectPreview [3]string

// ClientUsecase manages client records
type ClientUsecase interface {
	Preview(ctx context.Context) ([]ClientPreview, error)
	Get(ctx context.Context, clientID string) (*Client, error)
	Create(ctx context.Context, client Client) (*Client, error)
	Update(ctx context.Context, clientID string, client Client) (*Client, error)
}

// ProjectUsecase manages project records
type ProjectUsecase interface {
	Preview(ctx context.Context) ([]ProjectPreview, error)
	Get(ctx context.Context, projectID string) (*Project, error)
	Create(ctx context.Context, project Project) (*Project, error)
	Update(ctx context.Context, projectID string, project Project) (*Project, error)
}

// CandidateUsecase manages candidate dossiers
type CandidateUsecase interface {
	Get(ctx context.Context, candidateID string) (*Candidate, error)
	Create(ctx context.Context, candidate Candidate) (*Candidate, error)
	Update(ctx context.Context, candidateID string, candidate Candidate) (*Candidate, error)
}
