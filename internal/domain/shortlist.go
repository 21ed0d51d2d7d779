package domain

import "context"

// Presentation glyphs of the shortlist view
const (
	InterviewedMarker = "◇"
	RatedMarker       = "◈"
)

// ShortlistStatus names one of the three status columns
type ShortlistStatus string

const (
	StatusAccepted ShortlistStatus = "accepted"
	StatusReserve  ShortlistStatus = "reserve"
	StatusRejected ShortlistStatus = "rejected"
	StatusNone     ShortlistStatus = "none"
)

// ShortlistRow is one presentation row of a project's shortlist. Values are
// already shaped: nulls are empty strings and the rating is only signalled.
type ShortlistRow struct {
	CandidateID string `json:"candidate_id"`
	Name        string `json:"name"`
	Note        string `json:"note"`
	Rating      string `json:"rating"`
	Accepted    string `json:"accepted"`
	Reserve     string `json:"reserve"`
	Rejected    string `json:"rejected"`
	Interviewed string `json:"interviewed"`
}

// Values returns the row in display order:
// candidate id, name, note, rating, accepted, reserve, rejected, interviewed.
func (r ShortlistRow) Values() []string {
	return []string{
		r.CandidateID, r.Name, r.Note, r.Rating,
		r.Accepted, r.Reserve, r.Rejected, r.Interviewed,
	}
}

// ShortlistColumns are the display headers matching ShortlistRow.Values
var ShortlistColumns = []string{
	"candidate_id", "name", "note", "rating",
	"accepted", "reserve", "rejected", "interviewed",
}

// ProjectData is the shortlist view of one project
type ProjectData struct {
	ProjectID   string         `json:"project_id"`
	ProjectName string         `json:"project_name"`
	Rows        []ShortlistRow `json:"rows"`
}

// SetNoteRequest updates a shortlist note
type SetNoteRequest struct {
	Note string `json:"note" validate:"max=2000"`
}

// SetRatingRequest updates a shortlist rating; nil clears it
type SetRatingRequest struct {
	Rating *int `json:"rating" validate:"omitempty,min=0,max=10"`
}

// SetStatusRequest moves a shortlisted candidate to one status column
type SetStatusRequest struct {
	Status ShortlistStatus `json:"status" validate:"required,oneof=accepted reserve rejected none"`
}

// ShortlistUsecase manages the per-project shortlist
type ShortlistUsecase interface {
	// ProjectData syncs newly eligible candidates into the shortlist and
	// returns the shaped view.
	ProjectData(ctx context.Context, projectID string) (*ProjectData, error)
	// Sync inserts shortlist entries for eligible candidates missing one and
	// returns the number of inserted entries.
	Sync(ctx context.Context, projectID string) (int, error)
	SetNote(ctx context.Context, projectID, candidateID string, req SetNoteRequest) error
	SetRating(ctx context.Context, projectID, candidateID string, req SetRatingRequest) error
	SetStatus(ctx context.Context, projectID, candidateID string, req SetStatusRequest) error
	Export(ctx context.Context, projectID, format string) ([]byte, string, error)
}
