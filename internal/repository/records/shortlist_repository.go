package records

import (
	"context"
	"fmt"

	"go-recruitment-ops/internal/domain"
)

type shortlistRepo struct {
	store domain.RecordStore
}

// NewShortlistRepository creates a shortlist (CMS) repository over the given store
func NewShortlistRepository(store domain.RecordStore) domain.ShortlistRepository {
	return &shortlistRepo{store: store}
}

func (r *shortlistRepo) List(ctx context.Context) ([]domain.ShortlistEntry, error) {
	rows, err := r.store.ReadTable(ctx, domain.TableShortlist)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", domain.TableShortlist, err)
	}

	entries := make([]domain.ShortlistEntry, 0, len(rows))
	for _, row := range rows {
		if err := checkArity(domain.TableShortlist, row); err != nil {
			return nil, err
		}
		rating, err := asOptionalInt(row[3])
		if err != nil {
			return nil, fmt.Errorf("%s: entry %s/%s: rating: %w",
				domain.TableShortlist, asString(row[0]), asString(row[1]), err)
		}
		entries = append(entries, domain.ShortlistEntry{
			ProjectID:   asString(row[0]),
			CandidateID: asString(row[1]),
			Note:        asOptionalString(row[2]),
			Rating:      rating,
			Accepted:    asOptionalString(row[4]),
			Reserve:     asOptionalString(row[5]),
			Rejected:    asOptionalString(row[6]),
		})
	}
	return entries, nil
}

// Insert adds an entry with null note, rating and status columns. The
// statement tolerates an existing pair so racing syncs stay harmless.
func (r *shortlistRepo) Insert(ctx context.Context, projectID, candidateID string) error {
	stmt := domain.Statement{
		Table:          domain.TableShortlist,
		Kind:           domain.StatementInsert,
		Columns:        []string{"project_id", "candidate_id"},
		IgnoreConflict: true,
	}
	if err := r.store.ExecuteWrite(ctx, stmt, projectID, candidateID); err != nil {
		return writeFailure(fmt.Sprintf("insert shortlist entry %s/%s", projectID, candidateID), err)
	}
	return nil
}

func (r *shortlistRepo) update(ctx context.Context, projectID, candidateID string, columns []string, values ...any) error {
	stmt := domain.Statement{
		Table:      domain.TableShortlist,
		Kind:       domain.StatementUpdate,
		Columns:    columns,
		KeyColumns: domain.TableKeys[domain.TableShortlist],
	}
	args := append(values, projectID, candidateID)
	if err := r.store.ExecuteWrite(ctx, stmt, args...); err != nil {
		return writeFailure(fmt.Sprintf("update shortlist entry %s/%s", projectID, candidateID), err)
	}
	return nil
}

func (r *shortlistRepo) UpdateNote(ctx context.Context, projectID, candidateID, note string) error {
	return r.update(ctx, projectID, candidateID, []string{"note"}, note)
}

func (r *shortlistRepo) UpdateRating(ctx context.Context, projectID, candidateID string, rating *int) error {
	return r.update(ctx, projectID, candidateID, []string{"rating"}, optionalIntArg(rating))
}

func (r *shortlistRepo) UpdateStatus(ctx context.Context, projectID, candidateID string, accepted, reserve, rejected string) error {
	return r.update(ctx, projectID, candidateID, []string{"accepted", "reserve", "rejected"}, accepted, reserve, rejected)
}
