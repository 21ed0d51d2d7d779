package usecase

import (
	"context"
	"fmt"

	"go-recruitment-ops/internal/domain"
	"go-recruitment-ops/pkg/logger"

	"github.com/go-playground/validator/v10"
)

const syncLockPrefix = "shortlist:sync:"

type shortlistUsecase struct {
	shortlist  domain.ShortlistRepository
	candidates domain.CandidateRepository
	projects   domain.ProjectRepository
	locker     domain.Locker
	validate   *validator.Validate
	now        Clock
}

// NewShortlistUsecase creates a new shortlist usecase instance
func NewShortlistUsecase(
	shortlist domain.ShortlistRepository,
	candidates domain.CandidateRepository,
	projects domain.ProjectRepository,
	locker domain.Locker,
	validate *validator.Validate,
	now Clock,
) domain.ShortlistUsecase {
	return &shortlistUsecase{
		shortlist:  shortlist,
		candidates: candidates,
		projects:   projects,
		locker:     locker,
		validate:   validate,
		now:        orSystemClock(now),
	}
}

func (u *shortlistUsecase) Sync(ctx context.Context, projectID string) (int, error) {
	candidates, err := u.candidates.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load candidates: %w", err)
	}
	return u.sync(ctx, projectID, candidates)
}

// sync inserts the missing (project, candidate) pairs for every candidate
// assigned to the project and not blacklisted. It holds the project's sync
// lock so concurrent callers see each other's inserts.
func (u *shortlistUsecase) sync(ctx context.Context, projectID string, candidates []domain.Candidate) (int, error) {
	release, err := u.locker.Acquire(ctx, syncLockPrefix+projectID)
	if err != nil {
		return 0, fmt.Errorf("failed to lock shortlist of project %s: %w", projectID, err)
	}
	defer release()

	entries, err := u.shortlist.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load shortlist: %w", err)
	}
	present := make(map[string]bool)
	for _, e := range entries {
		if e.ProjectID == projectID {
			present[e.CandidateID] = true
		}
	}

	inserted := 0
	for _, c := range candidates {
		if c.ProjectID != projectID || c.Blacklisted != domain.FlagFalse || present[c.ID] {
			continue
		}
		if err := u.shortlist.Insert(ctx, projectID, c.ID); err != nil {
			return inserted, appError(err)
		}
		present[c.ID] = true
		inserted++
	}

	if inserted > 0 {
		logger.Log.Info("Shortlist synced", "project_id", projectID, "inserted", inserted)
	}
	return inserted, nil
}

// ProjectData syncs the shortlist, then projects the project's entries into
// presentation rows
func (u *shortlistUsecase) ProjectData(ctx context.Context, projectID string) (*domain.ProjectData, error) {
	candidates, err := u.candidates.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load candidates: %w", err)
	}
	if _, err := u.sync(ctx, projectID, candidates); err != nil {
		return nil, err
	}

	projects, err := u.projects.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load projects: %w", err)
	}
	entries, err := u.shortlist.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load shortlist: %w", err)
	}

	data := &domain.ProjectData{
		ProjectID: projectID,
		Rows:      make([]domain.ShortlistRow, 0),
	}
	for _, p := range projects {
		if p.ID == projectID {
			data.ProjectName = p.Name
			break
		}
	}

	byID := make(map[string]domain.Candidate, len(candidates))
	for _, c := range candidates {
		byID[c.ID] = c
	}
	for _, e := range entries {
		if e.ProjectID != projectID {
			continue
		}
		data.Rows = append(data.Rows, projectRow(e, byID[e.CandidateID]))
	}
	return data, nil
}

// projectRow shapes one shortlist entry: nulls become "", a rating is shown
// only as a marker, and interviewed candidates are flagged
func projectRow(e domain.ShortlistEntry, c domain.Candidate) domain.ShortlistRow {
	row := domain.ShortlistRow{
		CandidateID: e.CandidateID,
		Name:        c.Name,
		Note:        deref(e.Note),
		Accepted:    deref(e.Accepted),
		Reserve:     deref(e.Reserve),
		Rejected:    deref(e.Rejected),
	}
	if e.Rating != nil {
		row.Rating = domain.RatedMarker
	}
	if c.Interviewed() {
		row.Interviewed = domain.InterviewedMarker
	}
	return row
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func (u *shortlistUsecase) SetNote(ctx context.Context, projectID, candidateID string, req domain.SetNoteRequest) error {
	if err := u.validate.Struct(req); err != nil {
		return validationFailed(err)
	}
	if err := u.ensureEntry(ctx, projectID, candidateID); err != nil {
		return err
	}
	return appError(u.shortlist.UpdateNote(ctx, projectID, candidateID, req.Note))
}

func (u *shortlistUsecase) SetRating(ctx context.Context, projectID, candidateID string, req domain.SetRatingRequest) error {
	if err := u.validate.Struct(req); err != nil {
		return validationFailed(err)
	}
	if err := u.ensureEntry(ctx, projectID, candidateID); err != nil {
		return err
	}
	return appError(u.shortlist.UpdateRating(ctx, projectID, candidateID, req.Rating))
}

// SetStatus marks the chosen status column "True" and the other two
// "False". StatusNone clears all three.
func (u *shortlistUsecase) SetStatus(ctx context.Context, projectID, candidateID string, req domain.SetStatusRequest) error {
	if err := u.validate.Struct(req); err != nil {
		return validationFailed(err)
	}
	if err := u.ensureEntry(ctx, projectID, candidateID); err != nil {
		return err
	}

	flag := func(s domain.ShortlistStatus) string {
		if req.Status == s {
			return domain.FlagTrue
		}
		return domain.FlagFalse
	}
	return appError(u.shortlist.UpdateStatus(ctx, projectID, candidateID,
		flag(domain.StatusAccepted), flag(domain.StatusReserve), flag(domain.StatusRejected)))
}

func (u *shortlistUsecase) ensureEntry(ctx context.Context, projectID, candidateID string) error {
	entries, err := u.shortlist.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to load shortlist: %w", err)
	}
	for _, e := range entries {
		if e.ProjectID == projectID && e.CandidateID == candidateID {
			return nil
		}
	}
	return appError(fmt.Errorf("%w: candidate %s is not shortlisted for project %s", domain.ErrNotFound, candidateID, projectID))
}

// Export writes the project's shortlist view to XLSX or CSV
func (u *shortlistUsecase) Export(ctx context.Context, projectID, format string) ([]byte, string, error) {
	data, err := u.ProjectData(ctx, projectID)
	if err != nil {
		return nil, "", err
	}

	rows := make([][]string, len(data.Rows))
	for i, r := range data.Rows {
		rows[i] = r.Values()
	}
	out, filename, err := exportTable("Shortlist", "shortlist_"+projectID, domain.ShortlistColumns, rows, format, u.now())
	if err != nil {
		return nil, "", appError(err)
	}
	return out, filename, nil
}
