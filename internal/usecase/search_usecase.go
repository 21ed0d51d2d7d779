package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go-recruitment-ops/internal/domain"
	"go-recruitment-ops/internal/predicate"
)

// searchExportColumns are the candidate fields written by a search export
var searchExportColumns = []domain.CandidateField{
	domain.CandidateID,
	domain.CandidateName,
	domain.CandidateGender,
	domain.CandidateBirthYear,
	domain.CandidateCity,
	domain.CandidateMajor,
	domain.CandidateWorkExperience,
	domain.CandidateBusinessSkills,
	domain.CandidateLicences,
	domain.CandidateLanguages,
	domain.CandidateOptimalPosition,
	domain.CandidateTalentScore,
	domain.CandidateBlacklisted,
}

type searchUsecase struct {
	candidates domain.CandidateRepository
	now        Clock
}

// NewSearchUsecase creates a new candidate search usecase instance
func NewSearchUsecase(candidates domain.CandidateRepository, now Clock) domain.SearchUsecase {
	return &searchUsecase{candidates: candidates, now: orSystemClock(now)}
}

// Search returns [id, name] for every candidate matching all conditions, in
// snapshot order
func (u *searchUsecase) Search(ctx context.Context, conditions domain.SearchConditions) ([]domain.SearchResult, error) {
	snapshot, err := u.candidates.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load candidates: %w", err)
	}

	matched, err := u.match(snapshot, conditions)
	if err != nil {
		return nil, appError(err)
	}

	results := make([]domain.SearchResult, 0, len(matched))
	for _, c := range matched {
		results = append(results, domain.SearchResult{c.ID, c.Name})
	}
	return results, nil
}

// Export writes the matching candidates to XLSX or CSV
func (u *searchUsecase) Export(ctx context.Context, req domain.SearchExportRequest) ([]byte, string, error) {
	snapshot, err := u.candidates.List(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("failed to fetch candidates for export: %w", err)
	}

	matched, err := u.match(snapshot, req.Conditions)
	if err != nil {
		return nil, "", appError(err)
	}

	headers := make([]string, len(searchExportColumns))
	for i, f := range searchExportColumns {
		headers[i] = domain.TableColumns[domain.TableCandidates][f]
	}
	rows := make([][]string, 0, len(matched))
	for _, c := range matched {
		row := make([]string, len(searchExportColumns))
		for i, f := range searchExportColumns {
			row[i] = c.Field(f)
		}
		rows = append(rows, row)
	}

	data, filename, err := exportTable("Candidates", "candidate_search", headers, rows, req.Format, u.now())
	if err != nil {
		return nil, "", appError(err)
	}
	return data, filename, nil
}

// match runs all twelve predicates against the snapshot and keeps the
// candidates present in every result
func (u *searchUsecase) match(snapshot []domain.Candidate, conditions domain.SearchConditions) ([]domain.Candidate, error) {
	gender := conditions.Gender
	if gender == "" {
		gender = domain.GenderAll
	}
	byGender, err := predicate.ByGender(snapshot, gender)
	if err != nil {
		return nil, err
	}

	youngerThan, err := parseAgeBound("younger_than", conditions.YoungerThan)
	if err != nil {
		return nil, err
	}
	olderThan, err := parseAgeBound("older_than", conditions.OlderThan)
	if err != nil {
		return nil, err
	}

	sets := []predicate.IDSet{
		byGender,
		predicate.ByAgeRange(snapshot, youngerThan, olderThan, u.now().Year()),
	}

	contains := []struct {
		field     domain.CandidateField
		criterion string
	}{
		{domain.CandidateCity, conditions.City},
		{domain.CandidateMajor, conditions.Major},
		{domain.CandidateWorkExperience, conditions.WorkExperience},
		{domain.CandidateBusinessSkills, conditions.BusinessSkills},
		{domain.CandidateLicences, conditions.Licences},
		{domain.CandidateLanguages, conditions.Languages},
		{domain.CandidateOptimalPosition, conditions.OptimalPosition},
		{domain.CandidateTalentScore, conditions.TalentScore},
		{domain.CandidateBlacklisted, conditions.Blacklisted},
	}
	for _, c := range contains {
		sets = append(sets, predicate.ByFieldContains(snapshot, c.field, c.criterion, false))
	}

	ids := predicate.Intersect(sets...)

	matched := make([]domain.Candidate, 0, len(ids))
	for _, c := range snapshot {
		if ids.Has(c.ID) {
			matched = append(matched, c)
		}
	}
	return matched, nil
}

// parseAgeBound reads an optional age bound. Empty means unbounded.
func parseAgeBound(name, value string) (*int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be a whole number, got %q", domain.ErrInvalidArgument, name, value)
	}
	return &n, nil
}
