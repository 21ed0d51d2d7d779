package domain

import (
	"context"
	"fmt"
)

// SearchConditionCount is the number of slots in a search-condition vector
const SearchConditionCount = 12

// SearchConditions holds the criteria of one candidate search. Every field is
// optional; an empty value does not narrow the result.
//
// Vector order: gender, age-younger-than, age-older-than, city, major,
// work-experience, business-skills, licences, languages, optimal-position,
// talent-score, blacklisted.
type SearchConditions struct {
	Gender          string `json:"gender" form:"gender"`
	YoungerThan     string `json:"younger_than" form:"younger_than"`
	OlderThan       string `json:"older_than" form:"older_than"`
	City            string `json:"city" form:"city"`
	Major           string `json:"major" form:"major"`
	WorkExperience  string `json:"work_experience" form:"work_experience"`
	BusinessSkills  string `json:"business_skills" form:"business_skills"`
	Licences        string `json:"licences" form:"licences"`
	Languages       string `json:"languages" form:"languages"`
	OptimalPosition string `json:"optimal_position" form:"optimal_position"`
	TalentScore     string `json:"talent_score" form:"talent_score"`
	Blacklisted     string `json:"blacklisted" form:"blacklisted"`
}

// SearchConditionsFromVector maps a positional condition vector onto
// SearchConditions. Missing trailing slots are treated as empty.
func SearchConditionsFromVector(v []string) (SearchConditions, error) {
	if len(v) > SearchConditionCount {
		return SearchConditions{}, fmt.Errorf("%w: expected at most %d search conditions, got %d",
			ErrInvalidArgument, SearchConditionCount, len(v))
	}
	padded := make([]string, SearchConditionCount)
	copy(padded, v)
	return SearchConditions{
		Gender:          padded[0],
		YoungerThan:     padded[1],
		OlderThan:       padded[2],
		City:            padded[3],
		Major:           padded[4],
		WorkExperience:  padded[5],
		BusinessSkills:  padded[6],
		Licences:        padded[7],
		Languages:       padded[8],
		OptimalPosition: padded[9],
		TalentScore:     padded[10],
		Blacklisted:     padded[11],
	}, nil
}

// Vector returns the conditions in positional order
func (s SearchConditions) Vector() []string {
	return []string{
		s.Gender, s.YoungerThan, s.OlderThan, s.City, s.Major,
		s.WorkExperience, s.BusinessSkills, s.Licences, s.Languages,
		s.OptimalPosition, s.TalentScore, s.Blacklisted,
	}
}

// SearchRequest is the vector form accepted by the search endpoint
type SearchRequest struct {
	Conditions []string `json:"conditions"`
}

// SearchResult is one matching candidate as [identifier, name]
type SearchResult [2]string

// SearchExportRequest describes an export of search results
type SearchExportRequest struct {
	Conditions SearchConditions
	Format     string // "xlsx" or "csv"
}

// SearchUsecase runs candidate searches
type SearchUsecase interface {
	Search(ctx context.Context, conditions SearchConditions) ([]SearchResult, error)
	Export(ctx context.Context, req SearchExportRequest) ([]byte, string, error)
}
