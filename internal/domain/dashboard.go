package domain

import "context"

// WorkExperienceLevels is the leveled work-experience vocabulary, in
// reporting order. Codes read <DEPT>-<LEVEL> with E, M and S tiers.
var WorkExperienceLevels = []string{
	"MNG-E", "MNG-M", "MNG-S", "CON-E", "CON-M", "CON-S",
	"COM-E", "COM-M", "COM-S", "RET-E", "RET-M", "RET-S",
	"MAR-E", "MAR-M", "MAR-S", "BAN-E", "BAN-M", "BAN-S",
	"ACC-E", "ACC-M", "ACC-S", "PRD-E", "PRD-M", "PRD-S",
	"CUL-E", "CUL-M", "CUL-S", "HR-E", "HR-M", "HR-S",
}

// WorkExperienceNoLevels is the non-leveled work-experience vocabulary
var WorkExperienceNoLevels = []string{
	"ADM", "COP", "DIS", "WHW", "DES", "DSK", "FIN", "MNL",
	"HOT", "WTR", "LOG", "NUR", "PUB", "MNT", "BSA", "PRM",
}

// CandidateBasics is the fixed 5-tuple of candidate counts:
// total, interviewed, knowledge tested, talent scored, blacklisted.
type CandidateBasics [5]int

func (b CandidateBasics) Total() int           { return b[0] }
func (b CandidateBasics) Interviewed() int     { return b[1] }
func (b CandidateBasics) KnowledgeTested() int { return b[2] }
func (b CandidateBasics) TalentScored() int    { return b[3] }
func (b CandidateBasics) Blacklisted() int     { return b[4] }

// Statistics is the dashboard summary
type Statistics struct {
	Clients                   int             `json:"clients"`
	Projects                  int             `json:"projects"`
	CandidatesBasic           CandidateBasics `json:"candidates_basic"`
	CandidatesWorkExpLevels   []int           `json:"candidates_we_levels"`
	CandidatesWorkExpNoLevels []int           `json:"candidates_we_no_levels"`
}

// DashboardUsecase computes the dashboard statistics
type DashboardUsecase interface {
	Statistics(ctx context.Context) (*Statistics, error)
}
