package domain

import (
	"context"
	"strconv"
	"strings"
)

// Blacklisted flag values as stored
const (
	FlagTrue  = "True"
	FlagFalse = "False"
)

// Gender values accepted by the gender predicate
const (
	GenderMale   = "M"
	GenderFemale = "F"
	GenderAll    = "All"
)

// CandidateField addresses a candidate field by its position in the
// p1_candidates column order.
type CandidateField int

const (
	CandidateID CandidateField = iota
	CandidateName
	CandidateGender
	CandidateBirthYear
	CandidateCity
	CandidatePhone
	CandidateMail
	CandidateLinkedIn
	CandidateNote
	CandidateSchool
	CandidateMajor
	CandidateBusinessSkills
	CandidateLicences
	CandidateLanguages
	CandidateCurrentPosition
	CandidateWorkExperience
	CandidateOptimalPosition
	CandidateTalentScore
	CandidateProjectID
	CandidateBlacklisted
	CandidateKnowledgeTest1Description
	CandidateKnowledgeTest1Score
	CandidateKnowledgeTest2Description
	CandidateKnowledgeTest2Score
	CandidateCompetencies
	CandidateCompetencyDescription
	CandidateInterviewDescription
)

// Candidate is the typed view of one p1_candidates row
type Candidate struct {
	ID                        string   `json:"candidate_id"`
	Name                      string   `json:"name_surname" validate:"required,max=120,valid_name"`
	Gender                    string   `json:"gender" validate:"required,oneof=M F"`
	BirthYear                 int      `json:"birth_year" validate:"required,min=1900,max_current_year"`
	City                      string   `json:"city" validate:"max=80"`
	Phone                     string   `json:"phone" validate:"valid_phone"`
	Mail                      string   `json:"mail" validate:"omitempty,email"`
	LinkedIn                  string   `json:"linkedin" validate:"omitempty,url"`
	Note                      string   `json:"note"`
	School                    string   `json:"school"`
	Major                     string   `json:"major"`
	BusinessSkills            string   `json:"business_skills"`
	Licences                  string   `json:"licences"`
	Languages                 string   `json:"languages"`
	CurrentPosition           string   `json:"current_position"`
	WorkExperience            string   `json:"work_experience" validate:"work_experience"`
	OptimalPosition           string   `json:"optimal_position"`
	TalentScore               string   `json:"talent_score" validate:"omitempty,numeric"`
	ProjectID                 string   `json:"project_id"`
	Blacklisted               string   `json:"blacklisted" validate:"required,oneof=True False"`
	KnowledgeTest1Description string   `json:"kn1_description"`
	KnowledgeTest1Score       *float64 `json:"kn1_score"`
	KnowledgeTest2Description string   `json:"kn2_description"`
	KnowledgeTest2Score       *float64 `json:"kn2_score"`
	Competencies              string   `json:"competencies"`
	CompetencyDescription     string   `json:"c_description"`
	InterviewDescription      string   `json:"pv_description"`
}

// Field returns the textual value of a searchable field
func (c Candidate) Field(f CandidateField) string {
	switch f {
	case CandidateID:
		return c.ID
	case CandidateName:
		return c.Name
	case CandidateGender:
		return c.Gender
	case CandidateBirthYear:
		return strconv.Itoa(c.BirthYear)
	case CandidateCity:
		return c.City
	case CandidatePhone:
		return c.Phone
	case CandidateMail:
		return c.Mail
	case CandidateLinkedIn:
		return c.LinkedIn
	case CandidateNote:
		return c.Note
	case CandidateSchool:
		return c.School
	case CandidateMajor:
		return c.Major
	case CandidateBusinessSkills:
		return c.BusinessSkills
	case CandidateLicences:
		return c.Licences
	case CandidateLanguages:
		return c.Languages
	case CandidateCurrentPosition:
		return c.CurrentPosition
	case CandidateWorkExperience:
		return c.WorkExperience
	case CandidateOptimalPosition:
		return c.OptimalPosition
	case CandidateTalentScore:
		return c.TalentScore
	case CandidateProjectID:
		return c.ProjectID
	case CandidateBlacklisted:
		return c.Blacklisted
	case CandidateKnowledgeTest1Description:
		return c.KnowledgeTest1Description
	case CandidateKnowledgeTest1Score:
		return formatOptionalFloat(c.KnowledgeTest1Score)
	case CandidateKnowledgeTest2Description:
		return c.KnowledgeTest2Description
	case CandidateKnowledgeTest2Score:
		return formatOptionalFloat(c.KnowledgeTest2Score)
	case CandidateCompetencies:
		return c.Competencies
	case CandidateCompetencyDescription:
		return c.CompetencyDescription
	case CandidateInterviewDescription:
		return c.InterviewDescription
	}
	return ""
}

// Interviewed reports whether an interview description was recorded
func (c Candidate) Interviewed() bool {
	return c.InterviewDescription != ""
}

// KnowledgeTested reports whether either knowledge test has a score
func (c Candidate) KnowledgeTested() bool {
	return c.KnowledgeTest1Score != nil || c.KnowledgeTest2Score != nil
}

// TalentScored reports whether the talent score is non-empty and positive.
// A non-numeric score counts as not scored.
func (c Candidate) TalentScored() bool {
	if c.TalentScore == "" {
		return false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(c.TalentScore), 64)
	return err == nil && v > 0
}

// IsBlacklisted compares the flag textually, as stored
func (c Candidate) IsBlacklisted() bool {
	return c.Blacklisted == FlagTrue
}

// WorkExperienceTags splits the colon-delimited work-experience field
func (c Candidate) WorkExperienceTags() []string {
	if c.WorkExperience == "" {
		return nil
	}
	return strings.Split(c.WorkExperience, ":")
}

func formatOptionalFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

// Client is the typed view of one p1_clients row
type Client struct {
	ID           string `json:"client_id"`
	Company      string `json:"company" validate:"required,max=120"`
	City         string `json:"city" validate:"max=80"`
	Industry     string `json:"industry" validate:"max=80"`
	Note         string `json:"note"`
	ContactName  string `json:"ci_name" validate:"max=120"`
	ContactPhone string `json:"ci_phone" validate:"valid_phone"`
	ContactEmail string `json:"ci_email" validate:"omitempty,email"`
}

// Project is the typed view of one p1_projects row
type Project struct {
	ID           string `json:"project_id"`
	ClientID     string `json:"client" validate:"required"`
	Name         string `json:"project_name" validate:"required,max=120"`
	JobPosition  string `json:"job_position" validate:"required,max=120"`
	Headcount    int    `json:"number_employees" validate:"min=0"`
	Note         string `json:"note"`
	Compensation string `json:"compensation"`
}

// ShortlistEntry is the typed view of one p1_cms row. Nullable columns stay
// nil when the store holds no value.
type ShortlistEntry struct {
	ProjectID   string  `json:"project_id"`
	CandidateID string  `json:"candidate_id"`
	Note        *string `json:"note"`
	Rating      *int    `json:"rating"`
	Accepted    *string `json:"accepted"`
	Reserve     *string `json:"reserve"`
	Rejected    *string `json:"rejected"`
}

// ClientRepository reads and writes p1_clients
type ClientRepository interface {
	List(ctx context.Context) ([]Client, error)
	Insert(ctx context.Context, client Client) error
	Update(ctx context.Context, client Client) error
}

// ProjectRepository reads and writes p1_projects
type ProjectRepository interface {
	List(ctx context.Context) ([]Project, error)
	Insert(ctx context.Context, project Project) error
	Update(ctx context.Context, project Project) error
}

// CandidateRepository reads and writes p1_candidates
type CandidateRepository interface {
	List(ctx context.Context) ([]Candidate, error)
	Insert(ctx context.Context, candidate Candidate) error
	Update(ctx context.Context, candidate Candidate) error
}

// ShortlistRepository reads and writes p1_cms
type ShortlistRepository interface {
	List(ctx context.Context) ([]ShortlistEntry, error)
	// Insert adds an empty entry for the pair; an existing pair is left untouched
	Insert(ctx context.Context, projectID, candidateID string) error
	UpdateNote(ctx context.Context, projectID, candidateID, note string) error
	UpdateRating(ctx context.Context, projectID, candidateID string, rating *int) error
	UpdateStatus(ctx context.Context, projectID, candidateID string, accepted, reserve, rejected string) error
}
