package records

import (
	"context"
	"fmt"

	"go-recruitment-ops/internal/domain"
)

type candidateRepo struct {
	store domain.RecordStore
}

// NewCandidateRepository creates a candidate repository over the given store
func NewCandidateRepository(store domain.RecordStore) domain.CandidateRepository {
	return &candidateRepo{store: store}
}

func (r *candidateRepo) List(ctx context.Context) ([]domain.Candidate, error) {
	rows, err := r.store.ReadTable(ctx, domain.TableCandidates)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", domain.TableCandidates, err)
	}

	candidates := make([]domain.Candidate, 0, len(rows))
	for _, row := range rows {
		c, err := decodeCandidate(row)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, c)
	}
	return candidates, nil
}

func decodeCandidate(row domain.Row) (domain.Candidate, error) {
	if err := checkArity(domain.TableCandidates, row); err != nil {
		return domain.Candidate{}, err
	}
	field := func(f domain.CandidateField) any { return row[f] }
	id := asString(field(domain.CandidateID))

	birthYear, err := asInt(field(domain.CandidateBirthYear))
	if err != nil {
		return domain.Candidate{}, fmt.Errorf("%s: candidate %s: birth_year: %w", domain.TableCandidates, id, err)
	}
	kn1, err := asOptionalFloat(field(domain.CandidateKnowledgeTest1Score))
	if err != nil {
		return domain.Candidate{}, fmt.Errorf("%s: candidate %s: kn1_score: %w", domain.TableCandidates, id, err)
	}
	kn2, err := asOptionalFloat(field(domain.CandidateKnowledgeTest2Score))
	if err != nil {
		return domain.Candidate{}, fmt.Errorf("%s: candidate %s: kn2_score: %w", domain.TableCandidates, id, err)
	}

	return domain.Candidate{
		ID:                        id,
		Name:                      asString(field(domain.CandidateName)),
		Gender:                    asString(field(domain.CandidateGender)),
		BirthYear:                 birthYear,
		City:                      asString(field(domain.CandidateCity)),
		Phone:                     asString(field(domain.CandidatePhone)),
		Mail:                      asString(field(domain.CandidateMail)),
		LinkedIn:                  asString(field(domain.CandidateLinkedIn)),
		Note:                      asString(field(domain.CandidateNote)),
		School:                    asString(field(domain.CandidateSchool)),
		Major:                     asString(field(domain.CandidateMajor)),
		BusinessSkills:            asString(field(domain.CandidateBusinessSkills)),
		Licences:                  asString(field(domain.CandidateLicences)),
		Languages:                 asString(field(domain.CandidateLanguages)),
		CurrentPosition:           asString(field(domain.CandidateCurrentPosition)),
		WorkExperience:            asString(field(domain.CandidateWorkExperience)),
		OptimalPosition:           asString(field(domain.CandidateOptimalPosition)),
		TalentScore:               asString(field(domain.CandidateTalentScore)),
		ProjectID:                 asString(field(domain.CandidateProjectID)),
		Blacklisted:               asString(field(domain.CandidateBlacklisted)),
		KnowledgeTest1Description: asString(field(domain.CandidateKnowledgeTest1Description)),
		KnowledgeTest1Score:       kn1,
		KnowledgeTest2Description: asString(field(domain.CandidateKnowledgeTest2Description)),
		KnowledgeTest2Score:       kn2,
		Competencies:              asString(field(domain.CandidateCompetencies)),
		CompetencyDescription:     asString(field(domain.CandidateCompetencyDescription)),
		InterviewDescription:      asString(field(domain.CandidateInterviewDescription)),
	}, nil
}

// candidateValues returns the non-key columns in table order
func candidateValues(c domain.Candidate) []any {
	return []any{
		c.Name, c.Gender, c.BirthYear, c.City, c.Phone, c.Mail, c.LinkedIn,
		c.Note, c.School, c.Major, c.BusinessSkills, c.Licences, c.Languages,
		c.CurrentPosition, c.WorkExperience, c.OptimalPosition, c.TalentScore,
		c.ProjectID, c.Blacklisted, c.KnowledgeTest1Description,
		optionalFloatArg(c.KnowledgeTest1Score), c.KnowledgeTest2Description,
		optionalFloatArg(c.KnowledgeTest2Score), c.Competencies,
		c.CompetencyDescription, c.InterviewDescription,
	}
}

func (r *candidateRepo) Insert(ctx context.Context, c domain.Candidate) error {
	args := append([]any{c.ID}, candidateValues(c)...)
	if err := r.store.ExecuteWrite(ctx, insertStatement(domain.TableCandidates), args...); err != nil {
		return writeFailure("insert candidate "+c.ID, err)
	}
	return nil
}

func (r *candidateRepo) Update(ctx context.Context, c domain.Candidate) error {
	args := append(candidateValues(c), c.ID)
	if err := r.store.ExecuteWrite(ctx, updateStatement(domain.TableCandidates), args...); err != nil {
		return writeFailure("update candidate "+c.ID, err)
	}
	return nil
}
