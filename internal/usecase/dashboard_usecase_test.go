package usecase_test

import (
	"context"
	"testing"

	"go-recruitment-ops/internal/domain"
	"go-recruitment-ops/internal/repository/memory"
	"go-recruitment-ops/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func indexOf(codes []string, code string) int {
	for i, c := range codes {
		if c == code {
			return i
		}
	}
	return -1
}

func TestDashboardStatistics(t *testing.T) {
	t.Run("Should report zeros for empty tables", func(t *testing.T) {
		r := newRepos(memory.NewStore(nil))
		uc := usecase.NewDashboardUsecase(r.clients, r.projects, r.candidates)

		stats, err := uc.Statistics(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 0, stats.Clients)
		assert.Equal(t, 0, stats.Projects)
		assert.Equal(t, domain.CandidateBasics{}, stats.CandidatesBasic)
		assert.Len(t, stats.CandidatesWorkExpLevels, 30)
		assert.Len(t, stats.CandidatesWorkExpNoLevels, 16)
	})

	t.Run("Should tabulate the snapshots", func(t *testing.T) {
		r := newRepos(memory.NewStore(nil))
		seedClients(t, r, domain.Client{ID: "0001", Company: "Acme"}, domain.Client{ID: "0002", Company: "Globex"})
		seedProjects(t, r, domain.Project{ID: "0001", ClientID: "0001", Name: "Stores"})
		seedCandidates(t, r,
			domain.Candidate{ID: "0001", Name: "Ana", WorkExperience: "MNG-E:FIN",
				InterviewDescription: "strong", TalentScore: "7", KnowledgeTest1Score: floatPtr(80)},
			domain.Candidate{ID: "0002", Name: "Bo", WorkExperience: "FIN", TalentScore: "0",
				KnowledgeTest2Score: floatPtr(0)},
			domain.Candidate{ID: "0003", Name: "Cy", WorkExperience: "", TalentScore: "n/a",
				Blacklisted: domain.FlagTrue},
			domain.Candidate{ID: "0004", Name: "Di", WorkExperience: "HR-S:ADM:HR-S", Blacklisted: "true"},
		)
		uc := usecase.NewDashboardUsecase(r.clients, r.projects, r.candidates)

		stats, err := uc.Statistics(context.Background())
		require.NoError(t, err)

		assert.Equal(t, 2, stats.Clients)
		assert.Equal(t, 1, stats.Projects)

		basics := stats.CandidatesBasic
		assert.Equal(t, 4, basics.Total())
		assert.Equal(t, 1, basics.Interviewed())
		assert.Equal(t, 2, basics.KnowledgeTested())
		assert.Equal(t, 1, basics.TalentScored(), "zero and non-numeric scores do not count")
		assert.Equal(t, 1, basics.Blacklisted(), "only the exact text True counts")

		levels := stats.CandidatesWorkExpLevels
		noLevels := stats.CandidatesWorkExpNoLevels
		assert.Equal(t, 2, noLevels[indexOf(domain.WorkExperienceNoLevels, "FIN")])
		assert.Equal(t, 1, levels[indexOf(domain.WorkExperienceLevels, "MNG-E")])
		assert.Equal(t, 1, levels[indexOf(domain.WorkExperienceLevels, "HR-S")], "a repeated tag counts once")
		assert.Equal(t, 1, noLevels[indexOf(domain.WorkExperienceNoLevels, "ADM")])
		assert.Equal(t, 0, levels[indexOf(domain.WorkExperienceLevels, "MNG-M")])
	})
}
