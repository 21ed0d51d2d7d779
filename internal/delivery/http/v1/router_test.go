package v1_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-recruitment-ops/config"
	v1 "go-recruitment-ops/internal/delivery/http/v1"
	"go-recruitment-ops/internal/domain"
	"go-recruitment-ops/internal/repository/memory"
	"go-recruitment-ops/internal/repository/records"
	"go-recruitment-ops/internal/usecase"
	"go-recruitment-ops/pkg/lock"
	"go-recruitment-ops/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

type envelope struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
	RequestID string          `json:"request_id"`
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	store := memory.NewStore(nil)
	clients := records.NewClientRepository(store)
	projects := records.NewProjectRepository(store)
	candidates := records.NewCandidateRepository(store)
	shortlist := records.NewShortlistRepository(store)

	ctx := context.Background()
	require.NoError(t, clients.Insert(ctx, domain.Client{ID: "0001", Company: "Acme"}))
	require.NoError(t, projects.Insert(ctx, domain.Project{ID: "0001", ClientID: "0001", Name: "Stores"}))
	require.NoError(t, candidates.Insert(ctx, domain.Candidate{ID: "0001", Name: "Ana", Gender: "F", BirthYear: 1990,
		City: "Oslo", ProjectID: "0001", Blacklisted: domain.FlagFalse, InterviewDescription: "good"}))
	require.NoError(t, candidates.Insert(ctx, domain.Candidate{ID: "0002", Name: "Bo", Gender: "M", BirthYear: 1985,
		City: "Oslo", Blacklisted: domain.FlagFalse}))

	validate := validation.New()
	now := usecase.Clock(func() time.Time { return time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC) })

	return v1.NewRouter(v1.RouterDeps{
		DashboardUC: usecase.NewDashboardUsecase(clients, projects, candidates),
		SearchUC:    usecase.NewSearchUsecase(candidates, now),
		ClientUC:    usecase.NewClientUsecase(clients, validate),
		ProjectUC:   usecase.NewProjectUsecase(projects, clients, validate),
		CandidateUC: usecase.NewCandidateUsecase(candidates, projects, validate),
		ShortlistUC: usecase.NewShortlistUsecase(shortlist, candidates, projects, lock.NewLocal(), validate, now),
		HealthUC:    usecase.NewHealthUsecase(store, nil),
		Config: &config.Config{
			GinMode:                gin.TestMode,
			JWTSecret:              testSecret,
			FrontendURL:            "https://ops.example.com",
			RateLimitThreshold:     1000,
			RateLimitWindowSeconds: 60,
		},
	})
}

func token(t *testing.T, role string) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "staff-1",
		"role": role,
		"exp":  time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func do(t *testing.T, r *gin.Engine, method, path string, body any, role string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if role != "" {
		req.Header.Set("Authorization", "Bearer "+token(t, role))
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, data any) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	if data != nil {
		require.NoError(t, json.Unmarshal(env.Data, data))
	}
	return env
}

func TestAuth(t *testing.T) {
	r := newTestRouter(t)

	t.Run("Should serve health without a token", func(t *testing.T) {
		w := do(t, r, http.MethodGet, "/v1/health", nil, "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})

	t.Run("Should reject a missing token", func(t *testing.T) {
		w := do(t, r, http.MethodGet, "/v1/dashboard/statistics", nil, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Should reject a non-staff role", func(t *testing.T) {
		w := do(t, r, http.MethodGet, "/v1/dashboard/statistics", nil, "candidate")
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Should reject a token signed with another secret", func(t *testing.T) {
		forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "x", "role": "staff"}).
			SignedString([]byte("other"))
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/statistics", nil)
		req.Header.Set("Authorization", "Bearer "+forged)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestDashboardRoute(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/v1/dashboard/statistics", nil, "staff")
	require.Equal(t, http.StatusOK, w.Code)

	var stats domain.Statistics
	decode(t, w, &stats)
	assert.Equal(t, 1, stats.Clients)
	assert.Equal(t, 1, stats.Projects)
	assert.Equal(t, domain.CandidateBasics{2, 1, 0, 0, 0}, stats.CandidatesBasic)
}

func TestSearchRoutes(t *testing.T) {
	r := newTestRouter(t)

	t.Run("Should search by vector", func(t *testing.T) {
		body := domain.SearchRequest{Conditions: []string{"F", "", "", "", "", "", "", "", "", "", ""}}
		w := do(t, r, http.MethodPost, "/v1/candidates/search", body, "staff")
		require.Equal(t, http.StatusOK, w.Code)

		var results [][]string
		decode(t, w, &results)
		assert.Equal(t, [][]string{{"0001", "Ana"}}, results)
	})

	t.Run("Should search by query", func(t *testing.T) {
		w := do(t, r, http.MethodGet, "/v1/candidates/search?city=oslo&older_than=36", nil, "staff")
		require.Equal(t, http.StatusOK, w.Code)

		var results [][]string
		decode(t, w, &results)
		assert.Equal(t, [][]string{{"0002", "Bo"}}, results)
	})

	t.Run("Should reject an invalid gender", func(t *testing.T) {
		w := do(t, r, http.MethodGet, "/v1/candidates/search?gender=X", nil, "staff")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decode(t, w, nil)
		assert.False(t, env.Success)
	})

	t.Run("Should reject an oversized vector", func(t *testing.T) {
		body := domain.SearchRequest{Conditions: make([]string, 13)}
		w := do(t, r, http.MethodPost, "/v1/candidates/search", body, "staff")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Should export as CSV", func(t *testing.T) {
		w := do(t, r, http.MethodGet, "/v1/candidates/search/export?format=csv&gender=M", nil, "staff")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Header().Get("Content-Disposition"), "candidate_search_20250101_000000.csv")
		assert.Contains(t, w.Body.String(), "0002,Bo")
	})
}

func TestDossierRoutes(t *testing.T) {
	r := newTestRouter(t)

	t.Run("Should create and fetch a client", func(t *testing.T) {
		w := do(t, r, http.MethodPost, "/v1/clients", domain.Client{Company: "Globex"}, "staff")
		require.Equal(t, http.StatusCreated, w.Code)
		var created domain.Client
		decode(t, w, &created)
		assert.Equal(t, "0002", created.ID)

		w = do(t, r, http.MethodGet, "/v1/clients/0002", nil, "staff")
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Should return 404 for an unknown candidate", func(t *testing.T) {
		w := do(t, r, http.MethodGet, "/v1/candidates/0404", nil, "admin")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Should reject a project for an unknown client", func(t *testing.T) {
		body := domain.Project{ClientID: "0404", Name: "Ghost", JobPosition: "Clerk"}
		w := do(t, r, http.MethodPost, "/v1/projects", body, "staff")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Should list project previews", func(t *testing.T) {
		w := do(t, r, http.MethodGet, "/v1/projects", nil, "staff")
		require.Equal(t, http.StatusOK, w.Code)
		var previews [][]string
		decode(t, w, &previews)
		assert.Equal(t, [][]string{{"0001", "0001", "Stores"}}, previews)
	})
}

func TestShortlistRoutes(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/v1/projects/0001/shortlist", nil, "staff")
	require.Equal(t, http.StatusOK, w.Code)
	var data domain.ProjectData
	decode(t, w, &data)
	assert.Equal(t, "Stores", data.ProjectName)
	require.Len(t, data.Rows, 1)
	assert.Equal(t, "◇", data.Rows[0].Interviewed)

	w = do(t, r, http.MethodPut, "/v1/projects/0001/shortlist/0001/rating", map[string]int{"rating": 8}, "staff")
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, r, http.MethodGet, "/v1/projects/0001/shortlist", nil, "staff")
	decode(t, w, &data)
	assert.Equal(t, "◈", data.Rows[0].Rating)

	w = do(t, r, http.MethodPut, "/v1/projects/0001/shortlist/0002/note", map[string]string{"note": "x"}, "staff")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, r, http.MethodPut, "/v1/projects/0001/shortlist/0001/status", map[string]string{"status": "accepted"}, "staff")
	assert.Equal(t, http.StatusOK, w.Code)
}
