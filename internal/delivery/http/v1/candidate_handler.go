package v1

import (
	"net/http"

	"go-recruitment-ops/internal/delivery/http/response"
	"go-recruitment-ops/internal/domain"
	"go-recruitment-ops/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type CandidateHandler struct {
	candidateUC domain.CandidateUsecase
}

// NewCandidateHandler registers candidate dossier routes
func NewCandidateHandler(protected *gin.RouterGroup, candidateUC domain.CandidateUsecase) {
	handler := &CandidateHandler{candidateUC: candidateUC}

	candidates := protected.Group("/candidates")
	{
		candidates.POST("", handler.Create)
		candidates.GET("/:id", handler.Get)
		candidates.PUT("/:id", handler.Update)
	}
}

// Get godoc
// @Summary      Get a candidate dossier
// @Tags         candidates
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Candidate ID"
// @Success      200  {object}  response.Response{data=domain.Candidate}
// @Failure      404  {object}  response.Response
// @Router       /candidates/{id} [get]
func (h *CandidateHandler) Get(c *gin.Context) {
	candidate, err := h.candidateUC.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidate retrieved", candidate)
}

// Create godoc
// @Summary      Create a candidate dossier
// @Description  The candidate id is assigned by the server. An assigned project must exist.
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        candidate  body      domain.Candidate  true  "Candidate JSON"
// @Success      201        {object}  response.Response{data=domain.Candidate}
// @Failure      400        {object}  response.Response
// @Failure      502        {object}  response.Response
// @Router       /candidates [post]
func (h *CandidateHandler) Create(c *gin.Context) {
	var req domain.Candidate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	candidate, err := h.candidateUC.Create(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Candidate created", candidate)
}

// Update godoc
// @Summary      Update a candidate dossier
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id         path      string            true  "Candidate ID"
// @Param        candidate  body      domain.Candidate  true  "Candidate JSON"
// @Success      200        {object}  response.Response{data=domain.Candidate}
// @Failure      400        {object}  response.Response
// @Failure      404        {object}  response.Response
// @Failure      502        {object}  response.Response
// @Router       /candidates/{id} [put]
func (h *CandidateHandler) Update(c *gin.Context) {
	var req domain.Candidate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	candidate, err := h.candidateUC.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidate updated", candidate)
}
