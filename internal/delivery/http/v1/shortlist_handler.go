package v1

import (
	"net/http"

	"go-recruitment-ops/internal/delivery/http/response"
	"go-recruitment-ops/internal/domain"
	"go-recruitment-ops/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ShortlistHandler struct {
	shortlistUC domain.ShortlistUsecase
}

// NewShortlistHandler registers the per-project shortlist routes
func NewShortlistHandler(protected *gin.RouterGroup, shortlistUC domain.ShortlistUsecase, exportLimit gin.HandlerFunc) {
	handler := &ShortlistHandler{shortlistUC: shortlistUC}

	shortlist := protected.Group("/projects/:id/shortlist")
	{
		shortlist.GET("", handler.ProjectData)
		shortlist.GET("/export", exportLimit, handler.Export)
		shortlist.PUT("/:candidateId/note", handler.SetNote)
		shortlist.PUT("/:candidateId/rating", handler.SetRating)
		shortlist.PUT("/:candidateId/status", handler.SetStatus)
	}
}

// ProjectData godoc
// @Summary      Project shortlist
// @Description  Adds newly eligible candidates (assigned to the project, not blacklisted) to the shortlist, then returns its rows. Ratings are shown as ◈, interviewed candidates are marked ◇.
// @Tags         shortlist
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Project ID"
// @Success      200  {object}  response.Response{data=domain.ProjectData}
// @Failure      502  {object}  response.Response
// @Router       /projects/{id}/shortlist [get]
func (h *ShortlistHandler) ProjectData(c *gin.Context) {
	data, err := h.shortlistUC.ProjectData(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Shortlist retrieved", data)
}

// Export godoc
// @Summary      Export a project shortlist
// @Tags         shortlist
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce      text/csv
// @Security     BearerAuth
// @Param        id      path      string  true   "Project ID"
// @Param        format  query     string  false  "xlsx (default) or csv"
// @Success      200     {file}    file
// @Failure      400     {object}  response.Response
// @Router       /projects/{id}/shortlist/export [get]
func (h *ShortlistHandler) Export(c *gin.Context) {
	data, filename, err := h.shortlistUC.Export(c.Request.Context(), c.Param("id"), c.DefaultQuery("format", "xlsx"))
	if err != nil {
		c.Error(err)
		return
	}
	sendExport(c, data, filename)
}

// SetNote godoc
// @Summary      Set a shortlist note
// @Tags         shortlist
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id           path      string                 true  "Project ID"
// @Param        candidateId  path      string                 true  "Candidate ID"
// @Param        request      body      domain.SetNoteRequest  true  "Note"
// @Success      200          {object}  response.Response
// @Failure      404          {object}  response.Response
// @Failure      502          {object}  response.Response
// @Router       /projects/{id}/shortlist/{candidateId}/note [put]
func (h *ShortlistHandler) SetNote(c *gin.Context) {
	var req domain.SetNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	if err := h.shortlistUC.SetNote(c.Request.Context(), c.Param("id"), c.Param("candidateId"), req); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Note saved", nil)
}

// SetRating godoc
// @Summary      Set a shortlist rating
// @Description  Rating from 0 to 10; null clears it
// @Tags         shortlist
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id           path      string                   true  "Project ID"
// @Param        candidateId  path      string                   true  "Candidate ID"
// @Param        request      body      domain.SetRatingRequest  true  "Rating"
// @Success      200          {object}  response.Response
// @Failure      400          {object}  response.Response
// @Failure      404          {object}  response.Response
// @Router       /projects/{id}/shortlist/{candidateId}/rating [put]
func (h *ShortlistHandler) SetRating(c *gin.Context) {
	var req domain.SetRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	if err := h.shortlistUC.SetRating(c.Request.Context(), c.Param("id"), c.Param("candidateId"), req); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Rating saved", nil)
}

// SetStatus godoc
// @Summary      Set a shortlist status
// @Description  accepted, reserve or rejected marks that column True and the others False; none clears all three
// @Tags         shortlist
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id           path      string                   true  "Project ID"
// @Param        candidateId  path      string                   true  "Candidate ID"
// @Param        request      body      domain.SetStatusRequest  true  "Status"
// @Success      200          {object}  response.Response
// @Failure      400          {object}  response.Response
// @Failure      404          {object}  response.Response
// @Router       /projects/{id}/shortlist/{candidateId}/status [put]
func (h *ShortlistHandler) SetStatus(c *gin.Context) {
	var req domain.SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	if err := h.shortlistUC.SetStatus(c.Request.Context(), c.Param("id"), c.Param("candidateId"), req); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Status saved", nil)
}
