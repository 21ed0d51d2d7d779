package v1

import (
	"net/http"

	"go-recruitment-ops/internal/delivery/http/response"
	"go-recruitment-ops/internal/domain"
	"go-recruitment-ops/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type SearchHandler struct {
	searchUC domain.SearchUsecase
}

// NewSearchHandler registers candidate search routes. exportLimit guards the
// export endpoint.
func NewSearchHandler(protected *gin.RouterGroup, searchUC domain.SearchUsecase, exportLimit gin.HandlerFunc) {
	handler := &SearchHandler{searchUC: searchUC}

	search := protected.Group("/candidates/search")
	{
		search.GET("", handler.Search)
		search.POST("", handler.SearchVector)
		search.GET("/export", exportLimit, handler.Export)
	}
}

// Search godoc
// @Summary      Search candidates
// @Description  Returns [candidate_id, name] pairs matching every given condition. Empty conditions do not narrow the result; age bounds are exclusive.
// @Tags         search
// @Produce      json
// @Security     BearerAuth
// @Param        gender            query     string  false  "M, F or All (default All)"
// @Param        younger_than      query     int     false  "Age strictly below"
// @Param        older_than        query     int     false  "Age strictly above"
// @Param        city              query     string  false  "City contains"
// @Param        major             query     string  false  "Major contains"
// @Param        work_experience   query     string  false  "Work experience contains"
// @Param        business_skills   query     string  false  "Business skills contain"
// @Param        licences          query     string  false  "Licences contain"
// @Param        languages         query     string  false  "Languages contain"
// @Param        optimal_position  query     string  false  "Optimal position contains"
// @Param        talent_score      query     string  false  "Talent score contains"
// @Param        blacklisted       query     string  false  "Blacklisted flag contains (True/False)"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /candidates/search [get]
func (h *SearchHandler) Search(c *gin.Context) {
	var conditions domain.SearchConditions
	if err := c.ShouldBindQuery(&conditions); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	results, err := h.searchUC.Search(c.Request.Context(), conditions)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidates retrieved", results)
}

// SearchVector godoc
// @Summary      Search candidates by condition vector
// @Description  Accepts up to 12 positional conditions: gender, younger than, older than, city, major, work experience, business skills, licences, languages, optimal position, talent score, blacklisted. Missing trailing slots are empty.
// @Tags         search
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      domain.SearchRequest  true  "Condition vector"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Router       /candidates/search [post]
func (h *SearchHandler) SearchVector(c *gin.Context) {
	var req domain.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	conditions, err := domain.SearchConditionsFromVector(req.Conditions)
	if err != nil {
		c.Error(apperror.InvalidArgument(err))
		return
	}

	results, err := h.searchUC.Search(c.Request.Context(), conditions)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidates retrieved", results)
}

// Export godoc
// @Summary      Export search results
// @Description  Exports the candidates matching the query conditions as XLSX or CSV
// @Tags         search
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce      text/csv
// @Security     BearerAuth
// @Param        format  query     string  false  "xlsx (default) or csv"
// @Param        gender  query     string  false  "Same conditions as GET /candidates/search"
// @Success      200     {file}    file
// @Failure      400     {object}  response.Response
// @Router       /candidates/search/export [get]
func (h *SearchHandler) Export(c *gin.Context) {
	var conditions domain.SearchConditions
	if err := c.ShouldBindQuery(&conditions); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	data, filename, err := h.searchUC.Export(c.Request.Context(), domain.SearchExportRequest{
		Conditions: conditions,
		Format:     c.DefaultQuery("format", "xlsx"),
	})
	if err != nil {
		c.Error(err)
		return
	}
	sendExport(c, data, filename)
}
