package v1

import (
	"net/http"

	"go-recruitment-ops/internal/delivery/http/response"
	"go-recruitment-ops/internal/domain"
	"go-recruitment-ops/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	projectUC domain.ProjectUsecase
}

// NewProjectHandler registers project routes
func NewProjectHandler(protected *gin.RouterGroup, projectUC domain.ProjectUsecase) {
	handler := &ProjectHandler{projectUC: projectUC}

	projects := protected.Group("/projects")
	{
		projects.GET("", handler.Preview)
		projects.POST("", handler.Create)
		projects.GET("/:id", handler.Get)
		projects.PUT("/:id", handler.Update)
	}
}

// Preview godoc
// @Summary      List projects
// @Description  Returns [project_id, client_id, project_name] triples
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Router       /projects [get]
func (h *ProjectHandler) Preview(c *gin.Context) {
	previews, err := h.projectUC.Preview(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Projects retrieved", previews)
}

// Get godoc
// @Summary      Get a project
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Project ID"
// @Success      200  {object}  response.Response{data=domain.Project}
// @Failure      404  {object}  response.Response
// @Router       /projects/{id} [get]
func (h *ProjectHandler) Get(c *gin.Context) {
	project, err := h.projectUC.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Project retrieved", project)
}

// Create godoc
// @Summary      Create a project
// @Description  The referenced client must exist; the project id is assigned by the server
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        project  body      domain.Project  true  "Project JSON"
// @Success      201      {object}  response.Response{data=domain.Project}
// @Failure      400      {object}  response.Response
// @Failure      502      {object}  response.Response
// @Router       /projects [post]
func (h *ProjectHandler) Create(c *gin.Context) {
	var req domain.Project
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	project, err := h.projectUC.Create(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Project created", project)
}

// Update godoc
// @Summary      Update a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string          true  "Project ID"
// @Param        project  body      domain.Project  true  "Project JSON"
// @Success      200      {object}  response.Response{data=domain.Project}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      502      {object}  response.Response
// @Router       /projects/{id} [put]
func (h *ProjectHandler) Update(c *gin.Context) {
	var req domain.Project
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	project, err := h.projectUC.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Project updated", project)
}
