package v1

import (
	"net/http"

	"go-recruitment-ops/internal/delivery/http/response"
	"go-recruitment-ops/internal/domain"
	"go-recruitment-ops/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ClientHandler struct {
	clientUC domain.ClientUsecase
}

// NewClientHandler registers client routes
func NewClientHandler(protected *gin.RouterGroup, clientUC domain.ClientUsecase) {
	handler := &ClientHandler{clientUC: clientUC}

	clients := protected.Group("/clients")
	{
		clients.GET("", handler.Preview)
		clients.POST("", handler.Create)
		clients.GET("/:id", handler.Get)
		clients.PUT("/:id", handler.Update)
	}
}

// Preview godoc
// @Summary      List clients
// @Description  Returns [client_id, company] pairs
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Router       /clients [get]
func (h *ClientHandler) Preview(c *gin.Context) {
	previews, err := h.clientUC.Preview(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Clients retrieved", previews)
}

// Get godoc
// @Summary      Get a client
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Client ID"
// @Success      200  {object}  response.Response{data=domain.Client}
// @Failure      404  {object}  response.Response
// @Router       /clients/{id} [get]
func (h *ClientHandler) Get(c *gin.Context) {
	client, err := h.clientUC.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Client retrieved", client)
}

// Create godoc
// @Summary      Create a client
// @Description  The client id is assigned by the server
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        client  body      domain.Client  true  "Client JSON"
// @Success      201     {object}  response.Response{data=domain.Client}
// @Failure      400     {object}  response.Response
// @Failure      502     {object}  response.Response
// @Router       /clients [post]
func (h *ClientHandler) Create(c *gin.Context) {
	var req domain.Client
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	client, err := h.clientUC.Create(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Client created", client)
}

// Update godoc
// @Summary      Update a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path      string         true  "Client ID"
// @Param        client  body      domain.Client  true  "Client JSON"
// @Success      200     {object}  response.Response{data=domain.Client}
// @Failure      400     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      502     {object}  response.Response
// @Router       /clients/{id} [put]
func (h *ClientHandler) Update(c *gin.Context) {
	var req domain.Client
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	client, err := h.clientUC.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Client updated", client)
}
