package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/logistservice/logist/internal/domain/model"
	"github.com/logistservice/logist/internal/server/http/dto"
)

// ClientHandler manages client directory endpoints.
type ClientHandler struct {
	facade ClientFacade
}

// NewClientHandler constructs ClientHandler.
func NewClientHandler(facade ClientFacade) *ClientHandler {
	return &ClientHandler{facade: facade}
}

// Create handles POST /api/clients.
func (h *ClientHandler) Create(c *gin.Context) {
	var body dto.ClientRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	client, err := h.facade.CreateClient(c.Request.Context(), clientFromRequest(0, body))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toClientResponse(*client))
}

// Get handles GET /api/clients/:id.
func (h *ClientHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	client, err := h.facade.Client(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toClientResponse(*client))
}

// List handles GET /api/clients.
func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.facade.Clients(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]dto.ClientResponse, 0, len(clients))
	for _, client := range clients {
		response = append(response, toClientResponse(client))
	}
	c.JSON(http.StatusOK, response)
}

// Update handles PUT /api/clients/:id.
func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var body dto.ClientRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	client := clientFromRequest(id, body)
	if err := h.facade.UpdateClient(c.Request.Context(), client); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toClientResponse(*client))
}

// Delete handles DELETE /api/clients/:id.
func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.facade.DeleteClient(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func clientFromRequest(id int64, body dto.ClientRequest) *model.Client {
	active := true
	if body.Active != nil {
		active = *body.Active
	}
	return &model.Client{
		ID:            id,
		Name:          body.Name,
		ContactPerson: body.ContactPerson,
		Phone:         body.Phone,
		Email:         body.Email,
		TaxNumber:     body.TaxNumber,
		City:          body.City,
		Address:       body.Address,
		Active:        active,
	}
}

func toClientResponse(client model.Client) dto.ClientResponse {
	return dto.ClientResponse{
		ID:            client.ID,
		Name:          client.Name,
		ContactPerson: client.ContactPerson,
		Phone:         client.Phone,
		Email:         client.Email,
		TaxNumber:     client.TaxNumber,
		City:          client.City,
		Address:       client.Address,
		Active:        client.Active,
		CreatedAt:     client.CreatedAt,
	}
}
