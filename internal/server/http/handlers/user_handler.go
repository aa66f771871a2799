package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/logistservice/logist/internal/domain/model"
	"github.com/logistservice/logist/internal/server/http/dto"
)

// UserHandler manages account administration endpoints.
type UserHandler struct {
	facade UserFacade
}

// NewUserHandler constructs UserHandler.
func NewUserHandler(facade UserFacade) *UserHandler {
	return &UserHandler{facade: facade}
}

// Create handles POST /api/users.
func (h *UserHandler) Create(c *gin.Context) {
	var body dto.UserRequest
	if err := c.ShouldBindJSON(&body); err != nil || body.Password == "" {
		c.Status(http.StatusBadRequest)
		return
	}

	user, err := h.facade.CreateUser(c.Request.Context(), userFromRequest(0, body), body.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toUserResponse(*user))
}

// List handles GET /api/users.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.facade.Users(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]dto.UserResponse, 0, len(users))
	for _, user := range users {
		response = append(response, toUserResponse(user))
	}
	c.JSON(http.StatusOK, response)
}

// Update handles PUT /api/users/:id. An empty password keeps the stored one.
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var body dto.UserRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	user := userFromRequest(id, body)
	if err := h.facade.UpdateUser(c.Request.Context(), user, body.Password); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(*user))
}

// Delete handles DELETE /api/users/:id.
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.facade.DeleteUser(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func userFromRequest(id int64, body dto.UserRequest) *model.User {
	active := true
	if body.Active != nil {
		active = *body.Active
	}
	roles := body.Roles
	if len(roles) == 0 {
		roles = []string{model.RoleUser}
	}
	return &model.User{
		ID:       id,
		Username: body.Username,
		FullName: body.FullName,
		Email:    body.Email,
		Active:   active,
		Roles:    roles,
	}
}

func toUserResponse(user model.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		FullName:  user.FullName,
		Email:     user.Email,
		Active:    user.Active,
		Roles:     user.Roles,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
