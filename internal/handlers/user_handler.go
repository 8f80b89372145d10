package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"badum_backend/internal/services"
	"badum_backend/internal/services/dto"
)

type UserHandler struct {
	BaseHandler
	users *services.UserService
}

func NewUserHandler(users *services.UserService) *UserHandler {
	return &UserHandler{users: users}
}

func (h *UserHandler) RegisterRoutes(r *gin.RouterGroup) {
	group := r.Group("/users")
	group.GET("/me", h.Me)
	group.PUT("/me", h.UpdateMe)
}

func (h *UserHandler) Me(c *gin.Context) {
	userID, ok := h.Principal(c)
	if !ok {
		return
	}

	profile, err := h.users.GetProfile(c.Request.Context(), userID)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *UserHandler) UpdateMe(c *gin.Context) {
	userID, ok := h.Principal(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	profile, err := h.users.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}
