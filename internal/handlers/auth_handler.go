package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"badum_backend/internal/services"
	"badum_backend/internal/services/dto"
)

type AuthHandler struct {
	BaseHandler
	auth *services.AuthService
}

func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

func (h *AuthHandler) RegisterRoutes(r *gin.RouterGroup) {
	group := r.Group("/auth")
	group.POST("/sign-up", h.SignUp)
	group.POST("/verify-email", h.VerifyEmail)
	group.POST("/check-email", h.CheckEmail)
	group.POST("/sign-in", h.SignIn)
}

func (h *AuthHandler) SignUp(c *gin.Context) {
	var req dto.SignUpRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	resp, err := h.auth.SignUp(c.Request.Context(), req)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	var req dto.VerifyEmailRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	if err := h.auth.VerifyEmail(c.Request.Context(), req); err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Email verified"})
}

func (h *AuthHandler) CheckEmail(c *gin.Context) {
	var req dto.CheckEmailRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	resp, err := h.auth.CheckEmail(c.Request.Context(), req)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) SignIn(c *gin.Context) {
	var req dto.SignInRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	tokens, err := h.auth.SignIn(c.Request.Context(), req)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, tokens)
}
