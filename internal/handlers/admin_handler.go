package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"badum_backend/internal/services"
	"badum_backend/internal/services/dto"
)

// AdminHandler serves the platform-admin creation paths. The services
// re-check the admin flag; routing only requires authentication.
type AdminHandler struct {
	BaseHandler
	ads   *services.MusicianAdService
	bands *services.BandService
}

func NewAdminHandler(ads *services.MusicianAdService, bands *services.BandService) *AdminHandler {
	return &AdminHandler{ads: ads, bands: bands}
}

func (h *AdminHandler) RegisterRoutes(r *gin.RouterGroup) {
	group := r.Group("/admin")
	group.POST("/ads", h.CreateAd)
	group.POST("/bands", h.CreateBand)
}

func (h *AdminHandler) CreateAd(c *gin.Context) {
	userID, ok := h.Principal(c)
	if !ok {
		return
	}

	var req dto.AdminCreateMusicianAdRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	resp, err := h.ads.AdminCreate(c.Request.Context(), userID, req)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *AdminHandler) CreateBand(c *gin.Context) {
	userID, ok := h.Principal(c)
	if !ok {
		return
	}

	var req dto.AdminCreateBandRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	band, err := h.bands.AdminCreate(c.Request.Context(), userID, req)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, band)
}
