package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"badum_backend/internal/models"
	"badum_backend/internal/services"
	"badum_backend/internal/services/dto"
)

type BandHandler struct {
	BaseHandler
	bands   *services.BandService
	bandAds *services.BandAdService
	images  *services.ImageService
}

func NewBandHandler(bands *services.BandService, bandAds *services.BandAdService, images *services.ImageService) *BandHandler {
	return &BandHandler{bands: bands, bandAds: bandAds, images: images}
}

func (h *BandHandler) RegisterRoutes(r *gin.RouterGroup) {
	group := r.Group("/bands")
	group.POST("", h.Create)
	group.GET("/my", h.My)
	group.GET("/:id", h.Get)
	group.PUT("/:id", h.Update)
	group.DELETE("/:id", h.Delete)
	group.GET("/:id/members", h.Members)
	group.POST("/:id/members", h.AddMember)
	group.DELETE("/:id/members/:userID", h.RemoveMember)
	group.PUT("/:id/members/:userID/instruments", h.UpdateMemberInstruments)
	group.POST("/:id/ads", h.CreateAd)
	group.GET("/:id/ads", h.ListAds)
	group.DELETE("/:id/avatar", h.DeleteAvatar)
}

func (h *BandHandler) Create(c *gin.Context) {
	userID, ok := h.Principal(c)
	if !ok {
		return
	}

	var req dto.CreateBandRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	band, err := h.bands.Create(c.Request.Context(), userID, req)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, band)
}

func (h *BandHandler) My(c *gin.Context) {
	userID, ok := h.Principal(c)
	if !ok {
		return
	}

	bands, err := h.bands.MyBands(c.Request.Context(), userID)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, bands)
}

func (h *BandHandler) Get(c *gin.Context) {
	bandID, ok := h.ParamUint(c, "id")
	if !ok {
		return
	}

	band, err := h.bands.GetByID(c.Request.Context(), bandID)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, band)
}

func (h *BandHandler) Update(c *gin.Context) {
	userID, ok := h.Principal(c)
	if !ok {
		return
	}
	bandID, ok := h.ParamUint(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateBandRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	band, err := h.bands.Update(c.Request.Context(), userID, bandID, req)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, band)
}

func (h *BandHandler) Delete(c *gin.Context) {
	userID, ok := h.Principal(c)
	if !ok {
		return
	}
	bandID, ok := h.ParamUint(c, "id")
	if !ok {
		return
	}

	if err := h.bands.Delete(c.Request.Context(), userID, bandID); err != nil {
		h.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *BandHandler) Members(c *gin.Context) {
	bandID, ok := h.ParamUint(c, "id")
	if !ok {
		return
	}

	members, err := h.bands.Members(c.Request.Context(), bandID)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, members)
}

func (h *BandHandler) AddMember(c *gin.Context) {
	userID, ok := h.Principal(c)
	if !ok {
		return
	}
	bandID, ok := h.ParamUint(c, "id")
	if !ok {
		return
	}

	var req dto.AddMemberRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	if err := h.bands.AddMember(c.Request.Context(), userID, bandID, req); err != nil {
		h.Error(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

func (h *BandHandler) RemoveMember(c *gin.Context) {
	userID, ok := h.Principal(c)
	if !ok {
		return
	}
	bandID, ok := h.ParamUint(c, "id")
	if !ok {
		return
	}
	memberID, ok := h.ParamUint(c, "userID")
	if !ok {
		return
	}

	if err := h.bands.RemoveMember(c.Request.Context(), userID, bandID, memberID); err != nil {
		h.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *BandHandler) UpdateMemberInstruments(c *gin.Context) {
	userID, ok := h.Principal(c)
	if !ok {
		return
	}
	bandID, ok := h.ParamUint(c, "id")
	if !ok {
		return
	}
	memberID, ok := h.ParamUint(c, "userID")
	if !ok {
		return
	}

	var req dto.UpdateMemberInstrumentsRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	err := h.bands.UpdateMemberInstruments(c.Request.Context(), userID, bandID, memberID, req)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func (h *BandHandler) CreateAd(c *gin.Context) {
	userID, ok := h.Principal(c)
	if !ok {
		return
	}
	bandID, ok := h.ParamUint(c, "id")
	if !ok {
		return
	}

	var req dto.CreateBandAdRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	resp, err := h.bandAds.Create(c.Request.Context(), userID, bandID, req)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *BandHandler) ListAds(c *gin.Context) {
	bandID, ok := h.ParamUint(c, "id")
	if !ok {
		return
	}

	ads, err := h.bandAds.ListByBand(c.Request.Context(), bandID)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, ads)
}

func (h *BandHandler) DeleteAvatar(c *gin.Context) {
	userID, ok := h.Principal(c)
	if !ok {
		return
	}
	bandID, ok := h.ParamUint(c, "id")
	if !ok {
		return
	}

	if err := h.images.DeleteAvatar(c.Request.Context(), userID, models.OwnerTypeGroup, bandID); err != nil {
		h.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
