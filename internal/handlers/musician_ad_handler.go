package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"badum_backend/internal/services"
	"badum_backend/internal/services/dto"
)

type MusicianAdHandler struct {
	BaseHandler
	ads *services.MusicianAdService
}

func NewMusicianAdHandler(ads *services.MusicianAdService) *MusicianAdHandler {
	return &MusicianAdHandler{ads: ads}
}

func (h *MusicianAdHandler) RegisterRoutes(r *gin.RouterGroup) {
	group := r.Group("/my/ads")
	group.GET("", h.List)
	group.POST("", h.Create)
	group.GET("/:id", h.Get)
	group.PUT("/:id", h.Update)
	group.DELETE("/:id", h.Delete)
}

func (h *MusicianAdHandler) List(c *gin.Context) {
	userID, ok := h.Principal(c)
	if !ok {
		return
	}

	ads, err := h.ads.ListMy(c.Request.Context(), userID)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, ads)
}

func (h *MusicianAdHandler) Get(c *gin.Context) {
	userID, ok := h.Principal(c)
	if !ok {
		return
	}
	adID, ok := h.ParamUint(c, "id")
	if !ok {
		return
	}

	ad, err := h.ads.GetMy(c.Request.Context(), userID, adID)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, ad)
}

func (h *MusicianAdHandler) Create(c *gin.Context) {
	userID, ok := h.Principal(c)
	if !ok {
		return
	}

	var req dto.CreateMusicianAdRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	resp, err := h.ads.Create(c.Request.Context(), userID, req)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *MusicianAdHandler) Update(c *gin.Context) {
	userID, ok := h.Principal(c)
	if !ok {
		return
	}
	adID, ok := h.ParamUint(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateMusicianAdRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	ad, err := h.ads.Update(c.Request.Context(), userID, adID, req)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, ad)
}

func (h *MusicianAdHandler) Delete(c *gin.Context) {
	userID, ok := h.Principal(c)
	if !ok {
		return
	}
	adID, ok := h.ParamUint(c, "id")
	if !ok {
		return
	}

	if err := h.ads.Delete(c.Request.Context(), userID, adID); err != nil {
		h.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
