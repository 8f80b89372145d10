package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"badum_backend/internal/repositories"
	"badum_backend/internal/services"
)

type PublicHandler struct {
	BaseHandler
	public *services.PublicService
}

func NewPublicHandler(public *services.PublicService) *PublicHandler {
	return &PublicHandler{public: public}
}

func (h *PublicHandler) RegisterRoutes(r *gin.RouterGroup) {
	group := r.Group("/public")
	group.GET("/musicians", h.SearchMusicians)
	group.GET("/musicians/:id", h.GetMusician)
	group.GET("/bands", h.SearchBands)
	group.GET("/bands/:id", h.GetBand)
}

func (h *PublicHandler) SearchMusicians(c *gin.Context) {
	page, limit := pagination(c)
	filter := repositories.MusicianAdFilter{
		InstrumentID: queryUint(c, "instrument_id"),
		GenreID:      queryUint(c, "genre_id"),
		CityID:       queryUint(c, "city_id"),
		Experience:   queryInt(c, "exp"),
		Page:         page,
		Limit:        limit,
	}

	result, err := h.public.SearchMusicians(c.Request.Context(), filter)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *PublicHandler) GetMusician(c *gin.Context) {
	adID, ok := h.ParamUint(c, "id")
	if !ok {
		return
	}

	ad, err := h.public.GetMusicianAd(c.Request.Context(), adID)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, ad)
}

func (h *PublicHandler) SearchBands(c *gin.Context) {
	page, limit := pagination(c)
	filter := repositories.BandAdFilter{
		InstrumentID: queryUint(c, "instrument_id"),
		GenreID:      queryUint(c, "genre_id"),
		CityID:       queryUint(c, "city_id"),
		Experience:   queryInt(c, "exp"),
		Page:         page,
		Limit:        limit,
	}

	result, err := h.public.SearchBandAds(c.Request.Context(), filter)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *PublicHandler) GetBand(c *gin.Context) {
	adID, ok := h.ParamUint(c, "id")
	if !ok {
		return
	}

	ad, err := h.public.GetBandAd(c.Request.Context(), adID)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, ad)
}
