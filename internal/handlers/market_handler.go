package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"badum_backend/internal/repositories"
	"badum_backend/internal/services"
	"badum_backend/internal/services/dto"
)

type MarketHandler struct {
	BaseHandler
	market *services.MarketService
}

func NewMarketHandler(market *services.MarketService) *MarketHandler {
	return &MarketHandler{market: market}
}

// RegisterRoutes splits the market surface: search and detail are
// public, everything else requires authentication.
func (h *MarketHandler) RegisterRoutes(public, authed *gin.RouterGroup) {
	public.GET("/market", h.Search)
	public.GET("/market/:id", h.Get)

	group := authed.Group("/market")
	group.POST("", h.Create)
	group.GET("/my", h.My)
	group.PUT("/:id", h.Update)
	group.DELETE("/:id", h.Delete)
}

func (h *MarketHandler) Search(c *gin.Context) {
	page, limit := pagination(c)
	filter := repositories.MarketAdFilter{
		CityID:           queryUint(c, "city_id"),
		IsNew:            queryBool(c, "is_new"),
		PossibleExchange: queryBool(c, "possible_exchange"),
		MinPrice:         queryInt64(c, "min_price"),
		MaxPrice:         queryInt64(c, "max_price"),
		Page:             page,
		Limit:            limit,
	}

	result, err := h.market.Search(c.Request.Context(), filter)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *MarketHandler) Get(c *gin.Context) {
	adID, ok := h.ParamUint(c, "id")
	if !ok {
		return
	}

	ad, err := h.market.Get(c.Request.Context(), adID)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, ad)
}

func (h *MarketHandler) My(c *gin.Context) {
	userID, ok := h.Principal(c)
	if !ok {
		return
	}

	ads, err := h.market.ListMy(c.Request.Context(), userID)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, ads)
}

func (h *MarketHandler) Create(c *gin.Context) {
	userID, ok := h.Principal(c)
	if !ok {
		return
	}

	var req dto.CreateMarketAdRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	resp, err := h.market.Create(c.Request.Context(), userID, req)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *MarketHandler) Update(c *gin.Context) {
	userID, ok := h.Principal(c)
	if !ok {
		return
	}
	adID, ok := h.ParamUint(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateMarketAdRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	if err := h.market.Update(c.Request.Context(), userID, adID, req); err != nil {
		h.Error(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func (h *MarketHandler) Delete(c *gin.Context) {
	userID, ok := h.Principal(c)
	if !ok {
		return
	}
	adID, ok := h.ParamUint(c, "id")
	if !ok {
		return
	}

	if err := h.market.Delete(c.Request.Context(), userID, adID); err != nil {
		h.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
