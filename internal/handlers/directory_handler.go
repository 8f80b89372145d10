package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"badum_backend/internal/services"
)

type DirectoryHandler struct {
	BaseHandler
	directory *services.DirectoryService
}

func NewDirectoryHandler(directory *services.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{directory: directory}
}

func (h *DirectoryHandler) RegisterRoutes(r *gin.RouterGroup) {
	group := r.Group("/directory")
	group.GET("/cities", h.Cities)
	group.GET("/instruments", h.Instruments)
	group.GET("/genres", h.Genres)
}

func (h *DirectoryHandler) Cities(c *gin.Context) {
	cities, err := h.directory.Cities(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, cities)
}

func (h *DirectoryHandler) Instruments(c *gin.Context) {
	instruments, err := h.directory.Instruments(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, instruments)
}

func (h *DirectoryHandler) Genres(c *gin.Context) {
	genres, err := h.directory.Genres(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, genres)
}
