package handlers

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"badum_backend/internal/apperrors"
	"badum_backend/internal/models"
	"badum_backend/internal/services"
)

type UploadHandler struct {
	BaseHandler
	images      *services.ImageService
	maxFileSize int64
}

func NewUploadHandler(images *services.ImageService, maxFileSize int64) *UploadHandler {
	return &UploadHandler{images: images, maxFileSize: maxFileSize}
}

func (h *UploadHandler) RegisterRoutes(r *gin.RouterGroup) {
	group := r.Group("/upload")
	group.POST("/avatar", h.UploadAvatar)
	group.POST("/market", h.UploadMarketImage)
	group.DELETE("/market/:id", h.DeleteMarketImage)

	r.DELETE("/avatar", h.DeleteAvatar)
}

func (h *UploadHandler) UploadAvatar(c *gin.Context) {
	userID, ok := h.Principal(c)
	if !ok {
		return
	}

	ownerType := c.PostForm("owner_type")
	if ownerType == "" {
		ownerType = models.OwnerTypeUser
	}

	var bandID uint
	if ownerType == models.OwnerTypeGroup {
		v, err := strconv.ParseUint(c.PostForm("band_id"), 10, 32)
		if err != nil {
			h.Error(c, apperrors.NewBadRequestError("band_id is required for group avatars"))
			return
		}
		bandID = uint(v)
	}

	data, ok := h.readImage(c)
	if !ok {
		return
	}

	avatar, err := h.images.UploadAvatar(c.Request.Context(), userID, ownerType, bandID, data)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, avatar)
}

// DeleteAvatar removes the caller's avatar. A user_id query parameter
// targets another account; the service only honors it for platform
// admins.
func (h *UploadHandler) DeleteAvatar(c *gin.Context) {
	userID, ok := h.Principal(c)
	if !ok {
		return
	}

	ownerID := userID
	if raw := c.Query("user_id"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			h.Error(c, apperrors.NewBadRequestError("Invalid user_id"))
			return
		}
		ownerID = uint(v)
	}

	err := h.images.DeleteAvatar(c.Request.Context(), userID, models.OwnerTypeUser, ownerID)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *UploadHandler) UploadMarketImage(c *gin.Context) {
	userID, ok := h.Principal(c)
	if !ok {
		return
	}

	data, ok := h.readImage(c)
	if !ok {
		return
	}

	resp, err := h.images.UploadMarketImage(c.Request.Context(), userID, data)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *UploadHandler) DeleteMarketImage(c *gin.Context) {
	userID, ok := h.Principal(c)
	if !ok {
		return
	}
	imageID, ok := h.ParamUint(c, "id")
	if !ok {
		return
	}

	if err := h.images.DeleteMarketImage(c.Request.Context(), userID, imageID); err != nil {
		h.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// readImage pulls the multipart "image" field, enforcing the size cap.
func (h *UploadHandler) readImage(c *gin.Context) ([]byte, bool) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		h.Error(c, apperrors.NewBadRequestError("image file is required"))
		return nil, false
	}
	if fileHeader.Size > h.maxFileSize {
		h.Error(c, apperrors.ErrFileTooLarge)
		return nil, false
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.Error(c, apperrors.InternalError(err))
		return nil, false
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, h.maxFileSize+1))
	if err != nil {
		h.Error(c, apperrors.InternalError(err))
		return nil, false
	}
	if int64(len(data)) > h.maxFileSize {
		h.Error(c, apperrors.ErrFileTooLarge)
		return nil, false
	}
	return data, true
}
