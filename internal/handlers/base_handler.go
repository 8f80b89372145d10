package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"badum_backend/internal/apperrors"
	"badum_backend/internal/middleware"
	"badum_backend/internal/validator"
)

// BaseHandler carries the binding, validation and error helpers shared
// by all handlers.
type BaseHandler struct{}

// BindAndValidate binds the JSON body and runs struct validation.
// Returns false after writing the error response.
func (h *BaseHandler) BindAndValidate(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body"))
		return false
	}
	if err := validator.Validate(dst); err != nil {
		if verr, ok := err.(*validator.ValidationError); ok {
			apperrors.HandleError(c, apperrors.ValidationError(verr.Errors))
		} else {
			apperrors.HandleError(c, apperrors.InternalError(err))
		}
		return false
	}
	return true
}

// Error renders a service error.
func (h *BaseHandler) Error(c *gin.Context, err error) {
	apperrors.HandleError(c, err)
}

// Principal returns the authenticated user id, writing 401 when the
// middleware did not run.
func (h *BaseHandler) Principal(c *gin.Context) (uint, bool) {
	id, ok := middleware.UserID(c)
	if !ok {
		apperrors.HandleError(c, apperrors.ErrUnauthorized)
	}
	return id, ok
}

// ParamUint parses a numeric path parameter, writing 400 on failure.
func (h *BaseHandler) ParamUint(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid "+name))
		return 0, false
	}
	return uint(v), true
}

// Query parsing helpers for the optional search filters. A missing or
// malformed value imposes no constraint.

func queryUint(c *gin.Context, name string) *uint {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil
	}
	u := uint(v)
	return &u
}

func queryInt(c *gin.Context, name string) *int {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}

func queryInt64(c *gin.Context, name string) *int64 {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &v
}

func queryBool(c *gin.Context, name string) *bool {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &v
}

// pagination returns page and limit clamped to a minimum of 1.
func pagination(c *gin.Context) (int, int) {
	page := 1
	if v := queryInt(c, "page"); v != nil && *v > 0 {
		page = *v
	}
	limit := 20
	if v := queryInt(c, "limit"); v != nil && *v > 0 {
		limit = *v
	}
	return page, limit
}
