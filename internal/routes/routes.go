package routes

import (
	"github.com/gin-gonic/gin"

	"badum_backend/internal/auth"
	"badum_backend/internal/config"
	"badum_backend/internal/handlers"
	"badum_backend/internal/middleware"
	"badum_backend/internal/services"
)

// Register wires every handler under /api/v1. Search, detail and
// directory endpoints are public; the rest sits behind the auth
// middleware.
func Register(router *gin.Engine, reg *services.Registry, tokens *auth.TokenManager, upload config.UploadConfig) {
	api := router.Group("/api/v1")
	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware(tokens))

	handlers.NewAuthHandler(reg.Auth).RegisterRoutes(api)
	handlers.NewPublicHandler(reg.Public).RegisterRoutes(api)
	handlers.NewDirectoryHandler(reg.Directory).RegisterRoutes(api)

	handlers.NewUserHandler(reg.Users).RegisterRoutes(authed)
	handlers.NewBandHandler(reg.Bands, reg.BandAds, reg.Images).RegisterRoutes(authed)
	handlers.NewMusicianAdHandler(reg.MusicianAds).RegisterRoutes(authed)
	handlers.NewAdminHandler(reg.MusicianAds, reg.Bands).RegisterRoutes(authed)
	handlers.NewMarketHandler(reg.Market).RegisterRoutes(api, authed)
	handlers.NewUploadHandler(reg.Images, upload.MaxFileSize).RegisterRoutes(authed)
}
