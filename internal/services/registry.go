package services

import (
	"gorm.io/gorm"

	"badum_backend/internal/auth"
	"badum_backend/internal/config"
	"badum_backend/internal/email"
	"badum_backend/internal/repositories"
	"badum_backend/internal/storage"
)

// Registry bundles the service layer for handler wiring.
type Registry struct {
	Auth        *AuthService
	Users       *UserService
	Bands       *BandService
	BandAds     *BandAdService
	MusicianAds *MusicianAdService
	Market      *MarketService
	Images      *ImageService
	Public      *PublicService
	Directory   *DirectoryService
	Authorizer  *Authorizer
}

// NewRegistry wires repositories and services over the shared pool.
func NewRegistry(db *gorm.DB, store storage.Storage, tokens *auth.TokenManager, mailer email.Provider, upload config.UploadConfig) *Registry {
	userRepo := repositories.NewUserRepository(db)
	bandRepo := repositories.NewBandRepository(db)
	bandAdRepo := repositories.NewBandAdRepository(db)
	musicianAdRepo := repositories.NewMusicianAdRepository(db)
	marketAdRepo := repositories.NewMarketAdRepository(db)
	marketImageRepo := repositories.NewMarketImageRepository(db)
	imageRepo := repositories.NewImageRepository(db)
	directoryRepo := repositories.NewDirectoryRepository(db)

	authorizer := NewAuthorizer(bandRepo, userRepo)

	return &Registry{
		Auth:        NewAuthService(db, userRepo, tokens, mailer),
		Users:       NewUserService(db, userRepo, imageRepo),
		Bands:       NewBandService(db, bandRepo, bandAdRepo, userRepo, imageRepo, store, authorizer),
		BandAds:     NewBandAdService(db, bandAdRepo, bandRepo, authorizer),
		MusicianAds: NewMusicianAdService(db, musicianAdRepo, authorizer),
		Market:      NewMarketService(db, marketAdRepo, marketImageRepo, userRepo, store),
		Images:      NewImageService(db, imageRepo, marketImageRepo, store, authorizer, upload),
		Public:      NewPublicService(musicianAdRepo, bandAdRepo, bandRepo, userRepo, imageRepo),
		Directory:   NewDirectoryService(directoryRepo),
		Authorizer:  authorizer,
	}
}
