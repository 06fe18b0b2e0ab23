package deps

import (
	"github.com/cleanninja/clean_ninja_api/config"
	"github.com/cleanninja/clean_ninja_api/internal/identity"
	"github.com/cleanninja/clean_ninja_api/internal/waste"
	"github.com/cleanninja/clean_ninja_api/util/storage"
	"github.com/cleanninja/clean_ninja_api/util/websockets"
)

type Dependencies struct {
	Waste     *waste.Service
	Identity  *identity.Context
	Images    storage.ImageStore
	WebSocket *websockets.WebSocketManager
}

func New(cfg *config.Config) *Dependencies {
	var images storage.ImageStore
	if cfg.DevMode {
		images = storage.NewMemory()
	} else {
		images = storage.NewCloudinary(cfg)
	}

	service := waste.NewService()
	if cfg.DevMode {
		waste.Seed(service)
	}

	deps := Dependencies{
		Waste:     service,
		Identity:  identity.New(),
		Images:    images,
		WebSocket: websockets.NewWebSocketManager(),
	}
	return &deps
}
