// Package service contains the business logic of the marketplace server:
// roster-validated signup, credential verification, session token issuance
// and parsing, and ownership-checked listing management.
package service

import (
	"github.com/campusmarket/campus-market/internal/config"
	"github.com/campusmarket/campus-market/internal/logger"
	"github.com/campusmarket/campus-market/internal/store"
)

// Services bundles every service the HTTP layer depends on.
type Services struct {
	AuthService
	MarketplaceService
}

// NewServices wires all services to the given storages and configuration.
func NewServices(storages *store.Storages, cfg config.App, log *logger.Logger) *Services {
	childLog := log.GetChildLogger()

	return &Services{
		AuthService:        NewAuthService(storages.RosterRepository, storages.UserRepository, cfg, childLog),
		MarketplaceService: NewMarketplaceService(storages.ItemRepository, childLog),
	}
}
