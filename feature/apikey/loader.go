package apikey

import (
	"yukari-engine/core/secret"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature exposes the API key store over HTTP.
type Feature struct {
	handler *Handler
}

// NewFeature creates the apikey feature around an already loaded store.
func NewFeature(store *secret.Store, cfg secret.Config, logger *zap.Logger) *Feature {
	return &Feature{handler: NewHandler(store, cfg.Strict, logger)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "apikey"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
