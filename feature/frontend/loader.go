package frontend

import (
	"yukari-engine/core/assets"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Feature serves static assets for every path no other feature claimed.
type Feature struct {
	handler *Handler
}

// NewFeature creates the frontend feature reading from fsys.
func NewFeature(fsys afero.Fs, cfg assets.Config, logger *zap.Logger) *Feature {
	return &Feature{handler: NewHandler(assets.NewResolver(fsys, cfg), logger)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "frontend"
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
