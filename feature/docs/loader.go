// Package docs mounts the swagger UI under /api/docs when enabled.
package docs

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	_ "yukari-engine/docs/swagger"
)

// Feature serves the generated API documentation.
type Feature struct {
	enabled bool
}

// NewFeature creates the docs feature. It only registers routes when enabled.
func NewFeature(enabled bool) *Feature {
	return &Feature{enabled: enabled}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "docs"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.enabled
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	app.Get("/api/docs/*", swagger.HandlerDefault)
	return nil
}
