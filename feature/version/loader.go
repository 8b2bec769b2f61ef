package version

import "github.com/gofiber/fiber/v2"

// Feature exposes the version endpoint.
type Feature struct {
	handler *Handler
}

// NewFeature creates the version feature.
func NewFeature() *Feature {
	return &Feature{handler: NewHandler()}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "version"
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
