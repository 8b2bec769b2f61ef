package version

import (
	"yukari-engine/core/version"

	"github.com/gofiber/fiber/v2"
)

// Handler serves the build identity.
type Handler struct{}

// NewHandler creates a new HTTP handler.
func NewHandler() *Handler {
	return &Handler{}
}

// RegisterRoutes registers the version route.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/api/version", h.HandleVersion)
}

// HandleVersion returns the fixed version string.
// @Summary Get Version
// @Description Returns the engine name and version.
// @Tags version
// @Produce plain
// @Success 200 {string} string "yukari-engine: 0.1.0"
// @Router /api/version [get]
func (h *Handler) HandleVersion(c *fiber.Ctx) error {
	return c.SendString(version.String())
}
