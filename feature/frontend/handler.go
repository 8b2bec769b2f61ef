package frontend

import (
	"errors"
	"net/url"
	"path"

	"yukari-engine/core/assets"
	"yukari-engine/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves the front end's static files.
type Handler struct {
	resolver *assets.Resolver
	logger   *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(resolver *assets.Resolver, logger *zap.Logger) *Handler {
	return &Handler{resolver: resolver, logger: logger}
}

// RegisterRoutes registers the catch-all route. It must be registered after every
// exact route.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/*", h.HandleAsset)
}

// HandleAsset serves a file from the active asset root.
// Unmatched /api paths get 204 without any filesystem access.
func (h *Handler) HandleAsset(c *fiber.Ctx) error {
	p := c.Params("*")
	if unescaped, err := url.PathUnescape(p); err == nil {
		p = unescaped
	}

	asset, err := h.resolver.Resolve(p)
	switch {
	case errors.Is(err, assets.ErrReservedPath):
		return c.SendStatus(fiber.StatusNoContent)
	case errors.Is(err, assets.ErrAssetNotFound):
		logger.WithRayID(h.logger, c).Debug("Asset not found", zap.String("path", p))
		return c.Status(fiber.StatusNotFound).SendString("File not found")
	case err != nil:
		return err
	}

	if ext := path.Ext(asset.Name); ext != "" {
		c.Type(ext)
	}
	return c.Send(asset.Body)
}
