package apikey

import (
	"encoding/json"
	"errors"

	"yukari-engine/core/logger"
	"yukari-engine/core/secret"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SetRequest is the body of POST /api/set_apikey.
type SetRequest struct {
	APIKey *string `json:"apikey"`
}

// SetResponse reports how far the update got.
type SetResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Persisted bool   `json:"persisted"`
	Error     string `json:"error,omitempty"`
}

// Handler handles HTTP requests for the API key.
type Handler struct {
	store  *secret.Store
	strict bool
	logger *zap.Logger
}

// NewHandler creates a new HTTP handler. With strict set, a key that could not be
// written to disk is answered with 500 instead of a partial success.
func NewHandler(store *secret.Store, strict bool, logger *zap.Logger) *Handler {
	return &Handler{store: store, strict: strict, logger: logger}
}

// RegisterRoutes registers the API key routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Post("/api/set_apikey", h.HandleSetKey)
	app.Get("/api/apikey", h.HandleGetKey)
}

// HandleSetKey stores a new API key.
// @Summary Set API Key
// @Description Replaces the API key in memory and rewrites the persisted record. A failed disk write still updates memory and is reported as status "partial".
// @Tags apikey
// @Accept json
// @Produce json
// @Param body body SetRequest true "New key"
// @Success 200 {object} SetResponse "Key stored"
// @Failure 400 {object} map[string]string "Malformed body"
// @Failure 500 {object} SetResponse "Key not persisted (strict mode)"
// @Router /api/set_apikey [post]
func (h *Handler) HandleSetKey(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	var req SetRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		l.Warn("Malformed set_apikey body", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON body"})
	}
	if req.APIKey == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing field: apikey"})
	}

	res := h.store.Set(*req.APIKey)
	switch res.Status {
	case secret.SetPersisted:
		return c.JSON(SetResponse{
			Status:    "ok",
			Message:   "API key set successfully",
			Persisted: true,
		})
	case secret.SetMemoryOnly:
		l.Warn("API key kept in memory only", zap.Error(res.Err))
		resp := SetResponse{
			Status:  "partial",
			Message: "API key set, but it could not be saved to disk",
			Error:   res.Err.Error(),
		}
		if h.strict {
			return c.Status(fiber.StatusInternalServerError).JSON(resp)
		}
		return c.JSON(resp)
	default:
		if errors.Is(res.Err, secret.ErrEmptyKey) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": res.Err.Error()})
		}
		l.Error("Failed to set API key", zap.Error(res.Err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": res.Err.Error()})
	}
}

// HandleGetKey returns the current API key as plain text.
// @Summary Get API Key
// @Description Returns the stored API key.
// @Tags apikey
// @Produce plain
// @Success 200 {string} string "API key"
// @Failure 404 {string} string "API key not found"
// @Router /api/apikey [get]
func (h *Handler) HandleGetKey(c *fiber.Ctx) error {
	key, err := h.store.Get()
	if err != nil {
		return c.Status(fiber.StatusNotFound).SendString("API key not found")
	}
	return c.SendString(key)
}
