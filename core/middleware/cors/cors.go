package cors

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Config configures the CORS middleware.
type Config struct {
	// AllowOrigin is sent as Access-Control-Allow-Origin on every response.
	AllowOrigin string
	// AllowMethods is advertised on preflight responses.
	AllowMethods []string
	// AllowHeaders is advertised on preflight responses.
	AllowHeaders []string
}

// ConfigDefault is wide open, which is what a loopback-only front end needs.
var ConfigDefault = Config{
	AllowOrigin:  "*",
	AllowMethods: []string{fiber.MethodGet, fiber.MethodPost, fiber.MethodOptions},
	AllowHeaders: []string{fiber.HeaderContentType},
}

// New returns a middleware that stamps the allow-origin header on every response,
// whether or not the request carried an Origin header, and answers preflight
// requests with 204.
func New(config ...Config) fiber.Handler {
	cfg := ConfigDefault
	if len(config) > 0 {
		cfg = config[0]
		if cfg.AllowOrigin == "" {
			cfg.AllowOrigin = ConfigDefault.AllowOrigin
		}
		if len(cfg.AllowMethods) == 0 {
			cfg.AllowMethods = ConfigDefault.AllowMethods
		}
		if len(cfg.AllowHeaders) == 0 {
			cfg.AllowHeaders = ConfigDefault.AllowHeaders
		}
	}
	methods := strings.Join(cfg.AllowMethods, ",")
	headers := strings.Join(cfg.AllowHeaders, ",")

	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderAccessControlAllowOrigin, cfg.AllowOrigin)

		if c.Method() != fiber.MethodOptions {
			return c.Next()
		}

		c.Set(fiber.HeaderAccessControlAllowMethods, methods)
		if reqHeaders := c.Get(fiber.HeaderAccessControlRequestHeaders); reqHeaders != "" {
			c.Set(fiber.HeaderAccessControlAllowHeaders, reqHeaders)
		} else {
			c.Set(fiber.HeaderAccessControlAllowHeaders, headers)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
