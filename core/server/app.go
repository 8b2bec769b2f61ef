package server

import (
	"errors"
	"net"

	"yukari-engine/core/logger"
	"yukari-engine/core/middleware/cors"
	"yukari-engine/core/middleware/rayid"
	"yukari-engine/core/version"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// NewApp creates the Fiber app with the global middleware chain installed.
// Features register their routes on it afterwards.
func NewApp(logg *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               version.String(),
		DisableStartupMessage: true, // Allocate logs the chosen address
	})

	// RayID must be first so everything after it can log the id.
	app.Use(rayid.New())
	app.Use(cors.New())
	app.Use(requestLogger(logg))

	return app
}

// Serve blocks serving app on the allocated listener.
func Serve(app *fiber.App, ln net.Listener) error {
	return app.Listener(ln)
}

func requestLogger(logg *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		l := logger.WithRayID(logg, c)
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		fields := []zap.Field{
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
			zap.Int("status", status),
		}
		if err != nil && status >= fiber.StatusInternalServerError {
			l.Error("Request error", append(fields, zap.Error(err))...)
		} else {
			l.Debug("Request handled", fields...)
		}
		return err
	}
}
