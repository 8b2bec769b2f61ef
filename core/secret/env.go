package secret

import (
	"os"

	"go.uber.org/zap"
)

// EnvMirror returns an observer exporting every new key as the named environment
// variable, for collaborators that read it from the process environment.
func EnvMirror(name string, logger *zap.Logger) Observer {
	return func(value string) {
		if err := os.Setenv(name, value); err != nil {
			logger.Warn("Failed to mirror API key to environment", zap.String("env", name), zap.Error(err))
		}
	}
}
