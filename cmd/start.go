package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"yukari-engine/core/config"
	"yukari-engine/core/loader"
	"yukari-engine/core/logger"
	"yukari-engine/core/secret"
	"yukari-engine/core/server"
	"yukari-engine/feature/apikey"
	"yukari-engine/feature/docs"
	"yukari-engine/feature/frontend"
	"yukari-engine/feature/version"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the control server",
	Long:  `Loads the persisted API key, binds the first free loopback port and serves the API and UI.`,
	Args:  cobra.NoArgs,
	RunE:  runStart,
}

func init() {
	RootCmd.AddCommand(startCmd)
}

func runStart(cmd *cobra.Command, args []string) error {
	// 1. Load Configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// 2. Initialize Logger
	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logg.Sync()
	zap.ReplaceGlobals(logg)

	fsys := afero.NewOsFs()

	// 3. Load the persisted API key before accepting requests
	store := newStore(fsys, cfg.APIKey, logg)
	if err := store.Load(); err != nil {
		logg.Warn("Starting without a persisted API key", zap.Error(err))
	}

	// 4. Build the app and register features
	app, err := buildApp(cfg, fsys, store, logg)
	if err != nil {
		return err
	}

	// 5. Find a port
	ln, port, err := server.NewAllocator(cfg.Server, logg).Allocate()
	if err != nil {
		return fmt.Errorf("failed to bind any port up to %d: %w", port, err)
	}

	// 6. Start Server
	errCh := make(chan error, 1)
	go func() {
		logg.Info("Starting server", zap.String("address", ln.Addr().String()))
		errCh <- server.Serve(app, ln)
	}()

	// 7. Graceful Shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return err
	case <-c:
	}
	logg.Info("Shutting down server...")
	return app.Shutdown()
}

func newStore(fsys afero.Fs, cfg secret.Config, logg *zap.Logger) *secret.Store {
	var opts []secret.Option
	if cfg.MirrorEnv {
		opts = append(opts, secret.WithObserver(secret.EnvMirror(cfg.KeyName(), logg)))
	}
	persister := secret.NewDotenvFile(fsys, cfg.File, cfg.KeyName())
	return secret.NewStore(persister, logg, opts...)
}

// buildApp wires the middleware and features. Exact /api routes are registered
// before the frontend catch-all.
func buildApp(cfg *config.Config, fsys afero.Fs, store *secret.Store, logg *zap.Logger) (*fiber.App, error) {
	app := server.NewApp(logg)

	mgr := loader.NewManager(logg)
	mgr.Register(apikey.NewFeature(store, cfg.APIKey, logg))
	mgr.Register(version.NewFeature())
	mgr.Register(docs.NewFeature(cfg.Server.Docs))
	mgr.Register(frontend.NewFeature(fsys, cfg.Assets, logg))

	if err := mgr.LoadAll(app); err != nil {
		return nil, fmt.Errorf("failed to load features: %w", err)
	}
	return app, nil
}
