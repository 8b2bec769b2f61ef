// Package config provides configuration management for the engine.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional config.yaml, after godotenv has loaded the .env file. Every field has a
// default in its struct tag, so the server runs with no configuration at all.
//
// # Configuration Structure
//
//   - Server: loopback host, port range (50027-50050), swagger toggle
//   - Log: logging level and format
//   - Assets: packaged and source UI roots, optional pinned root
//   - APIKey: persisted key file, key name, env mirroring, strict persistence
//
// Environment variables use the upper-cased key with dots replaced by
// underscores, e.g. SERVER_BASE_PORT or ASSETS_PIN_ROOT.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.BasePort)
package config
