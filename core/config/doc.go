// Package config provides configuration management for the check-in app server.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Server: HTTP server settings (port, root directory, browser opening)
//   - Log: Logging level and format
//
// Defaults come from the `default` struct tags on each section; environment
// variables override them using underscore-joined keys (SERVER_PORT,
// SERVER_ROOT, SERVER_OPEN_BROWSER, LOG_LEVEL, LOG_FORMAT).
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
