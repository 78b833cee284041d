// Package server holds the HTTP server and its configuration.
//
// The Server type wraps a Fiber application and owns the full lifecycle:
// middleware installation at construction, feature loading and port binding
// in Bind, the blocking accept loop in Serve, and graceful termination in
// Shutdown. Separating Bind from Serve keeps startup failures (notably
// ErrPortInUse) distinguishable from anything that happens while serving.
//
// # Configuration
//
// The Config struct defines the listen port, the static root directory and
// whether a browser is opened on startup. ResolveRoot implements the
// default of serving from the directory containing the executable.
package server
