package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/frogmanjhb/checkinapp/core/browser"
	"github.com/frogmanjhb/checkinapp/core/config"
	"github.com/frogmanjhb/checkinapp/core/logger"
	"github.com/frogmanjhb/checkinapp/core/server"
	"github.com/frogmanjhb/checkinapp/feature/static"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the check-in app server",
	Long:  `Starts the static file server, opens the browser and runs until interrupted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.OutOrStdout())
	},
}

func runServe(out io.Writer) error {
	// 1. Load Configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// 2. Initialize Logger
	logg, err := logger.New(&cfg.Log)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logg.Sync()
	zap.ReplaceGlobals(logg)

	if err := cfg.Server.Validate(); err != nil {
		return err
	}

	// 3. Resolve the directory we serve from. By default this is the
	// directory containing the checkinapp binary itself.
	root, err := cfg.Server.ResolveRoot()
	if err != nil {
		return fmt.Errorf("resolving root directory: %w", err)
	}

	// 4. Build Server and register features
	srv := server.New(cfg.Server, logg)
	srv.Register(static.NewFeature(root, logg))

	// 5. Bind. A failed bind is terminal: the port conflict case gets its
	// own message, everything else is reported verbatim.
	if err := srv.Bind(); err != nil {
		if errors.Is(err, server.ErrPortInUse) {
			fmt.Fprintf(out, "❌ Port %d is already in use. Please close other servers or try a different port.\n", cfg.Server.Port)
		} else {
			fmt.Fprintf(out, "❌ Error starting server: %v\n", err)
		}
		return err
	}

	printBanner(out, cfg.Server.URL())

	if cfg.Server.OpenBrowser {
		browser.Open(cfg.Server.URL(), logg)
	}

	// 6. Serve until a fatal server error or an interrupt.
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve()
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			fmt.Fprintf(out, "❌ Error starting server: %v\n", err)
			return err
		}
		return nil
	case <-c:
		fmt.Fprintln(out, "\n👋 Server stopped. Thanks for using REACT!")
		logg.Info("Shutting down server...")
		return srv.Shutdown()
	}
}

// printBanner writes the startup banner. The wording is part of the tool's
// user-facing contract, so keep it stable.
func printBanner(out io.Writer, url string) {
	fmt.Fprintln(out, "🚀 Starting REACT Check-In App...")
	fmt.Fprintf(out, "📱 Server running at %s\n", url)
	fmt.Fprintln(out, "🔑 Demo Credentials:")
	fmt.Fprintln(out, "   Student ID: demo123")
	fmt.Fprintln(out, "   Password: password")
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "🌐 Opening browser...")
	fmt.Fprintln(out, "Press Ctrl+C to stop the server")
	fmt.Fprintln(out, "")
}

func init() {
	RootCmd.AddCommand(serveCmd)
	// The binary is usually launched with no arguments at all, so the bare
	// root command serves too.
	RootCmd.RunE = serveCmd.RunE
}
