package static

import (
	"fmt"
	"os"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature serves the app's files straight off disk.
type Feature struct {
	root string
	log  *zap.Logger
}

// NewFeature creates the static file feature rooted at root.
func NewFeature(root string, log *zap.Logger) *Feature {
	return &Feature{root: root, log: log}
}

// Name returns the feature identifier.
func (f *Feature) Name() string {
	return "static"
}

// IsEnabled reports whether the feature can be loaded. Serving without a
// root makes no sense, so an empty root disables the feature.
func (f *Feature) IsEnabled() bool {
	return f.root != ""
}

// Load verifies the root and mounts the file handler at /. Fiber's static
// handler supplies the serving semantics: file contents with the content
// type inferred from the extension, index.html for directories that have
// one, a generated listing for those that don't, and 404 for missing paths.
func (f *Feature) Load(app fiber.Router) error {
	fi, err := os.Stat(f.root)
	if err != nil {
		return fmt.Errorf("static root: %w", err)
	}
	if !fi.IsDir() {
		return fmt.Errorf("static root %q is not a directory", f.root)
	}

	f.log.Info("Serving static files", zap.String("root", f.root))

	app.Static("/", f.root, fiber.Static{
		Browse: true,
	})
	return nil
}
