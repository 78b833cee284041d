// Package browser opens the user's default web browser.
//
// Opening is fire-and-forget: the server must keep running whether or not a
// browser actually appeared, so failures are logged and swallowed.
package browser

import (
	pkgbrowser "github.com/pkg/browser"
	"go.uber.org/zap"
)

// Open launches the default browser at url without blocking the caller.
func Open(url string, log *zap.Logger) {
	go func() {
		if err := pkgbrowser.OpenURL(url); err != nil {
			log.Warn("Failed to open browser",
				zap.String("url", url),
				zap.Error(err),
			)
		}
	}()
}
