// Package static implements the static file-serving feature.
//
// It registers a single catch-all file handler rooted at the resolved root
// directory. All serving semantics (content types, index files, directory
// browsing, not-found handling) are delegated to Fiber's static handler;
// the feature itself only validates the root and mounts the route.
package static
