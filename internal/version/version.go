// Package version holds the lukaz CLI version.
package version

// Version is set at build time with
// -ldflags "-X github.com/lukaz-ai/lukaz-go/internal/version.Version=..."
var Version = "0.1.0-dev"
