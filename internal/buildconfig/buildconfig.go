// Package buildconfig holds build-time metadata set via ldflags.
package buildconfig

// Set at build time with:
//
//	go build -ldflags "-X github.com/novavoice/nova-core/internal/buildconfig.Version=v1.2.3 \
//	  -X github.com/novavoice/nova-core/internal/buildconfig.Commit=$(git rev-parse --short HEAD)"
var (
	Version = "dev"
	Commit  = "unknown"
)
