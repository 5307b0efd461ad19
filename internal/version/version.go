package version

// Set at build time with -ldflags "-X github.com/bitcoin-sv/lnbridge/internal/version.Version=..."
var (
	Version string
	Commit  string
)
