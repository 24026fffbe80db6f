package version

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/lanternhq/lantern/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/lanternhq/lantern/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/lanternhq/lantern/internal/version.Date={{.Date}}
)
