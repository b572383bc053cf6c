// Package version holds build metadata injected via ldflags.
package version

//nolint:revive // Set via ldflags at build time.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// UserAgent identifies moviesearch on outbound requests.
func UserAgent() string {
	return "moviesearch/" + Version + " (+" + Commit + ")"
}
