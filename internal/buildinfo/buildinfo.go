package buildinfo

import "fmt"

// Set with -ldflags "-X github.com/aalvaropc/advent/internal/buildinfo.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("advent %s (commit=%s, date=%s)", Version, Commit, Date)
}
