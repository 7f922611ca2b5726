package version

import "fmt"

// Set at build time through -ldflags "-X github.com/bnema/aws-accounts-cli/internal/version.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("aa %s (commit %s, built %s)", Version, Commit, Date)
}
