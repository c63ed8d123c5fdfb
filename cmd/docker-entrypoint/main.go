// Package main is the entry point for the docker-entrypoint binary.
//
// The binary is installed as a container's ENTRYPOINT. It delegates all
// functionality to the internal/cli package, which defines the cobra
// commands.
//
// Build-time variables (version, commit, date) are injected via ldflags
// during the image build. During development, they default to "dev",
// "none", and "unknown" respectively.
package main

import (
	"github.com/shinji-kodama/docker-entrypoint/internal/cli"
)

// version, commit, and date are set at build time via ldflags, e.g.
//
//	go build -ldflags "-X main.version=1.2.0 -X main.date=$(date -u +%FT%TZ)"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.Version = version
	cli.Commit = commit
	cli.Date = date

	rootCmd := cli.NewRootCommand()
	cli.Execute(rootCmd)
}
