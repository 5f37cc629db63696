// seedgen CLI - Generate fake JSON test records with an AI model
package main

import "github.com/getmockd/seedgen/pkg/cli"

// Build-time variables set via ldflags
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

func main() {
	cli.Version = Version
	cli.Commit = Commit
	cli.BuildDate = BuildDate

	cli.Execute()
}
