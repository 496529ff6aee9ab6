// Package main provides the airscope command-line client.
package main

import (
	"os"

	"github.com/airscope/airscope/internal/cli"
)

// Version and BuildTime are set at compile time via ldflags.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	os.Exit(cli.Execute(Version, BuildTime))
}
