// Command pplcheck inspects a staged launcher layout the way the launcher
// would see it, without running anything.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "pplcheck",
	Short:        "Check a ppl launcher layout",
	Long:         "pplcheck derives the script path and locates the runtime library exactly like the ppl launcher, and reports what it finds.",
	Version:      Version,
	SilenceUsage: true,
}
