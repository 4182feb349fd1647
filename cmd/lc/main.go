// Command lc is the front end for the lc compiler: tokenize, parse and
// type-check a single source file, reporting diagnostics the way a
// real toolchain would.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lc",
	Short: "lc language front end",
	Long:  `lc tokenizes, parses and type-checks a small statically-typed systems language`,
}

func main() {
	rootCmd.Version = versionString()

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize diagnostics (auto|on|off)")
	rootCmd.PersistentFlags().Int("max-diagnostics", 0, "maximum number of diagnostics to report (0=use the lc.toml value, default 100)")
	rootCmd.PersistentFlags().Bool("json", false, "accepted but has no effect: output is always text")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
