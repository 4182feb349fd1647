package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is the lc front end's release version. Set by build-time
// ldflags (-X main.version=...) for a tagged release; left at "dev"
// for local builds.
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the lc version",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Fprintln(os.Stdout, versionString())
		return err
	},
}

func versionString() string {
	return fmt.Sprintf("lc %s", version)
}
