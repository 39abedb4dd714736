package cmd

import (
	"fmt"
	"os"

	moviedb "github.com/gnames/moviedb/pkg"
	"github.com/spf13/cobra"
)

func versionFlag(cmd *cobra.Command) {
	hasVersionFlag, _ := cmd.Flags().GetBool("version")
	if hasVersionFlag {
		fmt.Printf("\nversion: %s\nbuild: %s\n\n", moviedb.Version, moviedb.Build)
		os.Exit(0)
	}
}
