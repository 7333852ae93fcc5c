package cmd

import (
	"fmt"
	"os"

	"github.com/gnames/gncode/pkg/gncode"
	"github.com/spf13/cobra"
)

func versionFlag(cmd *cobra.Command) {
	hasVersionFlag, _ := cmd.Flags().GetBool("version")
	if hasVersionFlag {
		fmt.Printf("\nversion: %s\nbuild: %s\n\n",
			gncode.Version, gncode.Build)
		os.Exit(0)
	}
}
