package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/offhook"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of offhook",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "offhook version %s\n", strings.TrimSpace(offhook.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
