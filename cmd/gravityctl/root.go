package main

import (
	"github.com/spf13/cobra"
)

const flagHome = "home"

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "gravityctl",
		Short:        "Gravity bridge programs toolbox",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().String(flagHome, "", "directory holding config/gravity_config.json; embedded defaults when empty")

	InitRootCmd(rootCmd)
	return rootCmd
}
