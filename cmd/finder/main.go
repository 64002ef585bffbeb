package main

import (
	"os"
	_ "time/tzdata"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "finder",
		Short:         "Find open appointment slots on the e-health booking portal",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.AddCommand(specialistsCmd())
	rootCmd.AddCommand(watchCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
