package command

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "homocure",
	Short: "HomoCure doctor and patient session service",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if logLevel == "" {
			return nil
		}
		// Overwrite zap's log level
		return os.Setenv("LOG_LEVEL", logLevel)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "v", "", "Log Level")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
