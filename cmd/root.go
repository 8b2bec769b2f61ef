package cmd

import (
	"fmt"
	"os"

	"yukari-engine/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands.
// Running it starts the server, same as "start".
var RootCmd = &cobra.Command{
	Use:   "yukari-engine",
	Short: "Yukari local control server",
	Long: `Yukari Engine is the local control server behind the Yukari front end.
It picks a free loopback port, stores the OpenAI API key and serves the UI files.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	RunE:          runStart,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format and debug level give readable ISO8601 output for a CLI
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
