// Command screenpeek answers questions about the screen of an
// attached Android device. It serves the aiAsk tool over MCP stdio
// for host processes, or runs a single query from the shell.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/screenpeek/screenpeek/analyzer"
	"github.com/screenpeek/screenpeek/pkg/logger"
)

const version = "0.1.0"

const rootLongDesc = `screenpeek captures a screenshot of the attached Android device,
sends it to a vision language model together with your question, and
returns the model's answer annotated with the screen resolution and
the formula for converting its 0-1000 relative coordinates to pixels.

It only looks; it never taps, types, or swipes.

Configuration is read from the environment (a .env file is honored):
  BASE_URL    chat-completion endpoint
  MODEL       model identifier
  APIKEY      bearer credential (required)
  ADB_SERIAL  device serial for adb -s (optional)`

type rootCommander struct {
	debug   bool
	serial  string
	timeout time.Duration
}

func (c *rootCommander) config() (analyzer.Config, *zap.Logger) {
	cfg := analyzer.FromEnv()
	if c.serial != "" {
		cfg.Serial = c.serial
	}
	if c.timeout > 0 {
		cfg.Timeout = c.timeout
	}
	return cfg, logger.NewLogger(c.debug)
}

func newRootCmd() *cobra.Command {
	cmder := &rootCommander{}

	cmd := &cobra.Command{
		Use:     "screenpeek",
		Short:   "Ask a vision model about the attached Android device's screen",
		Long:    rootLongDesc,
		Version: version,
	}

	cmd.PersistentFlags().BoolVar(&cmder.debug, "debug", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&cmder.serial, "serial", "", "adb device serial (overrides ADB_SERIAL)")
	cmd.PersistentFlags().DurationVar(&cmder.timeout, "timeout", 0, "Per-query deadline (default 60s)")

	cmd.AddCommand(newServeCmd(cmder))
	cmd.AddCommand(newAskCmd(cmder))

	return cmd
}

func newServeCmd(cmder *rootCommander) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the aiAsk tool over MCP stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log := cmder.config()
			defer log.Sync()

			log.Info("screenpeek MCP server starting",
				zap.String("version", version),
				zap.String("model", cfg.Model),
				zap.Duration("timeout", cfg.Timeout),
			)

			pipeline := analyzer.New(cfg, log)
			server := analyzer.NewServer(pipeline, version)
			return analyzer.Serve(cmd.Context(), server)
		},
	}
}

func newAskCmd(cmder *rootCommander) *cobra.Command {
	return &cobra.Command{
		Use:   "ask <question>",
		Short: "Run one screen query and print the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log := cmder.config()
			defer log.Sync()

			pipeline := analyzer.New(cfg, log)
			fmt.Fprintln(cmd.OutOrStdout(), pipeline.Query(cmd.Context(), args[0]))
			return nil
		},
	}
}

func main() {
	// Missing .env is fine; the environment itself may be configured.
	godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
