package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"streampark_e2e/infrastructure/config"
	"streampark_e2e/presentation/terminal"

	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:           "streampark-e2e",
		Short:         "Drive the StreamPark console through its page objects",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", "", "file with environment overrides (default .env when present)")

	newTerminal := func(cmd *cobra.Command, driver string) (*terminal.TerminalInterface, error) {
		var files []string
		if envFile != "" {
			files = append(files, envFile)
		}
		cfg, err := config.Load(files...)
		if err != nil {
			return nil, err
		}
		if driver != "" {
			cfg.Driver = driver
			if err := cfg.Validate(); err != nil {
				return nil, err
			}
		}
		return terminal.NewTerminalInterface(cfg, cmd.OutOrStdout())
	}

	var driver string
	run := &cobra.Command{
		Use:   "run scenario.yaml [scenario.yaml...]",
		Short: "Run scenarios on one browser session",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := newTerminal(cmd, driver)
			if err != nil {
				return err
			}
			return t.Run(cmd.Context(), args)
		},
	}
	run.Flags().StringVar(&driver, "driver", "", "browser backend: playwright or selenium (overrides E2E_DRIVER)")

	var limit int
	history := &cobra.Command{
		Use:   "history",
		Short: "List stored run reports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := newTerminal(cmd, "")
			if err != nil {
				return err
			}
			return t.History(limit)
		},
	}
	history.Flags().IntVarP(&limit, "limit", "n", 20, "number of runs to show, 0 for all")

	root.AddCommand(run, history)
	return root
}
