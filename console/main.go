package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rogerio-castellano/shop-inventory/internal/config"
	"github.com/rogerio-castellano/shop-inventory/internal/logging"
	"github.com/rogerio-castellano/shop-inventory/internal/shopclient"
	"github.com/rogerio-castellano/shop-inventory/internal/tui"
)

func newRootCmd() *cobra.Command {
	v := config.New()

	cmd := &cobra.Command{
		Use:   "shopview",
		Short: "Browse, add and edit shop products from the terminal",
		Long: `shopview lists the products of a /shop resource, adds new ones and
edits existing rows in place. Failed requests are written to the log file
and otherwise ignored.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.FromViper(v)
			if err != nil {
				return err
			}

			logger, closer, err := logging.SetupFile(cfg.Client.LogFile, cfg.LogLevel, cfg.Env)
			if err != nil {
				return err
			}
			defer closer.Close()

			logger.Info().Str("base_url", cfg.Client.BaseURL).Msg("starting shopview")
			client := shopclient.New(cfg.Client.BaseURL, cfg.Client.RequestTimeout, logger)
			model := tui.New(client, logger, cfg.Client.RequestTimeout)

			if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
				logger.Error().Err(err).Msg("shopview exited with error")
				return fmt.Errorf("failed to run shopview: %w", err)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.String("base-url", config.DefaultBaseURL, "address of the /shop resource")
	flags.Duration("timeout", 0, "per-request timeout (default from SHOP_REQUEST_TIMEOUT or 10s)")
	flags.String("log-file", "", "file receiving diagnostic logs (default shopview.log)")
	flags.String("log-level", "", "log level: debug, info, warn, error")

	// unchanged flags never shadow the environment
	_ = v.BindPFlag(config.KeyBaseURL, flags.Lookup("base-url"))
	_ = v.BindPFlag(config.KeyRequestTimeout, flags.Lookup("timeout"))
	_ = v.BindPFlag(config.KeyLogFile, flags.Lookup("log-file"))
	_ = v.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level"))
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
