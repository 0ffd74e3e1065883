package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/GPTx-global/bandoracle/oracle/config"
	"github.com/GPTx-global/bandoracle/oracle/daemon"
	"github.com/GPTx-global/bandoracle/oracle/log"
)

const flagHome = "home"

// NewRootCmd creates the bandoracled command tree
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "bandoracled",
		Short: "Daemon that periodically relays registered band oracle requests",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			home, err := cmd.Flags().GetString(flagHome)
			if err != nil {
				return err
			}
			return config.Load(home)
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String(flagHome, config.DefaultHome(), "daemon home directory")
	rootCmd.AddCommand(
		initCmd(),
		startCmd(),
	)

	return rootCmd
}

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write the default config to the home directory if it is missing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// config.Load already wrote the defaults
			fmt.Fprintf(cmd.OutOrStdout(), "config: %s/config.toml\n", config.Home())
			return nil
		},
	}
}

func startCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Send the configured requests until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := log.InitLogger(config.LogLevel()); err != nil {
				return err
			}
			if config.LogToFile() {
				if err := log.ResetLogger(config.Home(), config.LogLevel()); err != nil {
					return err
				}
			}
			config.Print()

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			d, err := daemon.New(ctx)
			if err != nil {
				return fmt.Errorf("failed to create daemon: %w", err)
			}

			if err := d.Start(); err != nil {
				return fmt.Errorf("failed to start daemon: %w", err)
			}

			go d.Monitor()
			go d.ServeRequests()

			c := make(chan os.Signal, 1)
			signal.Notify(c, os.Interrupt, syscall.SIGTERM)

			select {
			case sig := <-c:
				log.Infof("received %s, shutting down", sig)
			case <-ctx.Done():
			}

			cancel()
			d.Stop()
			return nil
		},
	}
}
