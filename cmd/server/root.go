package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const defaultConfigPath = "config.yaml"

type rootOptions struct {
	configPath string
	addr       string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "scribe",
		Short:         "Transcribe therapy session recordings and summarize them on demand",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := resolveConfigPath(opts.configPath, cmd.Flags().Changed("config"))
			if err != nil {
				return err
			}
			return serve(cmd.Context(), path, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", defaultConfigPath, "path to the YAML config file")
	cmd.Flags().StringVar(&opts.addr, "addr", "", "listen address, overrides server.addr")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	})

	return cmd
}

// resolveConfigPath lets the default config file be absent, while an
// explicitly requested one must exist.
func resolveConfigPath(path string, explicit bool) (string, error) {
	if path == "" {
		return "", nil
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return "", nil
		}
		return "", fmt.Errorf("config file: %w", err)
	}
	return path, nil
}
