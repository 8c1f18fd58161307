// Copyright (c) 2026 Araçtakip Team
// Araçtakip - vehicle maintenance and expense tracking client
// This source code is licensed under the MIT license found in the LICENSE file.

// Package cli wires the command-line surface: the root command launches the
// interactive TUI, subcommands cover headless sign-in and data export.
package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aractakip/aractakip/buildvars"
	"github.com/aractakip/aractakip/internal/api"
	"github.com/aractakip/aractakip/internal/cache"
	"github.com/aractakip/aractakip/internal/config"
	"github.com/aractakip/aractakip/internal/i18n"
	"github.com/aractakip/aractakip/internal/logging"
	"github.com/aractakip/aractakip/internal/state"
	"github.com/aractakip/aractakip/internal/tui"
)

var cfgFile string

// app holds the services shared by every command, built once in the root
// command's PersistentPreRunE.
type app struct {
	cfg    config.Config
	store  *state.Store
	client *api.Client
	data   *cache.Cache
}

var services app

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}

// newRootCmd creates and configures a new root cobra command. A fresh
// instance per call keeps tests isolated.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "aractakip",
		Short: "Araçtakip is a terminal client for the araçtakip vehicle tracking API.",
		Long: `Araçtakip tracks vehicles with their maintenance, expense and fuel
records through the araçtakip REST API. Running without a subcommand
launches the interactive TUI.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(services.client, services.store, services.data, &services.cfg)
		},
	}

	cmd.AddCommand(newLoginCmd())
	cmd.AddCommand(newExportCmd())

	cmd.Version = buildvars.VersionOrDefault("dev")

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is the user config directory)")
	cmd.PersistentFlags().String("api-url", api.DefaultBaseURL, "base URL of the araçtakip API")
	cmd.PersistentFlags().String("lang", "tr", `interface language ("tr", "en")`)

	return cmd
}

// setup loads the configuration and builds the shared services. It runs for
// every command, so headless subcommands get the same pipeline the TUI uses.
func setup(cmd *cobra.Command) error {
	defaults := map[string]any{
		"api_url":  api.DefaultBaseURL,
		"language": "tr",
	}

	// The api-url flag maps onto the api_url config key.
	if f := cmd.Flags().Lookup("api-url"); f != nil && f.Changed {
		defaults["api_url"] = f.Value.String()
	}
	if f := cmd.Flags().Lookup("lang"); f != nil && f.Changed {
		defaults["language"] = f.Value.String()
	}

	cfg, err := config.LoadConfig(cmd, defaults, cfgFile)
	if err != nil {
		return err
	}
	// Persist a default config on first run so the settings are discoverable.
	// Failing to write it is not fatal; the in-memory defaults still apply.
	if cfgFile == "" && !userConfigExists() {
		if werr := config.WriteConfigFile(&cfg, false); werr != nil {
			logging.Debugf("could not write default config: %v", werr)
		}
	}

	i18n.Init(cfg.Language)

	statePath, err := state.DefaultPath()
	if err != nil {
		return err
	}
	store, err := state.Open(statePath)
	if err != nil {
		return err
	}

	services = app{
		cfg:    cfg,
		store:  store,
		client: api.New(cfg.APIURL, api.NewStateSession(store)),
		data:   cache.New(cache.DefaultTTL),
	}
	return nil
}

// userConfigExists reports whether a config file is already present at the
// user config location.
func userConfigExists() bool {
	dir, err := os.UserConfigDir()
	if err != nil {
		return false
	}
	_, err = os.Stat(filepath.Join(dir, "aractakip", "aractakip.yaml"))
	return err == nil
}
