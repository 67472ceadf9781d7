package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/piwi3910/cabinetry/internal/project"
)

var version = "dev"

// SetVersion sets the version reported by --version and the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// NewRootCommand builds the cabinetry command tree. Before any subcommand
// runs, the logger and the configuration named by --config are attached to
// the command context.
func NewRootCommand() *cobra.Command {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:           "cabinetry",
		Short:         "Cabinetry lays out cabinets and the components inside them",
		Long:          `Cabinetry replays scripted editing sessions against a cabinet layout, keeping shelves, drawers, rods and handles constrained to their cabinets, and renders the result as tables and shop reports.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			logger := newLogger(cmd.ErrOrStderr(), level)

			if configPath == "" {
				configPath = project.DefaultConfigPath()
			}
			cfg, err := project.LoadAppConfig(configPath)
			if err != nil {
				return err
			}
			logger.Debug("config loaded", "path", configPath, "theme", cfg.Theme, "history", cfg.HistoryDepth)

			ctx := withConfig(withLogger(cmd.Context(), logger), cfg)
			cmd.SetContext(ctx)
			return nil
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (.json or .toml, default ~/.cabinetry/config.json)")

	root.AddCommand(runCommand())
	root.AddCommand(catalogCommand())
	root.AddCommand(configCommand(&configPath))
	root.AddCommand(versionCommand())

	return root
}

// Execute runs the cabinetry CLI.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

func versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "cabinetry %s\n", version)
		},
	}
}
