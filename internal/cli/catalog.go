package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/cabinetry/internal/model"
	"github.com/piwi3910/cabinetry/internal/project"
)

func catalogCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List the component types and their defaults",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), catalogTable(model.Catalog()))
		},
	}
}

func configCommand(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or initialise the configuration file",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cfg := configFromContext(cmd.Context())
			out := cmd.OutOrStdout()
			printTitle(out, *configPath)
			fmt.Fprintf(out, "theme         %s\n", cfg.Theme)
			fmt.Fprintf(out, "history_depth %d\n", cfg.HistoryDepth)
			fmt.Fprintf(out, "label_paper   %s\n", cfg.LabelPaper)
			fmt.Fprintf(out, "report_title  %s\n", cfg.ReportTitle)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write the effective configuration to the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFromContext(cmd.Context())
			if err := project.SaveAppConfig(*configPath, cfg); err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), "wrote %s", *configPath)
			return nil
		},
	})

	return cmd
}
