package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/piwi3910/cabinetry/internal/engine"
	"github.com/piwi3910/cabinetry/internal/export"
	"github.com/piwi3910/cabinetry/internal/project"
	"github.com/piwi3910/cabinetry/internal/scene"
)

type runOptions struct {
	title  string
	pdf    string
	labels string
	xlsx   string
	dxf    string
	paper  string
}

func runCommand() *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:   "run <scenario.yaml>",
		Short: "Replay a scenario and report the resulting scene",
		Long: `Run replays the steps of a scenario file against an empty scene, prints
the resolved components grouped by cabinet and any constraint problems, and
writes the requested reports.`,
		Example: `  cabinetry run kitchen.yaml
  cabinetry run kitchen.yaml --pdf kitchen.pdf --xlsx kitchen.xlsx
  cabinetry run kitchen.yaml --labels labels.pdf --paper A4`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenario(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.title, "title", "", "report title (default from config)")
	cmd.Flags().StringVar(&opts.pdf, "pdf", "", "write an elevation and bill of materials PDF")
	cmd.Flags().StringVar(&opts.labels, "labels", "", "write a PDF of QR-coded component labels")
	cmd.Flags().StringVar(&opts.xlsx, "xlsx", "", "write the bill of materials as an XLSX workbook")
	cmd.Flags().StringVar(&opts.dxf, "dxf", "", "write a DXF front elevation")
	cmd.Flags().StringVar(&opts.paper, "paper", "", "label paper, Letter or A4 (default from config)")

	return cmd
}

func runScenario(cmd *cobra.Command, path string, opts runOptions) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	cfg := configFromContext(ctx)
	out := cmd.OutOrStdout()

	sc, err := project.LoadScenario(path)
	if err != nil {
		return err
	}

	store := scene.New(
		scene.WithLogger(logger),
		scene.WithPalette(cfg.Palette()),
		scene.WithHistoryDepth(cfg.HistoryDepth),
	)

	start := time.Now()
	aliases, err := sc.Run(store)
	if err != nil {
		return err
	}
	logger.Info("scenario applied", "name", sc.Name, "steps", len(sc.Steps), "components", store.Len(),
		"elapsed", time.Since(start).Round(time.Microsecond))
	for alias, id := range aliases {
		logger.Debug("alias", "name", alias, "id", id)
	}

	components := store.Components()
	if sc.Name != "" {
		printTitle(out, sc.Name)
	}
	if len(components) == 0 {
		printDetail(out, "scene is empty")
	} else {
		fmt.Fprintln(out, sceneTable(export.BuildBOM(components)))
	}
	printIssues(out, engine.Audit(components))

	title := opts.title
	if title == "" {
		title = cfg.ReportTitle
	}
	paper := opts.paper
	if paper == "" {
		paper = cfg.LabelPaper
	}

	reports := []struct {
		kind  string
		path  string
		write func(string) error
	}{
		{"PDF", opts.pdf, func(p string) error { return export.ExportPDF(p, components, title) }},
		{"labels", opts.labels, func(p string) error { return export.ExportLabels(p, components, paper) }},
		{"XLSX", opts.xlsx, func(p string) error { return export.ExportXLSX(p, components) }},
		{"DXF", opts.dxf, func(p string) error { return export.ExportDXF(p, components) }},
	}
	for _, r := range reports {
		if r.path == "" {
			continue
		}
		if err := r.write(r.path); err != nil {
			return fmt.Errorf("%s report: %w", r.kind, err)
		}
		logger.Debug("report written", "kind", r.kind, "path", r.path)
		printSuccess(out, "wrote %s %s", r.kind, r.path)
	}
	return nil
}
