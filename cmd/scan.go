package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/kahusec/fluxvet/internal/audit"
	"github.com/kahusec/fluxvet/internal/configs"
	"github.com/kahusec/fluxvet/internal/discover"
	"github.com/kahusec/fluxvet/internal/scan"
	"github.com/kahusec/fluxvet/internal/ui"
)

var (
	scanJSON    bool
	scanPattern string
)

func init() {
	scanCmd.Flags().BoolVar(&scanJSON, "json", false, "emit the report as JSON")
	scanCmd.Flags().StringVar(&scanPattern, "pattern", "", "manifest glob pattern (default from config, **/*-sops.yml)")
}

var scanCmd = &cobra.Command{
	Use:   "scan [dir]",
	Short: "Report duplicate documents and KMS key usage",
	Long: `Scans every manifest file matching the glob pattern under the given
directory (default: current directory) and reports:

  - documents duplicated across files, grouped by kind, name,
    namespace, and encryption key
  - every KMS key in use, with the files referencing it

A parse failure in any file aborts the whole run and names the file.

Examples:
  # Scan the current directory
  fluxvet scan

  # Scan a cluster directory and emit JSON
  fluxvet scan clusters/prod --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting scan command")
		s, cleanup := startSpinner("Scanning manifests...")
		defer cleanup()

		cfg, err := configs.Load()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to load config: %v", err)
		}

		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}
		pattern := cfg.Pattern
		if scanPattern != "" {
			pattern = scanPattern
		}

		Logger.Debugf("Discovering %s under %s", pattern, dir)
		paths, err := discover.Files(dir, pattern)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to discover manifest files: %v", err)
		}
		Logger.Infof("Found %d manifest files", len(paths))

		if len(paths) == 0 {
			s.FinalMSG = ui.Warning.Sprint("⚠") + " No manifest files matched " + ui.Code.Sprint(pattern) + " under " + ui.Path.Sprint(dir)
			return nil
		}

		report, err := scan.Run(cmd.Context(), scan.Options{
			Paths:  paths,
			Logger: Logger,
		})
		if err != nil {
			return Logger.ErrorfAndReturn("scan failed: %v", err)
		}

		entry := audit.New("scan")
		entry.Dir = dir
		entry.Files = len(paths)
		entry.Keys = len(report.KeyUsage)
		entry.Duplicates = len(report.Duplicates)
		audit.Log(entry)

		if scanJSON {
			data, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				return Logger.ErrorfAndReturn("failed to encode report: %v", err)
			}
			s.FinalMSG = string(data)
			return nil
		}

		s.FinalMSG = ui.RenderReport(report)
		return nil
	},
}
