package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kahusec/fluxvet/internal/audit"
	"github.com/kahusec/fluxvet/internal/configs"
	"github.com/kahusec/fluxvet/internal/discover"
	kerrors "github.com/kahusec/fluxvet/internal/errors"
	"github.com/kahusec/fluxvet/internal/scan"
	"github.com/kahusec/fluxvet/internal/sops"
	"github.com/kahusec/fluxvet/internal/ui"
)

var (
	rotateARN     string
	rotatePattern string
)

func init() {
	rotateCmd.Flags().StringVar(&rotateARN, "kms", "", "target KMS key ARN (falls back to SOPS_KMS_ARN, then config)")
	rotateCmd.Flags().StringVar(&rotatePattern, "pattern", "", "manifest glob pattern (default from config, **/*-sops.yml)")
}

var rotateCmd = &cobra.Command{
	Use:   "rotate [dir]",
	Short: "Rotate every encrypted manifest to a new KMS key",
	Long: `Runs a full scan, then re-encrypts every SOPS-encrypted file under
the given directory with the new KMS key. Each file is decrypted and
re-encrypted in place exactly once, no matter how many encrypted
documents it contains.

Rotation starts only after the scan passes finish, so the key usage
report always shows the keys in use before the rotation.

A file whose re-encryption fails is left DECRYPTED on disk. Failures
are reported per file at the end of the run; fix them immediately.

The target key is taken from --kms, then the SOPS_KMS_ARN environment
variable, then the config file.

Examples:
  # Rotate using an explicit key
  fluxvet rotate clusters/prod --kms arn:aws:kms:us-east-1:111122223333:key/new

  # Rotate using SOPS_KMS_ARN
  export SOPS_KMS_ARN=arn:aws:kms:us-east-1:111122223333:key/new
  fluxvet rotate clusters/prod`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting rotate command")
		s, cleanup := startSpinner("Rotating KMS keys...")
		defer cleanup()

		cfg, err := configs.Load()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to load config: %v", err)
		}

		// Resolve the target key before touching any file.
		arn := rotateARN
		if arn == "" {
			arn = os.Getenv("SOPS_KMS_ARN")
		}
		if arn == "" {
			arn = cfg.DefaultKMSARN
		}
		if arn == "" {
			s.FinalMSG = ui.Error.Sprint("✗") + " No KMS key ARN provided\n" +
				ui.Info.Sprint("→") + " Pass " + ui.Flag.Sprint("--kms") + ", set " + ui.Code.Sprint("SOPS_KMS_ARN") + ", or set " + ui.Code.Sprint("default_kms_arn") + " in the config"
			return kerrors.ErrMissingKMSKey
		}

		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}
		pattern := cfg.Pattern
		if rotatePattern != "" {
			pattern = rotatePattern
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
			Paths:     paths,
			Rotate:    true,
			NewKeyARN: arn,
			Tool:      sops.NewCLI(cfg.SopsBinary),
			Logger:    Logger,
		})
		if err != nil {
			return Logger.ErrorfAndReturn("rotation failed: %v", err)
		}

		entry := audit.New("rotate")
		entry.Dir = dir
		entry.Files = len(paths)
		entry.Keys = len(report.KeyUsage)
		entry.Duplicates = len(report.Duplicates)
		entry.NewKeyARN = arn
		for _, f := range report.RotationFailures {
			entry.RotationFailures = append(entry.RotationFailures, f.Path)
		}
		audit.Log(entry)

		final := ui.RenderReport(report)
		if len(report.RotationFailures) > 0 {
			final += "\n" + ui.Error.Sprint("✗") + fmt.Sprintf(" %d file(s) failed to rotate:\n", len(report.RotationFailures))
			for _, f := range report.RotationFailures {
				final += "  " + ui.Path.Sprint(f.Path) + " " + ui.Muted.Sprintf("%s failed", f.Step) + ": " + f.Err.Error() + "\n"
				if f.Step == scan.StepEncrypt {
					final += "  " + ui.Warning.Sprint("⚠") + " file was left decrypted on disk - re-encrypt it immediately\n"
				}
			}
			s.FinalMSG = final
			return fmt.Errorf("%d file(s) failed to rotate", len(report.RotationFailures))
		}

		final += ui.Success.Sprint("✓") + " All encrypted files rotated to " + ui.Highlight.Sprint(arn)
		s.FinalMSG = final
		return nil
	},
}
