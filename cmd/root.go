package cmd

import (
	logger "github.com/kahusec/fluxvet/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	debug   bool
	Logger  logger.Logger
)

var rootCmd = &cobra.Command{
	Use:   "fluxvet",
	Short: "Fluxvet - validates a directory for usage with Flux",
	Long: `Fluxvet scans a Flux repository for problems that only show up
once manifests are deployed.

Checks for:
  1. Duplicate documents: manifests with the same kind, name,
     namespace, and encryption key appearing in more than one file.
  2. KMS keys used: every key referenced by SOPS-encrypted manifests,
     with the files that use it.

Rotation:
  fluxvet rotate re-encrypts every affected file under a new KMS key
  using sops, exactly once per file.

Shell completion is available via 'fluxvet completion <shell>'.
`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		Logger = logger.Logger{
			Verbose: verbose,
			Debug:   debug,
		}
		Logger.Debugf("Initializing fluxvet with verbose=%t, debug=%t", verbose, debug)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")

	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(rotateCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
