// Package logger provides leveled logging for fluxvet commands.
//
// Verbosity is controlled by two persistent command-line flags:
//
//   - --verbose: shows info messages
//   - --debug: shows all messages including debug details
//
// Without flags, only warnings and errors are shown.
//
// Commands create a logger in their PersistentPreRun and pass it to
// internal functions:
//
//	log := logger.Logger{Verbose: verbose, Debug: debug}
//	log.Infof("Scanning %d files", len(paths))
package logger
