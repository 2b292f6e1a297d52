// Package logger provides leveled logging for passage commands.
//
// Output is formatted with colored semantic prefixes from fatih/color.
//
// # Verbosity Levels
//
//   - --verbose: shows info messages
//   - --debug: shows info and debug messages
//
// Warnings and errors are always written to stderr.
//
// # Usage
//
//	log := Logger{Verbose: verbose, Debug: debug}
//	log.Infof("Loaded %d entries", count)
//
// The root command builds the logger in its PersistentPreRun and hands it
// to the workflows. Passphrases and entry passwords are never logged.
package logger
