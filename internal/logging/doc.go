// Package logging builds the [log/slog] loggers used by dtopr.
//
// Logs always go to stderr (and optionally a --log-file) so they never mix
// with the wizard screens on stdout. The default level is Warn; each -v
// lowers it one step down to [LevelTrace], which records every answer read
// by the prompts.
//
//	logger := logging.New(logging.Config{
//		Level:  logging.LevelFromVerbosity(2),
//		Format: logging.FormatText,
//	})
//	logger.Debug("collected", "field", "Exec", "value", "/usr/bin/foo --bar")
//
// The text [Handler] colors output only on terminals (see [SupportsColor]),
// quotes values containing spaces, and masks values whose keys look like
// credentials. [MultiHandler] fans records out to several handlers.
//
// Tests can route logs through the testing framework with [ForTest].
package logging
