package report

// Enumeration of the different log levels.
const (
	LogLevelSilent  = iota // no output at all
	LogLevelError          // errors only
	LogLevelWarn           // errors and warnings
	LogLevelVerbose        // errors, warnings, and progress messages (default)
)

// rep is the global reporter state shared by the display functions.
var rep = reporter{logLevel: LogLevelVerbose}

type reporter struct {
	logLevel   int
	errorCount int
}

// InitReporter initializes the global reporter with the provided log level.
func InitReporter(logLevel int) {
	rep = reporter{logLevel: logLevel}
}

// LogLevelFromString converts a log level name (as passed on the command line
// or found in a project file) into its enumerated value.  Unknown names map to
// the verbose default.
func LogLevelFromString(name string) int {
	switch name {
	case "silent":
		return LogLevelSilent
	case "error":
		return LogLevelError
	case "warn":
		return LogLevelWarn
	default:
		return LogLevelVerbose
	}
}

// AnyErrors returns whether any errors have been reported.
func AnyErrors() bool {
	return rep.errorCount > 0
}
