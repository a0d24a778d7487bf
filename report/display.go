package report

import (
	"fmt"
	"path/filepath"

	"github.com/pterm/pterm"
)

var (
	successStyleBG = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
	successColorFG = pterm.FgLightGreen
	warnStyleBG    = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	warnColorFG    = pterm.FgYellow
	errorStyleBG   = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	errorColorFG   = pterm.FgRed
)

// ReportError displays a compilation error associated with the given source
// file.  Both semantic and syntax errors carry their positions in their
// messages so no extra position formatting happens here.
func ReportError(srcPath string, err error) {
	rep.errorCount++

	if rep.logLevel > LogLevelSilent {
		errorStyleBG.Print(" Error ")
		errorColorFG.Println(" " + filepath.Base(srcPath) + ": " + err.Error())
	}
}

// ReportFatalf displays an error not tied to any source file (bad arguments,
// unreadable files, invalid project configuration).
func ReportFatalf(msg string, args ...interface{}) {
	rep.errorCount++

	if rep.logLevel > LogLevelSilent {
		errorStyleBG.Print(" Error ")
		errorColorFG.Println(" " + fmt.Sprintf(msg, args...))
	}
}

// ReportWarningf displays a compilation warning.
func ReportWarningf(msg string, args ...interface{}) {
	if rep.logLevel >= LogLevelWarn {
		warnStyleBG.Print(" Warning ")
		warnColorFG.Println(" " + fmt.Sprintf(msg, args...))
	}
}

// ReportProgressf displays a progress message.  These only appear at the
// verbose log level.
func ReportProgressf(msg string, args ...interface{}) {
	if rep.logLevel == LogLevelVerbose {
		successStyleBG.Print(" Info ")
		successColorFG.Println(" " + fmt.Sprintf(msg, args...))
	}
}
