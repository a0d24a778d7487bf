package cmd

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ComedicChimera/olive"

	"github.com/lumenlang/lumenc/mods"
	"github.com/lumenlang/lumenc/report"
)

// LumenVersion is the version of the compiler and the language standard it
// implements.
const LumenVersion = "0.1.0"

// Execute runs the main `lumenc` application.
func Execute() {
	// set up the argument parser and all its commands and arguments
	cli := olive.NewCLI("lumenc", "lumenc is a tool for building Lumen projects", true)
	logLvlArg := cli.AddSelectorArg("loglevel", "ll", "the compiler log level", false, []string{"silent", "error", "warn", "verbose"})
	logLvlArg.SetDefaultValue("")

	buildCmd := cli.AddSubcommand("build", "compile a project", true)
	buildCmd.AddPrimaryArg("project-path", "the path to the project directory or source file to build", true)
	buildCmd.AddFlag("dump-ast", "da", "print the typed syntax tree as JSON")
	buildCmd.AddFlag("dump-code", "dc", "print the generated code listing")
	buildCmd.AddFlag("dump-labels", "dl", "print the label address table")

	checkCmd := cli.AddSubcommand("check", "analyze a single source file and report errors", true)
	checkCmd.AddPrimaryArg("file-path", "the path to the source file to check", true)

	cli.AddSubcommand("version", "print the Lumen version", false)

	// run the argument parser
	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		report.InitReporter(report.LogLevelVerbose)
		report.ReportFatalf("usage error: %s", err.Error())
		os.Exit(1)
	}

	logLevelName := result.Arguments["loglevel"].(string)

	// process the inputed command line
	subcmdName, subResult, _ := result.Subcommand()
	switch subcmdName {
	case "build":
		if !execBuildCommand(subResult, logLevelName) {
			os.Exit(1)
		}
	case "check":
		if !execCheckCommand(subResult, logLevelName) {
			os.Exit(1)
		}
	case "version":
		report.InitReporter(report.LogLevelVerbose)
		report.ReportProgressf("lumenc version %s", LumenVersion)
	}
}

// execBuildCommand executes the build subcommand and handles all its errors.
func execBuildCommand(result *olive.ArgParseResult, logLevelName string) bool {
	projRelPath, _ := result.PrimaryArg()

	projPath, err := filepath.Abs(projRelPath)
	if err != nil {
		report.InitReporter(report.LogLevelVerbose)
		report.ReportFatalf("error calculating absolute path: %s", err.Error())
		return false
	}

	// a bare source file is compiled as an implicit single-file project
	var proj *mods.Project
	if strings.HasSuffix(projPath, mods.SrcFileExt) {
		proj, err = mods.NewFileProject(projPath)
	} else {
		proj, err = mods.LoadProject(projPath)
	}
	if err != nil {
		report.InitReporter(report.LogLevelVerbose)
		report.ReportFatalf("%s", err.Error())
		return false
	}

	// the command line log level wins over the project file's
	logLevel := proj.LogLevel
	if logLevelName != "" {
		logLevel = report.LogLevelFromString(logLevelName)
	}
	report.InitReporter(logLevel)

	if result.HasFlag("dump-ast") {
		proj.DumpAST = true
	}
	if result.HasFlag("dump-code") {
		proj.DumpCode = true
	}
	if result.HasFlag("dump-labels") {
		proj.DumpLabels = true
	}

	c := NewCompiler(proj)
	return c.Compile()
}

// execCheckCommand executes the check subcommand: the front and middle phases
// only, with no output file.
func execCheckCommand(result *olive.ArgParseResult, logLevelName string) bool {
	fileRelPath, _ := result.PrimaryArg()

	filePath, err := filepath.Abs(fileRelPath)
	if err != nil {
		report.InitReporter(report.LogLevelVerbose)
		report.ReportFatalf("error calculating absolute path: %s", err.Error())
		return false
	}

	report.InitReporter(report.LogLevelFromString(logLevelName))

	return CheckFile(filePath)
}
