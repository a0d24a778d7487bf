package mods

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml"

	"github.com/lumenlang/lumenc/report"
)

// ProjectFileName is the name of the project file marking a Lumen project
// root.
const ProjectFileName = "lumen.toml"

// SrcFileExt is the file extension of Lumen source files.
const SrcFileExt = ".lm"

// ListingFileExt is the file extension of generated code listings.
const ListingFileExt = ".lmc"

// tomlProject represents a Lumen project as it is encoded in TOML.
type tomlProject struct {
	Name     string    `toml:"name"`
	Entry    string    `toml:"entry"`
	Output   string    `toml:"output"`
	LogLevel string    `toml:"log-level"`
	Dumps    tomlDumps `toml:"dumps"`
}

// tomlDumps selects the optional compiler dumps.
type tomlDumps struct {
	AST    bool `toml:"ast"`
	Code   bool `toml:"code"`
	Labels bool `toml:"labels"`
}

// Project is a loaded and validated Lumen project.
type Project struct {
	// AbsPath is the absolute path to the project directory.
	AbsPath string

	// Name is the project name.
	Name string

	// EntryFile is the absolute path to the source file to compile.
	EntryFile string

	// OutputPath is the absolute path the code listing is written to.
	OutputPath string

	// LogLevel is the reporter log level used while compiling the project.
	LogLevel int

	// Dump selections.
	DumpAST    bool
	DumpCode   bool
	DumpLabels bool
}

// LoadProject loads and validates the project file in the given directory.
// `abspath` is the absolute path to the project directory.
func LoadProject(abspath string) (*Project, error) {
	f, err := os.Open(filepath.Join(abspath, ProjectFileName))
	if err != nil {
		return nil, fmt.Errorf("unable to open project file at `%s`: %w", abspath, err)
	}
	defer f.Close()

	buff, err := ioutil.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("error reading project file at `%s`: %w", abspath, err)
	}

	tomlProj := &tomlProject{}
	if err := toml.Unmarshal(buff, tomlProj); err != nil {
		return nil, fmt.Errorf("error parsing project file at `%s`: %w", abspath, err)
	}

	return validateProject(abspath, tomlProj)
}

// validateProject checks the decoded project contents and produces the final
// project value.
func validateProject(abspath string, tomlProj *tomlProject) (*Project, error) {
	if tomlProj.Name == "" {
		return nil, fmt.Errorf("project at `%s` is missing a name", abspath)
	}

	if !IsValidIdentifier(tomlProj.Name) {
		return nil, fmt.Errorf("project name `%s` must be a valid identifier", tomlProj.Name)
	}

	if tomlProj.Entry == "" {
		return nil, fmt.Errorf("project `%s` names no entry file", tomlProj.Name)
	}

	if !strings.HasSuffix(tomlProj.Entry, SrcFileExt) {
		return nil, fmt.Errorf("entry file `%s` is not a `%s` file", tomlProj.Entry, SrcFileExt)
	}

	entryFile := tomlProj.Entry
	if !filepath.IsAbs(entryFile) {
		entryFile = filepath.Join(abspath, entryFile)
	}

	output := tomlProj.Output
	if output == "" {
		output = strings.TrimSuffix(tomlProj.Entry, SrcFileExt) + ListingFileExt
	}
	if !filepath.IsAbs(output) {
		output = filepath.Join(abspath, output)
	}

	return &Project{
		AbsPath:    abspath,
		Name:       tomlProj.Name,
		EntryFile:  entryFile,
		OutputPath: output,
		LogLevel:   report.LogLevelFromString(tomlProj.LogLevel),
		DumpAST:    tomlProj.Dumps.AST,
		DumpCode:   tomlProj.Dumps.Code,
		DumpLabels: tomlProj.Dumps.Labels,
	}, nil
}

// NewFileProject builds an implicit project for a single source file that has
// no `lumen.toml`. `srcAbsPath` is the absolute path to the source file. The
// listing is written next to the source file.
func NewFileProject(srcAbsPath string) (*Project, error) {
	if !strings.HasSuffix(srcAbsPath, SrcFileExt) {
		return nil, fmt.Errorf("source file `%s` is not a `%s` file", srcAbsPath, SrcFileExt)
	}

	return &Project{
		AbsPath:    filepath.Dir(srcAbsPath),
		Name:       strings.TrimSuffix(filepath.Base(srcAbsPath), SrcFileExt),
		EntryFile:  srcAbsPath,
		OutputPath: strings.TrimSuffix(srcAbsPath, SrcFileExt) + ListingFileExt,
		LogLevel:   report.LogLevelFromString(""),
	}, nil
}

// IsValidIdentifier returns whether the given string is usable as a project
// name: a letter or underscore followed by letters, digits, or underscores.
func IsValidIdentifier(name string) bool {
	for i, c := range name {
		switch {
		case c == '_' || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z':
		case '0' <= c && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}

	return len(name) > 0
}
