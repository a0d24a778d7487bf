package mods

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenlang/lumenc/report"
)

// writeProject creates a temporary project directory containing the given
// lumen.toml contents.
func writeProject(t *testing.T, contents string) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, ioutil.WriteFile(filepath.Join(dir, ProjectFileName), []byte(contents), 0644))

	return dir
}

func TestLoadProject(t *testing.T) {
	dir := writeProject(t, `
name = "calculator"
entry = "main.lm"
log-level = "warn"

[dumps]
code = true
`)

	proj, err := LoadProject(dir)
	require.NoError(t, err)

	assert.Equal(t, "calculator", proj.Name)
	assert.Equal(t, filepath.Join(dir, "main.lm"), proj.EntryFile)
	assert.Equal(t, filepath.Join(dir, "main.lmc"), proj.OutputPath)
	assert.Equal(t, report.LogLevelWarn, proj.LogLevel)

	assert.True(t, proj.DumpCode)
	assert.False(t, proj.DumpAST)
	assert.False(t, proj.DumpLabels)
}

func TestLoadProjectExplicitOutput(t *testing.T) {
	dir := writeProject(t, `
name = "calc"
entry = "src/main.lm"
output = "build/calc.lmc"
`)

	proj, err := LoadProject(dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "src", "main.lm"), proj.EntryFile)
	assert.Equal(t, filepath.Join(dir, "build", "calc.lmc"), proj.OutputPath)

	// an unset log level takes the verbose default
	assert.Equal(t, report.LogLevelVerbose, proj.LogLevel)
}

func TestLoadProjectMissingFile(t *testing.T) {
	_, err := LoadProject(t.TempDir())
	require.Error(t, err)
	assert.True(t, os.IsNotExist(errorsUnwrapAll(err)))
}

// errorsUnwrapAll unwraps to the innermost error.
func errorsUnwrapAll(err error) error {
	type unwrapper interface{ Unwrap() error }

	for {
		u, ok := err.(unwrapper)
		if !ok {
			return err
		}

		err = u.Unwrap()
	}
}

func TestLoadProjectValidation(t *testing.T) {
	cases := []struct {
		name     string
		contents string
		wantErr  string
	}{
		{"missing name", `entry = "main.lm"`, "missing a name"},
		{"bad name", "name = \"9lives\"\nentry = \"main.lm\"", "valid identifier"},
		{"missing entry", `name = "p"`, "names no entry file"},
		{"wrong extension", "name = \"p\"\nentry = \"main.txt\"", "is not a"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadProject(writeProject(t, tc.contents))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestNewFileProject(t *testing.T) {
	dir := t.TempDir()
	srcPath := filepath.Join(dir, "main.lm")

	proj, err := NewFileProject(srcPath)
	require.NoError(t, err)

	assert.Equal(t, dir, proj.AbsPath)
	assert.Equal(t, "main", proj.Name)
	assert.Equal(t, srcPath, proj.EntryFile)
	assert.Equal(t, filepath.Join(dir, "main.lmc"), proj.OutputPath)
}

func TestNewFileProjectWrongExtension(t *testing.T) {
	_, err := NewFileProject(filepath.Join(t.TempDir(), "main.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is not a")
}

func TestIsValidIdentifier(t *testing.T) {
	assert.True(t, IsValidIdentifier("calc"))
	assert.True(t, IsValidIdentifier("_x9"))
	assert.False(t, IsValidIdentifier(""))
	assert.False(t, IsValidIdentifier("9lives"))
	assert.False(t, IsValidIdentifier("has space"))
	assert.False(t, IsValidIdentifier("dash-ed"))
}
