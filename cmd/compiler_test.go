package cmd

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenlang/lumenc/mods"
	"github.com/lumenlang/lumenc/report"
)

func TestMain(m *testing.M) {
	report.InitReporter(report.LogLevelSilent)
	os.Exit(m.Run())
}

// writeTestProject creates a temporary project directory with a lumen.toml
// and a main.lm holding the given source.
func writeTestProject(t *testing.T, src string) *mods.Project {
	t.Helper()

	dir := t.TempDir()

	require.NoError(t, ioutil.WriteFile(filepath.Join(dir, mods.ProjectFileName),
		[]byte("name = \"testproj\"\nentry = \"main.lm\"\n"), 0644))
	require.NoError(t, ioutil.WriteFile(filepath.Join(dir, "main.lm"), []byte(src), 0644))

	proj, err := mods.LoadProject(dir)
	require.NoError(t, err)

	return proj
}

func TestCompileWritesListing(t *testing.T) {
	proj := writeTestProject(t, `
		func double(Integer n) -> Integer {
			return n * 2;
		}

		entry() {
			print(double(21));
		}
	`)

	require.True(t, NewCompiler(proj).Compile())

	listing, err := ioutil.ReadFile(proj.OutputPath)
	require.NoError(t, err)

	text := string(listing)
	assert.Contains(t, text, "double:")
	assert.Contains(t, text, "entry:")
	assert.Contains(t, text, "call double, 1")
	assert.Contains(t, text, "halt")
	assert.Contains(t, text, "0000: ")
}

func TestCompileFailsOnSyntaxError(t *testing.T) {
	proj := writeTestProject(t, `entry() { declare ; }`)

	assert.False(t, NewCompiler(proj).Compile())

	_, err := os.Stat(proj.OutputPath)
	assert.True(t, os.IsNotExist(err), "no listing should be written for an invalid program")
}

func TestCompileFailsOnSemanticError(t *testing.T) {
	proj := writeTestProject(t, `
		entry() {
			declare x: Integer = "not an integer";
		}
	`)

	assert.False(t, NewCompiler(proj).Compile())
}

func TestCheckFile(t *testing.T) {
	dir := t.TempDir()
	srcPath := filepath.Join(dir, "ok.lm")

	require.NoError(t, ioutil.WriteFile(srcPath, []byte(`entry() { print("hi"); }`), 0644))
	assert.True(t, CheckFile(srcPath))

	badPath := filepath.Join(dir, "bad.lm")
	require.NoError(t, ioutil.WriteFile(badPath, []byte(`func f() {}`), 0644))
	assert.False(t, CheckFile(badPath))

	assert.False(t, CheckFile(filepath.Join(dir, "missing.lm")))
}
