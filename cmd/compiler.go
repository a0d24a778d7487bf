package cmd

import (
	"bufio"
	"io/ioutil"
	"os"

	"github.com/lumenlang/lumenc/ast"
	"github.com/lumenlang/lumenc/codegen"
	"github.com/lumenlang/lumenc/mods"
	"github.com/lumenlang/lumenc/report"
	"github.com/lumenlang/lumenc/syntax"
	"github.com/lumenlang/lumenc/walk"
)

// Compiler represents the global state of the compiler.  It drives the
// phases in order: parsing, semantic analysis, code generation, and linking.
type Compiler struct {
	// proj is the project being compiled.
	proj *mods.Project
}

// NewCompiler creates a new compiler for the given project.
func NewCompiler(proj *mods.Project) *Compiler {
	return &Compiler{proj: proj}
}

// Compile runs the whole pipeline and writes the linked code listing to the
// project's output path.  It returns whether compilation succeeded.
func (c *Compiler) Compile() bool {
	report.ReportProgressf("compiling project `%s`", c.proj.Name)

	analysis, ok := c.analyzeFile(c.proj.EntryFile)
	if !ok {
		return false
	}

	if c.proj.DumpAST {
		printer := ast.NewJSONPrinter(analysis.Types)
		tree, err := printer.Print(analysis.Program)
		if err != nil {
			report.ReportFatalf("error printing syntax tree: %s", err.Error())
			return false
		}

		os.Stdout.WriteString(tree + "\n")
	}

	gen := codegen.NewGenerator(analysis.Types)
	instrs := gen.Generate(analysis.Program)

	prog, err := codegen.Link(instrs)
	if err != nil {
		report.ReportFatalf("%s", err.Error())
		return false
	}

	formatter := codegen.NewFormatter(prog)

	if c.proj.DumpCode {
		os.Stdout.WriteString(formatter.Format())
	}

	if c.proj.DumpLabels {
		os.Stdout.WriteString(formatter.FormatLabelTable())
	}

	if err := ioutil.WriteFile(c.proj.OutputPath, []byte(formatter.FormatSimple()), 0644); err != nil {
		report.ReportFatalf("error writing listing to `%s`: %s", c.proj.OutputPath, err.Error())
		return false
	}

	report.ReportProgressf("wrote %d instructions to `%s`", len(prog.Instructions), c.proj.OutputPath)

	return true
}

// CheckFile parses and analyzes a single source file, reporting any error it
// finds.  It returns whether the file is valid.
func CheckFile(srcPath string) bool {
	if _, ok := (&Compiler{}).analyzeFile(srcPath); !ok {
		return false
	}

	report.ReportProgressf("`%s` is valid", srcPath)

	return true
}

// analyzeFile runs the front and middle phases over one source file.
func (c *Compiler) analyzeFile(srcPath string) (*walk.Analysis, bool) {
	f, err := os.Open(srcPath)
	if err != nil {
		report.ReportFatalf("unable to open source file `%s`: %s", srcPath, err.Error())
		return nil, false
	}
	defer f.Close()

	p := syntax.NewParser(bufio.NewReader(f))
	prog, err := p.Parse()
	if err != nil {
		report.ReportError(srcPath, err)
		return nil, false
	}

	analysis, err := walk.Analyze(prog)
	if err != nil {
		report.ReportError(srcPath, err)
		return nil, false
	}

	return analysis, true
}
