package codegen

import (
	"fmt"

	"github.com/lumenlang/lumenc/ast"
	"github.com/lumenlang/lumenc/types"
)

// Generator lowers an analyzed program into stack machine instructions.  It
// walks the AST and consumes the expression type table produced by semantic
// analysis to pick type conversions.
type Generator struct {
	// The resolved type of every expression in the program.
	exprTypes map[ast.Expr]types.Type

	// The instructions emitted so far.
	instrs []*Instruction

	// labelCounter numbers generated labels.  It starts at zero for every
	// generator, so generating the same program twice yields identical code.
	labelCounter int
}

// EntryLabel is the label of the program entry point.
const EntryLabel = "entry"

// NewGenerator creates a new generator over the given expression type table.
func NewGenerator(exprTypes map[ast.Expr]types.Type) *Generator {
	return &Generator{exprTypes: exprTypes}
}

// Generate generates code for a whole program: every function in source
// order, then the entry point, then a final halt.
func (g *Generator) Generate(prog *ast.Program) []*Instruction {
	g.instrs = nil
	g.labelCounter = 0

	for _, item := range prog.Items {
		if fn, ok := item.(*ast.FuncDef); ok {
			g.generateFunction(fn)
		}
	}

	for _, item := range prog.Items {
		if entry, ok := item.(*ast.EntryDef); ok {
			g.generateEntry(entry)
		}
	}

	g.emit(OpHalt)

	instrs := make([]*Instruction, len(g.instrs))
	copy(instrs, g.instrs)

	return instrs
}

// generateFunction generates code for one function definition.
func (g *Generator) generateFunction(fn *ast.FuncDef) {
	g.emitOperand(OpLabel, fn.Name)

	for _, stmt := range fn.Body {
		g.genStmt(stmt)
	}

	// A function with no return value gets an implicit return; a function
	// with a declared return type must return explicitly on every path.
	if types.IsVoid(fn.ReturnType) {
		g.emit(OpRet)
	}
}

// generateEntry generates code for the entry point.  The entry point returns
// nothing, so it takes the same implicit return as a function without a
// return type; the final halt follows it.
func (g *Generator) generateEntry(entry *ast.EntryDef) {
	g.emitOperand(OpLabel, EntryLabel)

	for _, stmt := range entry.Body {
		g.genStmt(stmt)
	}

	g.emit(OpRet)
}

// -----------------------------------------------------------------------------

// emit appends an instruction without operands.
func (g *Generator) emit(op Opcode) {
	g.instrs = append(g.instrs, &Instruction{Op: op, Address: -1})
}

// emitOperand appends an instruction with one operand.
func (g *Generator) emitOperand(op Opcode, operand interface{}) {
	g.instrs = append(g.instrs, &Instruction{Op: op, Operand: operand, Address: -1})
}

// emitOperand2 appends an instruction with two operands.
func (g *Generator) emitOperand2(op Opcode, operand, operand2 interface{}) {
	g.instrs = append(g.instrs, &Instruction{Op: op, Operand: operand, Operand2: operand2, Address: -1})
}

// newLabel returns a fresh label with the given prefix.
func (g *Generator) newLabel(prefix string) string {
	label := fmt.Sprintf("%s_%d", prefix, g.labelCounter)
	g.labelCounter++

	return label
}

// typeOf returns the resolved type of an expression, or nil when the type
// table has no entry for it.
func (g *Generator) typeOf(expr ast.Expr) types.Type {
	if g.exprTypes == nil {
		return nil
	}

	return g.exprTypes[expr]
}
