package codegen

import "fmt"

// Opcode enumerates the operations of the stack machine.
type Opcode int

const (
	// Stack operations.
	OpPush = Opcode(iota) // push a value
	OpPop                 // discard the top of the stack

	// Variables.
	OpLoad   // load a variable onto the stack
	OpStore  // store the top of the stack into a variable
	OpALoad  // load an array element (indices on the stack)
	OpAStore // store into an array element (value then indices on the stack)

	// Arithmetic operations.
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpMod
	OpNeg

	// Relational operations.
	OpEq
	OpNeq
	OpLt
	OpLe
	OpGt
	OpGe

	// Logical operations.
	OpAnd
	OpOr
	OpNot

	// Control flow.
	OpJmp   // unconditional jump
	OpJz    // jump if the top of the stack is false
	OpJnz   // jump if the top of the stack is true
	OpLabel // label definition

	// Functions.
	OpCall // call a function with an argument count
	OpRet  // return from a function

	// Input/output.
	OpPrint // print the top of the stack
	OpRead  // read a value into a variable

	// Type conversions.
	OpCastToInt
	OpCastToReal

	// Program control.
	OpHalt
)

// opcodeMnemonics maps opcodes to the mnemonics used in listings.
var opcodeMnemonics = [...]string{
	OpPush:   "push",
	OpPop:    "pop",
	OpLoad:   "load",
	OpStore:  "store",
	OpALoad:  "aload",
	OpAStore: "astore",

	OpAdd: "add",
	OpSub: "sub",
	OpMul: "mul",
	OpDiv: "div",
	OpMod: "mod",
	OpNeg: "neg",

	OpEq:  "eq",
	OpNeq: "neq",
	OpLt:  "lt",
	OpLe:  "le",
	OpGt:  "gt",
	OpGe:  "ge",

	OpAnd: "and",
	OpOr:  "or",
	OpNot: "not",

	OpJmp:   "jmp",
	OpJz:    "jz",
	OpJnz:   "jnz",
	OpLabel: "label",

	OpCall: "call",
	OpRet:  "ret",

	OpPrint: "print",
	OpRead:  "read",

	OpCastToInt:  "cast_to_int",
	OpCastToReal: "cast_to_real",

	OpHalt: "halt",
}

func (op Opcode) String() string {
	return opcodeMnemonics[op]
}

// Instruction is a single instruction of the stack machine.
type Instruction struct {
	// The operation this instruction performs.
	Op Opcode

	// The primary operand: a literal value, a variable name, or a label,
	// depending on the opcode.  Nil when the opcode takes no operand.
	Operand interface{}

	// The secondary operand: the argument count for calls, the index count
	// for array accesses.  Nil otherwise.
	Operand2 interface{}

	// The address assigned by the linker.  It is -1 until the instruction has
	// been linked.
	Address int
}

// IsJump returns whether this is a jump instruction.
func (instr *Instruction) IsJump() bool {
	return instr.Op == OpJmp || instr.Op == OpJz || instr.Op == OpJnz
}

// String renders the instruction without address information.
func (instr *Instruction) String() string {
	return instr.Format(false, nil)
}

// Format renders the instruction as a listing line.  If showAddress is set
// and the instruction has been linked, the line is prefixed with the
// instruction's address.  If a label address map is given, jump instructions
// also show the resolved address of their target.
func (instr *Instruction) Format(showAddress bool, labelAddresses map[string]int) string {
	var line string

	if showAddress && instr.Address >= 0 {
		line = fmt.Sprintf("%04d: ", instr.Address)
	}

	if instr.Op == OpLabel {
		return line + fmt.Sprintf("%v:", instr.Operand)
	}

	line += "    " + instr.Op.String()

	if instr.Operand != nil {
		line += " " + formatOperand(instr.Operand)

		if label, ok := instr.Operand.(string); ok && instr.IsJump() && labelAddresses != nil {
			if target, ok := labelAddresses[label]; ok {
				line += fmt.Sprintf(" [->%04d]", target)
			}
		}
	}

	if instr.Operand2 != nil {
		line += ", " + formatOperand(instr.Operand2)
	}

	return line
}

// formatOperand renders a single operand value.
func formatOperand(operand interface{}) string {
	switch v := operand.(type) {
	case rune:
		return fmt.Sprintf("%c", v)
	case float64:
		// Keep real values visibly real in listings.
		s := fmt.Sprintf("%v", v)
		for _, c := range s {
			if c == '.' || c == 'e' {
				return s
			}
		}
		return s + ".0"
	default:
		return fmt.Sprintf("%v", v)
	}
}
