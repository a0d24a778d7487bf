package codegen

import (
	"bufio"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenlang/lumenc/syntax"
	"github.com/lumenlang/lumenc/walk"
)

// generate parses, analyzes, and generates code for the source.
func generate(t *testing.T, src string) []*Instruction {
	t.Helper()

	prog, err := syntax.NewParser(bufio.NewReader(strings.NewReader(src))).Parse()
	require.NoError(t, err)

	analysis, err := walk.Analyze(prog)
	require.NoError(t, err)

	return NewGenerator(analysis.Types).Generate(analysis.Program)
}

// mnemonics renders the instructions without addresses, one per line.
func mnemonics(instrs []*Instruction) []string {
	lines := make([]string, len(instrs))
	for i, instr := range instrs {
		lines[i] = strings.TrimSpace(instr.String())
	}

	return lines
}

// -----------------------------------------------------------------------------

func TestProgramLayout(t *testing.T) {
	instrs := generate(t, `
		entry() {
			helper();
		}

		func helper() {}
	`)

	lines := mnemonics(instrs)

	// functions come first regardless of source order, then the entry point,
	// then the final halt
	assert.Equal(t, []string{
		"helper:",
		"ret",
		"entry:",
		"call helper, 0",
		"pop",
		"ret",
		"halt",
	}, lines)
}

func TestVoidFunctionGetsImplicitReturn(t *testing.T) {
	instrs := generate(t, `
		func nothing() {
			print(1);
		}
		entry() {}
	`)

	lines := mnemonics(instrs)
	assert.Equal(t, "nothing:", lines[0])
	assert.Equal(t, "ret", lines[3])
}

func TestTypedFunctionHasNoImplicitReturn(t *testing.T) {
	instrs := generate(t, `
		func one() -> Integer {
			return 1;
		}
		entry() {}
	`)

	lines := mnemonics(instrs)
	assert.Equal(t, []string{"one:", "push 1", "ret"}, lines[:3])
}

func TestVarDeclDefaults(t *testing.T) {
	instrs := generate(t, `
		entry() {
			declare i: Integer;
			declare r: Real;
			declare s: String;
			declare b: Boolean;
		}
	`)

	lines := mnemonics(instrs)
	assert.Equal(t, []string{
		"entry:",
		"push 0", "store i",
		"push 0.0", "store r",
		"push", "store s",
		"push false", "store b",
		"ret",
		"halt",
	}, lines)
}

func TestAssignReloadAsymmetry(t *testing.T) {
	instrs := generate(t, `
		func f(Integer[] a) {
			declare x: Integer;
			x = 1;
			a[0] = 2;
		}
		entry() {}
	`)

	lines := mnemonics(instrs)

	// a plain assignment stores then reloads so its value survives; the
	// statement then discards it
	assert.Equal(t, []string{"push 1", "store x", "load x", "pop"}, lines[3:7])

	// an indexed assignment pushes the value, then the indices, and stores
	// without a reload
	assert.Equal(t, []string{"push 2", "push 0", "astore a, 1", "pop"}, lines[7:11])
}

func TestWhileLoopShape(t *testing.T) {
	instrs := generate(t, `
		entry() {
			declare i: Integer = 0;
			while (i < 3) {
				i = i + 1;
			}
		}
	`)

	lines := mnemonics(instrs)
	assert.Equal(t, []string{
		"entry:",
		"push 0",
		"store i",
		"while_start_0:",
		"load i",
		"push 3",
		"lt",
		"jz while_end_1",
		"load i",
		"push 1",
		"add",
		"store i",
		"load i",
		"pop",
		"jmp while_start_0",
		"while_end_1:",
		"ret",
		"halt",
	}, lines)
}

func TestIfElseChainShape(t *testing.T) {
	instrs := generate(t, `
		entry() {
			declare x: Integer = 0;
			if (x < 0) {
				print("neg");
			} else if (x == 0) {
				print("zero");
			} else {
				print("pos");
			}
		}
	`)

	lines := mnemonics(instrs)
	assert.Equal(t, []string{
		"load x", "push 0", "lt",
		"jz else_0",
		"push neg", "print",
		"jmp endif_1",
		"else_0:",
		"load x", "push 0", "eq",
		"jz elseif_2",
		"push zero", "print",
		"jmp endif_1",
		"elseif_2:",
		"push pos", "print",
		"endif_1:",
	}, lines[3:len(lines)-2])
}

func TestDoWhileShape(t *testing.T) {
	instrs := generate(t, `
		entry() {
			declare b: Boolean = false;
			do {
				print(1);
			} while (b);
		}
	`)

	lines := mnemonics(instrs)
	assert.Equal(t, []string{
		"dowhile_start_0:",
		"push 1", "print",
		"load b",
		"jnz dowhile_start_0",
	}, lines[3:8])
}

func TestForLoopShape(t *testing.T) {
	instrs := generate(t, `
		entry() {
			for (declare i: Integer = 0; i < 2; i = i + 1) {
				print(i);
			}
		}
	`)

	lines := mnemonics(instrs)
	assert.Equal(t, []string{
		"entry:",
		"push 0", "store i",
		"for_start_0:",
		"load i", "push 2", "lt",
		"jz for_end_1",
		"load i", "print",
		"load i", "push 1", "add", "store i", "load i",
		"pop",
		"jmp for_start_0",
		"for_end_1:",
		"ret",
		"halt",
	}, lines)
}

func TestSwitchShape(t *testing.T) {
	instrs := generate(t, `
		entry() {
			declare x: Integer = 1;
			switch (x) {
				case 1:
					print("one");
				default:
					print("other");
			}
		}
	`)

	lines := mnemonics(instrs)
	assert.Equal(t, []string{
		"load x",
		"push 1", "eq", "jnz case_1",
		"pop",
		"jmp default_2",
		"case_1:",
		"pop",
		"push one", "print",
		"jmp switch_end_0",
		"default_2:",
		"push other", "print",
		"switch_end_0:",
	}, lines[3:len(lines)-2])
}

func TestCastLowering(t *testing.T) {
	instrs := generate(t, `
		entry() {
			declare r: Real = (Real) 2;
			declare i: Integer = (Integer) r;
			declare s: String = (String) "as is";
		}
	`)

	lines := mnemonics(instrs)
	assert.Equal(t, []string{
		"push 2", "cast_to_real", "store r",
		"load r", "cast_to_int", "store i",
		// an identity cast emits nothing
		"push as is", "store s",
	}, lines[1:9])
}

func TestPrintEmitsPerArgument(t *testing.T) {
	instrs := generate(t, `
		entry() {
			declare x: Integer = 1;
			print("x =", x);
		}
	`)

	lines := mnemonics(instrs)
	assert.Equal(t, []string{"push x =", "print", "load x", "print"}, lines[3:7])
}

func TestReadLowering(t *testing.T) {
	instrs := generate(t, `
		entry() {
			declare x: Integer;
			read(x);
		}
	`)

	lines := mnemonics(instrs)
	assert.Equal(t, "read x", lines[3])
}

func TestCallArgumentOrder(t *testing.T) {
	instrs := generate(t, `
		func sub(Integer a, Integer b) -> Integer {
			return a - b;
		}

		entry() {
			print(sub(10, 4));
		}
	`)

	lines := mnemonics(instrs)

	callAt := -1
	for i, line := range lines {
		if line == "call sub, 2" {
			callAt = i
			break
		}
	}

	require.GreaterOrEqual(t, callAt, 2)
	assert.Equal(t, "push 10", lines[callAt-2])
	assert.Equal(t, "push 4", lines[callAt-1])
}

func TestGenerationIsDeterministic(t *testing.T) {
	src := `
		func fib(Integer n) -> Integer {
			if (n < 2) {
				return n;
			}
			return fib(n - 1) + fib(n - 2);
		}

		entry() {
			declare i: Integer;
			for (i = 0; i < 10; i = i + 1) {
				print(fib(i));
			}
		}
	`

	first := mnemonics(generate(t, src))
	second := mnemonics(generate(t, src))

	assert.Equal(t, first, second)
}
