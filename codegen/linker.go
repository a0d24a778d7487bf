package codegen

import "fmt"

// Program is a linked instruction sequence: every instruction carries its
// address and every label and call target is known to resolve.
type Program struct {
	// The instructions in execution order.
	Instructions []*Instruction

	// Labels maps every label to the address of its label instruction.
	Labels map[string]int
}

// Link assigns sequential addresses to the given instructions, builds the
// label address map, and verifies that every jump and call target is defined.
// Linking the same instruction sequence always produces the same program.
func Link(instrs []*Instruction) (*Program, error) {
	labels := make(map[string]int)

	for addr, instr := range instrs {
		instr.Address = addr

		if instr.Op == OpLabel {
			name := instr.Operand.(string)
			if _, ok := labels[name]; ok {
				return nil, fmt.Errorf("link: duplicate label `%s` at address %04d", name, addr)
			}

			labels[name] = addr
		}
	}

	for _, instr := range instrs {
		switch {
		case instr.IsJump():
			target := instr.Operand.(string)
			if _, ok := labels[target]; !ok {
				return nil, fmt.Errorf("link: undefined label `%s` at address %04d", target, instr.Address)
			}
		case instr.Op == OpCall:
			callee := instr.Operand.(string)
			if _, ok := labels[callee]; !ok {
				return nil, fmt.Errorf("link: call to undefined function `%s` at address %04d", callee, instr.Address)
			}
		}
	}

	return &Program{Instructions: instrs, Labels: labels}, nil
}

// TargetOf returns the resolved address of a jump or call instruction's
// target.
func (p *Program) TargetOf(instr *Instruction) (int, bool) {
	name, ok := instr.Operand.(string)
	if !ok {
		return 0, false
	}

	addr, ok := p.Labels[name]

	return addr, ok
}
