package codegen

import (
	"fmt"
	"sort"
	"strings"
)

// Formatter renders a linked program as a human-readable listing with
// instruction addresses and resolved jump targets.
type Formatter struct {
	prog *Program
}

// NewFormatter creates a new formatter over the given linked program.
func NewFormatter(prog *Program) *Formatter {
	return &Formatter{prog: prog}
}

// Format renders the full listing with a framing header.
func (f *Formatter) Format() string {
	var sb strings.Builder

	sb.WriteString("===== INTERMEDIATE CODE =====\n")
	fmt.Fprintf(&sb, "Total instructions: %d\n", len(f.prog.Instructions))
	sb.WriteString("=============================\n\n")

	sb.WriteString(f.FormatSimple())

	return sb.String()
}

// FormatSimple renders the listing without the framing header.
func (f *Formatter) FormatSimple() string {
	var sb strings.Builder

	for _, instr := range f.prog.Instructions {
		sb.WriteString(instr.Format(true, f.prog.Labels))
		sb.WriteByte('\n')
	}

	return sb.String()
}

// FormatLabelTable renders the label address table.  Labels are ordered by
// address so the table is stable across runs.
func (f *Formatter) FormatLabelTable() string {
	type labelEntry struct {
		name string
		addr int
	}

	entries := make([]labelEntry, 0, len(f.prog.Labels))
	for name, addr := range f.prog.Labels {
		entries = append(entries, labelEntry{name, addr})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].addr != entries[j].addr {
			return entries[i].addr < entries[j].addr
		}

		return entries[i].name < entries[j].name
	})

	var sb strings.Builder

	sb.WriteString("===== LABEL TABLE =====\n")
	sb.WriteString("LABEL                   ADDRESS\n")
	sb.WriteString("-------------------------------\n")

	for _, entry := range entries {
		fmt.Fprintf(&sb, "%-24s%04d\n", entry.name, entry.addr)
	}

	sb.WriteString("=======================\n")

	return sb.String()
}
