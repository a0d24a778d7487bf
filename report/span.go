package report

// TextSpan represents a range or "span" of source text.  It is used to mark
// erroneous or otherwise significant source text in a Lumen program.  Spans are
// inclusive on both sides.  Line and column numbers are one-indexed; a span
// whose start line is zero carries no position information (eg. errors about
// the program as a whole such as a missing entry point).
type TextSpan struct {
	// The line and column beginning the text span.
	StartLine, StartCol int

	// The line and column ending the text span.
	EndLine, EndCol int
}

// NewSpanAt returns a new text span covering a single point in source text.
func NewSpanAt(line, col int) *TextSpan {
	return &TextSpan{StartLine: line, StartCol: col, EndLine: line, EndCol: col}
}

// NewSpanOver returns a new text span which spans over and between the two
// given text spans.
func NewSpanOver(start, end *TextSpan) *TextSpan {
	return &TextSpan{
		StartLine: start.StartLine,
		StartCol:  start.StartCol,
		EndLine:   end.EndLine,
		EndCol:    end.EndCol,
	}
}

// Known reports whether the span carries real position information.
func (ts *TextSpan) Known() bool {
	return ts != nil && ts.StartLine > 0
}
