// Package debug contains helpers for human readable dumps of internal
// structures.
package debug

import (
	"fmt"
	"strconv"
	"strings"
)

// TreeWriter accumulates an indented, line oriented tree.
type TreeWriter struct {
	w *strings.Builder
}

func NewTreeWriter() *TreeWriter {
	return &TreeWriter{
		w: &strings.Builder{},
	}
}

func (tw TreeWriter) String() string {
	return tw.w.String()
}

func (tw TreeWriter) indent(depth int) {
	for range depth {
		tw.w.WriteString("  ")
	}
}

// Line writes single formatted line at the given depth.
func (tw TreeWriter) Line(depth int, format string, args ...any) {
	tw.indent(depth)
	fmt.Fprintf(tw.w, format, args...)
	tw.w.WriteByte('\n')
}

// TextBlock writes label with quoted value, so control characters and
// surrounding spaces stay visible.
func (tw TreeWriter) TextBlock(depth int, label, value string) {
	tw.indent(depth)
	tw.w.WriteString(label)
	tw.w.WriteString(": ")
	tw.w.WriteString(encodeText(value))
	tw.w.WriteByte('\n')
}

// Lines writes label with line count followed by every line quoted one
// level deeper. Used for pre-rendered and raw multi-line content.
func (tw TreeWriter) Lines(depth int, label string, lines []string) {
	tw.Line(depth, "%s: %d lines", label, len(lines))
	for i, l := range lines {
		tw.indent(depth + 1)
		fmt.Fprintf(tw.w, "%3d ", i)
		tw.w.WriteString(encodeText(l))
		tw.w.WriteByte('\n')
	}
}

// Strings writes label with comma separated quoted values on a single line.
func (tw TreeWriter) Strings(depth int, label string, values []string) {
	quoted := make([]string, 0, len(values))
	for _, v := range values {
		quoted = append(quoted, strconv.Quote(v))
	}
	tw.Line(depth, "%s=[%s]", label, strings.Join(quoted, ", "))
}

func encodeText(raw string) string {
	if raw == "" {
		return raw
	}
	return strconv.Quote(raw)
}
