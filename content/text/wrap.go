// Package text implements primitive monospace layout: word wrapping,
// centering and overlaying strings onto fixed width lines.
package text

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/ansi"
)

// Width returns number of columns s occupies on a monospace page.
func Width(s string) int {
	return ansi.PrintableRuneWidth(s)
}

// Blank returns n spaces, nothing for non positive n.
func Blank(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}

// CenterPad returns number of columns to skip so that inner content is
// centered within outer width.
func CenterPad(outer, inner int) int {
	if outer <= inner {
		return 0
	}
	return (outer - inner) / 2
}

// Wrap splits text on whitespace and greedily fills lines no wider than
// width. First indent columns of every line are blank so caller could
// overwrite them with a label. A word which does not fit even on an empty
// line is put on a line of its own and is never split. Negative indent or
// non positive width means "not set" and text is returned as is.
func Wrap(text string, indent, width int) []string {
	if indent < 0 || width <= 0 {
		return []string{text}
	}

	tab := Blank(indent)
	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		return []string{tab}
	}

	var (
		lines []string
		line  strings.Builder
		used  int
	)
	start := func(token string, w int) {
		line.Reset()
		line.WriteString(tab)
		line.WriteString(token)
		used = indent + w
	}

	start(tokens[0], Width(tokens[0]))
	for _, token := range tokens[1:] {
		w := Width(token)
		if used+1+w <= width {
			line.WriteByte(' ')
			line.WriteString(token)
			used += 1 + w
			continue
		}
		lines = append(lines, line.String())
		start(token, w)
	}
	return append(lines, line.String())
}

// InsertLeft overlays src onto the beginning of dst.
func InsertLeft(src, dst string) string {
	return src + runewidth.TruncateLeft(dst, Width(src), "")
}

// InsertRight overlays src onto the end of dst.
func InsertRight(src, dst string) string {
	return runewidth.Truncate(dst, Width(dst)-Width(src), "") + src
}

// InsertCentered overlays src onto the middle of dst.
func InsertCentered(src, dst string) string {
	w := Width(src)
	start := CenterPad(Width(dst), w)
	return runewidth.Truncate(dst, start, "") + src + runewidth.TruncateLeft(dst, start+w, "")
}

// Center prefixes every line with the pad which centers it within outer
// width.
func Center(lines []string, outer int) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		out = append(out, Blank(CenterPad(outer, Width(l)))+l)
	}
	return out
}
