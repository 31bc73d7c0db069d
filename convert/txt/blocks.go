package txt

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"draftr/config"
	"draftr/content/text"
	"draftr/model"
)

// renderer converts blocks into line groups according to page layout.
type renderer struct {
	layout   *config.LayoutConfig
	document *config.DocumentConfig
	log      *zap.Logger
}

func newRenderer(cfg *config.Config, log *zap.Logger) *renderer {
	return &renderer{layout: &cfg.Layout, document: &cfg.Document, log: log}
}

// blocks renders every block in order.
func (r *renderer) blocks(blocks []model.Block) ([]Group, error) {
	var groups []Group
	for i := range blocks {
		g, err := r.block(&blocks[i])
		if err != nil {
			return nil, fmt.Errorf("block %d (%s): %w", i, blocks[i].Kind, err)
		}
		groups = append(groups, g...)
	}
	return groups, nil
}

// block renders single block. Most blocks produce exactly one group, lists
// produce one group per top level item.
func (r *renderer) block(b *model.Block) ([]Group, error) {
	switch {
	case b.Kind == model.BlockSection && b.Section != nil:
		return []Group{r.section(b.Section)}, nil
	case b.Kind == model.BlockParagraph && b.Paragraph != nil:
		return []Group{{Lines: text.Wrap(b.Paragraph.Text, r.layout.ParagraphIndent, r.layout.PageWidth)}}, nil
	case b.Kind == model.BlockBlockquote && b.Blockquote != nil:
		return []Group{{Lines: text.Wrap(b.Blockquote.Text, r.layout.BlockquoteIndent, r.layout.PageWidth)}}, nil
	case b.Kind == model.BlockFigure && b.Figure != nil:
		g, err := r.figure(b.Figure)
		if err != nil {
			return nil, err
		}
		return []Group{g}, nil
	case b.Kind == model.BlockTable && b.Table != nil:
		g, err := r.table(b.Table)
		if err != nil {
			return nil, err
		}
		return []Group{g}, nil
	case b.Kind == model.BlockList && b.List != nil:
		return r.list(b.List), nil
	case b.Kind == model.BlockRaw && b.Raw != nil:
		return []Group{{Lines: append([]string{}, b.Raw.Rendered...)}}, nil
	}
	return nil, fmt.Errorf("%w: %q", model.ErrUnknownBlock, b.Kind)
}

// label overlays prefix onto the beginning of the first line, which has been
// wrapped with enough leading blanks to hold it.
func label(prefix string, lines []string) []string {
	lines[0] = text.InsertLeft(prefix, lines[0])
	return lines
}

func (r *renderer) section(s *model.Section) Group {
	var number string
	if len(s.Number) > 0 {
		number = s.Number + ". "
	}
	lines := text.Wrap(s.Text, text.Width(number), r.layout.PageWidth)
	return Group{Lines: label(number, lines), Section: s}
}

// caption returns centered caption lines preceded by separator, nothing for
// unnumbered artwork.
func (r *renderer) caption(kind string, number int, title string) []string {
	if number <= 0 {
		return nil
	}
	caption := kind + " " + strconv.Itoa(number)
	if len(title) > 0 {
		caption += ": " + title
	}
	return append([]string{""}, text.Center(text.Wrap(caption, 0, r.layout.TitleWidth), r.layout.PageWidth)...)
}

func (r *renderer) figure(f *model.Figure) (Group, error) {
	lines := strings.Split(strings.TrimRight(f.Text, "\n"), "\n")

	var width int
	for _, l := range lines {
		width = max(width, text.Width(l))
	}
	if width > r.layout.PageWidth {
		return Group{}, fmt.Errorf("%w: figure %d is %d columns wide", ErrTooWide, f.Number, width)
	}

	// artwork is centered as a whole, relative layout of lines is kept
	pad := text.Blank(text.CenterPad(r.layout.PageWidth, width))
	out := make([]string, 0, len(lines)+4)
	for _, l := range lines {
		out = append(out, strings.TrimRight(pad+l, " "))
	}
	return Group{Lines: append(out, r.caption("Figure", f.Number, f.Title)...)}, nil
}

func alignCell(cell string, width int, align model.Alignment) string {
	w := text.Width(cell)
	switch align {
	case model.AlignRight:
		return text.Blank(width-w) + cell
	case model.AlignCenter:
		left := text.CenterPad(width, w)
		return text.Blank(left) + cell + text.Blank(width-w-left)
	default:
		return cell + text.Blank(width-w)
	}
}

func (r *renderer) table(t *model.Table) (Group, error) {
	if len(t.Rows) == 0 {
		return Group{}, model.ErrEmptyTable
	}

	// column width is the widest cell, alignment is the first one stated
	// in the column
	columns := t.Columns()
	widths := make([]int, columns)
	aligns := make([]model.Alignment, columns)
	for i := range t.Rows {
		row := &t.Rows[i]
		if len(row.Cells) != columns || len(row.Flags) != columns {
			return Group{}, fmt.Errorf("%w: row %d", model.ErrUnevenTable, i)
		}
		for j, cell := range row.Cells {
			widths[j] = max(widths[j], text.Width(cell))
			if aligns[j] == model.AlignNone {
				aligns[j] = row.Flags[j].Align
			}
		}
	}

	// "|" followed by " cell |" for every column
	total := 1
	for _, w := range widths {
		total += w + 3
	}
	if total > r.layout.PageWidth {
		return Group{}, fmt.Errorf("%w: table %d is %d columns wide", ErrTooWide, t.Number, total)
	}
	pad := text.Blank(text.CenterPad(r.layout.PageWidth, total))

	var rule strings.Builder
	rule.WriteString(pad + "+")
	for _, w := range widths {
		rule.WriteString(strings.Repeat("-", w+2) + "+")
	}
	divider := rule.String()

	lines := []string{divider}
	for i := range t.Rows {
		row := &t.Rows[i]
		var line strings.Builder
		line.WriteString(pad + "|")
		for j, cell := range row.Cells {
			line.WriteString(" " + alignCell(cell, widths[j], aligns[j]) + " |")
		}
		lines = append(lines, line.String())
		if row.IsHeader() {
			lines = append(lines, divider)
		}
	}
	if lines[len(lines)-1] != divider {
		lines = append(lines, divider)
	}
	return Group{Lines: append(lines, r.caption("Table", t.Number, t.Title)...)}, nil
}

// list renders every top level item as a group of its own so pages could
// break between items. Text of the list node itself, if any, goes first as
// a paragraph.
func (r *renderer) list(n *model.ListNode) []Group {
	var groups []Group
	if len(n.Text) > 0 {
		groups = append(groups, Group{Lines: text.Wrap(n.Text, r.layout.ParagraphIndent, r.layout.PageWidth)})
	}
	for i := range n.Items {
		groups = append(groups, Group{Lines: r.listItem(&n.Items[i], r.layout.ParagraphIndent, n.Ordered, i+1)})
	}
	return groups
}

func (r *renderer) listItem(n *model.ListNode, indent int, ordered bool, counter int) []string {
	bullet := "*"
	if ordered {
		bullet = strconv.Itoa(counter) + "."
	}
	nested := indent + text.Width(bullet) + 1

	var lines []string
	if len(n.Text) > 0 {
		lines = label(text.Blank(indent)+bullet, text.Wrap(n.Text, nested, r.layout.PageWidth))
	} else {
		lines = []string{text.Blank(indent) + bullet}
	}
	for i := range n.Items {
		lines = append(lines, r.listItem(&n.Items[i], nested, n.Ordered, i+1)...)
	}
	return lines
}
