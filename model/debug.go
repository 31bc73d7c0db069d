package model

import (
	"maps"
	"slices"
	"sort"

	"github.com/maruel/natural"

	"draftr/utils/debug"
)

type treeWriter struct {
	*debug.TreeWriter
}

// String returns a readable tree of the document. It exists solely for
// manual inspection during debugging.
func (d *Document) String() string {
	if d == nil {
		return "<nil Document>"
	}
	return treeWriter{debug.NewTreeWriter()}.document(d).String()
}

func (tw treeWriter) document(d *Document) treeWriter {
	tw.Line(0, "Document")
	tw.metadata(1, &d.Front)
	tw.blocks(1, "Notes", d.Notes)
	tw.blocks(1, "Abstract", d.Abstract)
	tw.blocks(1, "Middle", d.Middle)
	tw.blocks(1, "Back", d.Back)
	return tw
}

func (tw treeWriter) metadata(depth int, m *Metadata) {
	tw.Line(depth, "Front docname=%q cat=%q wg=%q date=%q", m.DocName, m.Category, m.Workgroup, m.Date.Format("2006-01-02"))
	tw.TextBlock(depth+1, "Title", m.Title)
	tw.TextBlock(depth+1, "Abbrev", m.Abbrev)
	for i := range m.Authors {
		a := &m.Authors[i]
		tw.Line(depth+1, "Author[%d] name=%q ins=%q org=%q email=%q", i, a.Name, a.Ins, a.Org, a.Email)
	}
	tw.references(depth+1, "Normative", m.Normative)
	tw.references(depth+1, "Informative", m.Informative)
}

func (tw treeWriter) references(depth int, label string, refs map[string]*Reference) {
	if len(refs) == 0 {
		return
	}
	tw.Line(depth, "%s: %d", label, len(refs))
	keys := slices.Collect(maps.Keys(refs))
	sort.Sort(natural.StringSlice(keys))
	for _, k := range keys {
		if r := refs[k]; r != nil {
			tw.Line(depth+1, "Reference[%q] title=%q target=%q", k, r.Title, r.Target)
		} else {
			tw.Line(depth+1, "Reference[%q]", k)
		}
	}
}

func (tw treeWriter) blocks(depth int, label string, blocks []Block) {
	if len(blocks) == 0 {
		return
	}
	tw.Line(depth, "%s: %d blocks", label, len(blocks))
	for i := range blocks {
		tw.block(depth+1, &blocks[i], i)
	}
}

func (tw treeWriter) block(depth int, b *Block, index int) {
	switch {
	case b.Kind == BlockSection && b.Section != nil:
		s := b.Section
		tw.Line(depth, "Block[%d] section level=%d number=%q", index, s.Level, s.Number)
		tw.TextBlock(depth+1, "Text", s.Text)
		tw.Strings(depth+1, "Anchors", s.Anchors)
	case b.Kind == BlockParagraph && b.Paragraph != nil:
		tw.Line(depth, "Block[%d] paragraph", index)
		tw.TextBlock(depth+1, "Text", b.Paragraph.Text)
	case b.Kind == BlockBlockquote && b.Blockquote != nil:
		tw.Line(depth, "Block[%d] blockquote", index)
		tw.TextBlock(depth+1, "Text", b.Blockquote.Text)
	case b.Kind == BlockFigure && b.Figure != nil:
		f := b.Figure
		tw.Line(depth, "Block[%d] figure number=%d", index, f.Number)
		tw.TextBlock(depth+1, "Title", f.Title)
		tw.Strings(depth+1, "Anchors", f.Anchors)
		tw.TextBlock(depth+1, "Text", f.Text)
	case b.Kind == BlockTable && b.Table != nil:
		t := b.Table
		tw.Line(depth, "Block[%d] table number=%d rows=%d columns=%d", index, t.Number, len(t.Rows), t.Columns())
		tw.TextBlock(depth+1, "Title", t.Title)
		tw.Strings(depth+1, "Anchors", t.Anchors)
		for i := range t.Rows {
			tw.Line(depth+1, "Row[%d] header=%t", i, t.Rows[i].IsHeader())
			tw.Strings(depth+2, "Cells", t.Rows[i].Cells)
		}
	case b.Kind == BlockList && b.List != nil:
		tw.Line(depth, "Block[%d] list", index)
		tw.listNode(depth+1, b.List)
	case b.Kind == BlockRaw && b.Raw != nil:
		tw.Line(depth, "Block[%d] raw", index)
		tw.Lines(depth+1, "Rendered", b.Raw.Rendered)
	default:
		tw.Line(depth, "Block[%d] invalid kind=%q", index, b.Kind)
	}
}

func (tw treeWriter) listNode(depth int, n *ListNode) {
	tw.Line(depth, "ListNode ordered=%t items=%d", n.Ordered, len(n.Items))
	if n.Text != "" {
		tw.TextBlock(depth+1, "Text", n.Text)
	}
	for i := range n.Items {
		tw.listNode(depth+1, &n.Items[i])
	}
}
