package model

import "maps"

// Clone and deep copy functions for Document structures. Every render works
// on its own copy, so the reference rewrite never touches caller's data.

// Clone creates a deep copy of the Document.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	return &Document{
		Front:    cloneMetadata(&d.Front),
		Notes:    cloneBlocks(d.Notes),
		Abstract: cloneBlocks(d.Abstract),
		Middle:   cloneBlocks(d.Middle),
		Back:     cloneBlocks(d.Back),
	}
}

func cloneMetadata(m *Metadata) Metadata {
	c := *m
	c.Authors = append([]Author(nil), m.Authors...)
	c.Normative = cloneReferences(m.Normative)
	c.Informative = cloneReferences(m.Informative)
	return c
}

func cloneReferences(refs map[string]*Reference) map[string]*Reference {
	if refs == nil {
		return nil
	}
	result := maps.Clone(refs)
	for k, v := range result {
		if v != nil {
			r := *v
			result[k] = &r
		}
	}
	return result
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s...)
}

func cloneBlocks(blocks []Block) []Block {
	if blocks == nil {
		return nil
	}
	result := make([]Block, len(blocks))
	for i := range blocks {
		result[i] = blocks[i].Clone()
	}
	return result
}

// Clone creates a deep copy of the Block.
func (b *Block) Clone() Block {
	c := Block{Kind: b.Kind}
	if b.Section != nil {
		s := *b.Section
		s.Anchors = cloneStrings(s.Anchors)
		c.Section = &s
	}
	if b.Paragraph != nil {
		p := *b.Paragraph
		c.Paragraph = &p
	}
	if b.Blockquote != nil {
		q := *b.Blockquote
		c.Blockquote = &q
	}
	if b.Figure != nil {
		f := *b.Figure
		f.Anchors = cloneStrings(f.Anchors)
		c.Figure = &f
	}
	if b.Table != nil {
		t := *b.Table
		t.Anchors = cloneStrings(t.Anchors)
		t.Rows = cloneRows(t.Rows)
		c.Table = &t
	}
	if b.List != nil {
		l := cloneListNode(b.List)
		c.List = &l
	}
	if b.Raw != nil {
		c.Raw = &Raw{Rendered: cloneStrings(b.Raw.Rendered)}
	}
	return c
}

func cloneRows(rows []Row) []Row {
	if rows == nil {
		return nil
	}
	result := make([]Row, len(rows))
	for i := range rows {
		result[i] = Row{
			Cells: cloneStrings(rows[i].Cells),
			Flags: append([]CellFlags(nil), rows[i].Flags...),
		}
	}
	return result
}

func cloneListNode(n *ListNode) ListNode {
	c := ListNode{Ordered: n.Ordered, Text: n.Text}
	if n.Items != nil {
		c.Items = make([]ListNode, len(n.Items))
		for i := range n.Items {
			c.Items[i] = cloneListNode(&n.Items[i])
		}
	}
	return c
}
