package model

import (
	"fmt"
	"io"

	yaml "gopkg.in/yaml.v3"
)

// DecodeDocument reads YAML serialized block tree. Only fields we defined are
// accepted at the document level, every block must carry "type".
func DecodeDocument(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	doc := &Document{}
	if err := dec.Decode(doc); err != nil {
		return nil, fmt.Errorf("unable to decode document: %w", err)
	}
	return doc, nil
}

// UnmarshalYAML decodes block variant selected by its "type" field.
func (b *Block) UnmarshalYAML(value *yaml.Node) error {
	var head struct {
		Type BlockKind `yaml:"type"`
	}
	if err := value.Decode(&head); err != nil {
		return err
	}

	*b = Block{Kind: head.Type}
	switch head.Type {
	case BlockSection:
		sec := &Section{}
		if err := value.Decode(sec); err != nil {
			return err
		}
		*b = NewSection(sec.Level, sec.Number, sec.Text, sec.Anchors...)
		return nil
	case BlockParagraph:
		b.Paragraph = &Paragraph{}
		return value.Decode(b.Paragraph)
	case BlockBlockquote:
		b.Blockquote = &Blockquote{}
		return value.Decode(b.Blockquote)
	case BlockFigure:
		b.Figure = &Figure{}
		return value.Decode(b.Figure)
	case BlockTable:
		t := &Table{}
		if err := value.Decode(t); err != nil {
			return err
		}
		tb, err := NewTable(t.Number, t.Title, t.Rows, t.Anchors...)
		if err != nil {
			return fmt.Errorf("line %d: %w", value.Line, err)
		}
		*b = tb
		return nil
	case BlockList:
		b.List = &ListNode{}
		return value.Decode(b.List)
	case BlockRaw:
		b.Raw = &Raw{}
		return value.Decode(b.Raw)
	}
	return fmt.Errorf("line %d: %w: %q", value.Line, ErrUnknownBlock, head.Type)
}
