package model

import (
	"fmt"

	"go.uber.org/multierr"
)

// Validate checks structural invariants of the whole document and reports
// every violation found. Any violation is fatal for rendering.
func (d *Document) Validate() error {
	var err error
	parts := []struct {
		name   string
		blocks []Block
	}{
		{"notes", d.Notes},
		{"abstract", d.Abstract},
		{"middle", d.Middle},
		{"back", d.Back},
	}
	for _, p := range parts {
		for i := range p.blocks {
			if e := p.blocks[i].validate(); e != nil {
				err = multierr.Append(err, fmt.Errorf("%s[%d]: %w", p.name, i, e))
			}
		}
	}
	return err
}

func (b *Block) validate() error {
	var set int
	for _, present := range []bool{
		b.Section != nil, b.Paragraph != nil, b.Blockquote != nil,
		b.Figure != nil, b.Table != nil, b.List != nil, b.Raw != nil,
	} {
		if present {
			set++
		}
	}
	if set != 1 {
		return fmt.Errorf("%w: %q block has %d variants set", ErrUnknownBlock, b.Kind, set)
	}

	switch b.Kind {
	case BlockSection:
		if b.Section == nil {
			break
		}
		if b.Section.Level < 1 {
			return fmt.Errorf("section %q has invalid level %d", b.Section.Text, b.Section.Level)
		}
		return nil
	case BlockParagraph:
		if b.Paragraph != nil {
			return nil
		}
	case BlockBlockquote:
		if b.Blockquote != nil {
			return nil
		}
	case BlockFigure:
		if b.Figure != nil {
			return nil
		}
	case BlockTable:
		if b.Table == nil {
			break
		}
		if err := b.Table.check(); err != nil {
			return err
		}
		for i := range b.Table.Rows {
			for _, f := range b.Table.Rows[i].Flags {
				if !f.Align.valid() {
					return fmt.Errorf("table row %d: unknown alignment %q", i, f.Align)
				}
			}
		}
		return nil
	case BlockList:
		if b.List != nil {
			return nil
		}
	case BlockRaw:
		if b.Raw != nil {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownBlock, b.Kind)
}
