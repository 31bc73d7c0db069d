package content

import (
	"maps"
	"slices"
	"sort"

	"github.com/maruel/natural"

	"draftr/utils/debug"
)

// String returns a readable tree of the whole Content starting with prepared
// document. It exists solely for manual inspection during debugging.
func (c *Content) String() string {
	if c == nil {
		return "<nil Content>"
	}

	out := c.Doc.String()

	tw := debug.NewTreeWriter()
	tw.Line(0, "Render ID: %s", c.ID)
	out += "\n" + tw.String()

	if len(c.Anchors) > 0 {
		tw := debug.NewTreeWriter()
		tw.Line(0, "AnchorIndex (%d entries)", len(c.Anchors))
		keys := slices.Collect(maps.Keys(c.Anchors))
		sort.Sort(natural.StringSlice(keys))
		for _, k := range keys {
			tw.Line(1, "Anchor=%q label=%q", k, c.Anchors[k])
		}
		out += "\n" + tw.String()
	}

	if c.References != nil && c.References.Len() > 0 {
		tw := debug.NewTreeWriter()
		tw.Line(0, "ReferenceSet (%d normative, %d informative)", len(c.References.Normative), len(c.References.Informative))
		for _, tag := range c.References.Normative {
			tw.Line(1, "[%d] normative %q", c.References.Map[tag], tag)
		}
		for _, tag := range c.References.Informative {
			tw.Line(1, "[%d] informative %q", c.References.Map[tag], tag)
		}
		out += "\n" + tw.String()
	}

	return out
}
