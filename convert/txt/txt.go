// Package txt renders prepared content as paginated fixed width plain text
// with running headers and footers and a table of contents.
package txt

import (
	"context"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"draftr/config"
	"draftr/content"
	"draftr/state"
	"draftr/utils/debug"
)

// Layout is a fully paginated document, front matter pages followed by
// body pages.
type Layout struct {
	Front []Page
	Body  []Page

	decoration *decoration
}

// Pages returns all pages in output order.
func (l *Layout) Pages() []Page {
	return append(slices.Clone(l.Front), l.Body...)
}

// Text renders layout as final output, pages separated by PageBreak.
func (l *Layout) Text() string {
	return l.decoration.assemble(l.Pages())
}

// Generate renders content as plain text.
func Generate(ctx context.Context, c *content.Content, cfg *config.Config, log *zap.Logger) (string, error) {
	l, err := Paginated(ctx, c, cfg, log)
	if err != nil {
		return "", err
	}
	return l.Text(), nil
}

// Paginated lays content out on pages without producing final text.
func Paginated(ctx context.Context, c *content.Content, cfg *config.Config, log *zap.Logger) (*Layout, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	env := state.EnvFromContext(ctx)
	r := newRenderer(cfg, log)
	doc := c.Doc

	deco, err := r.decoration(&doc.Front)
	if err != nil {
		return nil, err
	}

	// Front matter: title block, abstract, status and copyright, notes
	front := []Group{r.titleBlock(&doc.Front)}
	abstract, err := r.blocks(doc.Abstract)
	if err != nil {
		return nil, fmt.Errorf("unable to render abstract: %w", err)
	}
	front = append(front, abstract...)
	boilerplate, err := r.boilerplate(env.Boilerplate(), &doc.Front)
	if err != nil {
		return nil, fmt.Errorf("unable to render boilerplate: %w", err)
	}
	front = append(front, boilerplate...)
	notes, err := r.blocks(doc.Notes)
	if err != nil {
		return nil, fmt.Errorf("unable to render notes: %w", err)
	}
	front = append(front, notes...)

	// Body: middle with generated references, back, authors' addresses
	body, err := r.blocks(append(slices.Clone(doc.Middle), r.references(c)...))
	if err != nil {
		return nil, fmt.Errorf("unable to render middle: %w", err)
	}
	back, err := r.blocks(doc.Back)
	if err != nil {
		return nil, fmt.Errorf("unable to render back: %w", err)
	}
	body = append(body, back...)
	addresses, err := r.authors(doc.Front.Authors)
	if err != nil {
		return nil, fmt.Errorf("unable to render authors' addresses: %w", err)
	}
	body = append(body, addresses...)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	frontPages, bodyPages := r.stabilize(front, body)
	log.Debug("Document paginated",
		zap.Stringer("id", c.ID),
		zap.Int("front groups", len(front)),
		zap.Int("body groups", len(body)),
		zap.Int("pages", len(frontPages)+len(bodyPages)))

	return &Layout{Front: frontPages, Body: bodyPages, decoration: deco}, nil
}

// String returns a readable dump of page structure. It exists solely for
// manual inspection during debugging.
func (l *Layout) String() string {
	if l == nil {
		return "<nil Layout>"
	}
	tw := debug.NewTreeWriter()
	for _, part := range []struct {
		name  string
		pages []Page
	}{{"Front", l.Front}, {"Body", l.Body}} {
		tw.Line(0, "%s: %d pages", part.name, len(part.pages))
		for i := range part.pages {
			p := &part.pages[i]
			tw.Line(1, "Page %d: %d groups, %d rows", p.Number, len(p.Groups), p.Rows())
			for j, g := range p.Groups {
				name := fmt.Sprintf("Group[%d]", j)
				if g.Section != nil {
					name += fmt.Sprintf(" section=%q", g.Section.Number)
				}
				tw.Lines(2, name, g.Lines)
			}
		}
	}
	return tw.String()
}
