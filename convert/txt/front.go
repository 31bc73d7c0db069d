package txt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/muesli/reflow/indent"
	"go.uber.org/zap"

	"draftr/content"
	"draftr/content/text"
	"draftr/model"
)

// titleBlock renders the first page heading: two columns of document and
// author information followed by centered title and document name.
func (r *renderer) titleBlock(m *model.Metadata) Group {
	left := []string{m.Workgroup, r.document.HeaderTag}
	if len(m.Category) > 0 {
		left = append(left, "Intended status: "+m.Category.Status())
	}
	left = append(left, "Expires: "+formatDate(expiry(m.Date)))

	// organization follows every run of authors from the same organization
	var right []string
	for i := range m.Authors {
		a := &m.Authors[i]
		right = append(right, shortName(a))
		if i == len(m.Authors)-1 || a.Org != m.Authors[i+1].Org {
			right = append(right, a.Org)
		}
	}
	right = append(right, formatDate(m.Date))

	width := r.layout.PageWidth
	var lines []string
	for i := range max(len(left), len(right)) {
		line := text.Blank(width)
		if i < len(left) {
			line = text.InsertLeft(left[i], line)
		}
		if i < len(right) {
			line = text.InsertRight(right[i], line)
		}
		lines = append(lines, line)
	}
	lines = append(lines, "", "")
	lines = append(lines, text.Center(text.Wrap(m.Title, 0, r.layout.TitleWidth), width)...)
	lines = append(lines, text.Center([]string{m.DocName}, width)...)
	return Group{Lines: lines}
}

func shortName(a *model.Author) string {
	if len(a.Ins) > 0 {
		return a.Ins
	}
	return a.Name
}

// boilerplate expands status and copyright template and splits result into
// groups on blank lines. A group made of a single heading line is joined
// with the one following it.
func (r *renderer) boilerplate(source string, m *model.Metadata) ([]Group, error) {
	out, err := expandTemplate("boilerplate", source, buildValues(m))
	if err != nil {
		return nil, err
	}

	var (
		groups  []Group
		current []string
	)
	flush := func() {
		if len(current) > 0 {
			groups = append(groups, Group{Lines: current})
			current = nil
		}
	}
	for _, l := range strings.Split(out, "\n") {
		l = strings.TrimRight(l, " \t\r")
		if len(l) == 0 {
			flush()
			continue
		}
		current = append(current, l)
	}
	flush()

	merged := make([]Group, 0, len(groups))
	for i := 0; i < len(groups); i++ {
		g := groups[i]
		if len(g.Lines) == 1 && !strings.HasPrefix(g.Lines[0], " ") && i+1 < len(groups) {
			g.Lines = append(append(g.Lines, ""), groups[i+1].Lines...)
			i++
		}
		merged = append(merged, g)
	}
	return merged, nil
}

// referencesNumber returns number for generated references section: one
// past the largest numeric top level section of the middle matter.
func referencesNumber(middle []model.Block) int {
	var number int
	for i := range middle {
		s := middle[i].Section
		if middle[i].Kind != model.BlockSection || s == nil || s.Level != 1 {
			continue
		}
		if n, err := strconv.Atoi(strings.TrimSpace(s.Number)); err == nil {
			number = max(number, n)
		}
	}
	return number + 1
}

func referenceEntry(n int, tag string, decl *model.Reference) string {
	entry := "[" + strconv.Itoa(n) + "] "
	if decl != nil && len(decl.Title) > 0 {
		entry += decl.Title
		if len(decl.Target) > 0 {
			entry += " <" + decl.Target + ">"
		}
		return entry
	}
	if info, err := model.IETFReferenceInfo(tag); err == nil {
		return entry + info.Citation() + " <" + info.URI + ">"
	}
	if model.IsHTTPReference(tag) {
		return entry + "<" + tag + ">"
	}
	entry += tag
	if decl != nil && len(decl.Target) > 0 {
		entry += " <" + decl.Target + ">"
	}
	return entry
}

// references builds blocks of the references section listing every cited
// reference. Nothing is generated when document cites nothing.
func (r *renderer) references(c *content.Content) []model.Block {
	refs := c.References
	if refs == nil || refs.Len() == 0 {
		return nil
	}

	number := strconv.Itoa(referencesNumber(c.Doc.Middle))
	heading := func(level int, number, title string) model.Block {
		return model.Block{Kind: model.BlockSection, Section: &model.Section{Level: level, Number: number, Text: title}}
	}

	blocks := []model.Block{heading(1, number, "References")}
	sub := 0
	for _, part := range []struct {
		title string
		tags  []string
	}{
		{"Normative References", refs.Normative},
		{"Informative References", refs.Informative},
	} {
		if len(part.tags) == 0 {
			continue
		}
		sub++
		blocks = append(blocks, heading(2, number+"."+strconv.Itoa(sub), part.title))
		for _, tag := range part.tags {
			blocks = append(blocks, model.NewParagraph(referenceEntry(refs.Map[tag], tag, c.Doc.Front.Declared(tag))))
		}
	}
	r.log.Debug("References section generated", zap.String("number", number), zap.Int("entries", refs.Len()))
	return blocks
}

// authors renders addresses section, every author gets own group.
func (r *renderer) authors(authors []model.Author) ([]Group, error) {
	title := "Authors' Addresses"
	if len(authors) == 1 {
		title = "Author's Address"
	}
	groups := []Group{{Lines: []string{title}}}

	for i := range authors {
		a := &authors[i]
		if len(strings.TrimSpace(a.Name)) == 0 {
			return nil, fmt.Errorf("%w: author %d has no name", ErrAuthor, i)
		}
		if len(strings.TrimSpace(a.Org)) == 0 {
			return nil, fmt.Errorf("%w: author %q has no organization", ErrAuthor, a.Name)
		}
		lines := []string{a.Name, a.Org}
		if len(a.Email) > 0 {
			lines = append(lines, "Email: "+a.Email)
		}
		if len(a.Phone) > 0 {
			lines = append(lines, "Phone: "+a.Phone)
		}
		if len(a.URI) > 0 {
			lines = append(lines, "URI:   "+a.URI)
		}
		address := indent.String(strings.Join(lines, "\n"), uint(r.layout.ParagraphIndent))
		groups = append(groups, Group{Lines: strings.Split(address, "\n")})
	}
	return groups, nil
}
