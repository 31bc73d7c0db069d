package txt

import (
	"strconv"
	"strings"

	"go.uber.org/zap"

	"draftr/content/text"
)

// TOCEntry is a single heading as placed on a page.
type TOCEntry struct {
	Number string
	Text   string
	Page   int
}

// tocEntries lists every heading group in page order.
func tocEntries(pages []Page) []TOCEntry {
	var entries []TOCEntry
	for i := range pages {
		for _, g := range pages[i].Groups {
			if g.Section == nil {
				continue
			}
			entries = append(entries, TOCEntry{Number: g.Section.Number, Text: g.Section.Text, Page: pages[i].Number})
		}
	}
	return entries
}

// toc renders table of contents. Entry text is wrapped narrower than the
// page to leave room for the page number, the last line of every entry is
// filled with dotted leader and ends with the page number.
func (r *renderer) toc(entries []TOCEntry) []Group {
	width := r.layout.PageWidth
	leader := strings.Repeat(". ", width)[:width-3]

	groups := make([]Group, 0, len(entries)+1)
	groups = append(groups, Group{Lines: []string{r.document.TOCTitle}})
	for _, e := range entries {
		var number string
		if len(e.Number) > 0 {
			number = e.Number + ". "
		}
		prefix := text.Blank(r.layout.ParagraphIndent) + number
		lines := label(prefix, text.Wrap(e.Text, text.Width(prefix), width-2*r.layout.TOCNumberWidth))

		last := len(lines) - 1
		lines[last] = text.InsertLeft(lines[last]+" ", leader)
		lines[last] = text.InsertRight(" "+strconv.Itoa(e.Page), lines[last])
		groups = append(groups, Group{Lines: lines})
	}
	return groups
}

// stabilize paginates front matter and body so that table of contents
// shows correct page numbers while occupying front matter pages itself.
//
// Body is paginated from page 1 and preliminary table of contents is built.
// Front matter with it appended tells how many pages precede the body, body
// pages are renumbered accordingly and table of contents is rebuilt with
// final numbers. Front matter is paginated once more with the final table.
// This is done exactly twice: page number widths do not change line count of
// an entry, so second round does not move body pages.
func (r *renderer) stabilize(front, body []Group) ([]Page, []Page) {
	height := r.layout.PageHeight
	bodyPages := Paginate(body, height, 1)

	if !r.document.TOC {
		frontPages := Paginate(front, height, 1)
		renumber(bodyPages, len(frontPages))
		return frontPages, bodyPages
	}

	alone := len(Paginate(front, height, 1))
	preliminary := r.toc(tocEntries(bodyPages))
	offset := len(Paginate(append(front[:len(front):len(front)], preliminary...), height, 1))
	renumber(bodyPages, offset)

	final := r.toc(tocEntries(bodyPages))
	frontPages := Paginate(append(front[:len(front):len(front)], final...), height, 1)

	r.log.Debug("Table of contents placed",
		zap.Int("front pages", alone),
		zap.Int("with toc", offset),
		zap.Int("final", len(frontPages)),
		zap.Int("entries", len(final)-1))
	if len(frontPages) != offset {
		r.log.Warn("Table of contents changed front matter length, page numbers may be off",
			zap.Int("expected", offset), zap.Int("actual", len(frontPages)))
	}
	return frontPages, bodyPages
}
