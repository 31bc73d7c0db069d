package txt

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"draftr/content/text"
	"draftr/model"
)

// PageBreak separates pages of the output.
const PageBreak = "\f\n"

// formatDate renders full date: "March 15, 2015".
func formatDate(t time.Time) string {
	return t.Format("January 2, 2006")
}

// formatMonth renders running header date: "September 2014".
func formatMonth(t time.Time) string {
	return t.Format("January 2006")
}

// expiry returns date document expires, six calendar months after
// publication.
func expiry(t time.Time) time.Time {
	return t.AddDate(0, 6, 0)
}

// surnames returns authors part of the running footer.
func surnames(authors []model.Author) (string, error) {
	switch len(authors) {
	case 0:
		return "", fmt.Errorf("%w: document has no authors", ErrAuthor)
	case 1:
		return authors[0].Surname(), nil
	case 2:
		return authors[0].Surname() + " & " + authors[1].Surname(), nil
	}
	return authors[0].Surname() + ", et al.", nil
}

// decoration holds running header and footer template shared by all pages.
type decoration struct {
	header string
	footer string
	height int
}

// HDR: Internet-Draft            Widget Exchange            September 2014
// FTR: Barnes & Rescorla       Expires March 15, 2015              [Page 1]
func (r *renderer) decoration(m *model.Metadata) (*decoration, error) {
	names, err := surnames(m.Authors)
	if err != nil {
		return nil, err
	}
	width := r.layout.PageWidth

	header := text.InsertCentered(m.Abbrev, text.Blank(width))
	header = text.InsertLeft(r.document.HeaderTag+" ", header)
	header = text.InsertRight(formatMonth(m.Date), header)

	footer := text.InsertLeft(names, text.Blank(width))
	footer = text.InsertCentered("Expires "+formatDate(expiry(m.Date)), footer)

	return &decoration{header: header, footer: footer, height: r.layout.PageHeight}, nil
}

// render assembles complete page: header (empty on the first page), two
// blank lines, content groups each followed by a blank line, padding up to
// page height and footer with page number.
func (d *decoration) render(p *Page, first bool) []string {
	header := d.header
	if first {
		header = ""
	}
	lines := make([]string, 0, d.height+4)
	lines = append(lines, header, "", "")
	for _, g := range p.Groups {
		lines = append(lines, g.Lines...)
		lines = append(lines, "")
	}
	for len(lines) < d.height+3 {
		lines = append(lines, "")
	}
	lines = append(lines, text.InsertRight("[Page "+strconv.Itoa(p.Number)+"]", d.footer))
	return lines
}

// assemble renders all pages and joins them with page breaks. Trailing
// blanks are removed from every line.
func (d *decoration) assemble(pages []Page) string {
	var out strings.Builder
	for i := range pages {
		if i > 0 {
			out.WriteString(PageBreak)
		}
		for _, l := range d.render(&pages[i], i == 0) {
			out.WriteString(strings.TrimRight(l, " "))
			out.WriteByte('\n')
		}
	}
	return out.String()
}
