package txt

import (
	"draftr/model"
)

// Group is a run of rendered lines which is never split between pages.
type Group struct {
	Lines []string
	// Section is set when group is a rendered heading, table of contents is
	// built from those.
	Section *model.Section
}

// Page is a set of groups placed on the same output page.
type Page struct {
	Number int
	Groups []Group
}

// Rows returns number of content rows page occupies, every group is
// followed by a single separator line.
func (p *Page) Rows() int {
	var rows int
	for i := range p.Groups {
		rows += len(p.Groups[i].Lines) + 1
	}
	return rows
}

// Paginate packs groups onto pages of pageHeight content rows in a single
// forward pass. A group joins current page while it fits together with its
// separator line, otherwise new page is started. Groups are never split or
// reordered and pages are never empty: a group taller than a whole page is
// placed alone and overflows it. Pages are numbered sequentially starting
// with first.
func Paginate(groups []Group, pageHeight, first int) []Page {
	var (
		pages []Page
		used  int
	)
	current := Page{Number: first}
	for _, g := range groups {
		need := len(g.Lines) + 1
		if used > 0 && used+need > pageHeight {
			pages = append(pages, current)
			current = Page{Number: current.Number + 1}
			used = 0
		}
		current.Groups = append(current.Groups, g)
		used += need
	}
	if len(current.Groups) > 0 {
		pages = append(pages, current)
	}
	return pages
}

// renumber shifts numbers of all pages by offset.
func renumber(pages []Page, offset int) {
	for i := range pages {
		pages[i].Number += offset
	}
}
