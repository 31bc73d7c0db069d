package txt

import (
	"strconv"
	"strings"
	"testing"

	"draftr/content/text"
	"draftr/model"
)

func heading(number, title string) Group {
	return Group{Lines: []string{number + ". " + title}, Section: &model.Section{Level: 1, Number: number, Text: title}}
}

func TestTOCEntries(t *testing.T) {
	pages := []Page{
		{Number: 3, Groups: []Group{heading("1", "Introduction"), groupOf("p", 3)}},
		{Number: 4, Groups: []Group{groupOf("p", 3), heading("2", "Overview"), heading("2.1", "Details")}},
	}
	got := tocEntries(pages)
	want := []TOCEntry{
		{Number: "1", Text: "Introduction", Page: 3},
		{Number: "2", Text: "Overview", Page: 4},
		{Number: "2.1", Text: "Details", Page: 4},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestTOC(t *testing.T) {
	r := testRenderer(t)

	groups := r.toc([]TOCEntry{
		{Number: "1", Text: "Introduction", Page: 4},
		{Number: "10", Text: "Security Considerations", Page: 123},
		{Text: "Unnumbered", Page: 9},
		{Number: "2", Text: strings.Repeat("lengthy ", 12), Page: 5},
	})
	if len(groups) != 5 {
		t.Fatalf("got %d groups, want title and 4 entries", len(groups))
	}
	compareLines(t, groups[0].Lines, []string{"Table of Contents"})

	first := groups[1].Lines
	if len(first) != 1 {
		t.Fatalf("short entry wrapped: %q", first)
	}
	if !strings.HasPrefix(first[0], "   1. Introduction  . . .") || !strings.HasSuffix(first[0], ". 4") {
		t.Errorf("entry = %q", first[0])
	}
	if !strings.HasPrefix(groups[2].Lines[0], "   10. Security Considerations ") || !strings.HasSuffix(groups[2].Lines[0], " 123") {
		t.Errorf("entry = %q", groups[2].Lines[0])
	}
	if !strings.HasPrefix(groups[3].Lines[0], "   Unnumbered ") {
		t.Errorf("entry = %q", groups[3].Lines[0])
	}

	long := groups[4].Lines
	if len(long) < 2 {
		t.Fatalf("long entry not wrapped: %q", long)
	}
	for _, l := range long[:len(long)-1] {
		if text.Width(l) > 72-2*4 {
			t.Errorf("wrapped line too wide: %q", l)
		}
		if strings.Contains(l, ". .") {
			t.Errorf("leader on non final line: %q", l)
		}
	}
	if !strings.HasPrefix(long[1], "      lengthy") {
		t.Errorf("continuation not aligned with text: %q", long[1])
	}

	// every final line has the same width regardless of page number
	for _, g := range groups[1:] {
		last := g.Lines[len(g.Lines)-1]
		if w := text.Width(last); w != 69 {
			t.Errorf("final line width %d, want 69: %q", w, last)
		}
	}
}

// bodyFixture returns three sections each followed by text which leaves no
// room for the next heading on the same page.
func bodyFixture() []Group {
	var body []Group
	for _, n := range []string{"1", "2", "3"} {
		body = append(body, heading(n, "Section "+n), groupOf("x", 50))
	}
	return body
}

func tocPages(t *testing.T, front []Page) []string {
	t.Helper()
	var numbers []string
	for _, p := range front {
		for _, g := range p.Groups {
			last := g.Lines[len(g.Lines)-1]
			if strings.Contains(last, ". . .") {
				numbers = append(numbers, last[strings.LastIndex(last, " ")+1:])
			}
		}
	}
	return numbers
}

func TestStabilize(t *testing.T) {
	t.Run("single front page", func(t *testing.T) {
		r := testRenderer(t)
		front, body := r.stabilize([]Group{groupOf("f", 10)}, bodyFixture())

		if len(front) != 1 || front[0].Number != 1 {
			t.Fatalf("front pages = %d", len(front))
		}
		if len(body) != 3 || body[0].Number != 2 || body[2].Number != 4 {
			t.Fatalf("body pages misnumbered: %d pages starting %d", len(body), body[0].Number)
		}
		got := tocPages(t, front)
		if strings.Join(got, ",") != "2,3,4" {
			t.Errorf("table of contents page numbers = %v", got)
		}
	})

	t.Run("table of contents spills", func(t *testing.T) {
		r := testRenderer(t)
		front, body := r.stabilize([]Group{groupOf("f", 50)}, bodyFixture())

		if len(front) != 2 || front[1].Number != 2 {
			t.Fatalf("front pages = %d", len(front))
		}
		if body[0].Number != 3 {
			t.Errorf("body starts on page %d, want 3", body[0].Number)
		}
		got := tocPages(t, front)
		if strings.Join(got, ",") != "3,4,5" {
			t.Errorf("table of contents page numbers = %v", got)
		}
		// body placement agrees with what table of contents says
		for i, e := range tocEntries(body) {
			if got[i] != strconv.Itoa(e.Page) {
				t.Errorf("entry %d says page %s, heading is on %d", i, got[i], e.Page)
			}
		}
	})

	t.Run("disabled", func(t *testing.T) {
		r := testRenderer(t)
		r.document.TOC = false
		front, body := r.stabilize([]Group{groupOf("f", 50), groupOf("g", 10)}, bodyFixture())

		if len(front) != 2 {
			t.Fatalf("front pages = %d", len(front))
		}
		if body[0].Number != 3 {
			t.Errorf("body starts on page %d, want 3", body[0].Number)
		}
		if got := tocPages(t, front); len(got) != 0 {
			t.Errorf("table of contents rendered while disabled: %v", got)
		}
	})

	t.Run("caller groups untouched", func(t *testing.T) {
		r := testRenderer(t)
		front := make([]Group, 1, 8)
		front[0] = groupOf("f", 1)
		r.stabilize(front, bodyFixture())
		if extra := front[:2]; extra[1].Lines != nil {
			t.Errorf("front backing array modified: %q", extra[1].Lines)
		}
	})
}
