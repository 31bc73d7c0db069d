package txt

import (
	"context"
	"strconv"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"draftr/config"
	"draftr/content"
	"draftr/model"
	"draftr/state"
)

var publication = time.Date(2014, time.September, 15, 0, 0, 0, 0, time.UTC)

func setupTestContext(t *testing.T) (context.Context, *state.LocalEnv) {
	t.Helper()
	cfg, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	ctx := state.ContextWithEnv(context.Background())
	env := state.EnvFromContext(ctx)
	env.Cfg = cfg
	env.Log = zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))
	env.Now = func() time.Time { return publication }
	return ctx, env
}

func testRenderer(t *testing.T) *renderer {
	t.Helper()
	_, env := setupTestContext(t)
	return newRenderer(env.Cfg, env.Log)
}

func mustTable(t *testing.T, number int, title string, rows []model.Row) model.Block {
	t.Helper()
	b, err := model.NewTable(number, title, rows)
	if err != nil {
		t.Fatalf("NewTable() error = %v", err)
	}
	return b
}

func headerRow(cells ...string) model.Row {
	flags := make([]model.CellFlags, len(cells))
	for i := range flags {
		flags[i].Header = true
	}
	return model.Row{Cells: cells, Flags: flags}
}

func dataRow(cells ...string) model.Row {
	return model.Row{Cells: cells, Flags: make([]model.CellFlags, len(cells))}
}

func testAuthors(n int) []model.Author {
	all := []model.Author{
		{Name: "Richard Barnes", Ins: "R. Barnes", Org: "Mozilla", Email: "rlb@example.com"},
		{Name: "Eric Rescorla", Ins: "E. Rescorla", Org: "Mozilla"},
		{Name: "Martin Thomson", Ins: "M. Thomson", Org: "Example Corp"},
		{Name: "Sean Turner", Ins: "S. Turner", Org: "sn3rd"},
	}
	return append([]model.Author{}, all[:n]...)
}

// testDocument returns document with enough sections to span several
// pages.
func testDocument(t *testing.T, authors int) *model.Document {
	t.Helper()
	doc := &model.Document{
		Front: model.Metadata{
			Title:    "Example Protocol for Widget Exchange",
			Abbrev:   "Widget Exchange",
			DocName:  "draft-example-widgets-00",
			Category: model.CategoryInfo,
			Date:     publication,
			Authors:  testAuthors(authors),
			Normative: map[string]*model.Reference{
				"RFC2119": nil,
			},
			Informative: map[string]*model.Reference{
				"WIDGETS": {Title: "The Widget Catalogue", Target: "https://example.com/widgets"},
			},
		},
		Abstract: []model.Block{
			model.NewSection(1, "", "Abstract"),
			model.NewParagraph("This document defines widget exchange. The key words are to be interpreted as described in [](RFC2119)."),
		},
		Middle: []model.Block{
			model.NewSection(1, "1", "Introduction", "intro"),
			model.NewParagraph("Widgets are described in [the catalogue](WIDGETS), values are listed in [](values)."),
			mustTable(t, 1, "Widget values", []model.Row{headerRow("A", "Beta", "C"), dataRow("1", "2", "3")}),
			model.NewSection(1, "2", "Protocol Overview", "overview"),
		},
		Back: []model.Block{
			model.NewSection(1, "A", "Acknowledgements"),
			model.NewParagraph("Thanks to everyone."),
		},
	}
	doc.Middle[2].Table.Anchors = []string{"values"}

	// enough text to push sections onto following pages
	for i := range 12 {
		doc.Middle = append(doc.Middle,
			model.NewSection(2, "2."+strconv.Itoa(i+1), "Step number "+strconv.Itoa(i+1)),
			model.NewParagraph(longText),
		)
	}
	return doc
}

const longText = "Lorem ipsum dolor sit amet, consectetur adipiscing elit, sed do eiusmod " +
	"tempor incididunt ut labore et dolore magna aliqua. Ut enim ad minim veniam, quis " +
	"nostrud exercitation ullamco laboris nisi ut aliquip ex ea commodo consequat. Duis " +
	"aute irure dolor in reprehenderit in voluptate velit esse cillum dolore eu fugiat " +
	"nulla pariatur."

func prepare(t *testing.T, ctx context.Context, doc *model.Document) *content.Content {
	t.Helper()
	c, err := content.Prepare(ctx, doc, state.EnvFromContext(ctx).Log)
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	return c
}
