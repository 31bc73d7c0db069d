package model

import (
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

func testLogger(t *testing.T) *zap.Logger {
	t.Helper()
	return zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))
}

func mustTable(t *testing.T, number int, title string, rows []Row, anchors ...string) Block {
	t.Helper()
	b, err := NewTable(number, title, rows, anchors...)
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	return b
}

func sampleDocument(t *testing.T) *Document {
	t.Helper()
	return &Document{
		Front: Metadata{
			Title:   "Example Protocol",
			DocName: "draft-example-protocol-00",
			Date:    time.Date(2014, time.September, 15, 0, 0, 0, 0, time.UTC),
			Authors: []Author{{Name: "Richard Barnes", Ins: "R. Barnes", Org: "Mozilla"}},
			Normative: map[string]*Reference{
				"RFC2119": nil,
				"UNUSED":  {Title: "Never cited"},
			},
			Informative: map[string]*Reference{
				"WIDGETS": {Title: "Some Catalogue", Target: "https://example.com/catalogue"},
			},
		},
		Abstract: []Block{NewParagraph("This document describes [](RFC2119) usage.")},
		Middle: []Block{
			NewSection(1, "1", "Introduction", "intro"),
			NewParagraph("See [](terms) and [the catalogue](WIDGETS), also [](I-D.ietf-foo-bar)."),
			NewSection(1, "2", "Terms", "terms"),
			NewFigure(1, "a -> b", "Flow", "flow"),
			mustTable(t, 1, "Values", []Row{
				{Cells: []string{"A", "B"}, Flags: []CellFlags{{Header: true}, {Header: true}}},
			}, "values"),
			NewList(false,
				ListNode{Text: "first, see [](flow)"},
				ListNode{Text: "second", Ordered: true, Items: []ListNode{{Text: "nested [](RFC8446)"}}},
			),
		},
		Back: []Block{
			NewSection(1, "A", "Acknowledgements", "ack"),
			NewBlockquote("Quoted [](https://example.org/x) and [](values)."),
		},
	}
}
