package model

import (
	"errors"
	"testing"
)

func resolve(t *testing.T, doc *Document) error {
	t.Helper()
	log := testLogger(t)
	return doc.ResolveReferences(doc.BuildAnchorIndex(log), doc.BuildReferenceSet(log), log)
}

func TestResolveReferences(t *testing.T) {
	doc := sampleDocument(t)
	if err := resolve(t, doc); err != nil {
		t.Fatalf("ResolveReferences: %v", err)
	}

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"abstract citation", doc.Abstract[0].Paragraph.Text, "This document describes [1] usage."},
		{"mixed paragraph", doc.Middle[1].Paragraph.Text, "See Section 2 and the catalogue [4], also [2]."},
		{"list item", doc.Middle[5].List.Items[0].Text, "first, see Figure 1"},
		{"nested list item", doc.Middle[5].List.Items[1].Items[0].Text, "nested [3]"},
		{"blockquote", doc.Back[1].Blockquote.Text, "Quoted [5] and Table 1."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestResolveReferences_RFCWithoutLabel(t *testing.T) {
	doc := &Document{
		Front: Metadata{Normative: map[string]*Reference{"RFC2119": nil, "AAA": nil}},
		Middle: []Block{
			NewParagraph("Keywords per [](RFC2119), see [](AAA)."),
		},
	}
	if err := resolve(t, doc); err != nil {
		t.Fatalf("ResolveReferences: %v", err)
	}
	if got, want := doc.Middle[0].Paragraph.Text, "Keywords per [2], see [1]."; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestResolveReferences_Idempotent(t *testing.T) {
	doc := sampleDocument(t)
	if err := resolve(t, doc); err != nil {
		t.Fatalf("first pass: %v", err)
	}
	if tags := doc.citedTags(); len(tags) != 0 {
		t.Fatalf("rewritten text still has references: %v", tags)
	}

	before := doc.Middle[1].Paragraph.Text
	if err := resolve(t, doc); err != nil {
		t.Fatalf("second pass: %v", err)
	}
	if doc.Middle[1].Paragraph.Text != before {
		t.Errorf("second pass changed text: %q -> %q", before, doc.Middle[1].Paragraph.Text)
	}
}

func TestResolveReferences_AdjacentParenthesis(t *testing.T) {
	doc := &Document{Middle: []Block{
		NewParagraph("[http](RFC7230)(draft) and [](RFC7231)(x)"),
	}}
	if err := resolve(t, doc); err != nil {
		t.Fatalf("first pass: %v", err)
	}
	want := "http [1] (draft) and [2] (x)"
	if got := doc.Middle[0].Paragraph.Text; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	if tags := doc.citedTags(); len(tags) != 0 {
		t.Errorf("rewritten text still has references: %v", tags)
	}
	if err := resolve(t, doc); err != nil {
		t.Fatalf("second pass: %v", err)
	}
	if got := doc.Middle[0].Paragraph.Text; got != want {
		t.Errorf("second pass changed text to %q", got)
	}
}

func TestResolveReferences_Unknown(t *testing.T) {
	doc := &Document{Middle: []Block{
		NewParagraph("fine"),
		NewParagraph("broken [x](nowhere)"),
	}}
	err := resolve(t, doc)
	if !errors.Is(err, ErrUnknownReference) {
		t.Fatalf("expected ErrUnknownReference, got %v", err)
	}
}

func TestResolveReferences_Figure(t *testing.T) {
	doc := &Document{Middle: []Block{
		NewSection(1, "1", "Introduction", "intro"),
		NewFigure(1, "see [](intro) and [](RFC7230)", ""),
	}}
	if err := resolve(t, doc); err != nil {
		t.Fatalf("ResolveReferences: %v", err)
	}
	if got, want := doc.Middle[1].Figure.Text, "see Section 1 and [1]"; got != want {
		t.Errorf("figure text = %q, want %q", got, want)
	}
}

func TestResolveReferences_NFC(t *testing.T) {
	doc := &Document{Middle: []Block{NewParagraph("cafe\u0301 [](RFC1)")}}
	if err := resolve(t, doc); err != nil {
		t.Fatalf("ResolveReferences: %v", err)
	}
	if got, want := doc.Middle[0].Paragraph.Text, "caf\u00e9 [1]"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
