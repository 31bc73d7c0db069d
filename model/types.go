// Package model defines the document block tree shared by every renderer
// together with the reference machinery operating on it.
package model

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/gosimple/slug"
)

// BlockKind distinguishes the different kinds of blocks.
type BlockKind string

const (
	BlockSection    BlockKind = "section"
	BlockParagraph  BlockKind = "paragraph"
	BlockBlockquote BlockKind = "blockquote"
	BlockFigure     BlockKind = "figure"
	BlockTable      BlockKind = "table"
	BlockList       BlockKind = "listnode"
	BlockRaw        BlockKind = "raw"
)

// Block stores a single piece of document content. Exactly one of the
// pointers, the one matching Kind, is set.
type Block struct {
	Kind       BlockKind
	Section    *Section
	Paragraph  *Paragraph
	Blockquote *Blockquote
	Figure     *Figure
	Table      *Table
	List       *ListNode
	Raw        *Raw
}

// Section is a heading. Number is a dotted path ("3.2") or, in appendices,
// letter prefixed ("A.1"). It may be empty for unnumbered headings such as
// "Abstract".
type Section struct {
	Level   int      `yaml:"level"`
	Number  string   `yaml:"number,omitempty"`
	Text    string   `yaml:"text"`
	Anchors []string `yaml:"anchors,omitempty"`
}

// Paragraph holds running text with inline [label](tag) references.
type Paragraph struct {
	Text string `yaml:"text"`
}

// Blockquote holds quoted text with inline [label](tag) references.
type Blockquote struct {
	Text string `yaml:"text"`
}

// Figure is a piece of preformatted artwork which is never reflowed.
type Figure struct {
	Text    string   `yaml:"text"`
	Number  int      `yaml:"number"`
	Title   string   `yaml:"title,omitempty"`
	Anchors []string `yaml:"anchors,omitempty"`
}

// Alignment of table column content.
type Alignment string

const (
	AlignNone   Alignment = ""
	AlignLeft   Alignment = "left"
	AlignRight  Alignment = "right"
	AlignCenter Alignment = "center"
)

func (a Alignment) valid() bool {
	switch a {
	case AlignNone, AlignLeft, AlignRight, AlignCenter:
		return true
	}
	return false
}

// CellFlags carries per cell formatting hints.
type CellFlags struct {
	Align  Alignment `yaml:"align,omitempty"`
	Header bool      `yaml:"header,omitempty"`
}

// Row is a single table row, Flags run parallel to Cells.
type Row struct {
	Cells []string    `yaml:"cells"`
	Flags []CellFlags `yaml:"flags"`
}

// IsHeader reports whether any cell of the row is flagged as header.
func (r *Row) IsHeader() bool {
	for _, f := range r.Flags {
		if f.Header {
			return true
		}
	}
	return false
}

// Table is a grid of cells, all rows have the same number of cells.
type Table struct {
	Rows    []Row    `yaml:"data"`
	Number  int      `yaml:"number"`
	Title   string   `yaml:"title,omitempty"`
	Anchors []string `yaml:"anchors,omitempty"`
}

// Columns returns number of cells in every row.
func (t *Table) Columns() int {
	if len(t.Rows) == 0 {
		return 0
	}
	return len(t.Rows[0].Cells)
}

// ListNode is recursive: a node may carry both its own text and nested items.
// Ordered applies to Items of the node.
type ListNode struct {
	Ordered bool       `yaml:"ordered,omitempty"`
	Text    string     `yaml:"text,omitempty"`
	Items   []ListNode `yaml:"items,omitempty"`
}

// Raw holds lines which bypass any further layout.
type Raw struct {
	Rendered []string `yaml:"rendered"`
}

// Category is the intended status of the document.
type Category string

const (
	CategoryStd  Category = "std"
	CategoryInfo Category = "info"
	CategoryExp  Category = "exp"
	CategoryBCP  Category = "bcp"
)

// Status returns human readable intended status.
func (c Category) Status() string {
	switch Category(strings.ToLower(string(c))) {
	case CategoryStd:
		return "Standards Track"
	case CategoryInfo:
		return "Informational"
	case CategoryExp:
		return "Experimental"
	case CategoryBCP:
		return "BCP"
	}
	return "Unknown"
}

// Author mirrors a single author record of the front matter.
type Author struct {
	Name  string `yaml:"name"`
	Ins   string `yaml:"ins"`
	Org   string `yaml:"org"`
	Email string `yaml:"email,omitempty"`
	Phone string `yaml:"phone,omitempty"`
	URI   string `yaml:"uri,omitempty"`
}

// Surname extracts surname from the short form ("R. Barnes" -> "Barnes"),
// falling back to the last word of the full name.
func (a *Author) Surname() string {
	if ins := strings.TrimSpace(a.Ins); ins != "" {
		return leadingInitials.ReplaceAllString(ins, "")
	}
	if fields := strings.Fields(a.Name); len(fields) > 0 {
		return fields[len(fields)-1]
	}
	return ""
}

// Reference is descriptive data of a declared reference. Declaration without
// any data (nil value) is perfectly legal.
type Reference struct {
	Title  string `yaml:"title,omitempty"`
	Target string `yaml:"target,omitempty"`
}

// Metadata is the front matter record, consumed as is.
type Metadata struct {
	Title       string                `yaml:"title"`
	Abbrev      string                `yaml:"abbrev,omitempty"`
	DocName     string                `yaml:"docname"`
	Category    Category              `yaml:"cat"`
	Workgroup   string                `yaml:"wg,omitempty"`
	Date        time.Time             `yaml:"date,omitempty"`
	Authors     []Author              `yaml:"author"`
	Normative   map[string]*Reference `yaml:"normative,omitempty"`
	Informative map[string]*Reference `yaml:"informative,omitempty"`
}

// IsNormative reports whether tag is declared as normative reference.
func (m *Metadata) IsNormative(tag string) bool {
	_, ok := m.Normative[tag]
	return ok
}

// IsDeclared reports whether tag is declared in either reference list.
func (m *Metadata) IsDeclared(tag string) bool {
	if _, ok := m.Normative[tag]; ok {
		return true
	}
	_, ok := m.Informative[tag]
	return ok
}

// Declared returns declaration data for tag, nil if there is none.
func (m *Metadata) Declared(tag string) *Reference {
	if r, ok := m.Normative[tag]; ok {
		return r
	}
	return m.Informative[tag]
}

// Document is the whole block tree produced by the front-end.
type Document struct {
	Front    Metadata `yaml:"front"`
	Notes    []Block  `yaml:"notes,omitempty"`
	Abstract []Block  `yaml:"abstract,omitempty"`
	Middle   []Block  `yaml:"middle,omitempty"`
	Back     []Block  `yaml:"back,omitempty"`
}

// Parts returns block lists in the order anchors and references are
// gathered.
func (d *Document) Parts() [][]Block {
	return [][]Block{d.Abstract, d.Notes, d.Middle, d.Back}
}

// Constructors. They keep Kind and variant pointer in sync.

// NewSection creates heading block. In addition to explicit anchors the
// heading gets an implicit anchor derived from its text.
func NewSection(level int, number, text string, anchors ...string) Block {
	all := append([]string{}, anchors...)
	if implicit := slug.Make(text); implicit != "" && !slices.Contains(all, implicit) {
		all = append(all, implicit)
	}
	return Block{Kind: BlockSection, Section: &Section{Level: level, Number: number, Text: text, Anchors: all}}
}

func NewParagraph(text string) Block {
	return Block{Kind: BlockParagraph, Paragraph: &Paragraph{Text: text}}
}

func NewBlockquote(text string) Block {
	return Block{Kind: BlockBlockquote, Blockquote: &Blockquote{Text: text}}
}

func NewFigure(number int, text, title string, anchors ...string) Block {
	return Block{Kind: BlockFigure, Figure: &Figure{Text: text, Number: number, Title: title, Anchors: anchors}}
}

// NewTable creates table block enforcing table invariants: at least one
// row, every row has as many cells (and flags) as the first one.
func NewTable(number int, title string, rows []Row, anchors ...string) (Block, error) {
	t := &Table{Rows: rows, Number: number, Title: title, Anchors: anchors}
	if err := t.check(); err != nil {
		return Block{}, err
	}
	return Block{Kind: BlockTable, Table: t}, nil
}

func (t *Table) check() error {
	if len(t.Rows) == 0 {
		return ErrEmptyTable
	}
	width := len(t.Rows[0].Cells)
	for i := range t.Rows {
		if len(t.Rows[i].Cells) != width {
			return fmt.Errorf("%w: row %d has %d cells, expected %d", ErrUnevenTable, i, len(t.Rows[i].Cells), width)
		}
		if len(t.Rows[i].Flags) != width {
			return fmt.Errorf("%w: row %d has %d cell flags, expected %d", ErrUnevenTable, i, len(t.Rows[i].Flags), width)
		}
	}
	return nil
}

func NewList(ordered bool, items ...ListNode) Block {
	return Block{Kind: BlockList, List: &ListNode{Ordered: ordered, Items: items}}
}

func NewRaw(lines ...string) Block {
	return Block{Kind: BlockRaw, Raw: &Raw{Rendered: lines}}
}

// Anchors returns anchors carried by the block and the label they resolve
// to. Only sections, figures and tables can be anchored.
func (b *Block) Anchors() ([]string, string) {
	switch b.Kind {
	case BlockSection:
		if b.Section != nil {
			return b.Section.Anchors, "Section " + b.Section.Number
		}
	case BlockFigure:
		if b.Figure != nil {
			return b.Figure.Anchors, fmt.Sprintf("Figure %d", b.Figure.Number)
		}
	case BlockTable:
		if b.Table != nil {
			return b.Table.Anchors, fmt.Sprintf("Table %d", b.Table.Number)
		}
	}
	return nil, ""
}

// textFields calls fn for every text field of the block which may carry
// inline references, recursing into list items.
func (b *Block) textFields(fn func(*string) error) error {
	switch b.Kind {
	case BlockSection:
		if b.Section != nil {
			return fn(&b.Section.Text)
		}
	case BlockParagraph:
		if b.Paragraph != nil {
			return fn(&b.Paragraph.Text)
		}
	case BlockBlockquote:
		if b.Blockquote != nil {
			return fn(&b.Blockquote.Text)
		}
	case BlockFigure:
		if b.Figure != nil {
			return fn(&b.Figure.Text)
		}
	case BlockList:
		if b.List != nil {
			return b.List.textFields(fn)
		}
	}
	return nil
}

func (n *ListNode) textFields(fn func(*string) error) error {
	if n.Text != "" {
		if err := fn(&n.Text); err != nil {
			return err
		}
	}
	for i := range n.Items {
		if err := n.Items[i].textFields(fn); err != nil {
			return err
		}
	}
	return nil
}
