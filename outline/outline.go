// Package outline turns Markdown documents into sections of rows.
package outline

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/oklog/ulid/v2"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/odvcencio/sectionlist/layout"
	"github.com/odvcencio/sectionlist/measure"
)

// ErrInvalidUTF8 is returned for sources that are not valid UTF-8.
var ErrInvalidUTF8 = errors.New("outline: source is not valid UTF-8")

// EntryKind is the block a row came from.
type EntryKind int

const (
	EntryParagraph EntryKind = iota
	EntryItem
	EntryHeading
	EntryCode
)

// String returns the lower-case kind name.
func (k EntryKind) String() string {
	switch k {
	case EntryParagraph:
		return "paragraph"
	case EntryItem:
		return "item"
	case EntryHeading:
		return "heading"
	case EntryCode:
		return "code"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k EntryKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Entry is one row of an outline.
type Entry struct {
	Kind EntryKind `json:"kind"`
	Text string    `json:"text"`
	Lang string    `json:"lang,omitempty"`
}

// String returns the row text.
func (e Entry) String() string {
	return e.Text
}

// Lines returns the display lines of the entry at width. Code is never
// wrapped.
func (e Entry) Lines(width int) []string {
	if e.Kind == EntryCode {
		return strings.Split(e.Text, "\n")
	}
	return measure.Lines(e.Text, width)
}

// ItemHeight sizes each row by the number of lines it wraps to at width,
// never less than floor.
func ItemHeight(width int, floor float64) layout.ItemHeight[Entry] {
	return layout.ItemFunc(func(e Entry, _, _ int) float64 {
		return max(float64(len(e.Lines(width))), floor)
	})
}

// NewKey returns a key for sections that have no heading.
var NewKey = func() string {
	return ulid.Make().String()
}

var markdown = goldmark.New(goldmark.WithParserOptions(parser.WithAutoHeadingID()))

// Parse splits src into sections. Level one and two headings start a
// section keyed by the heading id. Content before the first heading goes
// into an untitled section. Paragraphs, list items, deeper headings and
// code blocks become rows.
func Parse(src []byte) ([]layout.Section[Entry], error) {
	if !utf8.Valid(src) {
		return nil, ErrInvalidUTF8
	}
	doc := markdown.Parser().Parse(text.NewReader(src))

	var sections []layout.Section[Entry]
	add := func(e Entry) {
		if len(sections) == 0 {
			sections = append(sections, layout.Section[Entry]{Key: NewKey()})
		}
		last := &sections[len(sections)-1]
		last.Data = append(last.Data, e)
	}

	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n := n.(type) {
		case *ast.Heading:
			title := inlineText(n, src)
			if n.Level > 2 {
				add(Entry{Kind: EntryHeading, Text: title})
				return ast.WalkSkipChildren, nil
			}
			sections = append(sections, layout.Section[Entry]{Key: headingKey(n), Title: title})
			return ast.WalkSkipChildren, nil
		case *ast.Paragraph:
			if _, ok := n.Parent().(*ast.ListItem); ok {
				return ast.WalkSkipChildren, nil
			}
			if t := inlineText(n, src); t != "" {
				add(Entry{Kind: EntryParagraph, Text: t})
			}
			return ast.WalkSkipChildren, nil
		case *ast.ListItem:
			add(Entry{Kind: EntryItem, Text: itemText(n, src)})
			return ast.WalkContinue, nil
		case *ast.TextBlock:
			return ast.WalkSkipChildren, nil
		case *ast.FencedCodeBlock:
			add(Entry{Kind: EntryCode, Text: codeText(n, src), Lang: string(n.Language(src))})
			return ast.WalkSkipChildren, nil
		case *ast.CodeBlock:
			add(Entry{Kind: EntryCode, Text: codeText(n, src)})
			return ast.WalkSkipChildren, nil
		case *ast.HTMLBlock, *ast.ThematicBreak:
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, err
	}
	return sections, nil
}

func headingKey(h *ast.Heading) string {
	if id, ok := h.AttributeString("id"); ok {
		if b, ok := id.([]byte); ok && len(b) > 0 {
			return string(b)
		}
	}
	return NewKey()
}

// itemText joins the inline text of the item's own blocks. Nested lists
// produce their own rows.
func itemText(item *ast.ListItem, src []byte) string {
	var parts []string
	for c := item.FirstChild(); c != nil; c = c.NextSibling() {
		switch c.(type) {
		case *ast.Paragraph, *ast.TextBlock:
			if t := inlineText(c, src); t != "" {
				parts = append(parts, t)
			}
		}
	}
	return strings.Join(parts, " ")
}

func inlineText(n ast.Node, src []byte) string {
	var sb strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch c := c.(type) {
		case *ast.Text:
			sb.Write(c.Segment.Value(src))
			if c.SoftLineBreak() || c.HardLineBreak() {
				sb.WriteByte(' ')
			}
		case *ast.String:
			sb.Write(c.Value)
		case *ast.AutoLink:
			sb.Write(c.Label(src))
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(sb.String())
}

func codeText(n ast.Node, src []byte) string {
	var sb strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		sb.Write(seg.Value(src))
	}
	return strings.TrimRight(sb.String(), "\n")
}
