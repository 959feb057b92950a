// Package layout computes the length and offset of every header, row and
// footer in a sectioned list from declared heights alone, so a virtualized
// list can jump to any element without a layout pass.
//
// Elements are addressed by a flat index. Per section the render order is
//
//	header, separator, row0, (item separator, row1)..., separator, footer
//
// and the whole sequence is preceded by an optional list header. Headers,
// rows and footers each take one index slot; separators and the list header
// only move offsets.
package layout

import (
	"fmt"
	"iter"
)

// Section groups rows under one header and one footer.
type Section[T any] struct {
	Key   string
	Title string
	Data  []T
}

// Kind identifies the addressable element at a flat index.
type Kind int

const (
	KindHeader Kind = iota
	KindRow
	KindFooter
)

// String returns the lower-case kind name.
func (k Kind) String() string {
	switch k {
	case KindHeader:
		return "header"
	case KindRow:
		return "row"
	case KindFooter:
		return "footer"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Item positions of the synthetic header and footer elements, used in
// Element.Item and accepted by IndexOf.
const (
	HeaderItem = -1
	FooterItem = -2
)

// Layout is the extent of one element. Field names and units are the
// contract with list renderers.
type Layout struct {
	Length float64 `json:"length"`
	Offset float64 `json:"offset"`
	Index  int     `json:"index"`
}

// Sentinel returns the zero-size layout used for any index that does not
// address an element.
func Sentinel(index int) Layout {
	return Layout{Index: index}
}

// Element is an addressable element with its position in the data.
type Element struct {
	Kind    Kind `json:"kind"`
	Section int  `json:"section"`
	Item    int  `json:"item"`
	Layout
}

// Config holds the declared heights of every part of a list. Fields left
// at their zero value contribute nothing.
type Config[T any] struct {
	ItemHeight             ItemHeight[T]
	ItemSeparatorHeight    SeparatorHeight
	SectionHeaderHeight    SectionHeight
	SectionFooterHeight    SectionHeight
	SectionSeparatorHeight SectionHeight
	ListHeaderHeight       ListHeight
}

// Func is a layout lookup: the layout of the element at index.
type Func[T any] func(sections []Section[T], index int) Layout

// Calculator resolves flat indexes against a fixed Config. It holds no
// mutable state and is safe for concurrent use when the height functions
// in its Config are.
type Calculator[T any] struct {
	cfg Config[T]
}

// New creates a calculator for cfg.
func New[T any](cfg Config[T]) *Calculator[T] {
	return &Calculator[T]{cfg: cfg}
}

// Build returns the lookup function for cfg.
func Build[T any](cfg Config[T]) Func[T] {
	return New(cfg).Lookup
}

// Config returns the calculator configuration.
func (c *Calculator[T]) Config() Config[T] {
	if c == nil {
		return Config[T]{}
	}
	return c.cfg
}

// Lookup returns the layout of the element at index, or Sentinel(index)
// when index does not address an element.
func (c *Calculator[T]) Lookup(sections []Section[T], index int) Layout {
	if el, ok := c.Locate(sections, index); ok {
		return el.Layout
	}
	return Sentinel(index)
}

// Locate returns the element at index.
func (c *Calculator[T]) Locate(sections []Section[T], index int) (Element, bool) {
	if c == nil || index < 0 {
		return Element{}, false
	}
	for el := range c.Walk(sections) {
		if el.Index == index {
			return el, true
		}
	}
	return Element{}, false
}

// Walk yields every addressable element in render order. Header, footer
// and section separator heights are resolved once per section; a row's
// height is resolved when the walk reaches it and its trailing separator
// only once the walk moves past it.
// Nothing is yielded when no section holds a row.
func (c *Calculator[T]) Walk(sections []Section[T]) iter.Seq[Element] {
	return func(yield func(Element) bool) {
		if c == nil || !hasRows(sections) {
			return
		}
		cfg := &c.cfg
		offset := cfg.ListHeaderHeight.Resolve()
		index := 0
		for s := range sections {
			header := cfg.SectionHeaderHeight.Resolve(s)
			footer := cfg.SectionFooterHeight.Resolve(s)
			separator := cfg.SectionSeparatorHeight.Resolve(s)

			if !yield(Element{Kind: KindHeader, Section: s, Item: HeaderItem, Layout: Layout{Length: header, Offset: offset, Index: index}}) {
				return
			}
			offset += header
			index++
			offset += separator

			rows := sections[s].Data
			for i, row := range rows {
				length := cfg.ItemHeight.Resolve(row, s, i)
				if !yield(Element{Kind: KindRow, Section: s, Item: i, Layout: Layout{Length: length, Offset: offset, Index: index}}) {
					return
				}
				offset += length
				index++
				if i < len(rows)-1 {
					offset += cfg.ItemSeparatorHeight.Resolve(s, i)
				}
			}

			offset += separator
			if !yield(Element{Kind: KindFooter, Section: s, Item: FooterItem, Layout: Layout{Length: footer, Offset: offset, Index: index}}) {
				return
			}
			offset += footer
			index++
		}
	}
}

// TotalHeight returns the extent of the whole content, list header
// included.
func (c *Calculator[T]) TotalHeight(sections []Section[T]) float64 {
	if c == nil {
		return 0
	}
	last, ok := Element{}, false
	for el := range c.Walk(sections) {
		last, ok = el, true
	}
	if !ok {
		return c.cfg.ListHeaderHeight.Resolve()
	}
	return last.Offset + last.Length
}

// IndexForOffset returns the index of the first element with a non-zero
// length that ends after offset. Offsets inside a separator map to the
// element that follows it; offsets past the content map to the last
// element. It returns 0 when there are no elements.
func (c *Calculator[T]) IndexForOffset(sections []Section[T], offset float64) int {
	last := 0
	for el := range c.Walk(sections) {
		last = el.Index
		if el.Length > 0 && offset < el.Offset+el.Length {
			return el.Index
		}
	}
	return last
}

// Count returns the number of addressable elements.
func Count[T any](sections []Section[T]) int {
	if !hasRows(sections) {
		return 0
	}
	n := 0
	for _, section := range sections {
		n += len(section.Data) + 2
	}
	return n
}

// IndexOf returns the flat index of row itemIndex in section sectionIndex.
// Pass HeaderItem or FooterItem to address the section's header or footer.
func IndexOf[T any](sections []Section[T], sectionIndex, itemIndex int) (int, bool) {
	if !hasRows(sections) || sectionIndex < 0 || sectionIndex >= len(sections) {
		return 0, false
	}
	index := 0
	for _, section := range sections[:sectionIndex] {
		index += len(section.Data) + 2
	}
	rows := len(sections[sectionIndex].Data)
	switch {
	case itemIndex == HeaderItem:
		return index, true
	case itemIndex == FooterItem:
		return index + rows + 1, true
	case itemIndex >= 0 && itemIndex < rows:
		return index + itemIndex + 1, true
	}
	return 0, false
}

func hasRows[T any](sections []Section[T]) bool {
	for _, section := range sections {
		if len(section.Data) > 0 {
			return true
		}
	}
	return false
}
