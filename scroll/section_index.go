package scroll

import (
	"math"

	"github.com/odvcencio/sectionlist/layout"
)

// SectionIndex maps flat section-list indexes to cell offsets using
// declared heights. Offsets are rounded to whole cells.
type SectionIndex[T any] struct {
	Calc     *layout.Calculator[T]
	Sections func() []layout.Section[T]
}

// ItemCount returns the number of addressable elements.
func (s SectionIndex[T]) ItemCount() int {
	return layout.Count(s.sections())
}

// TotalHeight returns the content height in cells.
func (s SectionIndex[T]) TotalHeight() int {
	if s.Calc == nil {
		return 0
	}
	return cells(s.Calc.TotalHeight(s.sections()))
}

// IndexForOffset returns the element index at the given offset.
func (s SectionIndex[T]) IndexForOffset(offset int) int {
	if s.Calc == nil || offset <= 0 {
		return 0
	}
	return s.Calc.IndexForOffset(s.sections(), float64(offset))
}

// OffsetForIndex returns the scroll offset that brings index to the top.
// Index 0 maps to the top of the content so the list header stays in view;
// indexes past the end clamp to the last element.
func (s SectionIndex[T]) OffsetForIndex(index int) int {
	if s.Calc == nil || index <= 0 {
		return 0
	}
	sections := s.sections()
	count := layout.Count(sections)
	if count <= 0 {
		return 0
	}
	if index >= count {
		index = count - 1
	}
	return cells(s.Calc.Lookup(sections, index).Offset)
}

// Span returns the offset and length of index in cells.
func (s SectionIndex[T]) Span(index int) (offset, length int) {
	if s.Calc == nil {
		return 0, 0
	}
	l := s.Calc.Lookup(s.sections(), index)
	return cells(l.Offset), cells(l.Length)
}

func (s SectionIndex[T]) sections() []layout.Section[T] {
	if s.Sections == nil {
		return nil
	}
	return s.Sections()
}

func cells(v float64) int {
	return int(math.Round(v))
}

var (
	_ VirtualIndexer = SectionIndex[any]{}
	_ VirtualSizer   = SectionIndex[any]{}
)
