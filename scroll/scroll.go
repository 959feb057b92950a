// Package scroll provides viewport and scrollbar primitives for
// virtualized section lists.
package scroll

import (
	"image"

	"github.com/gdamore/tcell/v2"
)

// ScrollPolicy configures when scrollbars appear.
type ScrollPolicy int

const (
	ScrollAuto ScrollPolicy = iota
	ScrollAlways
	ScrollNever
)

// ScrollBehavior controls scroll policies and interactions.
type ScrollBehavior struct {
	Vertical ScrollPolicy
	PageSize float64
}

// Controller provides scroll control for widgets.
type Controller interface {
	ScrollBy(dx, dy int)
	ScrollTo(x, y int)
	PageBy(pages int)
	ScrollToStart()
	ScrollToEnd()
}

// VirtualSizer provides the total height of virtual content.
type VirtualSizer interface {
	TotalHeight() int
}

// VirtualIndexer maps between content offsets and element indexes.
type VirtualIndexer interface {
	IndexForOffset(offset int) int
	OffsetForIndex(index int) int
}

// Viewport tracks the visible window over vertically scrolled content.
type Viewport struct {
	offset      image.Point
	contentSize Size
	viewSize    Size
	onChange    func(offset image.Point, content Size, view Size)
}

// NewViewport creates an empty viewport.
func NewViewport() *Viewport {
	return &Viewport{}
}

// SetContentSize updates the content size and clamps the offset.
func (v *Viewport) SetContentSize(size Size) {
	if v == nil {
		return
	}
	v.contentSize = size
	v.SetOffset(v.offset.X, v.offset.Y)
}

// ContentSize returns the content size.
func (v *Viewport) ContentSize() Size {
	if v == nil {
		return Size{}
	}
	return v.contentSize
}

// SetViewSize updates the view size and clamps the offset.
func (v *Viewport) SetViewSize(size Size) {
	if v == nil {
		return
	}
	v.viewSize = size
	v.SetOffset(v.offset.X, v.offset.Y)
}

// ViewSize returns the view size.
func (v *Viewport) ViewSize() Size {
	if v == nil {
		return Size{}
	}
	return v.viewSize
}

// Offset returns the current offset.
func (v *Viewport) Offset() image.Point {
	if v == nil {
		return image.Point{}
	}
	return v.offset
}

// SetOnChange sets a callback for offset updates.
func (v *Viewport) SetOnChange(fn func(offset image.Point, content Size, view Size)) {
	if v == nil {
		return
	}
	v.onChange = fn
}

// SetOffset sets the scroll offset.
func (v *Viewport) SetOffset(x, y int) {
	if v == nil {
		return
	}
	next := clampOffset(image.Point{X: x, Y: y}, v.contentSize, v.viewSize)
	if next == v.offset {
		return
	}
	v.offset = next
	if v.onChange != nil {
		v.onChange(v.offset, v.contentSize, v.viewSize)
	}
}

// ScrollBy adjusts the offset.
func (v *Viewport) ScrollBy(dx, dy int) {
	if v == nil {
		return
	}
	v.SetOffset(v.offset.X+dx, v.offset.Y+dy)
}

// ScrollTo scrolls to absolute coordinates.
func (v *Viewport) ScrollTo(x, y int) {
	if v == nil {
		return
	}
	v.SetOffset(x, y)
}

// ScrollToIndex scrolls so the element at index starts at the top of the
// view, as far as the content allows.
func (v *Viewport) ScrollToIndex(indexer VirtualIndexer, index int) {
	if v == nil || indexer == nil {
		return
	}
	v.SetOffset(v.offset.X, indexer.OffsetForIndex(index))
}

// EnsureVisible scrolls the least amount needed to show the span
// [offset, offset+length). Spans taller than the view are aligned to
// their start. It does nothing until the view has a height.
func (v *Viewport) EnsureVisible(offset, length int) {
	if v == nil || v.viewSize.Height <= 0 {
		return
	}
	top := v.offset.Y
	bottom := top + v.viewSize.Height
	switch {
	case offset < top || length >= v.viewSize.Height:
		v.SetOffset(v.offset.X, offset)
	case offset+length > bottom:
		v.SetOffset(v.offset.X, offset+length-v.viewSize.Height)
	}
}

// MaxOffset returns the maximum scrollable offset.
func (v *Viewport) MaxOffset() image.Point {
	if v == nil {
		return image.Point{}
	}
	maxX := v.contentSize.Width - v.viewSize.Width
	maxY := v.contentSize.Height - v.viewSize.Height
	if maxX < 0 {
		maxX = 0
	}
	if maxY < 0 {
		maxY = 0
	}
	return image.Point{X: maxX, Y: maxY}
}

// VisibleRect returns the visible rectangle within content.
func (v *Viewport) VisibleRect() Rect {
	if v == nil {
		return Rect{}
	}
	return Rect{
		X:      v.offset.X,
		Y:      v.offset.Y,
		Width:  v.viewSize.Width,
		Height: v.viewSize.Height,
	}
}

func clampOffset(offset image.Point, content Size, view Size) image.Point {
	maxX := content.Width - view.Width
	maxY := content.Height - view.Height
	if maxX < 0 {
		maxX = 0
	}
	if maxY < 0 {
		maxY = 0
	}
	offset.X = min(max(offset.X, 0), maxX)
	offset.Y = min(max(offset.Y, 0), maxY)
	return offset
}

// Scrollbar configures vertical scrollbar rendering.
type Scrollbar struct {
	Track        tcell.Style
	Thumb        tcell.Style
	MinThumbSize int
	Chars        ScrollbarChars
}

// ScrollbarChars defines characters used to render the scrollbar.
type ScrollbarChars struct {
	Track rune
	Thumb rune
}

// DefaultScrollbarChars returns ASCII defaults.
func DefaultScrollbarChars() ScrollbarChars {
	return ScrollbarChars{
		Track: '|',
		Thumb: '#',
	}
}

// ThumbSpan returns the start and size of the scrollbar thumb along a track of
// trackLen cells.
func (s Scrollbar) ThumbSpan(trackLen int, content, view, offset int) (start, size int) {
	if trackLen <= 0 || content <= 0 || view <= 0 {
		return 0, 0
	}
	size = int(float64(view) / float64(content) * float64(trackLen))
	size = min(max(size, s.MinThumbSize), trackLen)
	maxOffset := content - view
	if maxOffset > 0 {
		start = int(float64(offset) / float64(maxOffset) * float64(trackLen-size))
	}
	return start, size
}
