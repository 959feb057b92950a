package scroll

import (
	"image"
	"testing"

	"github.com/odvcencio/sectionlist/layout"
)

func TestViewportClampOffset(t *testing.T) {
	v := NewViewport()
	v.SetViewSize(Size{Width: 10, Height: 5})
	v.SetContentSize(Size{Width: 30, Height: 20})

	v.SetOffset(100, 100)
	if got := v.Offset(); got != (image.Point{X: 20, Y: 15}) {
		t.Fatalf("offset clamp = %+v, want %+v", got, image.Point{X: 20, Y: 15})
	}

	v.SetOffset(-5, -7)
	if got := v.Offset(); got != (image.Point{}) {
		t.Fatalf("offset clamp negative = %+v, want %+v", got, image.Point{})
	}
}

func TestViewportMaxOffsetAndVisibleRect(t *testing.T) {
	v := NewViewport()
	v.SetViewSize(Size{Width: 10, Height: 5})
	v.SetContentSize(Size{Width: 8, Height: 4})
	if got := v.MaxOffset(); got != (image.Point{}) {
		t.Fatalf("max offset = %+v, want %+v", got, image.Point{})
	}

	v.SetContentSize(Size{Width: 30, Height: 20})
	v.SetOffset(4, 3)
	if got := v.VisibleRect(); got != (Rect{X: 4, Y: 3, Width: 10, Height: 5}) {
		t.Fatalf("visible rect = %+v, want %+v", got, Rect{X: 4, Y: 3, Width: 10, Height: 5})
	}
}

func TestViewportEnsureVisible(t *testing.T) {
	v := NewViewport()
	v.SetViewSize(Size{Width: 10, Height: 5})
	v.SetContentSize(Size{Width: 10, Height: 50})

	v.EnsureVisible(2, 2)
	if got := v.Offset().Y; got != 0 {
		t.Fatalf("visible span moved offset to %d", got)
	}
	v.EnsureVisible(8, 2)
	if got := v.Offset().Y; got != 5 {
		t.Fatalf("span below view: offset = %d, want 5", got)
	}
	v.EnsureVisible(1, 1)
	if got := v.Offset().Y; got != 1 {
		t.Fatalf("span above view: offset = %d, want 1", got)
	}
	v.EnsureVisible(20, 9)
	if got := v.Offset().Y; got != 20 {
		t.Fatalf("tall span: offset = %d, want 20", got)
	}
}

func TestViewportEnsureVisibleWithoutView(t *testing.T) {
	v := NewViewport()
	v.SetContentSize(Size{Width: 10, Height: 50})

	v.EnsureVisible(8, 1)
	if got := v.Offset().Y; got != 0 {
		t.Fatalf("offset before layout = %d, want 0", got)
	}
}

func TestViewportOnChange(t *testing.T) {
	v := NewViewport()
	v.SetViewSize(Size{Width: 10, Height: 5})
	v.SetContentSize(Size{Width: 10, Height: 50})
	calls := 0
	v.SetOnChange(func(image.Point, Size, Size) { calls++ })
	v.ScrollBy(0, 3)
	v.ScrollBy(0, 0)
	if calls != 1 {
		t.Fatalf("onChange calls = %d, want 1", calls)
	}
}

func TestScrollbarThumb(t *testing.T) {
	bar := Scrollbar{MinThumbSize: 1}
	if start, size := bar.ThumbSpan(10, 100, 10, 0); start != 0 || size != 1 {
		t.Fatalf("thumb at top = %d,%d want 0,1", start, size)
	}
	if start, size := bar.ThumbSpan(10, 100, 10, 90); start != 9 || size != 1 {
		t.Fatalf("thumb at bottom = %d,%d want 9,1", start, size)
	}
	if start, size := bar.ThumbSpan(10, 5, 10, 0); start != 0 || size != 10 {
		t.Fatalf("thumb without overflow = %d,%d want 0,10", start, size)
	}
}

func menuSections() []layout.Section[string] {
	return []layout.Section[string]{
		{Key: "mains", Title: "Main dishes", Data: []string{"Pizza", "Burger", "Risotto"}},
		{Key: "sides", Title: "Sides", Data: []string{"French Fries", "Onion Rings"}},
	}
}

func TestSectionIndex(t *testing.T) {
	calc := layout.New(layout.Config[string]{
		ItemHeight:             layout.FixedItem[string](2),
		ItemSeparatorHeight:    layout.FixedSeparator(1),
		SectionHeaderHeight:    layout.FixedSection(1),
		SectionSeparatorHeight: layout.FixedSection(1),
		ListHeaderHeight:       layout.FixedList(3),
	})
	index := SectionIndex[string]{Calc: calc, Sections: menuSections}

	if got := index.ItemCount(); got != 9 {
		t.Fatalf("item count = %d, want 9", got)
	}
	// 3 + (1+1+2+1+2+1+2+1) + (1+1+2+1+2+1) = 3 + 11 + 8
	if got := index.TotalHeight(); got != 22 {
		t.Fatalf("total height = %d, want 22", got)
	}
	if got := index.OffsetForIndex(0); got != 0 {
		t.Fatalf("offset for index 0 = %d, want 0", got)
	}
	if got := index.OffsetForIndex(2); got != 8 {
		t.Fatalf("offset for index 2 = %d, want 8", got)
	}
	if got := index.OffsetForIndex(5); got != 14 {
		t.Fatalf("offset for index 5 = %d, want 14", got)
	}
	if got := index.OffsetForIndex(100); got != 22 {
		t.Fatalf("offset past the end = %d, want 22", got)
	}
	if got := index.IndexForOffset(8); got != 2 {
		t.Fatalf("index for offset 8 = %d, want 2", got)
	}
	if got := index.IndexForOffset(-4); got != 0 {
		t.Fatalf("index for negative offset = %d, want 0", got)
	}
	if offset, length := index.Span(6); offset != 16 || length != 2 {
		t.Fatalf("span(6) = %d,%d want 16,2", offset, length)
	}
}

func TestSectionIndexScrollToIndex(t *testing.T) {
	calc := layout.New(layout.Config[string]{
		ItemHeight:          layout.FixedItem[string](2),
		SectionHeaderHeight: layout.FixedSection(1),
	})
	index := SectionIndex[string]{Calc: calc, Sections: menuSections}
	v := NewViewport()
	v.SetViewSize(Size{Width: 10, Height: 4})
	v.SetContentSize(Size{Width: 10, Height: index.TotalHeight()})

	section, _ := layout.IndexOf(menuSections(), 1, 0)
	v.ScrollToIndex(index, section)
	if got := v.Offset().Y; got != 8 {
		t.Fatalf("scroll to sides item 0 = %d, want 8", got)
	}
}

func TestSectionIndexWithoutData(t *testing.T) {
	var index SectionIndex[string]
	if index.ItemCount() != 0 || index.TotalHeight() != 0 || index.OffsetForIndex(3) != 0 {
		t.Fatalf("zero section index should report nothing")
	}
}
