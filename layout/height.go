package layout

// height is either a constant or a computed value. Every height field in
// Config is backed by one, and resolve is the single rule used for all of
// them: call fn when it is set, otherwise use value.
type height[A any] struct {
	value float64
	fn    func(A) float64
}

func (h height[A]) resolve(args A) float64 {
	if h.fn != nil {
		return h.fn(args)
	}
	return h.value
}

func (h height[A]) computed() bool {
	return h.fn != nil
}

type itemArgs[T any] struct {
	row     T
	section int
	item    int
}

type separatorArgs struct {
	section int
	item    int
}

// ItemHeight is the height of a row. The zero value is a constant 0.
type ItemHeight[T any] struct {
	h height[itemArgs[T]]
}

// FixedItem returns a constant row height.
func FixedItem[T any](v float64) ItemHeight[T] {
	return ItemHeight[T]{h: height[itemArgs[T]]{value: v}}
}

// ItemFunc returns a row height computed from the row and its position.
func ItemFunc[T any](fn func(row T, sectionIndex, itemIndex int) float64) ItemHeight[T] {
	if fn == nil {
		return ItemHeight[T]{}
	}
	return ItemHeight[T]{h: height[itemArgs[T]]{fn: func(a itemArgs[T]) float64 {
		return fn(a.row, a.section, a.item)
	}}}
}

// Computed reports whether the height is produced by a function.
func (h ItemHeight[T]) Computed() bool { return h.h.computed() }

// Resolve returns the height of row at (sectionIndex, itemIndex).
func (h ItemHeight[T]) Resolve(row T, sectionIndex, itemIndex int) float64 {
	return h.h.resolve(itemArgs[T]{row: row, section: sectionIndex, item: itemIndex})
}

// SeparatorHeight is the height of the gap between two consecutive rows of
// a section. The zero value is a constant 0.
type SeparatorHeight struct {
	h height[separatorArgs]
}

// FixedSeparator returns a constant item separator height.
func FixedSeparator(v float64) SeparatorHeight {
	return SeparatorHeight{h: height[separatorArgs]{value: v}}
}

// SeparatorFunc returns an item separator height computed from the section
// and the index of the row the separator follows.
func SeparatorFunc(fn func(sectionIndex, itemIndex int) float64) SeparatorHeight {
	if fn == nil {
		return SeparatorHeight{}
	}
	return SeparatorHeight{h: height[separatorArgs]{fn: func(a separatorArgs) float64 {
		return fn(a.section, a.item)
	}}}
}

// Computed reports whether the height is produced by a function.
func (h SeparatorHeight) Computed() bool { return h.h.computed() }

// Resolve returns the separator height after row itemIndex of sectionIndex.
func (h SeparatorHeight) Resolve(sectionIndex, itemIndex int) float64 {
	return h.h.resolve(separatorArgs{section: sectionIndex, item: itemIndex})
}

// SectionHeight is a per-section height: header, footer or section
// separator. The zero value is a constant 0.
type SectionHeight struct {
	h height[int]
}

// FixedSection returns a constant per-section height.
func FixedSection(v float64) SectionHeight {
	return SectionHeight{h: height[int]{value: v}}
}

// SectionFunc returns a per-section height computed from the section index.
func SectionFunc(fn func(sectionIndex int) float64) SectionHeight {
	return SectionHeight{h: height[int]{fn: fn}}
}

// Computed reports whether the height is produced by a function.
func (h SectionHeight) Computed() bool { return h.h.computed() }

// Resolve returns the height for sectionIndex.
func (h SectionHeight) Resolve(sectionIndex int) float64 {
	return h.h.resolve(sectionIndex)
}

// ListHeight is the height of the list header. The zero value is a
// constant 0.
type ListHeight struct {
	h height[struct{}]
}

// FixedList returns a constant list header height.
func FixedList(v float64) ListHeight {
	return ListHeight{h: height[struct{}]{value: v}}
}

// ListFunc returns a list header height computed on every lookup.
func ListFunc(fn func() float64) ListHeight {
	if fn == nil {
		return ListHeight{}
	}
	return ListHeight{h: height[struct{}]{fn: func(struct{}) float64 {
		return fn()
	}}}
}

// Computed reports whether the height is produced by a function.
func (h ListHeight) Computed() bool { return h.h.computed() }

// Resolve returns the list header height.
func (h ListHeight) Resolve() float64 {
	return h.h.resolve(struct{}{})
}
