package widgets

import (
	"image"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/odvcencio/sectionlist/layout"
	"github.com/odvcencio/sectionlist/measure"
	"github.com/odvcencio/sectionlist/scroll"
	"github.com/odvcencio/sectionlist/state"
)

// Renderer produces the text of each list element. Nil funcs draw nothing
// but their elements still take the height declared in the layout config.
type Renderer[T any] struct {
	ListHeader func() string
	Header     func(section layout.Section[T], sectionIndex int) string
	Row        func(row T, sectionIndex, itemIndex int) string
	Footer     func(section layout.Section[T], sectionIndex int) string
}

// Location addresses a row by section and item.
type Location struct {
	Section int
	Item    int
}

// SectionListStyle configures element styles.
type SectionListStyle struct {
	Base     tcell.Style
	Header   tcell.Style
	Row      tcell.Style
	Selected tcell.Style
	Footer   tcell.Style
	// ItemSeparator and SectionSeparator fill the first line of each
	// separator gap; zero leaves the gap blank.
	ItemSeparator    rune
	SectionSeparator rune
}

// DefaultSectionListStyle returns the default styles.
func DefaultSectionListStyle() SectionListStyle {
	return SectionListStyle{
		Base:     tcell.StyleDefault,
		Header:   tcell.StyleDefault.Bold(true),
		Row:      tcell.StyleDefault,
		Selected: tcell.StyleDefault.Reverse(true),
		Footer:   tcell.StyleDefault.Dim(true),
	}
}

// SectionList renders a sectioned list whose geometry comes entirely from
// a layout.Config, so scrolling to any section or row needs no
// measurement. Only elements inside the viewport are drawn.
type SectionList[T any] struct {
	Component
	calc       *layout.Calculator[T]
	sections   *state.Signal[[]layout.Section[T]]
	index      scroll.SectionIndex[T]
	content    *state.Computed[int]
	viewport   *scroll.Viewport
	renderer   Renderer[T]
	style      SectionListStyle
	behavior   scroll.ScrollBehavior
	scrollbar  scroll.Scrollbar
	selected   Location
	hasRow     bool
	onSelect   func(loc Location, row T)
	onActivate func(loc Location, row T)
}

// NewSectionList creates a section list over sections. The list observes
// the signal; setting it re-lays out the content.
func NewSectionList[T any](sections *state.Signal[[]layout.Section[T]], cfg layout.Config[T], renderer Renderer[T]) *SectionList[T] {
	if sections == nil {
		sections = state.NewSignal[[]layout.Section[T]](nil)
	}
	l := &SectionList[T]{
		calc:     layout.New(cfg),
		sections: sections,
		viewport: scroll.NewViewport(),
		renderer: renderer,
		style:    DefaultSectionListStyle(),
		behavior: scroll.ScrollBehavior{Vertical: scroll.ScrollAuto, PageSize: 1},
		scrollbar: scroll.Scrollbar{
			Track:        tcell.StyleDefault,
			Thumb:        tcell.StyleDefault.Reverse(true),
			MinThumbSize: 1,
			Chars:        scroll.DefaultScrollbarChars(),
		},
	}
	l.index = scroll.SectionIndex[T]{Calc: l.calc, Sections: sections.Get}
	l.content = state.NewComputed(func() int { return l.index.TotalHeight() }, sections)
	l.content.SetEqualFunc(state.EqualComparable[int])
	l.Observe(l.content, l.syncContentSize)
	l.Observe(sections, l.clampSelection)
	l.viewport.SetOnChange(func(image.Point, scroll.Size, scroll.Size) {
		l.Invalidate()
	})
	l.syncContentSize()
	l.clampSelection()
	return l
}

// Calculator returns the layout calculator backing the list.
func (l *SectionList[T]) Calculator() *layout.Calculator[T] {
	return l.calc
}

// SetConfig replaces the declared heights and re-lays out the content.
func (l *SectionList[T]) SetConfig(cfg layout.Config[T]) {
	if l == nil {
		return
	}
	l.calc = layout.New(cfg)
	l.index.Calc = l.calc
	if !l.content.Refresh() {
		l.syncContentSize()
	}
	if l.hasRow {
		if index, ok := layout.IndexOf(l.sections.Get(), l.selected.Section, l.selected.Item); ok {
			offset, length := l.index.Span(index)
			l.viewport.EnsureVisible(offset, length)
		}
	}
}

// SetSections replaces the list data.
func (l *SectionList[T]) SetSections(sections []layout.Section[T]) {
	if l == nil {
		return
	}
	l.sections.Set(sections)
}

// Sections returns the list data.
func (l *SectionList[T]) Sections() []layout.Section[T] {
	if l == nil {
		return nil
	}
	return l.sections.Get()
}

// SetStyle updates the element styles.
func (l *SectionList[T]) SetStyle(style SectionListStyle) {
	if l == nil {
		return
	}
	l.style = style
	l.Invalidate()
}

// SetBehavior updates scroll behavior.
func (l *SectionList[T]) SetBehavior(behavior scroll.ScrollBehavior) {
	if l == nil {
		return
	}
	l.behavior = behavior
}

// OnSelect registers a handler called when the selected row changes.
func (l *SectionList[T]) OnSelect(fn func(loc Location, row T)) {
	if l == nil {
		return
	}
	l.onSelect = fn
}

// OnActivate registers a handler called when Enter is pressed on a row.
func (l *SectionList[T]) OnActivate(fn func(loc Location, row T)) {
	if l == nil {
		return
	}
	l.onActivate = fn
}

// Viewport returns the list viewport.
func (l *SectionList[T]) Viewport() *scroll.Viewport {
	return l.viewport
}

// ContentHeight returns the laid-out content height in cells.
func (l *SectionList[T]) ContentHeight() int {
	return l.content.Get()
}

// Layout assigns bounds and resizes the viewport.
func (l *SectionList[T]) Layout(bounds scroll.Rect) {
	l.Component.Layout(bounds)
	l.viewport.SetViewSize(bounds.Size())
	l.syncContentSize()
}

// Unmount stops observing the section data.
func (l *SectionList[T]) Unmount() {
	l.Component.Unmount()
	l.content.Stop()
}

// Selected returns the selected row.
func (l *SectionList[T]) Selected() (Location, T, bool) {
	var zero T
	if l == nil || !l.hasRow {
		return Location{}, zero, false
	}
	sections := l.sections.Get()
	return l.selected, sections[l.selected.Section].Data[l.selected.Item], true
}

// Select selects a row and scrolls it into view.
func (l *SectionList[T]) Select(section, item int) bool {
	if l == nil {
		return false
	}
	loc := Location{Section: section, Item: item}
	if !validRow(l.sections.Get(), loc) {
		return false
	}
	l.setSelected(loc)
	return true
}

// ScrollToLocation scrolls so the element at (section, item) is at the top
// of the view. item may be layout.HeaderItem or layout.FooterItem.
func (l *SectionList[T]) ScrollToLocation(section, item int) bool {
	if l == nil {
		return false
	}
	index, ok := layout.IndexOf(l.sections.Get(), section, item)
	if !ok {
		return false
	}
	l.viewport.ScrollToIndex(l.index, index)
	return true
}

// ScrollBy scrolls the view by dy cells.
func (l *SectionList[T]) ScrollBy(dx, dy int) {
	if l == nil {
		return
	}
	l.viewport.ScrollBy(0, dy)
}

// ScrollTo scrolls to an absolute offset.
func (l *SectionList[T]) ScrollTo(x, y int) {
	if l == nil {
		return
	}
	l.viewport.ScrollTo(0, y)
}

// PageBy scrolls by a number of pages.
func (l *SectionList[T]) PageBy(pages int) {
	if l == nil {
		return
	}
	l.ScrollBy(0, l.pageSize()*pages)
}

// ScrollToStart scrolls to the top, list header included.
func (l *SectionList[T]) ScrollToStart() {
	l.ScrollTo(0, 0)
}

// ScrollToEnd scrolls to the bottom.
func (l *SectionList[T]) ScrollToEnd() {
	if l == nil {
		return
	}
	l.ScrollTo(0, l.viewport.MaxOffset().Y)
}

// HandleKey handles navigation keys and reports whether the key was used.
func (l *SectionList[T]) HandleKey(ev *tcell.EventKey) bool {
	if l == nil || ev == nil {
		return false
	}
	sections := l.sections.Get()
	switch ev.Key() {
	case tcell.KeyUp:
		return l.step(sections, -1)
	case tcell.KeyDown:
		return l.step(sections, 1)
	case tcell.KeyPgUp:
		l.PageBy(-1)
		return true
	case tcell.KeyPgDn:
		l.PageBy(1)
		return true
	case tcell.KeyHome:
		if loc, ok := stepRow(sections, Location{Section: 0, Item: -1}, 1); ok {
			l.setSelected(loc)
		}
		l.ScrollToStart()
		return true
	case tcell.KeyEnd:
		if loc, ok := stepRow(sections, Location{Section: len(sections) - 1, Item: rowCount(sections, len(sections)-1)}, -1); ok {
			l.setSelected(loc)
		}
		l.ScrollToEnd()
		return true
	case tcell.KeyEnter:
		loc, row, ok := l.Selected()
		if ok && l.onActivate != nil {
			l.onActivate(loc, row)
		}
		return ok
	}
	return false
}

// Render draws the visible part of the list.
func (l *SectionList[T]) Render(screen tcell.Screen) {
	if l == nil || screen == nil {
		return
	}
	bounds := l.bounds
	if bounds.Empty() {
		return
	}
	fillRect(screen, bounds, ' ', l.style.Base)
	l.ClearInvalidation()

	content := l.viewport.ContentSize()
	view := l.viewport.ViewSize()
	showBar := l.behavior.Vertical == scroll.ScrollAlways ||
		(l.behavior.Vertical == scroll.ScrollAuto && content.Height > view.Height)
	textRect := bounds
	if showBar && textRect.Width > 1 {
		textRect.Width--
	}

	top := l.viewport.Offset().Y
	sections := l.sections.Get()
	cfg := l.calc.Config()

	if l.renderer.ListHeader != nil {
		height := cells(cfg.ListHeaderHeight.Resolve())
		l.drawBlock(screen, textRect, top, 0, height, l.renderer.ListHeader(), l.style.Header)
	}

	var prev *layout.Element
	for el := range l.calc.Walk(sections) {
		offset, length := cells(el.Offset), cells(el.Length)
		if prev != nil {
			gapStart := cells(prev.Offset + prev.Length)
			ch := l.style.SectionSeparator
			if prev.Kind == layout.KindRow && el.Kind == layout.KindRow {
				ch = l.style.ItemSeparator
			}
			l.drawSeparator(screen, textRect, top, gapStart, offset, ch)
		}
		current := el
		prev = &current
		if offset >= top+textRect.Height {
			break
		}
		if offset+length <= top {
			continue
		}
		l.drawElement(screen, textRect, top, el, sections)
	}

	if showBar {
		l.drawScrollbar(screen, bounds, content, view)
	}
}

func (l *SectionList[T]) drawElement(screen tcell.Screen, r scroll.Rect, top int, el layout.Element, sections []layout.Section[T]) {
	section := sections[el.Section]
	var text string
	style := l.style.Row
	switch el.Kind {
	case layout.KindHeader:
		style = l.style.Header
		if l.renderer.Header != nil {
			text = l.renderer.Header(section, el.Section)
		}
	case layout.KindFooter:
		style = l.style.Footer
		if l.renderer.Footer != nil {
			text = l.renderer.Footer(section, el.Section)
		}
	case layout.KindRow:
		if l.hasRow && l.selected == (Location{Section: el.Section, Item: el.Item}) {
			style = l.style.Selected
		}
		if l.renderer.Row != nil {
			text = l.renderer.Row(section.Data[el.Item], el.Section, el.Item)
		}
	}
	l.drawBlock(screen, r, top, cells(el.Offset), cells(el.Length), text, style)
}

// drawBlock fills the content span [offset, offset+height) and draws text
// wrapped to the view width, clipped to both the span and the view.
func (l *SectionList[T]) drawBlock(screen tcell.Screen, r scroll.Rect, top, offset, height int, text string, style tcell.Style) {
	if height <= 0 {
		return
	}
	span := scroll.Rect{X: r.X, Y: r.Y + offset - top, Width: r.Width, Height: height}
	visible := span.Intersect(r)
	if visible.Empty() {
		return
	}
	fillRect(screen, visible, ' ', style)
	for i, line := range measure.Lines(text, r.Width) {
		if i >= height {
			break
		}
		y := span.Y + i
		if y < visible.Y || y >= visible.Y+visible.Height {
			continue
		}
		drawString(screen, r.X, y, r.X+r.Width, line, style)
	}
}

func (l *SectionList[T]) drawSeparator(screen tcell.Screen, r scroll.Rect, top, start, end int, ch rune) {
	if ch == 0 || end <= start {
		return
	}
	y := r.Y + start - top
	if y < r.Y || y >= r.Y+r.Height {
		return
	}
	fillRect(screen, scroll.Rect{X: r.X, Y: y, Width: r.Width, Height: 1}, ch, l.style.Base)
}

func (l *SectionList[T]) drawScrollbar(screen tcell.Screen, bounds scroll.Rect, content, view scroll.Size) {
	x := bounds.X + bounds.Width - 1
	track := l.scrollbar.Chars.Track
	thumb := l.scrollbar.Chars.Thumb
	if track == 0 {
		track = '|'
	}
	if thumb == 0 {
		thumb = '#'
	}
	for y := bounds.Y; y < bounds.Y+bounds.Height; y++ {
		screen.SetContent(x, y, track, nil, l.scrollbar.Track)
	}
	start, size := l.scrollbar.ThumbSpan(bounds.Height, content.Height, view.Height, l.viewport.Offset().Y)
	for i := 0; i < size; i++ {
		screen.SetContent(x, bounds.Y+start+i, thumb, nil, l.scrollbar.Thumb)
	}
}

func (l *SectionList[T]) step(sections []layout.Section[T], dir int) bool {
	if !l.hasRow {
		return false
	}
	loc, ok := stepRow(sections, l.selected, dir)
	if !ok {
		return false
	}
	l.setSelected(loc)
	return true
}

func (l *SectionList[T]) setSelected(loc Location) {
	l.selected = loc
	l.hasRow = true
	sections := l.sections.Get()
	if index, ok := layout.IndexOf(sections, loc.Section, loc.Item); ok {
		offset, length := l.index.Span(index)
		l.viewport.EnsureVisible(offset, length)
	}
	l.Invalidate()
	if l.onSelect != nil {
		l.onSelect(loc, sections[loc.Section].Data[loc.Item])
	}
}

func (l *SectionList[T]) clampSelection() {
	sections := l.sections.Get()
	if l.hasRow && validRow(sections, l.selected) {
		return
	}
	loc, ok := stepRow(sections, Location{Section: 0, Item: -1}, 1)
	l.selected, l.hasRow = loc, ok
	l.Invalidate()
}

func (l *SectionList[T]) syncContentSize() {
	l.viewport.SetContentSize(scroll.Size{Width: l.bounds.Width, Height: l.content.Get()})
	l.Invalidate()
}

func (l *SectionList[T]) pageSize() int {
	if l.behavior.PageSize > 0 {
		if size := int(float64(l.bounds.Height) * l.behavior.PageSize); size > 0 {
			return size
		}
	}
	if l.bounds.Height > 0 {
		return l.bounds.Height
	}
	return 1
}

// stepRow returns the row dir steps (+1 or -1) from loc, skipping row-less
// sections.
func stepRow[T any](sections []layout.Section[T], loc Location, dir int) (Location, bool) {
	s, i := loc.Section, loc.Item+dir
	for s >= 0 && s < len(sections) {
		if i >= 0 && i < len(sections[s].Data) {
			return Location{Section: s, Item: i}, true
		}
		s += dir
		if s < 0 || s >= len(sections) {
			break
		}
		if dir > 0 {
			i = 0
		} else {
			i = len(sections[s].Data) - 1
		}
	}
	return loc, false
}

func validRow[T any](sections []layout.Section[T], loc Location) bool {
	return loc.Section >= 0 && loc.Section < len(sections) &&
		loc.Item >= 0 && loc.Item < len(sections[loc.Section].Data)
}

func rowCount[T any](sections []layout.Section[T], section int) int {
	if section < 0 || section >= len(sections) {
		return 0
	}
	return len(sections[section].Data)
}

func cells(v float64) int {
	return int(math.Round(v))
}

var _ scroll.Controller = (*SectionList[any])(nil)
