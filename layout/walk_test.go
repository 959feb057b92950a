package layout

import "testing"

func TestWalkYieldsEveryElementInOrder(t *testing.T) {
	calc := New(everythingConfig())
	sections := mockSections(3, 2)

	var kinds []Kind
	next := 0
	for el := range calc.Walk(sections) {
		if el.Index != next {
			t.Fatalf("element index = %d, want %d", el.Index, next)
		}
		next++
		kinds = append(kinds, el.Kind)
	}
	if next != Count(sections) {
		t.Fatalf("walked %d elements, want %d", next, Count(sections))
	}
	want := []Kind{KindHeader, KindRow, KindRow, KindFooter}
	for i, kind := range kinds {
		if kind != want[i%len(want)] {
			t.Fatalf("kind[%d] = %s, want %s", i, kind, want[i%len(want)])
		}
	}
}

func TestWalkStopsEarly(t *testing.T) {
	rows := 0
	calc := New(Config[row]{
		ItemHeight: ItemFunc(func(row, int, int) float64 {
			rows++
			return 1
		}),
	})
	for el := range calc.Walk(mockSections(2, 5)) {
		if el.Index == 2 {
			break
		}
	}
	if rows != 2 {
		t.Fatalf("item height calls = %d, want 2", rows)
	}
}

func TestLocate(t *testing.T) {
	calc := New(everythingConfig())
	sections := mockSections(2, 3)

	cases := []struct {
		index   int
		kind    Kind
		section int
		item    int
	}{
		{0, KindHeader, 0, HeaderItem},
		{1, KindRow, 0, 0},
		{3, KindRow, 0, 2},
		{4, KindFooter, 0, FooterItem},
		{5, KindHeader, 1, HeaderItem},
		{7, KindRow, 1, 1},
		{9, KindFooter, 1, FooterItem},
	}
	for _, tc := range cases {
		el, ok := calc.Locate(sections, tc.index)
		if !ok {
			t.Fatalf("locate(%d) not found", tc.index)
		}
		if el.Kind != tc.kind || el.Section != tc.section || el.Item != tc.item {
			t.Fatalf("locate(%d) = %s s%d i%d, want %s s%d i%d", tc.index, el.Kind, el.Section, el.Item, tc.kind, tc.section, tc.item)
		}
	}
	if _, ok := calc.Locate(sections, 10); ok {
		t.Fatalf("locate past the end should fail")
	}
	if _, ok := calc.Locate(sections, -3); ok {
		t.Fatalf("locate negative should fail")
	}
}

func TestIndexOfRoundTrip(t *testing.T) {
	calc := New(everythingConfig())
	sections := mockSections(3, 4)
	sections[1].Data = nil

	for s := range sections {
		items := []int{HeaderItem, FooterItem}
		for i := range sections[s].Data {
			items = append(items, i)
		}
		for _, item := range items {
			index, ok := IndexOf(sections, s, item)
			if !ok {
				t.Fatalf("IndexOf(%d, %d) not found", s, item)
			}
			el, ok := calc.Locate(sections, index)
			if !ok || el.Section != s || el.Item != item {
				t.Fatalf("IndexOf(%d, %d) = %d, located %+v", s, item, index, el)
			}
		}
	}
}

func TestIndexOfRejectsInvalidPositions(t *testing.T) {
	sections := mockSections(2, 2)
	for _, pos := range [][2]int{{-1, 0}, {2, 0}, {0, 2}, {1, -3}} {
		if _, ok := IndexOf(sections, pos[0], pos[1]); ok {
			t.Fatalf("IndexOf(%d, %d) should fail", pos[0], pos[1])
		}
	}
	if _, ok := IndexOf(mockSections(2, 0), 0, HeaderItem); ok {
		t.Fatalf("IndexOf on row-less sections should fail")
	}
}

func TestCount(t *testing.T) {
	if got := Count[row](nil); got != 0 {
		t.Fatalf("count(nil) = %d, want 0", got)
	}
	if got := Count(mockSections(3, 0)); got != 0 {
		t.Fatalf("count(row-less) = %d, want 0", got)
	}
	if got := Count(mockSections(3, 2)); got != 12 {
		t.Fatalf("count = %d, want 12", got)
	}
}

func TestTotalHeight(t *testing.T) {
	calc := New(everythingConfig())
	if got := calc.TotalHeight(mockSections(2, 3)); got != 590 {
		t.Fatalf("total height = %v, want 590", got)
	}
	if got := calc.TotalHeight(nil); got != 50 {
		t.Fatalf("total height without rows = %v, want list header 50", got)
	}
}

func TestIndexForOffset(t *testing.T) {
	calc := New(everythingConfig())
	sections := mockSections(2, 3)

	cases := []struct {
		offset float64
		want   int
	}{
		{0, 0},     // inside list header
		{50, 0},    // section 1 header
		{95, 1},    // top section separator
		{100, 1},   // item 1
		{162, 2},   // item separator before item 2
		{305, 4},   // footer
		{320, 5},   // section 2 header
		{10000, 9}, // past the end
	}
	for _, tc := range cases {
		if got := calc.IndexForOffset(sections, tc.offset); got != tc.want {
			t.Fatalf("IndexForOffset(%v) = %d, want %d", tc.offset, got, tc.want)
		}
	}
	for i := 0; i < Count(sections); i++ {
		l := calc.Lookup(sections, i)
		if got := calc.IndexForOffset(sections, l.Offset); got != i {
			t.Fatalf("IndexForOffset(offset of %d) = %d", i, got)
		}
	}
	if got := calc.IndexForOffset(nil, 10); got != 0 {
		t.Fatalf("IndexForOffset without rows = %d, want 0", got)
	}
}

func TestNilCalculator(t *testing.T) {
	var calc *Calculator[row]
	if got := calc.Lookup(mockSections(1, 1), 1); got != Sentinel(1) {
		t.Fatalf("nil lookup = %+v, want sentinel", got)
	}
	if got := calc.TotalHeight(mockSections(1, 1)); got != 0 {
		t.Fatalf("nil total = %v, want 0", got)
	}
}

func TestKindString(t *testing.T) {
	if KindFooter.String() != "footer" || Kind(9).String() != "kind(9)" {
		t.Fatalf("unexpected kind names %q %q", KindFooter, Kind(9))
	}
	text, _ := KindRow.MarshalText()
	if string(text) != "row" {
		t.Fatalf("marshal = %q, want row", text)
	}
}
