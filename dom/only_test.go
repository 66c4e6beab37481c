package dom

import (
	"testing"

	"golang.org/x/net/html"
)

func TestOnlyOnSingleElement(t *testing.T) {
	d := fixture(t)
	sec := sectionOf(t, d)
	l := d.Wrap(sec)

	tests := []struct {
		name string
		f    Filter
		self bool
	}{
		{"index 0", At(0), true},
		{"index -1", At(-1), true},
		{"bad index", At(1), false},
		{"range covering it", Range(0, 3), true},
		{"empty range", Range(1, 3), false},
		{"matching selector", Matching(".foo"), true},
		{"non-matching selector", Matching("#first"), false},
		{"accepting predicate", Where(func(n *html.Node, _ int, _ *List) bool { return n.Data == "section" }), true},
		{"rejecting predicate", Where(func(*html.Node, int, *List) bool { return false }), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := l.Only(tt.f)
			if err != nil {
				t.Fatal(err)
			}
			if tt.self {
				if got.Kind() != One || got.Node() != sec {
					t.Errorf("got %s, want the section itself", got.Kind())
				}
				return
			}
			if got.Kind() != None || got.List() == nil || got.List().Len() != 0 {
				t.Errorf("got %s of %d, want an empty list", got.Kind(), got.Len())
			}
		})
	}
}

func TestOnlyIndexOnMultiple(t *testing.T) {
	d := fixture(t)
	divs := divsOf(t, d)

	last, err := divs.Only(At(-1))
	if err != nil {
		t.Fatal(err)
	}
	if last.Kind() != One || last.Node() != divs.At(divs.Len()-1) {
		t.Errorf("At(-1): got %s, want the last bare element", last.Kind())
	}

	for _, i := range []int{5, -6, 100} {
		got, err := divs.Only(At(i))
		if err != nil {
			t.Fatal(err)
		}
		if got.Len() != 0 {
			t.Errorf("At(%d): got %d elements, want 0", i, got.Len())
		}
	}
}

func TestOnlyRangeOnMultiple(t *testing.T) {
	d := fixture(t)
	divs := divsOf(t, d)

	tests := []struct {
		start, end int
		kind       Kind
		n          int
		first      int // index in divs of the first element kept
	}{
		{1, 4, Many, 3, 1},
		{2, 3, One, 1, 2},
		{4, 100, One, 1, 4},
		{-2, 5, Many, 2, 3},
		{0, -4, One, 1, 0},
		{3, 1, None, 0, -1},
		{7, 9, None, 0, -1},
	}
	for _, tt := range tests {
		got, err := divs.Only(Range(tt.start, tt.end))
		if err != nil {
			t.Fatal(err)
		}
		if got.Kind() != tt.kind || got.Len() != tt.n {
			t.Errorf("Range(%d, %d): got %s of %d, want %s of %d", tt.start, tt.end, got.Kind(), got.Len(), tt.kind, tt.n)
			continue
		}
		if tt.first >= 0 && got.List().At(0) != divs.At(tt.first) {
			t.Errorf("Range(%d, %d): wrong first element", tt.start, tt.end)
		}
	}
}

func TestOnlySelectorOnMultiple(t *testing.T) {
	d := fixture(t)
	divs := divsOf(t, d)

	got, err := divs.Only(Matching("#first"))
	if err != nil {
		t.Fatal(err)
	}
	if got.Kind() != Many || got.Len() != 1 {
		t.Fatalf("got %s of %d, want a one-element list", got.Kind(), got.Len())
	}
	if got.Group().At(0) != mustFind(t, d, "#first").Node() {
		t.Error("got the wrong element")
	}
	if got.Group() == divs {
		t.Error("filter must build a new list")
	}
}

func TestOnlyPredicateOnMultiple(t *testing.T) {
	d := fixture(t)
	divs := divsOf(t, d)

	odds := func(_ *html.Node, i int, all *List) bool {
		if all != divs {
			t.Error("predicate must receive the list")
		}
		return i%2 == 1
	}
	got, err := divs.Only(Where(odds))
	if err != nil {
		t.Fatal(err)
	}
	if got.Kind() != Many || got.Len() != 2 {
		t.Fatalf("got %s of %d, want two odd divs", got.Kind(), got.Len())
	}
	if got.Group().At(0) != divs.At(1) || got.Group().At(1) != divs.At(3) {
		t.Error("survivors must keep their order")
	}

	none, err := divs.Only(Where(func(*html.Node, int, *List) bool { return false }))
	if err != nil {
		t.Fatal(err)
	}
	if none.Kind() != None || none.List().Len() != 0 {
		t.Errorf("nothing kept: got %s", none.Kind())
	}
}

func TestOnlyMalformedSelector(t *testing.T) {
	d := fixture(t)
	if _, err := divsOf(t, d).Only(Matching("div[")); err == nil {
		t.Error("expected the selector engine's error")
	}
}

func TestOnlyOnEmptyList(t *testing.T) {
	d := fixture(t)
	empty := d.Wrap()
	for _, f := range []Filter{At(0), Range(0, 2), Matching("div"), Where(func(*html.Node, int, *List) bool { return true })} {
		got, err := empty.Only(f)
		if err != nil {
			t.Fatal(err)
		}
		if got.List() != empty {
			t.Errorf("%T: Only on an empty list must return it", f)
		}
	}
}
