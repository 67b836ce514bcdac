package buffer

import "testing"

func TestComparePos(t *testing.T) {
	cases := []struct {
		a, b Pos
		want int
	}{
		{a: Pos{Row: 0, GraphemeCol: 0}, b: Pos{Row: 0, GraphemeCol: 0}, want: 0},
		{a: Pos{Row: 0, GraphemeCol: 5}, b: Pos{Row: 1, GraphemeCol: 0}, want: -1},
		{a: Pos{Row: 1, GraphemeCol: 0}, b: Pos{Row: 0, GraphemeCol: 5}, want: 1},
		{a: Pos{Row: 2, GraphemeCol: 1}, b: Pos{Row: 2, GraphemeCol: 3}, want: -1},
	}
	for _, tc := range cases {
		if got := ComparePos(tc.a, tc.b); got != tc.want {
			t.Fatalf("ComparePos(%v,%v): got %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestNormalizeRange(t *testing.T) {
	r := Range{Start: Pos{Row: 1, GraphemeCol: 0}, End: Pos{Row: 0, GraphemeCol: 2}}
	got := NormalizeRange(r)
	want := Range{Start: Pos{Row: 0, GraphemeCol: 2}, End: Pos{Row: 1, GraphemeCol: 0}}
	if got != want {
		t.Fatalf("normalize: got %v, want %v", got, want)
	}
	if NormalizeRange(want) != want {
		t.Fatalf("normalize should keep ordered range")
	}
}

func TestClampPos(t *testing.T) {
	lineLen := func(row int) int { return []int{3, 0, 5}[row] }

	cases := []struct {
		in   Pos
		want Pos
	}{
		{in: Pos{Row: -1, GraphemeCol: -1}, want: Pos{Row: 0, GraphemeCol: 0}},
		{in: Pos{Row: 0, GraphemeCol: 9}, want: Pos{Row: 0, GraphemeCol: 3}},
		{in: Pos{Row: 1, GraphemeCol: 2}, want: Pos{Row: 1, GraphemeCol: 0}},
		{in: Pos{Row: 9, GraphemeCol: 9}, want: Pos{Row: 2, GraphemeCol: 5}},
	}
	for _, tc := range cases {
		if got := ClampPos(tc.in, 3, lineLen); got != tc.want {
			t.Fatalf("ClampPos(%v): got %v, want %v", tc.in, got, tc.want)
		}
	}

	if got := ClampPos(Pos{Row: 4, GraphemeCol: 4}, 0, nil); got != (Pos{}) {
		t.Fatalf("ClampPos with no rows: got %v, want origin", got)
	}
}
