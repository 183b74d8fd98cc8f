package grid_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/wordgrid/grid"
)

//----------------------------------------------------------------------------//
// New and FromRows construction
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects bad sizes, counts, and cells.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name  string
		size  int
		cells []string
		err   error
	}{
		{"ZeroSize", 0, nil, grid.ErrGridSize},
		{"NegativeSize", -2, nil, grid.ErrGridSize},
		{"TooFewCells", 2, []string{"a", "b", "c"}, grid.ErrCellCount},
		{"TooManyCells", 1, []string{"a", "b"}, grid.ErrCellCount},
		{"EmptyCell", 2, []string{"a", "", "c", "d"}, grid.ErrNotLetter},
		{"MultiCharCell", 2, []string{"a", "bc", "d", "e"}, grid.ErrNotLetter},
		{"DigitCell", 2, []string{"a", "1", "c", "d"}, grid.ErrNotLetter},
		{"PunctCell", 2, []string{"a", "!", "c", "d"}, grid.ErrNotLetter},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.New(tc.size, tc.cells)
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%d, %v) error = %v; want %v", tc.size, tc.cells, err, tc.err)
			}
		})
	}
}

// TestNew_FoldsUppercase checks that uppercase cells are stored lowercased.
func TestNew_FoldsUppercase(t *testing.T) {
	g, err := grid.New(2, []string{"A", "b", "C", "d"})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if got := g.LetterAt(0, 0); got != 'a' {
		t.Errorf("LetterAt(0,0) = %q; want 'a'", got)
	}
	if got := g.LetterAt(1, 0); got != 'c' {
		t.Errorf("LetterAt(1,0) = %q; want 'c'", got)
	}
}

// TestFromRows verifies row-based construction and its error cases.
func TestFromRows(t *testing.T) {
	g, err := grid.FromRows([]string{"cats", "oren", "glad", "xyzq"})
	if err != nil {
		t.Fatalf("FromRows error: %v", err)
	}
	if g.Size() != 4 {
		t.Errorf("Size = %d; want 4", g.Size())
	}
	if got := g.LetterAt(2, 3); got != 'd' {
		t.Errorf("LetterAt(2,3) = %q; want 'd'", got)
	}

	if _, err = grid.FromRows(nil); !errors.Is(err, grid.ErrGridSize) {
		t.Errorf("FromRows(nil) error = %v; want ErrGridSize", err)
	}
	if _, err = grid.FromRows([]string{"ab", "c"}); !errors.Is(err, grid.ErrRaggedRows) {
		t.Errorf("ragged rows error = %v; want ErrRaggedRows", err)
	}
	if _, err = grid.FromRows([]string{"a1", "bc"}); !errors.Is(err, grid.ErrNotLetter) {
		t.Errorf("non-letter row error = %v; want ErrNotLetter", err)
	}
}

//----------------------------------------------------------------------------//
// Access and indexing
//----------------------------------------------------------------------------//

// TestInBounds checks InBounds on a 3×3 grid.
func TestInBounds(t *testing.T) {
	g, err := grid.FromRows([]string{"abc", "def", "ghi"})
	if err != nil {
		t.Fatalf("FromRows error: %v", err)
	}

	valid := [][2]int{{0, 0}, {2, 2}, {1, 2}}
	for _, rc := range valid {
		if !g.InBounds(rc[0], rc[1]) {
			t.Errorf("InBounds(%d,%d)=false; want true", rc[0], rc[1])
		}
	}
	invalid := [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}}
	for _, rc := range invalid {
		if g.InBounds(rc[0], rc[1]) {
			t.Errorf("InBounds(%d,%d)=true; want false", rc[0], rc[1])
		}
	}
}

// TestLetterAt_PanicsOutOfBounds verifies the documented precondition.
func TestLetterAt_PanicsOutOfBounds(t *testing.T) {
	g, err := grid.FromRows([]string{"ab", "cd"})
	if err != nil {
		t.Fatalf("FromRows error: %v", err)
	}
	defer func() {
		if recover() == nil {
			t.Error("LetterAt(2,0) did not panic")
		}
	}()
	_ = g.LetterAt(2, 0)
}

// TestIndexCoordinate_RoundTrip checks Index and Coordinate are inverses.
func TestIndexCoordinate_RoundTrip(t *testing.T) {
	g, err := grid.FromRows([]string{"abcd", "efgh", "ijkl", "mnop"})
	if err != nil {
		t.Fatalf("FromRows error: %v", err)
	}
	for row := 0; row < g.Size(); row++ {
		for col := 0; col < g.Size(); col++ {
			idx := g.Index(row, col)
			r, c := g.Coordinate(idx)
			if r != row || c != col {
				t.Errorf("Coordinate(Index(%d,%d)) = (%d,%d)", row, col, r, c)
			}
		}
	}
}

// TestString renders rows separated by newlines.
func TestString(t *testing.T) {
	g, err := grid.New(2, []string{"a", "b", "c", "d"})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if got, want := g.String(), "ab\ncd"; got != want {
		t.Errorf("String() = %q; want %q", got, want)
	}
}
