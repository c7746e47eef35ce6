package battleship

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func shipValues(length int) []CellState {
	return NewShip("test", Coordinates{}, OrientationAxisRight, length).Values()
}

func TestOrientationDelta(t *testing.T) {
	tests := []struct {
		name        string
		orientation Orientation
		dRow, dCol  int
	}{
		{name: "axis right", orientation: OrientationAxisRight, dRow: 0, dCol: 1},
		{name: "axis down", orientation: OrientationAxisDown, dRow: 1, dCol: 0},
		{name: "diagonal down right", orientation: OrientationDiagDownRight, dRow: 1, dCol: 1},
		{name: "diagonal up right", orientation: OrientationDiagUpRight, dRow: -1, dCol: 1},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			dRow, dCol := test.orientation.Delta()
			if dRow != test.dRow || dCol != test.dCol {
				t.Fatalf("expected delta: (%d,%d)\tgot: (%d,%d)", test.dRow, test.dCol, dRow, dCol)
			}
		})
	}
}

func TestParseOrientation(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Orientation
		wantErr  bool
	}{
		{name: "horizontal", input: "horizontal", expected: OrientationAxisRight},
		{name: "axis alias", input: "axis_down", expected: OrientationAxisDown},
		{name: "mixed case and spaces", input: " Diagonal_Down ", expected: OrientationDiagDownRight},
		{name: "diagonal up", input: "diag_up_right", expected: OrientationDiagUpRight},
		{name: "unknown", input: "sideways", wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			o, err := ParseOrientation(test.input)
			if test.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", test.input)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if o != test.expected {
				t.Fatalf("expected orientation: %s\tgot: %s", test.expected, o)
			}
		})
	}
}

func TestCanPlaceBounds(t *testing.T) {
	tests := []struct {
		name        string
		start       Coordinates
		orientation Orientation
		expected    bool
	}{
		{name: "horizontal fits at right edge", start: NewCoordinates(0, 7), orientation: OrientationAxisRight, expected: true},
		{name: "horizontal runs off right edge", start: NewCoordinates(0, 8), orientation: OrientationAxisRight, expected: false},
		{name: "horizontal negative row", start: NewCoordinates(-1, 0), orientation: OrientationAxisRight, expected: false},
		{name: "vertical fits at bottom edge", start: NewCoordinates(7, 9), orientation: OrientationAxisDown, expected: true},
		{name: "vertical runs off bottom edge", start: NewCoordinates(8, 0), orientation: OrientationAxisDown, expected: false},
		{name: "vertical column off grid", start: NewCoordinates(0, 10), orientation: OrientationAxisDown, expected: false},
		{name: "diagonal down fits", start: NewCoordinates(7, 7), orientation: OrientationDiagDownRight, expected: true},
		{name: "diagonal down off bottom only", start: NewCoordinates(8, 0), orientation: OrientationDiagDownRight, expected: false},
		{name: "diagonal down off right only", start: NewCoordinates(0, 8), orientation: OrientationDiagDownRight, expected: false},
		{name: "diagonal up fits", start: NewCoordinates(2, 0), orientation: OrientationDiagUpRight, expected: true},
		{name: "diagonal up off top only", start: NewCoordinates(1, 0), orientation: OrientationDiagUpRight, expected: false},
		{name: "diagonal up off right only", start: NewCoordinates(9, 8), orientation: OrientationDiagUpRight, expected: false},
		{name: "negative column start", start: NewCoordinates(5, -1), orientation: OrientationDiagUpRight, expected: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			grid := NewGrid(DefaultGridSize)
			if got := grid.CanPlace(test.start, DefaultShipLength, test.orientation); got != test.expected {
				t.Fatalf("expected can place: %t\tgot: %t", test.expected, got)
			}
		})
	}
}

func TestCanPlaceRejectsEveryOutOfBoundStart(t *testing.T) {
	grid := NewGrid(DefaultGridSize)

	for _, o := range Orientations() {
		for row := -3; row < DefaultGridSize+3; row++ {
			for col := -3; col < DefaultGridSize+3; col++ {
				start := NewCoordinates(row, col)
				anyOut := false
				for _, c := range Cells(start, DefaultShipLength, o) {
					if !grid.InBounds(c) {
						anyOut = true
					}
				}

				if anyOut && grid.CanPlace(start, DefaultShipLength, o) {
					t.Fatalf("expected rejection\torientation: %s\tstart: %+v", o, start)
				}
				if !anyOut && !grid.CanPlace(start, DefaultShipLength, o) {
					t.Fatalf("expected acceptance on empty grid\torientation: %s\tstart: %+v", o, start)
				}
			}
		}
	}
}

func TestPlaceWritesOnlyTargetCells(t *testing.T) {
	for _, o := range Orientations() {
		t.Run(o.String(), func(t *testing.T) {
			grid := NewGrid(DefaultGridSize)
			start := NewCoordinates(4, 4)

			if !grid.Place(start, shipValues(DefaultShipLength), o) {
				t.Fatalf("expected placement to succeed at %+v", start)
			}

			expected := NewGrid(DefaultGridSize)
			for _, c := range Cells(start, DefaultShipLength, o) {
				expected.set(c, CellStateShip)
			}

			if diff := cmp.Diff(expected.Rows(), grid.Rows()); diff != "" {
				t.Fatalf("grid mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPlaceRejectionLeavesGridUntouched(t *testing.T) {
	grid := NewGrid(DefaultGridSize)
	if !grid.Place(NewCoordinates(2, 2), shipValues(DefaultShipLength), OrientationAxisDown) {
		t.Fatal("setup placement failed")
	}
	before := grid.Clone()

	tests := []struct {
		name        string
		start       Coordinates
		orientation Orientation
	}{
		{name: "overlap on last cell", start: NewCoordinates(4, 0), orientation: OrientationAxisRight},
		{name: "overlap on first cell", start: NewCoordinates(2, 2), orientation: OrientationAxisRight},
		{name: "partly off grid", start: NewCoordinates(9, 8), orientation: OrientationAxisRight},
		{name: "diagonal crossing ship", start: NewCoordinates(1, 1), orientation: OrientationDiagDownRight},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if grid.Place(test.start, shipValues(DefaultShipLength), test.orientation) {
				t.Fatalf("expected placement at %+v to be rejected", test.start)
			}
			if diff := cmp.Diff(before.Rows(), grid.Rows()); diff != "" {
				t.Fatalf("grid changed after rejection (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPlaceZeroLength(t *testing.T) {
	grid := NewGrid(DefaultGridSize)
	if !grid.Place(NewCoordinates(-5, 42), nil, OrientationDiagUpRight) {
		t.Fatal("expected zero length placement to succeed")
	}
	if grid.Count(CellStateEmpty) != DefaultGridSize*DefaultGridSize {
		t.Fatal("zero length placement mutated the grid")
	}
}

func TestOverlapSymmetry(t *testing.T) {
	type placement struct {
		start       Coordinates
		orientation Orientation
	}

	tests := []struct {
		name    string
		a, b    placement
		overlap bool
	}{
		{
			name:    "parallel rows",
			a:       placement{NewCoordinates(0, 0), OrientationAxisRight},
			b:       placement{NewCoordinates(1, 0), OrientationAxisRight},
			overlap: false,
		},
		{
			name:    "crossing horizontal and vertical",
			a:       placement{NewCoordinates(3, 2), OrientationAxisRight},
			b:       placement{NewCoordinates(2, 3), OrientationAxisDown},
			overlap: true,
		},
		{
			name:    "crossing diagonals",
			a:       placement{NewCoordinates(4, 4), OrientationDiagDownRight},
			b:       placement{NewCoordinates(6, 4), OrientationDiagUpRight},
			overlap: true,
		},
		{
			name:    "diagonals touching corners only",
			a:       placement{NewCoordinates(0, 0), OrientationDiagDownRight},
			b:       placement{NewCoordinates(0, 1), OrientationDiagDownRight},
			overlap: false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			orders := [][2]placement{{test.a, test.b}, {test.b, test.a}}
			for _, order := range orders {
				grid := NewGrid(DefaultGridSize)
				if !grid.Place(order[0].start, shipValues(DefaultShipLength), order[0].orientation) {
					t.Fatalf("first placement failed: %+v", order[0])
				}

				second := grid.Place(order[1].start, shipValues(DefaultShipLength), order[1].orientation)
				if second == test.overlap {
					t.Fatalf("expected second placement success: %t\tgot: %t", !test.overlap, second)
				}
			}
		})
	}
}

func TestPlaceDiagonalFromOrigin(t *testing.T) {
	grid := NewGrid(DefaultGridSize)
	if !grid.Place(NewCoordinates(0, 0), shipValues(DefaultShipLength), OrientationDiagDownRight) {
		t.Fatal("expected placement to succeed")
	}

	grid.Each(func(c Coordinates, s CellState) {
		onShip := c.Row == c.Col && c.Row < DefaultShipLength
		if onShip && s != CellStateShip {
			t.Fatalf("expected ship at %+v\tgot: %s", c, s)
		}
		if !onShip && s != CellStateEmpty {
			t.Fatalf("expected empty at %+v\tgot: %s", c, s)
		}
	})
}
