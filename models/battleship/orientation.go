package battleship

import (
	"strings"

	cerr "github.com/saeidalz13/battleship-sim/internal/error"
)

type Orientation uint8

const (
	OrientationAxisRight Orientation = iota
	OrientationAxisDown
	OrientationDiagDownRight
	OrientationDiagUpRight
)

type delta struct {
	row int
	col int
}

// Indexed by Orientation. A value outside the enum is a
// programming error and panics on the index.
var orientationDeltas = [...]delta{
	OrientationAxisRight:     {row: 0, col: 1},
	OrientationAxisDown:      {row: 1, col: 0},
	OrientationDiagDownRight: {row: 1, col: 1},
	OrientationDiagUpRight:   {row: -1, col: 1},
}

var orientationNames = [...]string{
	OrientationAxisRight:     "horizontal",
	OrientationAxisDown:      "vertical",
	OrientationDiagDownRight: "diagonal_down",
	OrientationDiagUpRight:   "diagonal_up",
}

// Both the board wording and the axis wording
// are accepted in scenario files.
var orientationAliases = map[string]Orientation{
	"horizontal":      OrientationAxisRight,
	"axis_right":      OrientationAxisRight,
	"vertical":        OrientationAxisDown,
	"axis_down":       OrientationAxisDown,
	"diagonal_down":   OrientationDiagDownRight,
	"diag_down_right": OrientationDiagDownRight,
	"diagonal_up":     OrientationDiagUpRight,
	"diag_up_right":   OrientationDiagUpRight,
}

func Orientations() []Orientation {
	return []Orientation{
		OrientationAxisRight,
		OrientationAxisDown,
		OrientationDiagDownRight,
		OrientationDiagUpRight,
	}
}

// Delta returns the per-step (row, col) movement.
func (o Orientation) Delta() (int, int) {
	d := orientationDeltas[o]
	return d.row, d.col
}

func (o Orientation) String() string {
	return orientationNames[o]
}

func ParseOrientation(name string) (Orientation, error) {
	o, prs := orientationAliases[strings.ToLower(strings.TrimSpace(name))]
	if !prs {
		return 0, cerr.ErrUnknownOrientation(name)
	}
	return o, nil
}

func (o Orientation) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

func (o *Orientation) UnmarshalText(text []byte) error {
	parsed, err := ParseOrientation(string(text))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}
