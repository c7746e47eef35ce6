package battleship

const DefaultShipLength = 3

type Ship struct {
	Name        string
	Start       Coordinates
	Orientation Orientation
	values      []CellState
}

// Every part of the ship carries the ship cell code.
func NewShip(name string, start Coordinates, orientation Orientation, length int) Ship {
	values := make([]CellState, length)
	for i := range values {
		values[i] = CellStateShip
	}

	return Ship{
		Name:        name,
		Start:       start,
		Orientation: orientation,
		values:      values,
	}
}

func (sh Ship) Length() int {
	return len(sh.values)
}

func (sh Ship) Values() []CellState {
	return append([]CellState(nil), sh.values...)
}

func (sh Ship) Cells() []Coordinates {
	return Cells(sh.Start, sh.Length(), sh.Orientation)
}

func (g *Grid) PlaceShip(sh Ship) bool {
	return g.Place(sh.Start, sh.values, sh.Orientation)
}

type Skill struct {
	Name   string
	Kind   MaskKind
	Origin Coordinates
}

func NewSkill(name string, kind MaskKind, origin Coordinates) Skill {
	if name == "" {
		name = kind.String()
	}
	return Skill{Name: name, Kind: kind, Origin: origin}
}
