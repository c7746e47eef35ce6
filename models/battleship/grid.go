package battleship

type CellState uint8

// Cell codes follow the printed board legend:
// 0 water, 3 ship, 5 skill area.
const (
	CellStateEmpty     CellState = 0
	CellStateShip      CellState = 3
	CellStateSkillArea CellState = 5
)

const DefaultGridSize int = 10

func (cs CellState) String() string {
	switch cs {
	case CellStateEmpty:
		return "empty"
	case CellStateShip:
		return "ship"
	case CellStateSkillArea:
		return "skill_area"
	}
	return "unknown"
}

type Coordinates struct {
	Row int `json:"row" yaml:"row"`
	Col int `json:"col" yaml:"col"`
}

func NewCoordinates(row, col int) Coordinates {
	return Coordinates{Row: row, Col: col}
}

// Step returns the coordinates reached after n steps of (dRow, dCol).
func (c Coordinates) Step(n, dRow, dCol int) Coordinates {
	return Coordinates{Row: c.Row + n*dRow, Col: c.Col + n*dCol}
}

type Grid struct {
	size  int
	cells [][]CellState
}

// Creates a new default grid.
// All cells are CellStateEmpty and the size
// never changes afterwards.
func NewGrid(size int) *Grid {
	cells := make([][]CellState, size)
	for i := 0; i < size; i++ {
		cells[i] = make([]CellState, size)
	}
	return &Grid{size: size, cells: cells}
}

func (g *Grid) Size() int {
	return g.size
}

func (g *Grid) InBounds(c Coordinates) bool {
	return c.Row >= 0 && c.Row < g.size && c.Col >= 0 && c.Col < g.size
}

// At panics for out of bound coordinates, callers check InBounds first.
func (g *Grid) At(c Coordinates) CellState {
	return g.cells[c.Row][c.Col]
}

func (g *Grid) set(c Coordinates, state CellState) {
	g.cells[c.Row][c.Col] = state
}

// Each visits every cell in row-major order.
func (g *Grid) Each(fn func(c Coordinates, state CellState)) {
	for r := 0; r < g.size; r++ {
		for c := 0; c < g.size; c++ {
			fn(Coordinates{Row: r, Col: c}, g.cells[r][c])
		}
	}
}

// Rows returns a copy of the cells so readers
// cannot mutate the grid behind the placer's back.
func (g *Grid) Rows() [][]CellState {
	rows := make([][]CellState, g.size)
	for r := range g.cells {
		rows[r] = append([]CellState(nil), g.cells[r]...)
	}
	return rows
}

func (g *Grid) Clone() *Grid {
	return &Grid{size: g.size, cells: g.Rows()}
}

func (g *Grid) Count(state CellState) int {
	n := 0
	g.Each(func(_ Coordinates, s CellState) {
		if s == state {
			n++
		}
	})
	return n
}
