package battleship

import (
	"github.com/google/uuid"
	cerr "github.com/saeidalz13/battleship-sim/internal/error"
)

type ShipResult struct {
	Name   string        `json:"name"`
	Start  Coordinates   `json:"start"`
	Cells  []Coordinates `json:"cells"`
	Placed bool          `json:"placed"`
}

type SkillResult struct {
	Name        string      `json:"name"`
	Kind        MaskKind    `json:"kind"`
	Origin      Coordinates `json:"origin"`
	CellsMarked int         `json:"cells_marked"`
}

type Report struct {
	SimulationUuid string        `json:"simulation_uuid"`
	Ships          []ShipResult  `json:"ships"`
	Skills         []SkillResult `json:"skills"`
	ShipCells      int           `json:"ship_cells"`
	SkillCells     int           `json:"skill_cells"`
	EmptyCells     int           `json:"empty_cells"`
}

func (r Report) ShipsPlaced() int {
	n := 0
	for _, s := range r.Ships {
		if s.Placed {
			n++
		}
	}
	return n
}

func (r Report) Rejected() bool {
	return len(r.Ships) != r.ShipsPlaced()
}

// Simulation owns one grid for a single pass:
// ships first, then skills.
type Simulation struct {
	uuid  string
	grid  *Grid
	masks *MaskCache
}

func NewSimulation(gridSize int) *Simulation {
	return &Simulation{
		uuid:  uuid.NewString()[:6],
		grid:  NewGrid(gridSize),
		masks: NewMaskCache(),
	}
}

func (s *Simulation) Uuid() string {
	return s.uuid
}

func (s *Simulation) Grid() *Grid {
	return s.grid
}

// Run places every ship in order and stops on the first rejection, the
// report then holds the ships tried so far. Skills are only applied
// once all ships are on the board.
func (s *Simulation) Run(ships []Ship, skills []Skill) (Report, error) {
	report := Report{
		SimulationUuid: s.uuid,
		Ships:          make([]ShipResult, 0, len(ships)),
		Skills:         make([]SkillResult, 0, len(skills)),
	}

	for _, sh := range ships {
		placed := s.grid.PlaceShip(sh)
		report.Ships = append(report.Ships, ShipResult{
			Name:   sh.Name,
			Start:  sh.Start,
			Cells:  sh.Cells(),
			Placed: placed,
		})

		if !placed {
			s.tally(&report)
			return report, cerr.ErrPlacementRejected(sh.Name, sh.Start.Row, sh.Start.Col)
		}
	}

	for _, sk := range skills {
		marked := s.grid.Stamp(sk.Origin, s.masks.Get(sk.Kind), sk.Kind.Anchor())
		report.Skills = append(report.Skills, SkillResult{
			Name:        sk.Name,
			Kind:        sk.Kind,
			Origin:      sk.Origin,
			CellsMarked: marked,
		})
	}

	s.tally(&report)
	return report, nil
}

func (s *Simulation) tally(r *Report) {
	r.ShipCells = s.grid.Count(CellStateShip)
	r.SkillCells = s.grid.Count(CellStateSkillArea)
	r.EmptyCells = s.grid.Count(CellStateEmpty)
}
