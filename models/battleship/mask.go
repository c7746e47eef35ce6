package battleship

import (
	"strings"

	cerr "github.com/saeidalz13/battleship-sim/internal/error"
)

const (
	MaskSize   int = 5
	maskCenter int = MaskSize / 2
)

type MaskKind uint8

const (
	MaskKindCone MaskKind = iota
	MaskKindCross
	MaskKindDiamond
)

type maskRule func(row, col int) bool

// Indexed by MaskKind.
var maskRules = [...]maskRule{
	// Apex at row 0, widening by one column on each side per row
	MaskKindCone: func(row, col int) bool {
		return abs(col-maskCenter) <= row
	},
	MaskKindCross: func(row, col int) bool {
		return row == maskCenter || col == maskCenter
	},
	// Manhattan ball of radius center
	MaskKindDiamond: func(row, col int) bool {
		return abs(row-maskCenter)+abs(col-maskCenter) <= maskCenter
	},
}

// The cone is aimed from its tip, the others from their middle.
var maskAnchors = [...]Coordinates{
	MaskKindCone:    {Row: 0, Col: maskCenter},
	MaskKindCross:   {Row: maskCenter, Col: maskCenter},
	MaskKindDiamond: {Row: maskCenter, Col: maskCenter},
}

var maskKindNames = [...]string{
	MaskKindCone:    "cone",
	MaskKindCross:   "cross",
	MaskKindDiamond: "diamond",
}

func MaskKinds() []MaskKind {
	return []MaskKind{MaskKindCone, MaskKindCross, MaskKindDiamond}
}

func (k MaskKind) String() string {
	return maskKindNames[k]
}

func (k MaskKind) Anchor() Coordinates {
	return maskAnchors[k]
}

func ParseMaskKind(name string) (MaskKind, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for _, k := range MaskKinds() {
		if k.String() == normalized {
			return k, nil
		}
	}
	return 0, cerr.ErrUnknownMaskKind(name)
}

func (k MaskKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *MaskKind) UnmarshalText(text []byte) error {
	parsed, err := ParseMaskKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

type Mask [MaskSize][MaskSize]bool

// NewMask evaluates the closed-form rule of kind over the 5x5 square.
func NewMask(kind MaskKind) Mask {
	rule := maskRules[kind]

	var m Mask
	for r := 0; r < MaskSize; r++ {
		for c := 0; c < MaskSize; c++ {
			m[r][c] = rule(r, c)
		}
	}
	return m
}

func (m Mask) Active() int {
	n := 0
	for r := range m {
		for c := range m[r] {
			if m[r][c] {
				n++
			}
		}
	}
	return n
}

// MaskCache builds each mask once and hands out copies.
type MaskCache struct {
	masks map[MaskKind]Mask
}

func NewMaskCache() *MaskCache {
	return &MaskCache{masks: make(map[MaskKind]Mask, len(maskRules))}
}

func (mc *MaskCache) Get(kind MaskKind) Mask {
	m, prs := mc.masks[kind]
	if !prs {
		m = NewMask(kind)
		mc.masks[kind] = m
	}
	return m
}

// Stamp overlays the active cells of m so that anchor lands on origin.
// Targets off the grid are clipped and non-empty cells are kept as they
// are. It returns how many cells were newly marked.
func (g *Grid) Stamp(origin Coordinates, m Mask, anchor Coordinates) int {
	marked := 0

	for mr := 0; mr < MaskSize; mr++ {
		for mc := 0; mc < MaskSize; mc++ {
			if !m[mr][mc] {
				continue
			}

			target := Coordinates{
				Row: origin.Row + mr - anchor.Row,
				Col: origin.Col + mc - anchor.Col,
			}
			if !g.InBounds(target) {
				continue
			}
			if g.At(target) != CellStateEmpty {
				continue
			}

			g.set(target, CellStateSkillArea)
			marked++
		}
	}

	return marked
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
