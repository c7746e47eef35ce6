package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/fatih/color"
	mb "github.com/saeidalz13/battleship-sim/models/battleship"
)

const (
	GlyphWater = '~'
	GlyphShip  = '#'
	GlyphSkill = '*'
)

func Glyph(state mb.CellState) rune {
	switch state {
	case mb.CellStateShip:
		return GlyphShip
	case mb.CellStateSkillArea:
		return GlyphSkill
	}
	return GlyphWater
}

type GlyphRenderer struct {
	w       io.Writer
	palette map[mb.CellState]*color.Color
}

// colored forces escape codes on or off regardless of the terminal.
func NewGlyphRenderer(w io.Writer, colored bool) *GlyphRenderer {
	palette := map[mb.CellState]*color.Color{
		mb.CellStateEmpty:     color.New(color.FgBlue),
		mb.CellStateShip:      color.New(color.FgWhite, color.Bold),
		mb.CellStateSkillArea: color.New(color.FgRed),
	}
	for _, c := range palette {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return &GlyphRenderer{w: w, palette: palette}
}

func (gr *GlyphRenderer) Render(grid *mb.Grid) error {
	bw := bufio.NewWriter(gr.w)

	fmt.Fprintf(bw, "%c water  %c ship  %c skill area\n\n", GlyphWater, GlyphShip, GlyphSkill)
	writeHeader(bw, grid.Size())

	grid.Each(func(c mb.Coordinates, state mb.CellState) {
		if c.Col == 0 {
			fmt.Fprintf(bw, "%2d ", c.Row)
		}
		fmt.Fprint(bw, " ", gr.palette[state].Sprint(string(Glyph(state))))
		if c.Col == grid.Size()-1 {
			bw.WriteByte('\n')
		}
	})

	return bw.Flush()
}
