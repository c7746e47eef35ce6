package render

import (
	"bufio"
	"fmt"
	"io"

	mb "github.com/saeidalz13/battleship-sim/models/battleship"
)

type TextRenderer struct {
	w io.Writer
}

func NewTextRenderer(w io.Writer) *TextRenderer {
	return &TextRenderer{w: w}
}

// Render prints the numeric board: a legend, a column header
// and one line per row prefixed with its index.
func (tr *TextRenderer) Render(grid *mb.Grid) error {
	bw := bufio.NewWriter(tr.w)

	fmt.Fprintf(bw, "Board (%d = water, %d = ship, %d = skill area)\n\n",
		mb.CellStateEmpty, mb.CellStateShip, mb.CellStateSkillArea)

	writeHeader(bw, grid.Size())

	grid.Each(func(c mb.Coordinates, state mb.CellState) {
		if c.Col == 0 {
			fmt.Fprintf(bw, "%2d ", c.Row)
		}
		fmt.Fprintf(bw, "%2d", state)
		if c.Col == grid.Size()-1 {
			bw.WriteByte('\n')
		}
	})

	return bw.Flush()
}

func writeHeader(w io.Writer, size int) {
	fmt.Fprint(w, "   ")
	for c := 0; c < size; c++ {
		fmt.Fprintf(w, "%2d", c)
	}
	fmt.Fprintln(w)
}

// Mask prints a stencil as 0/1 rows with its anchor marked by brackets.
func Mask(w io.Writer, kind mb.MaskKind, m mb.Mask) error {
	bw := bufio.NewWriter(w)
	anchor := kind.Anchor()

	fmt.Fprintf(bw, "%s (anchor %d,%d, %d active)\n", kind, anchor.Row, anchor.Col, m.Active())
	for r := 0; r < mb.MaskSize; r++ {
		for c := 0; c < mb.MaskSize; c++ {
			v := 0
			if m[r][c] {
				v = 1
			}
			if r == anchor.Row && c == anchor.Col {
				fmt.Fprintf(bw, "[%d]", v)
			} else {
				fmt.Fprintf(bw, " %d ", v)
			}
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}
