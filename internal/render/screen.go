package render

import (
	"time"

	"github.com/gdamore/tcell/v2"
	mb "github.com/saeidalz13/battleship-sim/models/battleship"
)

const (
	screenOffsetX = 3
	screenOffsetY = 1
	screenCellW   = 2
)

var screenStyles = map[mb.CellState]tcell.Style{
	mb.CellStateEmpty:     tcell.StyleDefault.Foreground(tcell.ColorBlue),
	mb.CellStateShip:      tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true),
	mb.CellStateSkillArea: tcell.StyleDefault.Foreground(tcell.ColorRed),
}

// ScreenRenderer draws the board on a terminal screen and keeps it up
// until a key is pressed or hold runs out.
type ScreenRenderer struct {
	screen tcell.Screen
	hold   time.Duration
}

// A nil screen opens the terminal on Render.
func NewScreenRenderer(screen tcell.Screen, hold time.Duration) *ScreenRenderer {
	return &ScreenRenderer{screen: screen, hold: hold}
}

func (sr *ScreenRenderer) Render(grid *mb.Grid) error {
	screen := sr.screen
	if screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return err
		}
		screen = s
	}

	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	Draw(screen, grid)
	screen.Show()

	if sr.hold > 0 {
		timer := time.AfterFunc(sr.hold, func() {
			_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
		})
		defer timer.Stop()

		for {
			switch screen.PollEvent().(type) {
			case *tcell.EventKey, *tcell.EventInterrupt, nil:
				return nil
			}
		}
	}

	return nil
}

// Draw puts the column header, the row indices and one glyph per cell.
func Draw(screen tcell.Screen, grid *mb.Grid) {
	screen.Clear()
	header := tcell.StyleDefault.Dim(true)

	for c := 0; c < grid.Size(); c++ {
		drawNumber(screen, screenOffsetX+c*screenCellW, 0, c, header)
	}

	grid.Each(func(c mb.Coordinates, state mb.CellState) {
		y := screenOffsetY + c.Row
		if c.Col == 0 {
			drawNumber(screen, 0, y, c.Row, header)
		}
		screen.SetContent(screenOffsetX+c.Col*screenCellW+1, y, Glyph(state), nil, screenStyles[state])
	})
}

// Right aligned in two columns.
func drawNumber(screen tcell.Screen, x, y, n int, style tcell.Style) {
	if n >= 10 {
		screen.SetContent(x, y, rune('0'+n/10%10), nil, style)
	}
	screen.SetContent(x+1, y, rune('0'+n%10), nil, style)
}
