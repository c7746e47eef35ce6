package render

import (
	"io"
	"time"

	cerr "github.com/saeidalz13/battleship-sim/internal/error"
	mb "github.com/saeidalz13/battleship-sim/models/battleship"
)

const (
	ModeText   = "text"
	ModeGlyph  = "glyph"
	ModeScreen = "screen"
)

// Renderer only ever reads the grid.
type Renderer interface {
	Render(grid *mb.Grid) error
}

type Options struct {
	Colored    bool
	ScreenHold time.Duration
}

func New(mode string, w io.Writer, opts Options) (Renderer, error) {
	switch mode {
	case ModeText, "":
		return NewTextRenderer(w), nil
	case ModeGlyph:
		return NewGlyphRenderer(w, opts.Colored), nil
	case ModeScreen:
		return NewScreenRenderer(nil, opts.ScreenHold), nil
	}
	return nil, cerr.ErrInvalidRenderMode(mode)
}
