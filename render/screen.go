package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tether/core"
)

// Screen adapts a tcell screen as a Surface.
// Each plotted cell becomes a full block glyph in the stroke color; the
// host owns screen lifecycle (Init, Show, Fini) and everything else drawn
type Screen struct {
	screen tcell.Screen
}

// NewScreen wraps an initialized tcell screen
func NewScreen(s tcell.Screen) *Screen {
	return &Screen{screen: s}
}

// Size implements Surface
func (s *Screen) Size() (int, int) {
	return s.screen.Size()
}

// Plot implements Surface
func (s *Screen) Plot(x, y int, color core.RGB) {
	w, h := s.screen.Size()
	if x < 0 || x >= w || y < 0 || y >= h {
		return
	}
	style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(color.R), int32(color.G), int32(color.B)))
	s.screen.SetContent(x, y, '█', nil, style)
}
