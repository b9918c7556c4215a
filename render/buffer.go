package render

import (
	"github.com/lixenwraith/tether/core"
)

// Buffer is an in-memory Surface with touch tracking.
// Backs tests and off-screen compositing; a host copies touched cells to
// its own output however it likes
type Buffer struct {
	cells   []core.RGB
	touched []bool
	width   int
	height  int
}

// NewBuffer creates a buffer with the specified dimensions
func NewBuffer(width, height int) *Buffer {
	size := width * height
	return &Buffer{
		cells:   make([]core.RGB, size),
		touched: make([]bool, size),
		width:   width,
		height:  height,
	}
}

// Size implements Surface
func (b *Buffer) Size() (int, int) {
	return b.width, b.height
}

// Plot implements Surface; out-of-bounds writes are dropped
func (b *Buffer) Plot(x, y int, color core.RGB) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	b.cells[idx] = color
	b.touched[idx] = true
}

// At returns the cell color and whether it was plotted since the last Clear.
// Out-of-bounds reads return black, false
func (b *Buffer) At(x, y int) (core.RGB, bool) {
	if !b.inBounds(x, y) {
		return core.RGBBlack, false
	}
	idx := y*b.width + x
	return b.cells[idx], b.touched[idx]
}

// Clear resets all cells using exponential copy
func (b *Buffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = core.RGBBlack
	b.touched[0] = false
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
	for filled := 1; filled < len(b.touched); filled *= 2 {
		copy(b.touched[filled:], b.touched[:filled])
	}
}

// Resize adjusts dimensions, reallocating only if capacity is insufficient
func (b *Buffer) Resize(width, height int) {
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]core.RGB, size)
		b.touched = make([]bool, size)
	} else {
		b.cells = b.cells[:size]
		b.touched = b.touched[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// inBounds returns true if in surface bounds
func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}
