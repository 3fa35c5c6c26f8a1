package core

import "math"

// Canvas is the drawing surface the game renders onto.
// Coordinates are field pixels; the game only clears and fills rectangles.
type Canvas interface {
	// Clear erases the whole field.
	Clear()

	// FillRect fills the rectangle (x, y, w, h) with a color.
	FillRect(x, y, w, h float64, c Color)
}

// FillCmd is one recorded FillRect call.
type FillCmd struct {
	Rect  RectF
	Color Color
}

// DisplayList is a Canvas that records fill commands since the last Clear.
// It lets a front end replay a frame later (Ebitengine draws outside Update)
// and lets tests inspect what was drawn.
type DisplayList struct {
	Cmds []FillCmd
}

// Clear drops all recorded commands.
func (d *DisplayList) Clear() {
	d.Cmds = d.Cmds[:0]
}

// FillRect records a fill command.
func (d *DisplayList) FillRect(x, y, w, h float64, c Color) {
	d.Cmds = append(d.Cmds, FillCmd{Rect: NewRectF(x, y, w, h), Color: c})
}

// Replay issues every recorded command to another canvas, after clearing it.
func (d *DisplayList) Replay(dst Canvas) {
	dst.Clear()
	for _, cmd := range d.Cmds {
		dst.FillRect(cmd.Rect.X, cmd.Rect.Y, cmd.Rect.W, cmd.Rect.H, cmd.Color)
	}
}

// ScaledCanvas projects a pixel field onto a region of a terminal Screen.
// Every rectangle covers at least one cell so 5px shots stay visible.
type ScaledCanvas struct {
	screen *Screen
	region Rect
	fieldW float64
	fieldH float64
	fill   rune
}

// NewScaledCanvas creates a canvas mapping a fieldW x fieldH pixel field onto
// region of screen.
func NewScaledCanvas(screen *Screen, region Rect, fieldW, fieldH float64) *ScaledCanvas {
	return &ScaledCanvas{
		screen: screen,
		region: region,
		fieldW: fieldW,
		fieldH: fieldH,
		fill:   '█',
	}
}

// Region returns the screen cells the field occupies.
func (c *ScaledCanvas) Region() Rect {
	return c.region
}

// SetRegion moves the field, typically after a terminal resize.
func (c *ScaledCanvas) SetRegion(r Rect) {
	c.region = r
}

// Clear blanks the field region.
func (c *ScaledCanvas) Clear() {
	c.screen.DrawRect(c.region, ' ', ColorDefault)
}

// FillRect fills every cell the pixel rectangle touches, clipped to the region.
func (c *ScaledCanvas) FillRect(x, y, w, h float64, col Color) {
	cells := c.project(NewRectF(x, y, w, h))
	for cy := cells.Y; cy < cells.Bottom(); cy++ {
		if cy < c.region.Y || cy >= c.region.Bottom() {
			continue
		}
		for cx := cells.X; cx < cells.Right(); cx++ {
			if cx < c.region.X || cx >= c.region.Right() {
				continue
			}
			c.screen.SetColored(cx, cy, c.fill, col)
		}
	}
}

// project converts a pixel rectangle to screen cells.
func (c *ScaledCanvas) project(r RectF) Rect {
	if c.fieldW <= 0 || c.fieldH <= 0 {
		return Rect{}
	}
	sx := float64(c.region.W) / c.fieldW
	sy := float64(c.region.H) / c.fieldH

	x0 := int(math.Floor(r.X * sx))
	y0 := int(math.Floor(r.Y * sy))
	x1 := int(math.Ceil(r.Right() * sx))
	y1 := int(math.Ceil(r.Bottom() * sy))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	return NewRect(c.region.X+x0, c.region.Y+y0, x1-x0, y1-y0)
}
