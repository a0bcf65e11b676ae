// Package display provides frame sinks for the pixel surface. The
// terminal simulator lives in the platform layer; hardware strip drivers
// are external and only need to satisfy core.FrameWriter.
package display

import "github.com/ledgrid/ledarcade/internal/core"

// Null discards every frame. Used when running engines headless.
type Null struct{}

// WriteFrame implements core.FrameWriter.
func (Null) WriteFrame([]core.RGB) error {
	return nil
}

// Capture retains a copy of the last written frame and counts flushes.
// Intended for tests that assert on rendered output.
type Capture struct {
	Frames int
	Last   []core.RGB
}

// WriteFrame implements core.FrameWriter.
func (c *Capture) WriteFrame(frame []core.RGB) error {
	if c.Last == nil {
		c.Last = make([]core.RGB, len(frame))
	}
	copy(c.Last, frame)
	c.Frames++
	return nil
}

// At returns the captured color at matrix coordinates, or black if no
// frame has been written.
func (c *Capture) At(x, y int) core.RGB {
	idx, ok := core.Index(x, y)
	if !ok || c.Last == nil {
		return core.Black
	}
	return c.Last[idx]
}
