package core

// Matrix geometry is fixed at compile time. The panel is a single 16x16
// WS2812 strip folded into rows, so alternating rows run in opposite
// directions (serpentine layout).
const (
	Width   = 16
	Height  = 16
	NumLEDs = Width * Height
)

// FrameWriter receives a complete frame for output. The platform layer
// implements it for the terminal simulator; hardware drivers implement it
// for a physical strip.
type FrameWriter interface {
	WriteFrame(frame []RGB) error
}

// Surface is the pixel buffer for the LED matrix. It owns the frame
// exclusively: programs draw into it through Set and the draw helpers,
// and the loop driver flushes it once per tick.
//
// Writes outside the matrix are silently dropped; a clipped pixel is
// harmless and cheaper than making every caller bounds-check.
type Surface struct {
	pix        []RGB
	brightness float64
	out        FrameWriter
}

// NewSurface creates a surface with the given global brightness factor,
// clamped to [0, 1], writing frames to out. A nil out makes Flush a no-op.
func NewSurface(brightness float64, out FrameWriter) *Surface {
	return &Surface{
		pix:        make([]RGB, NumLEDs),
		brightness: ClampF(brightness, 0, 1),
		out:        out,
	}
}

// Index converts matrix coordinates to the strip offset for the
// serpentine layout. Even rows run left to right, odd rows right to left.
// The second return value is false for out-of-bounds coordinates.
func Index(x, y int) (int, bool) {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return 0, false
	}
	if y%2 == 0 {
		return y*Width + x, true
	}
	return y*Width + (Width - 1 - x), true
}

// Set stores a brightness-scaled color at (x, y).
// Out-of-bounds writes are dropped.
func (s *Surface) Set(x, y int, c RGB) {
	idx, ok := Index(x, y)
	if !ok {
		return
	}
	s.pix[idx] = c.Scale(s.brightness)
}

// Get returns the stored (already brightness-scaled) color at (x, y),
// or black for out-of-bounds coordinates.
func (s *Surface) Get(x, y int) RGB {
	idx, ok := Index(x, y)
	if !ok {
		return Black
	}
	return s.pix[idx]
}

// Clear sets every pixel to black. It does not flush.
func (s *Surface) Clear() {
	for i := range s.pix {
		s.pix[i] = Black
	}
}

// Fill sets every pixel to the given color.
func (s *Surface) Fill(c RGB) {
	scaled := c.Scale(s.brightness)
	for i := range s.pix {
		s.pix[i] = scaled
	}
}

// Flush pushes the frame to the output. Call at most once per tick so the
// device always sees a fully redrawn frame.
func (s *Surface) Flush() error {
	if s.out == nil {
		return nil
	}
	return s.out.WriteFrame(s.pix)
}

// Frame exposes the raw buffer for the platform renderer. Callers must
// treat it as read-only.
func (s *Surface) Frame() []RGB {
	return s.pix
}

// HLine draws a horizontal run of pixels starting at (x, y).
func (s *Surface) HLine(x, y, length int, c RGB) {
	for i := 0; i < length; i++ {
		s.Set(x+i, y, c)
	}
}

// VLine draws a vertical run of pixels starting at (x, y).
func (s *Surface) VLine(x, y, length int, c RGB) {
	for i := 0; i < length; i++ {
		s.Set(x, y+i, c)
	}
}

// FillRect fills the w×h rectangle whose top-left corner is (x, y).
func (s *Surface) FillRect(x, y, w, h int, c RGB) {
	for py := y; py < y+h; py++ {
		for px := x; px < x+w; px++ {
			s.Set(px, py, c)
		}
	}
}

// Line draws a line from (x0, y0) to (x1, y1) using Bresenham's algorithm.
func (s *Surface) Line(x0, y0, x1, y1 int, c RGB) {
	dx := Abs(x1 - x0)
	dy := -Abs(y1 - y0)
	sx := 1
	if x0 >= x1 {
		sx = -1
	}
	sy := 1
	if y0 >= y1 {
		sy = -1
	}
	err := dx + dy

	for {
		s.Set(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Circle draws a circle outline using the midpoint algorithm.
func (s *Surface) Circle(cx, cy, r int, c RGB) {
	x := r
	y := 0
	err := 0

	for x >= y {
		s.Set(cx+x, cy+y, c)
		s.Set(cx+y, cy+x, c)
		s.Set(cx-y, cy+x, c)
		s.Set(cx-x, cy+y, c)
		s.Set(cx-x, cy-y, c)
		s.Set(cx-y, cy-x, c)
		s.Set(cx+y, cy-x, c)
		s.Set(cx+x, cy-y, c)

		y++
		err += 1 + 2*y
		if 2*(err-x)+1 > 0 {
			x--
			err += 1 - 2*x
		}
	}
}

// FillCircle fills a circle of radius r centered at (cx, cy).
func (s *Surface) FillCircle(cx, cy, r int, c RGB) {
	for y := -r; y <= r; y++ {
		for x := -r; x <= r; x++ {
			if x*x+y*y <= r*r {
				s.Set(cx+x, cy+y, c)
			}
		}
	}
}
