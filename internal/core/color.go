package core

// RGB is a 24-bit color as sent to the LED strip.
type RGB struct {
	R, G, B uint8
}

// Common colors used across the games and effects.
var (
	Black   = RGB{0, 0, 0}
	White   = RGB{255, 255, 255}
	Red     = RGB{255, 0, 0}
	Green   = RGB{0, 255, 0}
	Blue    = RGB{0, 100, 255}
	Yellow  = RGB{255, 255, 0}
	Cyan    = RGB{0, 255, 255}
	Magenta = RGB{255, 0, 255}
	Orange  = RGB{255, 150, 0}
)

// Scale multiplies each channel by f, truncating to integer channel
// values. f is expected to be in [0, 1].
func (c RGB) Scale(f float64) RGB {
	return RGB{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
	}
}

// Wheel maps a position on a 256-step color wheel to an RGB rainbow
// color. Positions wrap around.
func Wheel(pos int) RGB {
	pos = ((pos % 256) + 256) % 256
	switch {
	case pos < 85:
		return RGB{uint8(255 - pos*3), uint8(pos * 3), 0}
	case pos < 170:
		pos -= 85
		return RGB{0, uint8(255 - pos*3), uint8(pos * 3)}
	default:
		pos -= 170
		return RGB{uint8(pos * 3), 0, uint8(255 - pos*3)}
	}
}

// HSV converts hue, saturation and value in [0, 1] to RGB.
func HSV(h, s, v float64) RGB {
	if s == 0 {
		g := uint8(v * 255)
		return RGB{g, g, g}
	}

	i := int(h * 6.0)
	f := h*6.0 - float64(i)
	p := v * (1.0 - s)
	q := v * (1.0 - s*f)
	t := v * (1.0 - s*(1.0-f))

	var r, g, b float64
	switch i % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}

	return RGB{uint8(r * 255), uint8(g * 255), uint8(b * 255)}
}
