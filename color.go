package osgl

import "image/color"

// Color is a packed 32-bit RGBA color: red in bits 24-31, green in bits
// 16-23, blue in bits 8-15, alpha in bits 0-7.
//
// The zero value is fully transparent black.
type Color uint32

// Pack builds a Color from four channel values in [0, 255].
// Each channel is masked to its low 8 bits before shifting, so
// out-of-range input is silently truncated rather than rejected.
func Pack(r, g, b, a int) Color {
	return Color(uint32(r&0xff)<<24 | uint32(g&0xff)<<16 | uint32(b&0xff)<<8 | uint32(a&0xff))
}

// PackRGB builds an opaque Color from three channel values in [0, 255].
func PackRGB(r, g, b int) Color {
	return Pack(r, g, b, 255)
}

// Unpack returns the four channels as ratios in [0, 1], computed as
// channel/255.
func (c Color) Unpack() (r, g, b, a float64) {
	return float64(c>>24&0xff) / 255,
		float64(c>>16&0xff) / 255,
		float64(c>>8&0xff) / 255,
		float64(c&0xff) / 255
}

// Bytes returns the four channels as raw 8-bit values.
func (c Color) Bytes() (r, g, b, a uint8) {
	return uint8(c >> 24), uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Channel identifies one of the four color channels.
type Channel uint8

const (
	// ChannelRed is the red channel (bits 24-31).
	ChannelRed Channel = iota

	// ChannelGreen is the green channel (bits 16-23).
	ChannelGreen

	// ChannelBlue is the blue channel (bits 8-15).
	ChannelBlue

	// ChannelAlpha is the alpha channel (bits 0-7).
	ChannelAlpha
)

// ChannelRatio returns a single channel as a ratio in [0, 1].
func (c Color) ChannelRatio(ch Channel) float64 {
	shift := 24 - uint(ch)*8
	return float64(c>>shift&0xff) / 255
}

// NRGBA converts the packed color to the standard library's
// non-premultiplied RGBA form.
func (c Color) NRGBA() color.NRGBA {
	r, g, b, a := c.Bytes()
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// FromColor converts a standard color.Color to a packed Color.
func FromColor(c color.Color) Color {
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Pack(int(nc.R), int(nc.G), int(nc.B), int(nc.A))
}

// Common colors. Initialized once at startup; never reassigned.
var (
	Red         = PackRGB(255, 0, 0)
	Green       = PackRGB(0, 255, 0)
	Blue        = PackRGB(0, 0, 255)
	White       = PackRGB(255, 255, 255)
	Black       = PackRGB(0, 0, 0)
	Yellow      = PackRGB(255, 255, 0)
	Magenta     = PackRGB(255, 0, 255)
	Cyan        = PackRGB(0, 255, 255)
	Transparent = Pack(0, 0, 0, 0)
)
