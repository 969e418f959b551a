package paint

import "fmt"

// RGBA holds the 8-bit channels packed into a paint colour.
type RGBA struct {
	R, G, B, A uint8
}

// Channels unpacks a paint colour. The service packs red into the highest
// byte and alpha into the lowest; negative values are read through their
// unsigned bit pattern.
func Channels(color int32) RGBA {
	u := uint32(color)
	return RGBA{
		R: uint8(u >> 24),
		G: uint8(u >> 16),
		B: uint8(u >> 8),
		A: uint8(u),
	}
}

// ColorToRGBString formats a paint colour as "rgb(R, G, B)".
// Alpha is dropped.
func ColorToRGBString(color int32) string {
	c := Channels(color)
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}
