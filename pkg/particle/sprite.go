package particle

import (
	"image"
	"image/color"
	"math"
)

// SpriteSize is the edge length of the smoke sprite.
const SpriteSize = 32

// SmokeSprite renders the radial falloff used to texture each billboard:
// fully opaque at the centre, fading linearly to transparent at size/2.
func SmokeSprite(size int) *image.Alpha {
	img := image.NewAlpha(image.Rect(0, 0, size, size))
	c := float64(size) / 2
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			d := math.Hypot(float64(i)-c, float64(j)-c)
			o := int(255 - 255*d/c)
			if o < 0 {
				o = 0
			}
			if o > 255 {
				o = 255
			}
			img.SetAlpha(j, i, color.Alpha{A: uint8(o)})
		}
	}
	return img
}
