package assets

import (
	"hash/fnv"
	"image"
	"image/color"

	"github.com/aquilax/go-perlin"

	"github.com/Faultbox/midgard-terrain/internal/engine/terrain"
)

// Base colours of the built-in swatches.
var swatchColors = map[string]color.RGBA{
	terrain.AssetWater: {R: 38, G: 92, B: 168, A: 255},
	terrain.AssetSand:  {R: 214, G: 196, B: 142, A: 255},
	terrain.AssetGrass: {R: 84, G: 146, B: 62, A: 255},
	terrain.AssetStone: {R: 122, G: 118, B: 112, A: 255},
	terrain.AssetSnow:  {R: 236, G: 240, B: 246, A: 255},
}

// swatchVariance is the brightness swing of the noise dithering.
const swatchVariance = 18

// Swatch paints an AssetSize square noise-dithered tile for a biome image
// name. Unknown names get a neutral grey tile. The result is deterministic.
func Swatch(name string) *image.RGBA {
	base, ok := swatchColors[name]
	if !ok {
		base = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	}

	h := fnv.New64a()
	h.Write([]byte(name))
	noise := perlin.NewPerlin(2, 2, 3, int64(h.Sum64()>>1))

	img := image.NewRGBA(image.Rect(0, 0, terrain.AssetSize, terrain.AssetSize))
	for y := range terrain.AssetSize {
		for x := range terrain.AssetSize {
			n := noise.Noise2D(float64(x)/4, float64(y)/4)
			d := int(n * 2 * swatchVariance)
			img.SetRGBA(x, y, color.RGBA{
				R: shade(base.R, d),
				G: shade(base.G, d),
				B: shade(base.B, d),
				A: 255,
			})
		}
	}
	return img
}

func shade(c uint8, d int) uint8 {
	v := int(c) + d
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	}
	return uint8(v)
}
