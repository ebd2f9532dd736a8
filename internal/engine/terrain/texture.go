package terrain

import (
	"errors"
	"fmt"
	"image"
)

// ErrAssetUnavailable reports that a biome image has not been loaded yet.
// It is transient: generation should be retried on a later tick.
var ErrAssetUnavailable = errors.New("asset unavailable")

// AssetError names the biome image that could not be resolved.
type AssetError struct {
	Name string
}

func (e *AssetError) Error() string {
	return fmt.Sprintf("%s: %s", ErrAssetUnavailable, e.Name)
}

// Is reports whether target is ErrAssetUnavailable.
func (e *AssetError) Is(target error) bool {
	return target == ErrAssetUnavailable
}

// AssetProvider resolves biome images by logical name. It reports false
// until the image has been loaded.
type AssetProvider interface {
	Image(name string) (*image.RGBA, bool)
}

// Biome is the material category a texture pixel is painted with.
type Biome int

const (
	BiomeWater Biome = iota
	BiomeSand
	BiomeGrass
	BiomeStone
	BiomeSnow

	biomeCount
)

var biomeNames = [biomeCount]string{"water", "sand", "grass", "stone", "snow"}

var biomeAssets = [biomeCount]string{AssetWater, AssetSand, AssetGrass, AssetStone, AssetSnow}

func (b Biome) String() string {
	if b < 0 || b >= biomeCount {
		return fmt.Sprintf("Biome(%d)", int(b))
	}
	return biomeNames[b]
}

// Asset returns the logical name of the biome's source image.
func (b Biome) Asset() string {
	return biomeAssets[b]
}

// Biomes lists every biome from lowest to highest band.
func Biomes() []Biome {
	return []Biome{BiomeWater, BiomeSand, BiomeGrass, BiomeStone, BiomeSnow}
}

// BiomeImages holds one resolved source image per biome.
type BiomeImages [biomeCount]*image.RGBA

// ResolveBiomes fetches every biome image from the provider. It fails with
// an *AssetError if any of them is not available yet or has no pixels.
func ResolveBiomes(p AssetProvider) (*BiomeImages, error) {
	var imgs BiomeImages
	for _, b := range Biomes() {
		img, ok := p.Image(b.Asset())
		if !ok || img == nil || img.Bounds().Empty() {
			return nil, &AssetError{Name: b.Asset()}
		}
		imgs[b] = img
	}
	return &imgs, nil
}

// Classify picks the biome for an elevation, using slope to split grass
// from stone. Thresholds are inclusive on the higher band.
func Classify(height, slope float32) Biome {
	switch {
	case height >= SnowLine:
		return BiomeSnow
	case height >= GrassLine:
		if slope >= StoneSlope {
			return BiomeStone
		}
		return BiomeGrass
	case height >= SandLine:
		return BiomeSand
	default:
		return BiomeWater
	}
}

// Synthesize paints the PixelsPerChunk-square texture of a chunk.
// The regions argument is reserved for region-specific biomes.
func Synthesize(height, slope *Grid, _ *Regions, imgs *BiomeImages, seed Seed) *image.RGBA {
	tex := image.NewRGBA(image.Rect(0, 0, PixelsPerChunk, PixelsPerChunk))

	// Tiling offset keeps neighbouring chunks phase-aligned.
	ox := int(seed.X) * (ChunkSide - 1) * PixelsPerPoint
	oy := int(seed.Y) * (ChunkSide - 1) * PixelsPerPoint

	for py := range PixelsPerChunk {
		for px := range PixelsPerChunk {
			src := imgs[pixelBiome(height, slope, px, py)]

			b := src.Bounds()
			tx := b.Min.X + floorMod(px+ox, b.Dx())
			ty := b.Min.Y + floorMod(py+oy, b.Dy())
			s := src.PixOffset(tx, ty)

			d := tex.PixOffset(px, py)
			tex.Pix[d+0] = src.Pix[s+0]
			tex.Pix[d+1] = src.Pix[s+1]
			tex.Pix[d+2] = src.Pix[s+2]
			tex.Pix[d+3] = 255
		}
	}
	return tex
}

// BiomeHistogram counts how many texture pixels each biome covers.
func BiomeHistogram(height, slope *Grid) map[Biome]int {
	hist := make(map[Biome]int, biomeCount)
	for py := range PixelsPerChunk {
		for px := range PixelsPerChunk {
			hist[pixelBiome(height, slope, px, py)]++
		}
	}
	return hist
}

// pixelBiome classifies one texture pixel from the bilinearly interpolated
// elevation and the slope of the sample the pixel falls in.
func pixelBiome(height, slope *Grid, px, py int) Biome {
	gx := px / PixelsPerPoint
	gy := py / PixelsPerPoint
	fx := float32(px%PixelsPerPoint) / PixelsPerPoint
	fy := float32(py%PixelsPerPoint) / PixelsPerPoint

	gx1 := clampIndex(gx + 1)
	gy1 := clampIndex(gy + 1)

	h := lerp(
		lerp(height.At(gx, gy), height.At(gx1, gy), fx),
		lerp(height.At(gx, gy1), height.At(gx1, gy1), fx),
		fy,
	)
	return Classify(h, slope.At(gx, gy))
}

func floorMod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}
