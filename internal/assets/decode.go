package assets

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"

	"github.com/Faultbox/midgard-terrain/internal/engine/terrain"
	"github.com/Faultbox/midgard-terrain/internal/engine/texture"
)

// siblingExts are tried, in order, after the logical name itself.
var siblingExts = []string{".png", ".bmp", ".tga"}

// Find locates and decodes the image for a logical name inside dir.
// "grass16.png" also matches grass16.bmp and grass16.tga.
func Find(dir, name string) (image.Image, string, error) {
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	candidates := []string{name}
	for _, ext := range siblingExts {
		if c := stem + ext; c != name {
			candidates = append(candidates, c)
		}
	}

	for _, c := range candidates {
		path := filepath.Join(dir, c)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		img, err := DecodeFile(path)
		if err != nil {
			return nil, path, err
		}
		return img, path, nil
	}
	return nil, "", fmt.Errorf("no image for %s in %s", name, dir)
}

// DecodeFile decodes a PNG, BMP or TGA file.
func DecodeFile(path string) (image.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	if strings.EqualFold(filepath.Ext(path), ".tga") {
		img, err := texture.DecodeTGA(data)
		if err != nil {
			return nil, fmt.Errorf("decoding %s: %w", path, err)
		}
		return img, nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return img, nil
}

// Normalize returns img as an opaque AssetSize square RGBA image.
func Normalize(img image.Image) *image.RGBA {
	b := img.Bounds()
	if b.Dx() == terrain.AssetSize && b.Dy() == terrain.AssetSize {
		return texture.ToRGBA(img)
	}

	dst := image.NewRGBA(image.Rect(0, 0, terrain.AssetSize, terrain.AssetSize))
	draw.BiLinear.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
