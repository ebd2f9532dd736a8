// Package debug provides debug dumps of generated terrain.
package debug

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/Faultbox/midgard-terrain/internal/engine/terrain"
)

// Exporter writes debug images into a directory.
type Exporter struct {
	outputDir string
	prefix    string
}

// NewExporter creates an exporter writing <outputDir>/<prefix>_<name>.png files.
func NewExporter(outputDir, prefix string) *Exporter {
	return &Exporter{
		outputDir: outputDir,
		prefix:    prefix,
	}
}

// ChunkFilename returns the file the texture of a chunk is exported to.
func (e *Exporter) ChunkFilename(c terrain.Coord) string {
	return e.filename(fmt.Sprintf("%d_%d", c.X, c.Y))
}

// ExportChunk writes the texture of a chunk and returns the file path.
func (e *Exporter) ExportChunk(c terrain.Coord, img image.Image) (string, error) {
	if e.outputDir != "" {
		if err := os.MkdirAll(e.outputDir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}
	path := e.ChunkFilename(c)
	if err := WritePNG(path, img); err != nil {
		return "", err
	}
	return path, nil
}

func (e *Exporter) filename(name string) string {
	filename := fmt.Sprintf("%s_%s.png", e.prefix, name)
	if e.outputDir != "" {
		filename = filepath.Join(e.outputDir, filename)
	}
	return filename
}

// WritePNG encodes img as PNG at path.
func WritePNG(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("encoding PNG: %w", err)
	}
	return nil
}

// HeightmapImage renders a grid as grayscale, black at its lowest sample and
// white at its highest.
func HeightmapImage(g *terrain.Grid) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, terrain.ChunkSide, terrain.ChunkSide))
	lo, hi := g.MinMax()
	span := hi - lo
	for y := range terrain.ChunkSide {
		for x := range terrain.ChunkSide {
			var v float32
			if span > 0 {
				v = (g.At(x, y) - lo) / span
			}
			img.SetGray(x, y, color.Gray{Y: uint8(v * 255)})
		}
	}
	return img
}

// WriteOBJ dumps a mesh in Wavefront OBJ format.
func WriteOBJ(w io.Writer, m *terrain.Mesh) error {
	bw := bufio.NewWriter(w)
	for _, v := range m.Vertices {
		fmt.Fprintf(bw, "v %f %f %f\n", v.Position[0], v.Position[1], v.Position[2])
	}
	for _, v := range m.Vertices {
		fmt.Fprintf(bw, "vt %f %f\n", v.TexCoord[0], v.TexCoord[1])
	}
	for _, v := range m.Vertices {
		fmt.Fprintf(bw, "vn %f %f %f\n", v.Normal[0], v.Normal[1], v.Normal[2])
	}
	// OBJ indices are 1-based.
	for t := 0; t+2 < len(m.Indices); t += 3 {
		a, b, c := m.Indices[t]+1, m.Indices[t+1]+1, m.Indices[t+2]+1
		fmt.Fprintf(bw, "f %d/%d/%d %d/%d/%d %d/%d/%d\n", a, a, a, b, b, b, c, c, c)
	}
	return bw.Flush()
}
