package debug

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Faultbox/midgard-terrain/internal/engine/terrain"
)

func TestExportChunk(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	e := NewExporter(dir, "chunk")

	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	path, err := e.ExportChunk(terrain.Coord{X: -2, Y: 3}, img)
	if err != nil {
		t.Fatalf("ExportChunk failed: %v", err)
	}
	if filepath.Base(path) != "chunk_-2_3.png" {
		t.Errorf("unexpected filename %s", path)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open export: %v", err)
	}
	defer f.Close()
	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("export is not a PNG: %v", err)
	}
	if decoded.Bounds().Dx() != 8 {
		t.Errorf("expected width 8, got %d", decoded.Bounds().Dx())
	}
}

func TestHeightmapImage(t *testing.T) {
	g := new(terrain.Grid)
	g.Set(0, 0, -1)
	g.Set(1, 0, 3)

	img := HeightmapImage(g)
	if got := img.GrayAt(0, 0).Y; got != 0 {
		t.Errorf("lowest sample = %d, want 0", got)
	}
	if got := img.GrayAt(1, 0).Y; got != 255 {
		t.Errorf("highest sample = %d, want 255", got)
	}

	// A flat grid must not divide by zero.
	flat := HeightmapImage(new(terrain.Grid))
	if flat.GrayAt(5, 5).Y != 0 {
		t.Error("flat grid should render black")
	}
}

func TestWriteOBJ(t *testing.T) {
	m := terrain.BuildMesh(new(terrain.Grid))

	var buf bytes.Buffer
	if err := WriteOBJ(&buf, m); err != nil {
		t.Fatalf("WriteOBJ failed: %v", err)
	}

	counts := map[string]int{}
	for _, line := range strings.Split(buf.String(), "\n") {
		if fields := strings.Fields(line); len(fields) > 0 {
			counts[fields[0]]++
		}
	}
	if counts["v"] != terrain.ChunkArea {
		t.Errorf("expected %d positions, got %d", terrain.ChunkArea, counts["v"])
	}
	if counts["f"] != len(m.Indices)/3 {
		t.Errorf("expected %d faces, got %d", len(m.Indices)/3, counts["f"])
	}
}
