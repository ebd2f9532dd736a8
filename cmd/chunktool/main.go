// chunktool is a CLI utility for inspecting generated terrain chunks.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/Faultbox/midgard-terrain/internal/assets"
	"github.com/Faultbox/midgard-terrain/internal/engine/debug"
	"github.com/Faultbox/midgard-terrain/internal/engine/terrain"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "info":
		cmdInfo(args)
	case "export", "x":
		cmdExport(args)
	case "heightmap", "hm":
		cmdHeightmap(args)
	case "obj":
		cmdOBJ(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`chunktool - terrain chunk inspection utility

Usage:
  chunktool <command> [options]

Commands:
  info <cx> <cy>                     Show height, slope and biome statistics
  export [-assets dir] <cx> <cy> <out.png>
                                     Write the chunk texture as PNG
  heightmap <cx> <cy> <out.png>      Write the heightmap as grayscale PNG
  obj <cx> <cy> <out.obj>            Write the chunk mesh as Wavefront OBJ

Examples:
  chunktool info 0 0
  chunktool export -assets ./textures -3 2 chunk.png
  chunktool heightmap 10 10 hm.png
  chunktool obj 0 0 chunk.obj`)
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

func parseCoord(args []string, usage string) terrain.Coord {
	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: chunktool "+usage)
		os.Exit(1)
	}
	x, err := strconv.Atoi(args[0])
	if err != nil {
		fail("invalid chunk x %q", args[0])
	}
	y, err := strconv.Atoi(args[1])
	if err != nil {
		fail("invalid chunk y %q", args[1])
	}
	return terrain.Coord{X: x, Y: y}
}

// generate builds the chunk at c using biome images from dir, or the
// built-in swatches when dir is empty.
func generate(c terrain.Coord, dir string) *terrain.Chunk {
	m := assets.NewManager()
	if dir == "" {
		m.Builtin()
	} else if err := m.LoadDir(dir, false); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (using built-in swatches)\n", err)
	}

	chunk, err := terrain.NewGenerator(terrain.DefaultSeeds()).Generate(c, m)
	if err != nil {
		fail("%v", err)
	}
	return chunk
}

func cmdInfo(args []string) {
	c := parseCoord(args, "info <cx> <cy>")
	chunk := generate(c, "")
	seeds := terrain.NewGenerator(terrain.DefaultSeeds()).Seeds()

	lo, hi := chunk.Heightmap.MinMax()
	_, maxSlope := chunk.Slope.MinMax()
	b := chunk.Mesh.Bounds

	fmt.Printf("Chunk:     %s\n", c)
	fmt.Printf("Seed:      (%g, %g)\n", chunk.Seed.X, chunk.Seed.Y)
	fmt.Printf("Noise:     height %d, ravine %d, cliff %d, fiord %d\n",
		seeds.Height, seeds.Ravine, seeds.Cliff, seeds.Fiord)
	fmt.Printf("Height:    %.3f .. %.3f\n", lo, hi)
	fmt.Printf("Slope max: %.3f\n", maxSlope)
	fmt.Printf("Mesh:      %d vertices, %d triangles\n", len(chunk.Mesh.Vertices), len(chunk.Mesh.Indices)/3)
	fmt.Printf("Bounds:    (%.2f, %.2f, %.2f) .. (%.2f, %.2f, %.2f)\n",
		b.Min[0], b.Min[1], b.Min[2], b.Max[0], b.Max[1], b.Max[2])
	fmt.Println()

	fmt.Println("Regions (ravine / cliff / fiord):")
	names := []string{"self", "+x", "+y", "+xy"}
	for i, r := range chunk.Regions {
		fmt.Printf("  %-5s %.3f / %.3f / %.3f\n", names[i], r.Ravine, r.Cliff, r.Fiord)
	}
	fmt.Println()

	fmt.Println("Biomes:")
	hist := terrain.BiomeHistogram(chunk.Heightmap, chunk.Slope)
	total := terrain.PixelsPerChunk * terrain.PixelsPerChunk
	for _, biome := range terrain.Biomes() {
		n := hist[biome]
		fmt.Printf("  %-6s %6d  %5.1f%%\n", biome, n, 100*float64(n)/float64(total))
	}
}

func cmdExport(args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	dir := fs.String("assets", "", "Directory with biome images (default: built-in swatches)")
	fs.Parse(args)

	rest := fs.Args()
	c := parseCoord(rest, "export [-assets dir] <cx> <cy> <out.png>")
	if len(rest) < 3 {
		fail("missing output path")
	}

	chunk := generate(c, *dir)
	if err := debug.WritePNG(rest[2], chunk.Texture); err != nil {
		fail("%v", err)
	}
	fmt.Printf("Wrote %s (%dx%d)\n", rest[2], terrain.PixelsPerChunk, terrain.PixelsPerChunk)
}

func cmdHeightmap(args []string) {
	c := parseCoord(args, "heightmap <cx> <cy> <out.png>")
	if len(args) < 3 {
		fail("missing output path")
	}

	chunk := generate(c, "")
	if err := debug.WritePNG(args[2], debug.HeightmapImage(chunk.Heightmap)); err != nil {
		fail("%v", err)
	}
	lo, hi := chunk.Heightmap.MinMax()
	fmt.Printf("Wrote %s (heights %.3f .. %.3f)\n", args[2], lo, hi)
}

func cmdOBJ(args []string) {
	c := parseCoord(args, "obj <cx> <cy> <out.obj>")
	if len(args) < 3 {
		fail("missing output path")
	}

	chunk := generate(c, "")
	f, err := os.Create(args[2])
	if err != nil {
		fail("%v", err)
	}
	defer f.Close()

	if err := debug.WriteOBJ(f, chunk.Mesh); err != nil {
		fail("%v", err)
	}
	fmt.Printf("Wrote %s (%d vertices)\n", args[2], len(chunk.Mesh.Vertices))
}
