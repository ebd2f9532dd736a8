package terrain

// Generate runs the whole pipeline for one chunk. Biome images are resolved
// before anything is built, so a missing asset never yields a partial chunk.
func (g *Generator) Generate(coord Coord, assets AssetProvider) (*Chunk, error) {
	imgs, err := ResolveBiomes(assets)
	if err != nil {
		return nil, err
	}

	seed := coord.Seed()
	regions := g.Regions(seed)
	height := g.Heightmap(seed, &regions)
	slope := Slope(height)

	return &Chunk{
		Coord:     coord,
		Seed:      seed,
		Regions:   regions,
		Heightmap: height,
		Slope:     slope,
		Texture:   Synthesize(height, slope, &regions, imgs, seed),
		Mesh:      BuildMesh(height),
	}, nil
}
