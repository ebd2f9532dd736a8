package terrain

// Chunk geometry. Adjacent chunks share one row/column of samples, so chunks
// are placed ChunkSpacing world units apart rather than ChunkSide*VoxelScale.
const (
	// ChunkSide is the number of heightmap samples along one chunk edge.
	ChunkSide = 64
	// ChunkArea is the number of samples in one chunk.
	ChunkArea = ChunkSide * ChunkSide
	// PixelsPerPoint is the texture resolution per heightmap sample.
	PixelsPerPoint = 4
	// PixelsPerChunk is the side length of a chunk texture in pixels.
	PixelsPerChunk = PixelsPerPoint * ChunkSide
	// VoxelScale is the world size of one heightmap sample.
	VoxelScale float32 = 0.4
	// ChunkSpacing is the world distance between neighbouring chunk origins.
	ChunkSpacing = VoxelScale * float32(ChunkSide-1)
)

// Biome source images, addressed by logical name.
const (
	AssetGrass = "grass16.png"
	AssetWater = "water16.png"
	AssetSand  = "sand16.png"
	AssetSnow  = "snow16.png"
	AssetStone = "stone16.png"

	// AssetSize is the side length in pixels of every biome image.
	AssetSize = 16
)

// Elevation bands. Each threshold is inclusive on the higher band.
const (
	SnowLine   float32 = 22.0
	GrassLine  float32 = -0.3
	SandLine   float32 = -0.7
	StoneSlope float32 = 1.5
)

// HeightFloor is the lowest elevation any sample can take.
const HeightFloor float32 = -0.71
