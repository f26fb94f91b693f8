package render

// Camera zoom limits (screen pixels per world pixel).
const (
	DefaultZoom = 0.5
	MinZoom     = 0.05
	MaxZoom     = 6.0
)

// Map texture chunking: one texel per tile, MapChunkTiles tiles per
// chunk side.
const MapChunkTiles = 64

// Upper bound on point sprites per draw call.
const MaxSpriteRender = 8192
