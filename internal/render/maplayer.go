package render

import (
	"stormgrid/internal/mathx"
	"stormgrid/internal/terrain"
	"stormgrid/internal/weather"
)

// MapChunk is one texture-sized piece of the map, one texel per tile.
// Edge chunks can be smaller than MapChunkTiles on either axis.
type MapChunk struct {
	CX, CY int // chunk coordinates in the chunk grid
	W, H   int // texel (tile) dimensions

	Pixels      []uint8 // RGBA
	Tex         uint32
	NeedsUpload bool
}

// WorldOrigin returns the chunk's top-left corner in world pixels.
func (c *MapChunk) WorldOrigin() (float64, float64) {
	return float64(c.CX * MapChunkTiles * weather.TileSize),
		float64(c.CY * MapChunkTiles * weather.TileSize)
}

// WorldSize returns the chunk extent in world pixels.
func (c *MapChunk) WorldSize() (float64, float64) {
	return float64(c.W * weather.TileSize), float64(c.H * weather.TileSize)
}

// MapLayer holds the chunked tile-colour textures for one terrain matrix.
// Build fills pixels on the CPU; the GL side uploads lazily during draw.
type MapLayer struct {
	chunks         []*MapChunk
	cols, rows     int // chunk grid dimensions
	tilesW, tilesH int

	stale []uint32 // textures orphaned by a rebuild, freed on next draw
}

func (l *MapLayer) Chunks() []*MapChunk {
	return l.chunks
}

// WorldSize returns the full map extent in world pixels.
func (l *MapLayer) WorldSize() (float64, float64) {
	return float64(l.tilesW * weather.TileSize), float64(l.tilesH * weather.TileSize)
}

// Build (re)fills the layer from a terrain matrix. When the chunk grid
// keeps its shape the textures are kept too, so regenerating a same-size
// world is a pixel refresh plus re-upload. On a shape change the old
// texture ids move to the stale list until a renderer frees them.
func (l *MapLayer) Build(m terrain.Matrix, seed uint64) {
	rows := m.Rows()
	cols := m.Cols()
	crows := mathx.CeilDiv(rows, MapChunkTiles)
	ccols := mathx.CeilDiv(cols, MapChunkTiles)

	if crows != l.rows || ccols != l.cols {
		for _, c := range l.chunks {
			if c.Tex != 0 {
				l.stale = append(l.stale, c.Tex)
			}
		}
		l.chunks = make([]*MapChunk, 0, crows*ccols)
		for cy := 0; cy < crows; cy++ {
			for cx := 0; cx < ccols; cx++ {
				l.chunks = append(l.chunks, &MapChunk{
					CX: cx, CY: cy,
					W: min(MapChunkTiles, cols-cx*MapChunkTiles),
					H: min(MapChunkTiles, rows-cy*MapChunkTiles),
				})
			}
		}
		l.rows, l.cols = crows, ccols
	}
	l.tilesW, l.tilesH = cols, rows

	for _, c := range l.chunks {
		if len(c.Pixels) != c.W*c.H*4 {
			c.Pixels = make([]uint8, c.W*c.H*4)
		}
		for ty := 0; ty < c.H; ty++ {
			gy := c.CY*MapChunkTiles + ty
			for tx := 0; tx < c.W; tx++ {
				gx := c.CX*MapChunkTiles + tx
				t, _ := m.At(gx, gy)
				col := TileColor(t, gx, gy, seed)
				i := (ty*c.W + tx) * 4
				c.Pixels[i+0] = col.R
				c.Pixels[i+1] = col.G
				c.Pixels[i+2] = col.B
				c.Pixels[i+3] = 255
			}
		}
		c.NeedsUpload = true
	}
}
