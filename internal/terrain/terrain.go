// Package terrain defines the tile vocabulary and the read-only matrix the
// rest of the simulation is built over.
package terrain

// TileType tags one map tile.
type TileType uint8

const (
	Plain TileType = iota
	Desert
	Rainforest
	Glacier
	Sea
	Water
	Mountain
	SnowMountain
	Grassland
	Forest
	Volcano
	Farm
	Swamp
	Bamboo
	Tundra
	Gobi
	Island
	Marsh

	// Point-of-interest tiles, placed as 2x2 blocks after terrain shaping.
	City
	Sect
	Cave
	Ruin

	tileTypeCount
)

var tileNames = [tileTypeCount]string{
	Plain:        "plain",
	Desert:       "desert",
	Rainforest:   "rainforest",
	Glacier:      "glacier",
	Sea:          "sea",
	Water:        "water",
	Mountain:     "mountain",
	SnowMountain: "snow_mountain",
	Grassland:    "grassland",
	Forest:       "forest",
	Volcano:      "volcano",
	Farm:         "farm",
	Swamp:        "swamp",
	Bamboo:       "bamboo",
	Tundra:       "tundra",
	Gobi:         "gobi",
	Island:       "island",
	Marsh:        "marsh",
	City:         "city",
	Sect:         "sect",
	Cave:         "cave",
	Ruin:         "ruin",
}

func (t TileType) String() string {
	if int(t) < len(tileNames) {
		return tileNames[t]
	}
	return "unknown"
}

// Valid reports whether t is one of the defined tile types.
func (t TileType) Valid() bool {
	return t < tileTypeCount
}

// IsWater reports whether the tile is open water.
func (t TileType) IsWater() bool {
	return t == Sea || t == Water
}

// IsPOI reports whether the tile belongs to a placed 2x2 building block.
func (t TileType) IsPOI() bool {
	return t == City || t == Sect || t == Cave || t == Ruin
}

// IsLand reports whether the tile can host a building block.
func (t TileType) IsLand() bool {
	return !t.IsWater() && !t.IsPOI()
}

// Matrix is a row-major tile grid. Rows are expected to be equal length but
// consumers must tolerate short rows; At is the bounds-safe accessor.
type Matrix [][]TileType

func (m Matrix) Rows() int {
	return len(m)
}

// Cols returns the width of the first row. On a well-formed matrix that is
// the width of every row.
func (m Matrix) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// At returns the tile at (x,y), reporting false when the coordinate falls
// outside the matrix or beyond a short row.
func (m Matrix) At(x, y int) (TileType, bool) {
	if y < 0 || y >= len(m) {
		return 0, false
	}
	row := m[y]
	if x < 0 || x >= len(row) {
		return 0, false
	}
	return row[x], true
}

// Fill returns a rows x cols matrix of a single tile type. Used heavily by
// tests and as a fallback map.
func Fill(rows, cols int, t TileType) Matrix {
	if rows <= 0 || cols <= 0 {
		return Matrix{}
	}
	m := make(Matrix, rows)
	for y := 0; y < rows; y++ {
		r := make([]TileType, cols)
		for x := range r {
			r[x] = t
		}
		m[y] = r
	}
	return m
}
