package weather

import (
	"stormgrid/internal/mathx"
	"stormgrid/internal/terrain"
)

// Grid is the per-zone weather map, indexed [zy][zx]. It is rebuilt only
// when the terrain matrix changes and is otherwise immutable.
type Grid [][]WeatherType

func (g Grid) Rows() int {
	return len(g)
}

func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Classify converts a terrain matrix into a weather grid of
// ceil(rows/ZoneSize) x ceil(cols/ZoneSize) zones. It is a pure function:
// identical (terrain, seed) inputs always produce identical grids. A
// degenerate matrix yields an empty grid.
func Classify(m terrain.Matrix, seed uint64) Grid {
	rows := m.Rows()
	cols := m.Cols()
	if rows == 0 || cols == 0 {
		return Grid{}
	}
	zRows := mathx.CeilDiv(rows, ZoneSize)
	zCols := mathx.CeilDiv(cols, ZoneSize)
	g := make(Grid, zRows)
	for zy := 0; zy < zRows; zy++ {
		row := make([]WeatherType, zCols)
		for zx := 0; zx < zCols; zx++ {
			row[zx] = classifyZone(m, seed, zx, zy)
		}
		g[zy] = row
	}
	return g
}

func classifyZone(m terrain.Matrix, seed uint64, zx, zy int) WeatherType {
	r := mathx.Hash01(seed, zx, zy)

	var w WeatherType
	dom, ok := dominantTile(m, zx, zy)
	td, has := tendencies[dom]
	if ok && has {
		if td.AltWeight > 0 && r < td.AltWeight {
			w = td.Alt
		} else {
			w = td.Main
		}
	} else {
		// No tendency entry: fixed thresholds keep unmodeled terrain
		// visually varied.
		switch {
		case r < untendedRainMax:
			w = WeatherRain
		case r < untendedWindMax:
			w = WeatherWind
		case r < untendedClearMax:
			w = WeatherClear
		case r < untendedSnowMax:
			w = WeatherSnow
		default:
			w = WeatherStorm
		}
	}

	// Rainy zones roll an independent hash for a severe-cell upgrade.
	if w == WeatherRain && mathx.Hash01(seed, zx+1, zy) < StormUpgradeChance {
		w = WeatherStorm
	}
	return w
}

// dominantTile counts tile-type frequency inside the zone's 8x8 block.
// Ties resolve to the tag encountered first in scan order. An empty block
// (all tiles missing) falls back to the zone's top-left tile, which may
// itself be missing on a ragged matrix.
func dominantTile(m terrain.Matrix, zx, zy int) (terrain.TileType, bool) {
	x0 := zx * ZoneSize
	y0 := zy * ZoneSize

	counts := make(map[terrain.TileType]int, 8)
	var order []terrain.TileType
	for dy := 0; dy < ZoneSize; dy++ {
		for dx := 0; dx < ZoneSize; dx++ {
			t, ok := m.At(x0+dx, y0+dy)
			if !ok {
				continue
			}
			if counts[t] == 0 {
				order = append(order, t)
			}
			counts[t]++
		}
	}
	if len(order) == 0 {
		return m.At(x0, y0)
	}
	best := order[0]
	for _, t := range order[1:] {
		if counts[t] > counts[best] {
			best = t
		}
	}
	return best, true
}
