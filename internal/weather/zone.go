package weather

import (
	"math"

	"stormgrid/internal/mathx"
)

// Zone is a grid cell plus its world-pixel rectangle. Derived per frame,
// never persisted.
type Zone struct {
	ZX, ZY int
	X, Y   float64
	W, H   float64
}

// zoneAt builds the pixel rect for a grid index.
func zoneAt(zx, zy int) Zone {
	return Zone{
		ZX: zx, ZY: zy,
		X: float64(zx * ZonePx),
		Y: float64(zy * ZonePx),
		W: ZonePx,
		H: ZonePx,
	}
}

// VisibleZones appends every zone intersecting the world-space rectangle
// (cornerX, cornerY, viewW, viewH) to out and returns it. Indices are
// clipped to [0,zoneCols) x [0,zoneRows); a viewport entirely off the grid
// yields no zones. Cost is proportional to the number of visible zones.
func VisibleZones(cornerX, cornerY, viewW, viewH float64, zoneRows, zoneCols int, out []Zone) []Zone {
	out = out[:0]
	if zoneRows <= 0 || zoneCols <= 0 || viewW <= 0 || viewH <= 0 {
		return out
	}

	// The right/bottom edge is exclusive: a 512px-wide view starting at 0
	// ends on pixel column 511 and touches only zone 0.
	x0 := mathx.FloorDiv(int(math.Floor(cornerX)), ZonePx)
	y0 := mathx.FloorDiv(int(math.Floor(cornerY)), ZonePx)
	x1 := mathx.FloorDiv(int(math.Ceil(cornerX+viewW))-1, ZonePx)
	y1 := mathx.FloorDiv(int(math.Ceil(cornerY+viewH))-1, ZonePx)

	if x1 < 0 || y1 < 0 || x0 >= zoneCols || y0 >= zoneRows {
		return out
	}
	x0 = mathx.Clamp(x0, 0, zoneCols-1)
	x1 = mathx.Clamp(x1, 0, zoneCols-1)
	y0 = mathx.Clamp(y0, 0, zoneRows-1)
	y1 = mathx.Clamp(y1, 0, zoneRows-1)

	for zy := y0; zy <= y1; zy++ {
		for zx := x0; zx <= x1; zx++ {
			out = append(out, zoneAt(zx, zy))
		}
	}
	return out
}
