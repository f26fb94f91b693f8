package render

import (
	"github.com/crazy3lf/colorconv"

	"stormgrid/internal/mathx"
	"stormgrid/internal/terrain"
)

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

// baseColors maps every tile type onto its flat map colour. One texel per
// tile, so these read well even at far zoom.
var baseColors = [...]RGB{
	terrain.Plain:        {150, 172, 112},
	terrain.Desert:       {214, 196, 134},
	terrain.Rainforest:   {32, 108, 58},
	terrain.Glacier:      {206, 228, 238},
	terrain.Sea:          {38, 70, 126},
	terrain.Water:        {56, 104, 160},
	terrain.Mountain:     {128, 122, 112},
	terrain.SnowMountain: {222, 226, 232},
	terrain.Grassland:    {110, 168, 84},
	terrain.Forest:       {58, 126, 70},
	terrain.Volcano:      {98, 50, 44},
	terrain.Farm:         {172, 152, 94},
	terrain.Swamp:        {84, 98, 66},
	terrain.Bamboo:       {124, 186, 96},
	terrain.Tundra:       {142, 150, 128},
	terrain.Gobi:         {184, 168, 128},
	terrain.Island:       {196, 188, 140},
	terrain.Marsh:        {96, 118, 80},
	terrain.City:         {170, 152, 132},
	terrain.Sect:         {136, 112, 152},
	terrain.Cave:         {70, 62, 58},
	terrain.Ruin:         {122, 114, 102},
}

// BaseColor returns the flat colour for a tile type. Unknown types map to a
// loud magenta so bad data shows up on screen instead of hiding.
func BaseColor(t terrain.TileType) RGB {
	if int(t) < len(baseColors) {
		return baseColors[t]
	}
	return RGB{255, 0, 255}
}

// TileColor returns the per-tile colour: the base colour nudged in hue and
// value by a position hash, so large fields of one tile type do not render
// as a single flat slab. Deterministic in (t, x, y, seed).
func TileColor(t terrain.TileType, x, y int, seed uint64) RGB {
	base := BaseColor(t)
	h, s, v := colorconv.RGBToHSV(base.R, base.G, base.B)

	j := mathx.Hash01(seed, x, y)
	k := mathx.Hash01(seed^0x51AB, x, y)

	h += (j - 0.5) * 9.0
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h -= 360
	}
	v = mathx.ClampF(v*(1+(k-0.5)*0.14), 0, 1)

	r, g, b, err := colorconv.HSVToRGB(h, s, v)
	if err != nil {
		return base
	}
	return RGB{r, g, b}
}
