package worldgen

import (
	"stormgrid/internal/mathx"
	"stormgrid/internal/terrain"
)

// Friendly terrain per point-of-interest class: a candidate block needs
// at least one such tile in its neighborhood.
var (
	cityFriendly = map[terrain.TileType]bool{
		terrain.Plain: true, terrain.Grassland: true, terrain.Farm: true, terrain.Forest: true,
	}
	caveFriendly = map[terrain.TileType]bool{
		terrain.Mountain: true, terrain.SnowMountain: true, terrain.Forest: true,
		terrain.Rainforest: true, terrain.Bamboo: true, terrain.Volcano: true,
	}
	ruinFriendly = map[terrain.TileType]bool{
		terrain.Rainforest: true, terrain.Swamp: true, terrain.Sea: true,
		terrain.Water: true, terrain.Desert: true, terrain.Gobi: true,
	}
)

// placePOI stamps 2x2 city, cave and ruin blocks onto the map. Counts
// scale with area, candidates keep a minimum spacing from earlier
// classes, and everything runs off one seeded stream.
func placePOI(m terrain.Matrix, seed uint64) {
	rows, cols := m.Rows(), m.Cols()
	if rows < 2 || cols < 2 {
		return
	}
	area := rows * cols
	cityCount := max(3, area/2500)
	caveCount := max(4, area/2000)
	ruinSplit := max(1, caveCount/3)

	rng := mathx.NewRand(seed)
	var placed [][2]int

	cities := findCandidates(m, cityFriendly, rng, 12, placed)
	for i := 0; i < cityCount && i < len(cities); i++ {
		placeBlock(m, cities[i][0], cities[i][1], terrain.City)
		placed = append(placed, cities[i])
	}

	caveAll := make(map[terrain.TileType]bool)
	for t := range caveFriendly {
		caveAll[t] = true
	}
	for t := range ruinFriendly {
		caveAll[t] = true
	}
	caveAll[terrain.Plain] = true
	caveAll[terrain.Grassland] = true

	caves := findCandidates(m, caveAll, rng, 10, placed)
	for i := 0; i < caveCount && i < len(caves); i++ {
		t := terrain.Cave
		if i < ruinSplit {
			t = terrain.Ruin
		}
		placeBlock(m, caves[i][0], caves[i][1], t)
		placed = append(placed, caves[i])
	}
}

// canPlaceBlock reports whether the 2x2 block at (x, y) sits entirely
// on unclaimed land.
func canPlaceBlock(m terrain.Matrix, x, y int) bool {
	if x+1 >= m.Cols() || y+1 >= m.Rows() {
		return false
	}
	for dy := 0; dy < 2; dy++ {
		for dx := 0; dx < 2; dx++ {
			t := m[y+dy][x+dx]
			if t.IsWater() || t.IsPOI() {
				return false
			}
		}
	}
	return true
}

func placeBlock(m terrain.Matrix, x, y int, t terrain.TileType) {
	for dy := 0; dy < 2; dy++ {
		for dx := 0; dx < 2; dx++ {
			m[y+dy][x+dx] = t
		}
	}
}

// findCandidates scans even-aligned 2x2 blocks, keeps those touching
// friendly terrain and at least minDist from every earlier placement,
// and returns them in shuffled order.
func findCandidates(m terrain.Matrix, friendly map[terrain.TileType]bool, rng *mathx.Rand, minDist int, placed [][2]int) [][2]int {
	rows, cols := m.Rows(), m.Cols()
	var out [][2]int
	for y := 0; y < rows-1; y += 2 {
		for x := 0; x < cols-1; x += 2 {
			if !canPlaceBlock(m, x, y) {
				continue
			}
			if !touchesFriendly(m, x, y, friendly) {
				continue
			}
			tooClose := false
			for _, p := range placed {
				dx, dy := x-p[0], y-p[1]
				if dx < 0 {
					dx = -dx
				}
				if dy < 0 {
					dy = -dy
				}
				if dx < minDist && dy < minDist {
					tooClose = true
					break
				}
			}
			if !tooClose {
				out = append(out, [2]int{x, y})
			}
		}
	}
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// touchesFriendly checks the block plus its one-tile ring.
func touchesFriendly(m terrain.Matrix, x, y int, friendly map[terrain.TileType]bool) bool {
	for dy := -1; dy <= 2; dy++ {
		for dx := -1; dx <= 2; dx++ {
			if t, ok := m.At(x+dx, y+dy); ok && friendly[t] {
				return true
			}
		}
	}
	return false
}
