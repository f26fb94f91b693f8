// Package worldgen builds terrain matrices from a seed. The same seed
// and size always produce the same map.
package worldgen

import (
	"fmt"
	"math"
	"runtime"

	"github.com/aquilax/go-perlin"
	"golang.org/x/sync/errgroup"

	"stormgrid/internal/terrain"
)

type WorldType uint8

const (
	WorldContinent WorldType = iota
	WorldArchipelago
	WorldTwoShores
	WorldOasis
	WorldPolarSouth
	worldTypeCount
)

var worldNames = [...]string{
	WorldContinent:   "continent",
	WorldArchipelago: "archipelago",
	WorldTwoShores:   "two_shores",
	WorldOasis:       "oasis",
	WorldPolarSouth:  "polar_south",
}

func (w WorldType) String() string {
	if w < worldTypeCount {
		return worldNames[w]
	}
	return "unknown"
}

// WorldTypeFor derives the map template from the seed.
func WorldTypeFor(seed uint64) WorldType {
	return WorldType(seed % uint64(worldTypeCount))
}

// noiseScale is the perlin sample frequency per world template. Lower
// values give larger landmasses.
var noiseScale = [worldTypeCount]float64{
	WorldContinent:   0.07,
	WorldArchipelago: 0.12,
	WorldTwoShores:   0.08,
	WorldOasis:       0.09,
	WorldPolarSouth:  0.08,
}

type generator struct {
	w, h  int
	seed  uint64
	world WorldType
	noise [][]float64 // perlin field normalized to [-1, 1]
	s2    uint64      // secondary hash channel seed
}

// Generate builds a width x height terrain matrix: a world template
// picked from the seed, a perlin heightfield shaped by that template,
// latitude-banded tiles, then 2x2 points of interest.
func Generate(width, height int, seed uint64) (terrain.Matrix, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("worldgen: invalid map size %dx%d", width, height)
	}
	g := &generator{
		w:     width,
		h:     height,
		seed:  seed,
		world: WorldTypeFor(seed),
		s2:    seed ^ 0xDEADBEEF,
	}
	if err := g.buildNoise(); err != nil {
		return nil, err
	}
	m := terrain.Fill(height, width, terrain.Plain)
	if err := eachRow(height, func(y int) {
		for x := 0; x < width; x++ {
			m[y][x] = g.tileAt(g.heightAt(x, y), x, y)
		}
	}); err != nil {
		return nil, err
	}
	placePOI(m, seed)
	return m, nil
}

// eachRow fans the row work out over the CPUs and waits.
func eachRow(rows int, fn func(y int)) error {
	var eg errgroup.Group
	eg.SetLimit(runtime.NumCPU())
	for y := 0; y < rows; y++ {
		eg.Go(func() error {
			fn(y)
			return nil
		})
	}
	return eg.Wait()
}

// buildNoise samples the perlin field at the template frequency and
// normalizes it to [-1, 1] so the shaping math sees a stable range no
// matter what amplitude the octave sum lands on.
func (g *generator) buildNoise() error {
	p := perlin.NewPerlin(2, 2, 5, int64(g.seed))
	scale := noiseScale[g.world]
	g.noise = make([][]float64, g.h)
	if err := eachRow(g.h, func(y int) {
		row := make([]float64, g.w)
		for x := 0; x < g.w; x++ {
			row[x] = p.Noise2D(float64(x)*scale, float64(y)*scale)
		}
		g.noise[y] = row
	}); err != nil {
		return err
	}
	lo, hi := g.noise[0][0], g.noise[0][0]
	for y := range g.noise {
		for _, v := range g.noise[y] {
			lo = min(lo, v)
			hi = max(hi, v)
		}
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}
	for y := range g.noise {
		for x, v := range g.noise[y] {
			g.noise[y][x] = (v-lo)/span*2 - 1
		}
	}
	return nil
}

// heightAt blends the normalized noise with the world template shape:
// an elliptic continent fade, a lowered archipelago sea floor, a center
// river trench, an oasis ring or the polar north gradient.
func (g *generator) heightAt(x, y int) float64 {
	fx, fy := float64(x), float64(y)
	n := g.noise[y][x]
	switch g.world {
	case WorldContinent:
		cx, cy := float64(g.w)/2, float64(g.h)/2
		dx := (fx - cx) / (cx * 0.85)
		dy := (fy - cy) / (cy * 0.85)
		fade := 1 - min(1, math.Sqrt(dx*dx+dy*dy))
		return fade*0.6 + n*0.4
	case WorldArchipelago:
		return n - 0.1
	case WorldTwoShores:
		cx := float64(g.w) / 2
		trench := (math.Abs(fx-cx)/(float64(g.w)*0.5) - 0.25) * 2
		return trench*0.6 + n*0.4
	case WorldOasis:
		cx, cy := float64(g.w)/2, float64(g.h)/2
		dx := (fx - cx) / (cx * 0.7)
		dy := (fy - cy) / (cy * 0.7)
		fade := 1 - min(1, math.Sqrt(dx*dx+dy*dy))
		return fade*0.7 + n*0.3
	default:
		north := 1 - fy/float64(g.h)
		return 0.4 + n*0.4 - north*0.2
	}
}

// hashNoise is the secondary terrain channel: a coordinate hash mixed
// down to [0, 1], independent of the perlin field.
func hashNoise(x, y int, seed uint64) float64 {
	n := uint64(x)*1619 + uint64(y)*31337 + seed*6971
	n = (n ^ (n >> 8)) * 0x27d4eb2d
	n = (n ^ (n >> 15)) & 0xFFFFFFFF
	return float64(n&0xFFFF) / 65535.0
}

// tileAt maps a height value to a tile type using latitude bands and
// the secondary channel for in-band variety.
func (g *generator) tileAt(h float64, x, y int) terrain.TileType {
	lat := float64(y) / float64(g.h)
	sn := hashNoise(x, y, g.s2)

	if h < -0.25 {
		if h < -0.55 {
			return terrain.Sea
		}
		if sn > 0.5 {
			return terrain.Water
		}
		return terrain.Sea
	}
	if h < -0.05 {
		if sn > 0.8 {
			return terrain.Island
		}
		return terrain.Sea
	}

	if g.world == WorldOasis {
		cx, cy := float64(g.w)/2, float64(g.h)/2
		dx := (float64(x) - cx) / (cx * 0.7)
		dy := (float64(y) - cy) / (cy * 0.7)
		dist := math.Sqrt(dx*dx + dy*dy)
		if dist > 0.85 {
			if sn > 0.3 {
				return terrain.Desert
			}
			return terrain.Gobi
		}
		if dist > 0.55 {
			if sn > 0.5 {
				return terrain.Gobi
			}
			return terrain.Desert
		}
	}

	if lat < 0.12 {
		if h > 0.5 {
			return terrain.SnowMountain
		}
		if sn > 0.5 {
			return terrain.Glacier
		}
		return terrain.Tundra
	}
	if lat < 0.25 {
		switch {
		case h > 0.55:
			return terrain.SnowMountain
		case h > 0.35:
			return terrain.Mountain
		case sn > 0.6:
			return terrain.Tundra
		}
		return terrain.Plain
	}
	if lat > 0.78 {
		switch {
		case h > 0.5:
			return terrain.Mountain
		case sn > 0.5:
			return terrain.Rainforest
		case sn > 0.2:
			return terrain.Swamp
		}
		return terrain.Forest
	}

	switch {
	case h > 0.65:
		if sn > 0.7 && lat > 0.4 {
			return terrain.Volcano
		}
		return terrain.SnowMountain
	case h > 0.45:
		return terrain.Mountain
	case h > 0.25:
		switch {
		case sn > 0.75:
			return terrain.Bamboo
		case sn > 0.4:
			return terrain.Forest
		}
		return terrain.Mountain
	case h > 0.1:
		if g.world == WorldArchipelago {
			if sn > 0.85 {
				return terrain.Island
			}
			return terrain.Plain
		}
		switch {
		case sn > 0.85:
			return terrain.Farm
		case sn > 0.7:
			return terrain.Grassland
		case sn > 0.55:
			return terrain.Forest
		case sn > 0.3:
			return terrain.Plain
		}
		return terrain.Grassland
	}

	if g.world == WorldContinent || g.world == WorldPolarSouth {
		switch {
		case sn > 0.75:
			return terrain.Marsh
		case sn > 0.4:
			return terrain.Plain
		}
		return terrain.Farm
	}
	if sn > 0.7 {
		return terrain.Swamp
	}
	return terrain.Plain
}
