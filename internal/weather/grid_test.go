package weather

import (
	"reflect"
	"testing"

	"stormgrid/internal/terrain"
)

func TestClassifyDims(t *testing.T) {
	cases := []struct {
		rows, cols   int
		zRows, zCols int
	}{
		{8, 8, 1, 1},
		{16, 16, 2, 2},
		{17, 9, 3, 2},
		{1, 1, 1, 1},
		{24, 40, 3, 5},
	}
	for _, c := range cases {
		g := Classify(terrain.Fill(c.rows, c.cols, terrain.Plain), 42)
		if g.Rows() != c.zRows || g.Cols() != c.zCols {
			t.Errorf("%dx%d tiles: got %dx%d zones, want %dx%d",
				c.rows, c.cols, g.Rows(), g.Cols(), c.zRows, c.zCols)
		}
	}
	if g := Classify(nil, 42); g.Rows() != 0 {
		t.Errorf("nil matrix: got %d zone rows, want 0", g.Rows())
	}
}

func TestClassifyDeterministic(t *testing.T) {
	m := terrain.Fill(40, 40, terrain.Grassland)
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			m[y][x] = terrain.Rainforest
		}
	}
	for y := 20; y < 40; y++ {
		for x := 24; x < 40; x++ {
			m[y][x] = terrain.Glacier
		}
	}
	a := Classify(m, 0xC0FFEE)
	b := Classify(m, 0xC0FFEE)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("same seed classified differently:\n%v\n%v", a, b)
	}
}

func TestDesertIsAlwaysClear(t *testing.T) {
	m := terrain.Fill(16, 16, terrain.Desert)
	for _, seed := range []uint64{0, 1, 12345, 0xDEADBEEF, 998877665544} {
		g := Classify(m, seed)
		for zy := range g {
			for zx := range g[zy] {
				if g[zy][zx] != WeatherClear {
					t.Fatalf("seed %d zone (%d,%d): got %v, want clear", seed, zx, zy, g[zy][zx])
				}
			}
		}
	}
}

func TestGlacierIsAlwaysSnow(t *testing.T) {
	m := terrain.Fill(16, 24, terrain.Glacier)
	for _, seed := range []uint64{0, 7, 12345, 1 << 40} {
		g := Classify(m, seed)
		for zy := range g {
			for zx := range g[zy] {
				if g[zy][zx] != WeatherSnow {
					t.Fatalf("seed %d zone (%d,%d): got %v, want snow", seed, zx, zy, g[zy][zx])
				}
			}
		}
	}
}

func TestRainforestIsRainOrStorm(t *testing.T) {
	m := terrain.Fill(8, 8, terrain.Rainforest)
	storms := 0
	for seed := uint64(0); seed < 64; seed++ {
		g := Classify(m, seed)
		switch g[0][0] {
		case WeatherStorm:
			storms++
		case WeatherRain:
		default:
			t.Fatalf("seed %d: got %v, want rain or storm", seed, g[0][0])
		}
	}
	if storms == 0 {
		t.Error("no storm across 64 seeds; alt draw or upgrade never fired")
	}
}

func TestDominantTileDecides(t *testing.T) {
	// 40 desert vs 24 forest tiles in the single zone: desert rules.
	m := terrain.Fill(8, 8, terrain.Desert)
	for y := 5; y < 8; y++ {
		for x := 0; x < 8; x++ {
			m[y][x] = terrain.Forest
		}
	}
	for _, seed := range []uint64{0, 3, 99, 4096} {
		if g := Classify(m, seed); g[0][0] != WeatherClear {
			t.Fatalf("seed %d: got %v, want clear", seed, g[0][0])
		}
	}
}

func TestDominantTileTieBreaksOnFirstSeen(t *testing.T) {
	// 32 desert then 32 glacier: scan order meets desert first, so a
	// tie must classify like desert, never like glacier.
	m := terrain.Fill(8, 8, terrain.Desert)
	for y := 4; y < 8; y++ {
		for x := 0; x < 8; x++ {
			m[y][x] = terrain.Glacier
		}
	}
	for _, seed := range []uint64{0, 1, 2, 77, 1234567} {
		if g := Classify(m, seed); g[0][0] != WeatherClear {
			t.Fatalf("seed %d: got %v, want clear", seed, g[0][0])
		}
	}
}

func TestThresholdPathCoversAllTypes(t *testing.T) {
	// City tiles carry no tendency, so the zone falls back to the
	// banded draw. Over many seeds every weather type must show up.
	m := terrain.Fill(8, 8, terrain.City)
	seen := map[WeatherType]int{}
	for seed := uint64(0); seed < 256; seed++ {
		g := Classify(m, seed)
		seen[g[0][0]]++
	}
	for _, w := range []WeatherType{WeatherClear, WeatherRain, WeatherStorm, WeatherWind, WeatherSnow} {
		if seen[w] == 0 {
			t.Errorf("weather %v never drawn across 256 seeds: %v", w, seen)
		}
	}
	for w := range seen {
		if w > WeatherSnow {
			t.Errorf("invalid weather %d drawn", w)
		}
	}
}

func TestClassifyCellByCell(t *testing.T) {
	// A zone's class depends only on its own tiles and coordinates:
	// swapping distant terrain must not change it.
	a := terrain.Fill(24, 24, terrain.Grassland)
	b := terrain.Fill(24, 24, terrain.Grassland)
	for y := 16; y < 24; y++ {
		for x := 16; x < 24; x++ {
			b[y][x] = terrain.Glacier
		}
	}
	ga := Classify(a, 555)
	gb := Classify(b, 555)
	if ga[0][0] != gb[0][0] || ga[1][1] != gb[1][1] {
		t.Fatalf("far-away terrain changed unrelated zones: %v vs %v", ga, gb)
	}
	if gb[2][2] != WeatherSnow {
		t.Fatalf("glacier zone: got %v, want snow", gb[2][2])
	}
}
