package weather

import "stormgrid/internal/terrain"

// Tendency maps a terrain type to its primary weather and an optional
// secondary drawn with AltWeight probability. AltWeight zero means the
// main type always wins.
type Tendency struct {
	Main      WeatherType
	Alt       WeatherType
	AltWeight float64
}

// tendencies covers the natural terrain vocabulary. POI tiles (city, sect,
// cave, ruin) are deliberately absent: zones dominated by them take the
// threshold path so built-up areas still get varied weather.
var tendencies = map[terrain.TileType]Tendency{
	terrain.Plain:        {Main: WeatherClear, Alt: WeatherRain, AltWeight: 0.25},
	terrain.Desert:       {Main: WeatherClear},
	terrain.Rainforest:   {Main: WeatherRain, Alt: WeatherStorm, AltWeight: 0.30},
	terrain.Glacier:      {Main: WeatherSnow},
	terrain.Sea:          {Main: WeatherWind, Alt: WeatherRain, AltWeight: 0.35},
	terrain.Water:        {Main: WeatherClear, Alt: WeatherRain, AltWeight: 0.40},
	terrain.Mountain:     {Main: WeatherWind, Alt: WeatherClear, AltWeight: 0.45},
	terrain.SnowMountain: {Main: WeatherSnow},
	terrain.Grassland:    {Main: WeatherClear, Alt: WeatherWind, AltWeight: 0.30},
	terrain.Forest:       {Main: WeatherRain, Alt: WeatherClear, AltWeight: 0.40},
	terrain.Volcano:      {Main: WeatherClear, Alt: WeatherWind, AltWeight: 0.20},
	terrain.Farm:         {Main: WeatherClear, Alt: WeatherRain, AltWeight: 0.30},
	terrain.Swamp:        {Main: WeatherRain, Alt: WeatherStorm, AltWeight: 0.20},
	terrain.Bamboo:       {Main: WeatherRain, Alt: WeatherClear, AltWeight: 0.35},
	terrain.Tundra:       {Main: WeatherSnow, Alt: WeatherWind, AltWeight: 0.25},
	terrain.Gobi:         {Main: WeatherWind, Alt: WeatherClear, AltWeight: 0.40},
	terrain.Island:       {Main: WeatherWind, Alt: WeatherRain, AltWeight: 0.30},
	terrain.Marsh:        {Main: WeatherRain, Alt: WeatherStorm, AltWeight: 0.15},
}

// TendencyFor exposes the table, mainly for tests and tooling.
func TendencyFor(t terrain.TileType) (Tendency, bool) {
	td, ok := tendencies[t]
	return td, ok
}
