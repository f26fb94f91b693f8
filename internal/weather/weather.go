// Package weather is the deterministic per-zone weather classifier and the
// particle/lightning runtime layered over a tile map. The classifier is a
// pure function of (terrain, seed); the runtime side owns variable-size
// particle pools, a storm overlay and a four-phase lightning flash, all
// scoped to the zones a camera viewport can see.
package weather

import "fmt"

// WeatherType is the coarse state assigned to one zone.
type WeatherType uint8

const (
	WeatherClear WeatherType = iota
	WeatherRain
	WeatherStorm
	WeatherWind
	WeatherSnow
)

var weatherNames = [...]string{
	WeatherClear: "clear",
	WeatherRain:  "rain",
	WeatherStorm: "storm",
	WeatherWind:  "wind",
	WeatherSnow:  "snow",
}

func (t WeatherType) String() string {
	if int(t) < len(weatherNames) {
		return weatherNames[t]
	}
	return "unknown"
}

// Intensity is the frontend weather preference.
type Intensity uint8

const (
	IntensityNone Intensity = iota
	IntensityLow
	IntensityHigh
)

var intensityNames = [...]string{
	IntensityNone: "none",
	IntensityLow:  "low",
	IntensityHigh: "high",
}

func (i Intensity) String() string {
	if int(i) < len(intensityNames) {
		return intensityNames[i]
	}
	return "unknown"
}

// ParseIntensity maps a config string to its level.
func ParseIntensity(s string) (Intensity, error) {
	for i, name := range intensityNames {
		if s == name {
			return Intensity(i), nil
		}
	}
	return IntensityNone, fmt.Errorf("unknown intensity %q", s)
}

// Preset binds an intensity level to pool densities and the storm trigger
// probability sampled every StormSampleInterval.
type Preset struct {
	RainDensity int // particles per visible rain/storm zone
	WindDensity int
	SnowDensity int
	StormChance float64
}

// AllZero reports whether the preset disables every pool.
func (p Preset) AllZero() bool {
	return p.RainDensity == 0 && p.WindDensity == 0 && p.SnowDensity == 0
}

var presets = map[Intensity]Preset{
	IntensityNone: {},
	IntensityLow:  {RainDensity: 18, WindDensity: 6, SnowDensity: 10, StormChance: 0.08},
	IntensityHigh: {RainDensity: 35, WindDensity: 12, SnowDensity: 20, StormChance: 0.18},
}

// PresetFor maps an intensity to its tuning. Unknown values fall back to
// the highest preset so a bad config errs toward visible weather.
func PresetFor(level Intensity) Preset {
	if p, ok := presets[level]; ok {
		return p
	}
	return presets[IntensityHigh]
}
