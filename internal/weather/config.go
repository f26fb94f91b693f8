package weather

// Zone sizing. A zone is the unit of classification and particle scoping.
const (
	ZoneSize = 8  // tiles per zone side
	TileSize = 64 // world pixels per tile side
	ZonePx   = ZoneSize * TileSize
)

// Pool ceilings, independent of how many zones are visible.
const (
	MaxRainParticles = 1400
	MaxWindParticles = 480
	MaxSnowParticles = 800
)

// Classification thresholds for terrain without a tendency entry.
// Cumulative over a single uniform draw.
const (
	untendedRainMax  = 0.35
	untendedWindMax  = 0.60
	untendedClearMax = 0.80
	untendedSnowMax  = 0.90
)

// StormUpgradeChance converts a rainy zone into a severe cell.
const StormUpgradeChance = 0.12

// Storm sampling.
const StormSampleInterval = 0.5 // seconds between lightning trigger draws

// Lightning flash tuning. Alphas are absolute node alpha, decays are
// alpha per second.
const (
	FlashAlpha       = 0.90
	FlashDimFloor    = 0.35
	FlashLowFloor    = 0.18
	FlashSecondAlpha = 0.75
	FlashFastDecay   = 3.2
	FlashSlowDecay   = 0.45
	FlashMargin      = 96.0 // pixels of padding around the struck zones
	FlashMaxZones    = 2
)

// Storm overlay darkening.
const OverlayAlpha = 0.22

// Particle motion.
const (
	RainFallMin  = 420.0 // px/s
	RainFallMax  = 560.0
	RainDriftMax = 26.0 // horizontal px/s either way

	WindSpeedMin = 180.0
	WindSpeedMax = 320.0

	SnowFallMin   = 40.0
	SnowFallMax   = 90.0
	SnowPhaseRate = 2.6 // wobble phase advance per second
	SnowWobbleAmp = 10.0
	SnowSpinMax   = 2.4 // rad/s, sprite-backed flakes only
)
