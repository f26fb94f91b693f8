package weather

import (
	"math"

	"stormgrid/internal/mathx"
	"stormgrid/internal/scene"
)

type ParticleKind uint8

const (
	ParticleRain ParticleKind = iota
	ParticleWind
	ParticleSnow
)

var particleNames = [...]string{
	ParticleRain: "rain",
	ParticleWind: "wind",
	ParticleSnow: "snow",
}

func (k ParticleKind) String() string {
	if int(k) < len(particleNames) {
		return particleNames[k]
	}
	return "unknown"
}

// Particle is one live drop/streak/flake. The node handle is exclusively
// owned by the particle and detached when the particle is destroyed. Zone
// holds the home bounds the particle recycles within.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Phase  float64 // snow wobble phase
	Spin   float64 // snow sprite rotation rate, rad/s
	Zone   Zone
	Node   *scene.Node
}

// spawn builds a particle at a uniformly-random position inside z with
// kind-specific kinematics. Texture-vs-fallback selection happens here,
// once per particle: a zero pool texture leaves the node a flat shape.
func (p *Pool) spawn(r *mathx.Rand, z Zone) Particle {
	pt := Particle{
		X:    z.X + r.Float64()*z.W,
		Y:    z.Y + r.Float64()*z.H,
		Zone: z,
	}
	switch p.Kind {
	case ParticleRain:
		pt.VX = r.RangeF(-RainDriftMax, RainDriftMax)
		pt.VY = r.RangeF(RainFallMin, RainFallMax)
		pt.Node = scene.NewSprite("rain", 2.0+r.RangeF(0, 1.0), scene.Color{R: 175, G: 195, B: 220})
		pt.Node.Alpha = 0.75
	case ParticleWind:
		pt.VX = r.RangeF(WindSpeedMin, WindSpeedMax)
		pt.Node = scene.NewSprite("wind", 2.4+r.RangeF(0, 1.2), scene.Color{R: 205, G: 214, B: 224})
		pt.Node.Alpha = 0.50
	case ParticleSnow:
		pt.VY = r.RangeF(SnowFallMin, SnowFallMax)
		pt.Phase = r.RangeF(0, 2*math.Pi)
		pt.Spin = r.RangeF(-SnowSpinMax, SnowSpinMax)
		pt.Node = scene.NewSprite("snow", 2.4+r.RangeF(0, 1.6), scene.Color{R: 235, G: 242, B: 250})
		pt.Node.Alpha = 0.95
	}
	pt.Node.Tex = p.tex
	return pt
}
