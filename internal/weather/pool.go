package weather

import (
	"math"

	"stormgrid/internal/mathx"
	"stormgrid/internal/scene"
)

// Pool owns every live particle of one kind. It grows toward the zone
// demand, never shrinks while any zone still wants particles, and tears
// down completely the moment demand reaches zero.
type Pool struct {
	Kind ParticleKind
	P    []Particle

	seed     uint64
	spawnSeq uint64
	tex      uint32
}

func NewPool(kind ParticleKind, seed uint64) *Pool {
	return &Pool{Kind: kind, seed: seed}
}

// SetTexture picks the sprite texture new particles are created with.
// Zero keeps the flat-color fallback. Existing particles are unchanged.
func (p *Pool) SetTexture(tex uint32) {
	p.tex = tex
}

// Reseed resets the spawn stream. Called when the world the pool serves
// is replaced, so two sessions on the same seed spawn identical streams.
func (p *Pool) Reseed(seed uint64) {
	p.seed = seed
	p.spawnSeq = 0
}

func (p *Pool) Len() int {
	return len(p.P)
}

// Reconcile moves the pool toward len(zones)*density, capped at maxCount.
//   - no zones: destroy everything, including the node handles.
//   - demand at or below current size: keep what we have. Shrinking on a
//     partial scroll-out would churn nodes every frame at zone borders.
//   - demand above current size: create the difference inside random
//     zones from the demand set.
//
// A nil container means the scene is not ready yet; growth waits for a
// later tick, teardown still happens.
func (p *Pool) Reconcile(container *scene.Node, zones []Zone, density, maxCount int) {
	if len(zones) == 0 {
		p.DestroyAll()
		return
	}
	target := len(zones) * density
	if target > maxCount {
		target = maxCount
	}
	if target <= len(p.P) || container == nil {
		return
	}
	for len(p.P) < target {
		p.spawnSeq++
		r := mathx.NewRand(p.seed ^ p.spawnSeq*0x9E3779B185EBCA87)
		pt := p.spawn(r, zones[r.Intn(len(zones))])
		container.AddChild(pt.Node)
		pt.Node.X = pt.X
		pt.Node.Y = pt.Y
		p.P = append(p.P, pt)
	}
}

// DestroyAll detaches every node and empties the pool.
func (p *Pool) DestroyAll() {
	for i := range p.P {
		p.P[i].Node.Remove()
		p.P[i].Node = nil
	}
	p.P = p.P[:0]
}

// Integrate advances particle motion by dt and writes the results through
// to the scene nodes. Particles leaving their home zone recycle to the
// opposite edge so density per zone stays constant without respawning.
func (p *Pool) Integrate(dt float64) {
	if dt <= 0 {
		return
	}
	switch p.Kind {
	case ParticleRain:
		for i := range p.P {
			pt := &p.P[i]
			pt.X += pt.VX * dt
			pt.Y += pt.VY * dt
			if pt.Y > pt.Zone.Y+pt.Zone.H {
				pt.Y = pt.Zone.Y
				p.spawnSeq++
				r := mathx.NewRand(p.seed ^ p.spawnSeq*0xC2B2AE3D27D4EB4F)
				pt.X = pt.Zone.X + r.Float64()*pt.Zone.W
			}
			pt.Node.X = pt.X
			pt.Node.Y = pt.Y
		}
	case ParticleWind:
		for i := range p.P {
			pt := &p.P[i]
			pt.X += pt.VX * dt
			if pt.X > pt.Zone.X+pt.Zone.W {
				pt.X = pt.Zone.X
			}
			pt.Node.X = pt.X
			pt.Node.Y = pt.Y
		}
	case ParticleSnow:
		for i := range p.P {
			pt := &p.P[i]
			pt.Y += pt.VY * dt
			pt.Phase += dt * SnowPhaseRate
			if pt.Y > pt.Zone.Y+pt.Zone.H {
				pt.Y = pt.Zone.Y
			}
			pt.Node.X = pt.X + math.Sin(pt.Phase)*SnowWobbleAmp
			pt.Node.Y = pt.Y
			if pt.Node.Tex != 0 {
				pt.Node.Rotation += pt.Spin * dt
			}
		}
	}
}
