package weather

import (
	"math"

	"stormgrid/internal/mathx"
	"stormgrid/internal/scene"
)

// AudioTrigger fires the thunder cue when a flash starts. A nil trigger
// keeps lightning silent.
type AudioTrigger interface {
	Thunder()
}

type FlashPhase uint8

const (
	FlashOut FlashPhase = iota
	FlashFirst
	FlashDim
	FlashSecond
)

var flashNames = [...]string{
	FlashOut:    "out",
	FlashFirst:  "first",
	FlashDim:    "dim",
	FlashSecond: "second",
}

func (f FlashPhase) String() string {
	if int(f) < len(flashNames) {
		return flashNames[f]
	}
	return "unknown"
}

// Lightning runs the double-flash cycle: a bright strike that decays
// fast, a dim afterglow that decays slowly, a weaker second strike, then
// dark. Strike rolls happen on a fixed sample cadence, independent of
// frame rate.
type Lightning struct {
	phase FlashPhase
	alpha float64
	acc   float64
	node  *scene.Node

	seed    uint64
	trigSeq uint64
	audio   AudioTrigger
}

func NewLightning(seed uint64, audio AudioTrigger) *Lightning {
	return &Lightning{seed: seed, audio: audio}
}

func (l *Lightning) Phase() FlashPhase {
	return l.phase
}

// Reseed resets the strike roll stream for a new world.
func (l *Lightning) Reseed(seed uint64) {
	l.seed = seed
	l.trigSeq = 0
}

// Update advances the cycle by dt. Every StormSampleInterval seconds it
// rolls once against chance; a hit starts a new flash over up to
// FlashMaxZones of the given storm zones, replacing any flash already
// running. Zero storm zones, zero chance or a nil container all skip the
// roll but still let a running flash play out.
func (l *Lightning) Update(dt float64, stormZones []Zone, chance float64, container *scene.Node) {
	if dt <= 0 {
		return
	}
	l.acc += dt
	if l.acc >= StormSampleInterval {
		l.acc = 0
		if len(stormZones) > 0 && chance > 0 && container != nil {
			l.trigSeq++
			r := mathx.NewRand(l.seed ^ l.trigSeq*0x9E3779B185EBCA87)
			if r.Float64() < chance {
				l.strike(r, stormZones, container)
			}
		}
	}
	switch l.phase {
	case FlashFirst:
		l.alpha -= FlashFastDecay * dt
		if l.alpha <= FlashDimFloor {
			l.alpha = FlashDimFloor
			l.phase = FlashDim
		}
	case FlashDim:
		l.alpha -= FlashSlowDecay * dt
		if l.alpha <= FlashLowFloor {
			l.alpha = FlashSecondAlpha
			l.phase = FlashSecond
		}
	case FlashSecond:
		l.alpha -= FlashFastDecay * dt
		if l.alpha <= 0 {
			l.clearNode()
			l.alpha = 0
			l.phase = FlashOut
		}
	}
	if l.node != nil {
		l.node.Alpha = l.alpha
	}
}

// strike places a fresh flash rect over a random anchor zone plus up to
// FlashMaxZones-1 of its neighbors, pads it by the margin and kicks the
// audio cue. Only neighbors join so the rect never spans the whole map
// when storm zones are scattered.
func (l *Lightning) strike(r *mathx.Rand, zones []Zone, container *scene.Node) {
	l.clearNode()

	idx := make([]int, len(zones))
	for i := range idx {
		idx[i] = i
	}
	r.Shuffle(len(idx), func(i, j int) { idx[i], idx[j] = idx[j], idx[i] })

	anchor := zones[idx[0]]
	x0, y0 := anchor.X, anchor.Y
	x1, y1 := anchor.X+anchor.W, anchor.Y+anchor.H
	picked := 1
	for _, k := range idx[1:] {
		if picked >= FlashMaxZones {
			break
		}
		z := zones[k]
		dx, dy := z.ZX-anchor.ZX, z.ZY-anchor.ZY
		if dx < -1 || dx > 1 || dy < -1 || dy > 1 {
			continue
		}
		x0 = math.Min(x0, z.X)
		y0 = math.Min(y0, z.Y)
		x1 = math.Max(x1, z.X+z.W)
		y1 = math.Max(y1, z.Y+z.H)
		picked++
	}
	x0 -= FlashMargin
	y0 -= FlashMargin
	x1 += FlashMargin
	y1 += FlashMargin

	l.node = scene.NewRect("flash", x1-x0, y1-y0, scene.Color{R: 255, G: 255, B: 255})
	l.node.X = x0
	l.node.Y = y0
	l.node.Alpha = FlashAlpha
	container.AddChild(l.node)

	l.phase = FlashFirst
	l.alpha = FlashAlpha
	if l.audio != nil {
		l.audio.Thunder()
	}
}

// Reset stops any running flash and rewinds the sample clock.
func (l *Lightning) Reset() {
	l.clearNode()
	l.phase = FlashOut
	l.alpha = 0
	l.acc = 0
}

func (l *Lightning) clearNode() {
	if l.node != nil {
		l.node.Remove()
		l.node = nil
	}
}
