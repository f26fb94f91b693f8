package weather

import (
	"stormgrid/internal/scene"
	"stormgrid/internal/terrain"
)

// Viewport is the visible world-space window: top-left corner in world
// pixels, the zoom scale and the framebuffer size. World width covered
// is ScreenW/Scale.
type Viewport struct {
	CornerX, CornerY float64
	Scale            float64
	ScreenW, ScreenH float64
}

// Source supplies the world the driver reacts to. The change callbacks
// fire synchronously from whatever mutates the source.
type Source interface {
	Terrain() terrain.Matrix
	Seed() uint64
	Intensity() Intensity
	OnTerrainChange(fn func())
	OnIntensityChange(fn func())
}

// CameraProvider reports the current viewport. ok=false means no camera
// is ready yet and the whole map counts as visible.
type CameraProvider interface {
	View() (Viewport, bool)
}

// Driver ties classification, culling, pools, the storm overlay and
// lightning together. One Frame call per render tick does all weather
// work; everything else is reaction to source changes.
type Driver struct {
	src Source
	cam CameraProvider

	root      *scene.Node
	container *scene.Node
	overlay   *scene.Node

	grid       Grid
	mapW, mapH float64
	preset     Preset
	running    bool

	rain      *Pool
	wind      *Pool
	snow      *Pool
	lightning *Lightning

	visBuf []Zone
	rainZ  []Zone
	windZ  []Zone
	snowZ  []Zone
	stormZ []Zone
}

// NewDriver classifies the source terrain, subscribes to its change
// callbacks and starts running. cam and audio may be nil.
func NewDriver(src Source, cam CameraProvider, audio AudioTrigger, root *scene.Node) *Driver {
	d := &Driver{
		src:       src,
		cam:       cam,
		root:      root,
		rain:      NewPool(ParticleRain, 0),
		wind:      NewPool(ParticleWind, 0),
		snow:      NewPool(ParticleSnow, 0),
		lightning: NewLightning(0, audio),
	}
	d.preset = PresetFor(src.Intensity())
	d.reclassify()
	src.OnTerrainChange(d.handleTerrainChange)
	src.OnIntensityChange(d.handleIntensityChange)
	d.running = true
	return d
}

func (d *Driver) Running() bool {
	return d.running
}

// SetSnowTexture hands the snow pool its flake texture. Call before the
// first frame; particles already spawned keep their old texture.
func (d *Driver) SetSnowTexture(tex uint32) {
	d.snow.SetTexture(tex)
}

// Start resumes frame processing. Idempotent.
func (d *Driver) Start() {
	d.running = true
}

// Stop tears down every visual effect and pauses frame processing. The
// weather container node stays in the scene so Start picks up where it
// left off. Safe before the first frame.
func (d *Driver) Stop() {
	d.clearEffects()
	d.running = false
}

// Teardown is Stop plus removal of the weather container itself.
func (d *Driver) Teardown() {
	d.Stop()
	if d.container != nil {
		d.container.Remove()
		d.container = nil
	}
}

// Frame runs one weather tick: poll the camera, cull zones, reconcile
// the pools against visible demand, keep the storm overlay in step and
// advance particle motion and the lightning cycle.
func (d *Driver) Frame(dt float64) {
	if !d.running || dt <= 0 || d.root == nil {
		return
	}
	if d.container == nil {
		d.container = scene.NewContainer("weather")
		d.root.AddChild(d.container)
	}
	if d.preset.AllZero() {
		d.clearEffects()
		return
	}
	if d.grid.Rows() == 0 || d.grid.Cols() == 0 {
		return
	}

	view := d.fullView()
	if d.cam != nil {
		if v, ok := d.cam.View(); ok {
			view = v
		}
	}
	scale := view.Scale
	if scale <= 0 {
		scale = 1
	}
	d.visBuf = VisibleZones(view.CornerX, view.CornerY,
		view.ScreenW/scale, view.ScreenH/scale,
		d.grid.Rows(), d.grid.Cols(), d.visBuf)

	d.rainZ = d.rainZ[:0]
	d.windZ = d.windZ[:0]
	d.snowZ = d.snowZ[:0]
	d.stormZ = d.stormZ[:0]
	for _, z := range d.visBuf {
		switch d.grid[z.ZY][z.ZX] {
		case WeatherRain:
			d.rainZ = append(d.rainZ, z)
		case WeatherStorm:
			d.rainZ = append(d.rainZ, z)
			d.stormZ = append(d.stormZ, z)
		case WeatherWind:
			d.windZ = append(d.windZ, z)
		case WeatherSnow:
			d.snowZ = append(d.snowZ, z)
		}
	}

	d.rain.Reconcile(d.container, d.rainZ, d.preset.RainDensity, MaxRainParticles)
	d.wind.Reconcile(d.container, d.windZ, d.preset.WindDensity, MaxWindParticles)
	d.snow.Reconcile(d.container, d.snowZ, d.preset.SnowDensity, MaxSnowParticles)

	// The overlay node is created once and toggled, not recreated.
	if len(d.stormZ) > 0 {
		if d.overlay == nil {
			d.overlay = scene.NewRect("storm-overlay", d.mapW, d.mapH, scene.Color{R: 8, G: 10, B: 18})
			d.overlay.Alpha = OverlayAlpha
			d.container.AddChild(d.overlay)
		}
		d.overlay.Visible = true
	} else if d.overlay != nil {
		d.overlay.Visible = false
	}

	d.rain.Integrate(dt)
	d.wind.Integrate(dt)
	d.snow.Integrate(dt)
	d.lightning.Update(dt, d.stormZ, d.preset.StormChance, d.container)
}

// reclassify rebuilds the weather grid and map bounds from the source
// and restarts every spawn stream on the new seed.
func (d *Driver) reclassify() {
	m := d.src.Terrain()
	seed := d.src.Seed()
	d.grid = Classify(m, seed)
	d.mapW = float64(m.Cols() * TileSize)
	d.mapH = float64(m.Rows() * TileSize)
	d.rain.Reseed(seed ^ 0x2A11)
	d.wind.Reseed(seed ^ 0x6057)
	d.snow.Reseed(seed ^ 0xF1AE)
	d.lightning.Reseed(seed ^ 0xB017)
}

func (d *Driver) handleTerrainChange() {
	d.reclassify()
	d.clearEffects()
}

func (d *Driver) handleIntensityChange() {
	was := d.preset
	d.preset = PresetFor(d.src.Intensity())
	if d.preset.AllZero() {
		d.Stop()
		return
	}
	if was.AllZero() || !d.running {
		d.Start()
	}
}

// clearEffects destroys pools, overlay and any running flash but keeps
// the container and the running flag.
func (d *Driver) clearEffects() {
	d.rain.DestroyAll()
	d.wind.DestroyAll()
	d.snow.DestroyAll()
	d.lightning.Reset()
	if d.overlay != nil {
		d.overlay.Remove()
		d.overlay = nil
	}
}

func (d *Driver) fullView() Viewport {
	return Viewport{Scale: 1, ScreenW: d.mapW, ScreenH: d.mapH}
}
