// Package app wires configuration, world generation, the weather driver
// and the GL front end into the desktop run loop.
package app

import (
	"fmt"
	"math"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"stormgrid/internal/audio"
	"stormgrid/internal/config"
	"stormgrid/internal/mathx"
	"stormgrid/internal/render"
	"stormgrid/internal/scene"
	"stormgrid/internal/sim"
	"stormgrid/internal/terrain"
	"stormgrid/internal/weather"
	"stormgrid/internal/worldgen"
)

const (
	panSpeed = 520.0 // screen pixels per second
	zoomRate = 1.4
)

// thunderFX fans one lightning cue out to the speakers and the camera.
type thunderFX struct {
	snd *audio.System
	cam *render.Camera
}

func (t *thunderFX) Thunder() {
	t.snd.Thunder()
	t.cam.AddShake(3.0, 0.35)
}

// Run owns the whole desktop session and blocks until the window closes.
//
// Keys: WASD/arrows pan, +/- zoom, 0/1/2 set weather intensity,
// R regenerates the world, M toggles mute, Escape quits.
func Run() error {
	runtime.LockOSThread()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	window, err := render.InitWindow(cfg.WindowW, cfg.WindowH, "stormgrid")
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	snd, err := audio.NewSystem(cfg.Mute)
	if err != nil {
		fmt.Fprintf(os.Stderr, "audio init failed (continuing without sound): %v\n", err)
		snd = nil
	}

	seed := cfg.Seed
	if !cfg.HasSeed {
		seed = uint64(time.Now().UnixNano())
	}

	// GL state.
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	sea := render.BaseColor(terrain.Sea)
	gl.ClearColor(float32(sea.R)/255, float32(sea.G)/255, float32(sea.B)/255, 1.0)

	m, err := worldgen.Generate(cfg.MapWidth, cfg.MapHeight, seed)
	if err != nil {
		return err
	}
	bus := sim.NewEventBus()
	store := sim.NewStore(bus, m, seed, cfg.Intensity)

	rend, err := render.NewRenderer()
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()

	var mapLayer render.MapLayer
	mapLayer.Build(store.Terrain(), store.Seed())
	defer rend.DropMapTextures(&mapLayer)
	mapW, mapH := mapLayer.WorldSize()

	cam := render.Camera{X: mapW / 2, Y: mapH / 2, Zoom: render.DefaultZoom}
	fbW, fbH := window.GetFramebufferSize()
	if fbW > 0 && fbH > 0 && mapW > 0 && mapH > 0 {
		// Start with the whole map on screen.
		fit := min(float64(fbW)/mapW, float64(fbH)/mapH)
		cam.Zoom = mathx.ClampF(fit, render.MinZoom, render.MaxZoom)
	}
	cam.SetViewportSize(fbW, fbH)

	root := scene.NewContainer("root")
	driver := weather.NewDriver(store, &cam, &thunderFX{snd: snd, cam: &cam}, root)
	driver.SetSnowTexture(render.MakeSnowflakeTexture())
	defer driver.Teardown()

	pass := render.NewScenePass()
	input := NewInput()

	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now
		if dt > 0.1 {
			dt = 0.1
		}

		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}

		fbW, fbH = window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}
		cam.SetViewportSize(fbW, fbH)

		// Weather intensity.
		if input.JustPressed(window, glfw.Key0) {
			store.SetIntensity(weather.IntensityNone)
		}
		if input.JustPressed(window, glfw.Key1) {
			store.SetIntensity(weather.IntensityLow)
		}
		if input.JustPressed(window, glfw.Key2) {
			store.SetIntensity(weather.IntensityHigh)
		}

		// New world on a fresh seed.
		if input.JustPressed(window, glfw.KeyR) {
			seed = uint64(time.Now().UnixNano())
			if m, err := worldgen.Generate(cfg.MapWidth, cfg.MapHeight, seed); err == nil {
				store.SetTerrain(m, seed)
				mapLayer.Build(store.Terrain(), store.Seed())
			} else {
				fmt.Fprintf(os.Stderr, "worldgen failed: %v\n", err)
			}
		}

		if input.JustPressed(window, glfw.KeyM) {
			snd.SetMute(!snd.Muted())
		}

		// Camera.
		if window.GetKey(glfw.KeyW) == glfw.Press || window.GetKey(glfw.KeyUp) == glfw.Press {
			cam.Pan(0, -panSpeed*dt)
		}
		if window.GetKey(glfw.KeyS) == glfw.Press || window.GetKey(glfw.KeyDown) == glfw.Press {
			cam.Pan(0, panSpeed*dt)
		}
		if window.GetKey(glfw.KeyA) == glfw.Press || window.GetKey(glfw.KeyLeft) == glfw.Press {
			cam.Pan(-panSpeed*dt, 0)
		}
		if window.GetKey(glfw.KeyD) == glfw.Press || window.GetKey(glfw.KeyRight) == glfw.Press {
			cam.Pan(panSpeed*dt, 0)
		}
		if window.GetKey(glfw.KeyEqual) == glfw.Press || window.GetKey(glfw.KeyKPAdd) == glfw.Press {
			cam.ZoomBy(math.Exp(zoomRate * dt))
		}
		if window.GetKey(glfw.KeyMinus) == glfw.Press || window.GetKey(glfw.KeyKPSubtract) == glfw.Press {
			cam.ZoomBy(math.Exp(-zoomRate * dt))
		}
		cam.UpdateShake(dt, seed^uint64(now*1000))
		cam.Clamp(mapW, mapH)

		driver.Frame(dt)

		// Render with shake applied.
		renderCam := cam
		sx, sy := cam.EffectivePos()
		renderCam.X = sx
		renderCam.Y = sy

		rend.BeginFrame(renderCam, fbW, fbH)
		rend.DrawMap(&mapLayer, renderCam, fbW, fbH)
		pass.Draw(rend, root, renderCam, fbW, fbH)

		window.SwapBuffers()
	}
	return nil
}
