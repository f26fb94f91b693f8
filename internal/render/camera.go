package render

import (
	"stormgrid/internal/mathx"
	"stormgrid/internal/weather"
)

// Camera is a world-space centre plus zoom. The screen mapping is
// screen = (world - centre) * Zoom + resolution/2.
type Camera struct {
	X, Y float64 // world-pixel space, camera centre
	Zoom float64 // screen pixels per world pixel

	fbW, fbH int // framebuffer size, refreshed every frame

	// Screen shake.
	ShakeX, ShakeY float64 // current offset in world pixels
	ShakeTimer     float64 // remaining shake time
	ShakeIntensity float64 // max offset magnitude
}

var _ weather.CameraProvider = (*Camera)(nil)

// SetViewportSize records the framebuffer size used by View and Clamp.
func (c *Camera) SetViewportSize(fbW, fbH int) {
	c.fbW = fbW
	c.fbH = fbH
}

// View reports the current world-space viewport. ok is false until the
// camera has a framebuffer size and a positive zoom.
func (c *Camera) View() (weather.Viewport, bool) {
	if c.fbW <= 0 || c.fbH <= 0 || c.Zoom <= 0 {
		return weather.Viewport{}, false
	}
	ex, ey := c.EffectivePos()
	return weather.Viewport{
		CornerX: ex - float64(c.fbW)/(2*c.Zoom),
		CornerY: ey - float64(c.fbH)/(2*c.Zoom),
		Scale:   c.Zoom,
		ScreenW: float64(c.fbW),
		ScreenH: float64(c.fbH),
	}, true
}

// Pan moves the centre by a screen-pixel delta, so panning feels the same
// at every zoom level.
func (c *Camera) Pan(dxScreen, dyScreen float64) {
	if c.Zoom <= 0 {
		return
	}
	c.X += dxScreen / c.Zoom
	c.Y += dyScreen / c.Zoom
}

// ZoomBy scales the zoom factor. Clamp applies the limits afterwards.
func (c *Camera) ZoomBy(f float64) {
	if f > 0 {
		c.Zoom *= f
	}
}

// AddShake triggers screen shake with given intensity and duration.
func (c *Camera) AddShake(intensity, duration float64) {
	if intensity > c.ShakeIntensity {
		c.ShakeIntensity = intensity
	}
	if duration > c.ShakeTimer {
		c.ShakeTimer = duration
	}
}

// UpdateShake decays shake and computes random offsets.
func (c *Camera) UpdateShake(dt float64, seed uint64) {
	if c.ShakeTimer <= 0 {
		c.ShakeX = 0
		c.ShakeY = 0
		c.ShakeIntensity = 0
		return
	}
	c.ShakeTimer -= dt
	if c.ShakeTimer < 0 {
		c.ShakeTimer = 0
	}
	// Decaying intensity.
	t := c.ShakeTimer
	rr := mathx.NewRand(seed ^ uint64(t*10000))
	mag := c.ShakeIntensity * (t / (t + 0.08))
	c.ShakeX = rr.RangeF(-mag, mag)
	c.ShakeY = rr.RangeF(-mag, mag)
}

// EffectivePos returns the camera position with shake applied.
func (c *Camera) EffectivePos() (float64, float64) {
	return c.X + c.ShakeX, c.Y + c.ShakeY
}

// Clamp keeps the zoom inside its limits and the view inside the map.
// Maps smaller than the view centre themselves on the shorter axis.
func (c *Camera) Clamp(mapW, mapH float64) {
	if c.Zoom < MinZoom {
		c.Zoom = MinZoom
	}
	if c.Zoom > MaxZoom {
		c.Zoom = MaxZoom
	}

	halfW := float64(c.fbW) / (2.0 * c.Zoom)
	halfH := float64(c.fbH) / (2.0 * c.Zoom)

	minX := halfW
	maxX := mapW - halfW
	minY := halfH
	maxY := mapH - halfH

	if minX > maxX {
		c.X = mapW * 0.5
	} else {
		if c.X < minX {
			c.X = minX
		}
		if c.X > maxX {
			c.X = maxX
		}
	}

	if minY > maxY {
		c.Y = mapH * 0.5
	} else {
		if c.Y < minY {
			c.Y = minY
		}
		if c.Y > maxY {
			c.Y = maxY
		}
	}
}
