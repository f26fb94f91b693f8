package render

import (
	"math"
	"testing"
)

func TestCameraViewNotReady(t *testing.T) {
	var c Camera
	if _, ok := c.View(); ok {
		t.Fatal("zero camera reported a view")
	}
	c.SetViewportSize(800, 600)
	if _, ok := c.View(); ok {
		t.Fatal("camera without zoom reported a view")
	}
	c.Zoom = 1
	if _, ok := c.View(); !ok {
		t.Fatal("configured camera reported no view")
	}
}

func TestCameraViewGeometry(t *testing.T) {
	c := Camera{X: 400, Y: 300, Zoom: 2}
	c.SetViewportSize(800, 600)

	v, ok := c.View()
	if !ok {
		t.Fatal("no view")
	}
	if v.CornerX != 200 || v.CornerY != 150 {
		t.Fatalf("corner = (%v,%v), want (200,150)", v.CornerX, v.CornerY)
	}
	if v.Scale != 2 || v.ScreenW != 800 || v.ScreenH != 600 {
		t.Fatalf("scale/screen = %v/%vx%v", v.Scale, v.ScreenW, v.ScreenH)
	}
}

func TestCameraViewFollowsShake(t *testing.T) {
	c := Camera{X: 400, Y: 300, Zoom: 1}
	c.SetViewportSize(200, 200)
	c.ShakeX = 10
	c.ShakeY = -5

	v, _ := c.View()
	if v.CornerX != 310 || v.CornerY != 195 {
		t.Fatalf("corner = (%v,%v), want (310,195)", v.CornerX, v.CornerY)
	}
}

func TestCameraPanIsZoomIndependent(t *testing.T) {
	c := Camera{Zoom: 2}
	c.Pan(100, 0)
	if c.X != 50 {
		t.Fatalf("X = %v after pan at zoom 2, want 50", c.X)
	}

	c = Camera{Zoom: 0.5}
	c.Pan(100, 0)
	if c.X != 200 {
		t.Fatalf("X = %v after pan at zoom 0.5, want 200", c.X)
	}

	c = Camera{}
	c.Pan(100, 100)
	if c.X != 0 || c.Y != 0 {
		t.Fatal("pan moved a camera with no zoom")
	}
}

func TestCameraClampInsideMap(t *testing.T) {
	c := Camera{X: 0, Y: 0, Zoom: 1}
	c.SetViewportSize(800, 600)
	c.Clamp(4096, 4096)
	if c.X != 400 || c.Y != 300 {
		t.Fatalf("low clamp = (%v,%v), want (400,300)", c.X, c.Y)
	}

	c.X, c.Y = 99999, 99999
	c.Clamp(4096, 4096)
	if c.X != 4096-400 || c.Y != 4096-300 {
		t.Fatalf("high clamp = (%v,%v)", c.X, c.Y)
	}
}

func TestCameraClampSmallMapCenters(t *testing.T) {
	c := Camera{X: 999, Y: -50, Zoom: 1}
	c.SetViewportSize(800, 600)
	c.Clamp(200, 100)
	if c.X != 100 || c.Y != 50 {
		t.Fatalf("small map centre = (%v,%v), want (100,50)", c.X, c.Y)
	}
}

func TestCameraClampZoomLimits(t *testing.T) {
	c := Camera{Zoom: 999}
	c.Clamp(1024, 1024)
	if c.Zoom != MaxZoom {
		t.Fatalf("zoom = %v, want %v", c.Zoom, MaxZoom)
	}

	c.Zoom = 1e-9
	c.Clamp(1024, 1024)
	if c.Zoom != MinZoom {
		t.Fatalf("zoom = %v, want %v", c.Zoom, MinZoom)
	}
}

func TestCameraShakeDecaysToZero(t *testing.T) {
	var c Camera
	c.AddShake(4, 0.2)

	peak := 0.0
	for i := 0; i < 20; i++ {
		c.UpdateShake(0.05, 7)
		peak = math.Max(peak, math.Abs(c.ShakeX))
		if math.Abs(c.ShakeX) > 4 || math.Abs(c.ShakeY) > 4 {
			t.Fatalf("shake exceeded intensity: (%v,%v)", c.ShakeX, c.ShakeY)
		}
	}
	if peak == 0 {
		t.Fatal("shake never moved the camera")
	}
	if c.ShakeX != 0 || c.ShakeY != 0 || c.ShakeIntensity != 0 {
		t.Fatalf("shake did not settle: (%v,%v) intensity %v", c.ShakeX, c.ShakeY, c.ShakeIntensity)
	}
}

func TestCameraShakeKeepsStrongerRequest(t *testing.T) {
	var c Camera
	c.AddShake(5, 0.1)
	c.AddShake(2, 0.5)
	if c.ShakeIntensity != 5 {
		t.Fatalf("intensity = %v, want 5", c.ShakeIntensity)
	}
	if c.ShakeTimer != 0.5 {
		t.Fatalf("timer = %v, want 0.5", c.ShakeTimer)
	}
}
