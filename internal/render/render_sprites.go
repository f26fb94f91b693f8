package render

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"stormgrid/internal/scene"
)

// DrawPoints renders untextured point sprites.
// buf format: [x, y, size, r, g, b, a, rotation] * N (8 floats per sprite).
func (r *Renderer) DrawPoints(buf []float32, cam Camera, fbW, fbH int) {
	if len(buf) == 0 {
		return
	}

	count := len(buf) / 8
	if count > MaxSpriteRender {
		count = MaxSpriteRender
	}

	gl.UseProgram(r.pointProg)
	gl.BindVertexArray(r.pointVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.pointVBO)

	gl.Uniform2f(r.pUCamera, float32(cam.X), float32(cam.Y))
	gl.Uniform1f(r.pUZoom, float32(cam.Zoom))
	gl.Uniform2f(r.pUResolution, float32(fbW), float32(fbH))

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	gl.BufferData(gl.ARRAY_BUFFER, count*8*4, gl.Ptr(buf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.POINTS, 0, int32(count))

	gl.Disable(gl.BLEND)
}

// DrawTexturedPoints renders rotated textured point sprites from the same
// buffer format as DrawPoints, sampling tex on unit 1.
func (r *Renderer) DrawTexturedPoints(buf []float32, tex uint32, cam Camera, fbW, fbH int) {
	if len(buf) == 0 || tex == 0 {
		return
	}

	count := len(buf) / 8
	if count > MaxSpriteRender {
		count = MaxSpriteRender
	}

	gl.UseProgram(r.spriteProg)
	gl.BindVertexArray(r.pointVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.pointVBO)

	gl.Uniform2f(r.sUCamera, float32(cam.X), float32(cam.Y))
	gl.Uniform1f(r.sUZoom, float32(cam.Zoom))
	gl.Uniform2f(r.sUResolution, float32(fbW), float32(fbH))

	gl.ActiveTexture(gl.TEXTURE1)
	gl.BindTexture(gl.TEXTURE_2D, tex)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	gl.BufferData(gl.ARRAY_BUFFER, count*8*4, gl.Ptr(buf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.POINTS, 0, int32(count))

	gl.Disable(gl.BLEND)
	gl.ActiveTexture(gl.TEXTURE0)
}

// DrawRect renders one world-space rectangle with a flat colour and alpha.
func (r *Renderer) DrawRect(x, y, w, h float64, col scene.Color, alpha float64, cam Camera, fbW, fbH int) {
	if w <= 0 || h <= 0 || alpha <= 0 {
		return
	}

	gl.UseProgram(r.rectProg)
	gl.BindVertexArray(r.quadVAO)

	gl.Uniform2f(r.rUOrigin, float32(x), float32(y))
	gl.Uniform2f(r.rUSize, float32(w), float32(h))
	gl.Uniform2f(r.rUCamera, float32(cam.X), float32(cam.Y))
	gl.Uniform1f(r.rUZoom, float32(cam.Zoom))
	gl.Uniform2f(r.rUResolution, float32(fbW), float32(fbH))
	gl.Uniform4f(r.rUColor,
		float32(col.R)/255, float32(col.G)/255, float32(col.B)/255, float32(alpha))

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	gl.DrawArrays(gl.TRIANGLES, 0, 6)

	gl.Disable(gl.BLEND)
}
