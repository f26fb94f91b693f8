package render

import "github.com/go-gl/gl/v4.1-core/gl"

// EnsureTexture creates a GL texture for a map chunk if it doesn't have one yet.
func (r *Renderer) EnsureTexture(c *MapChunk) {
	if c.Tex != 0 {
		return
	}
	gl.GenTextures(1, &c.Tex)
	gl.BindTexture(gl.TEXTURE_2D, c.Tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	gl.TexImage2D(
		gl.TEXTURE_2D, 0, gl.RGBA8,
		int32(c.W), int32(c.H), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(c.Pixels),
	)
	c.NeedsUpload = false
}

// UploadChunk re-uploads pixel data for a chunk whose texture already exists.
func (r *Renderer) UploadChunk(c *MapChunk) {
	r.EnsureTexture(c)
	gl.BindTexture(gl.TEXTURE_2D, c.Tex)
	gl.TexSubImage2D(
		gl.TEXTURE_2D, 0, 0, 0,
		int32(c.W), int32(c.H),
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(c.Pixels),
	)
	c.NeedsUpload = false
}

// DrawChunk renders a single chunk (assumes the map program is active).
func (r *Renderer) DrawChunk(c *MapChunk) {
	if c == nil || c.Tex == 0 {
		return
	}
	ox, oy := c.WorldOrigin()
	w, h := c.WorldSize()
	gl.Uniform2f(r.mUOrigin, float32(ox), float32(oy))
	gl.Uniform2f(r.mUSize, float32(w), float32(h))
	gl.BindTexture(gl.TEXTURE_2D, c.Tex)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
}

// DrawMap renders the chunks overlapping the view, uploading dirty ones.
func (r *Renderer) DrawMap(l *MapLayer, cam Camera, fbW, fbH int) {
	if l == nil {
		return
	}
	for i := range l.stale {
		if l.stale[i] != 0 {
			gl.DeleteTextures(1, &l.stale[i])
		}
	}
	l.stale = l.stale[:0]

	halfW := float64(fbW) / (2.0 * cam.Zoom)
	halfH := float64(fbH) / (2.0 * cam.Zoom)
	x0, y0 := cam.X-halfW, cam.Y-halfH
	x1, y1 := cam.X+halfW, cam.Y+halfH

	gl.UseProgram(r.mapProg)
	gl.BindVertexArray(r.quadVAO)
	gl.ActiveTexture(gl.TEXTURE0)

	for _, c := range l.chunks {
		ox, oy := c.WorldOrigin()
		w, h := c.WorldSize()
		if ox+w < x0 || ox > x1 || oy+h < y0 || oy > y1 {
			continue
		}
		if c.NeedsUpload {
			r.UploadChunk(c)
		} else {
			r.EnsureTexture(c)
		}
		r.DrawChunk(c)
	}
}

// DropMapTextures deletes every chunk texture the layer owns. Call before
// discarding a layer for good.
func (r *Renderer) DropMapTextures(l *MapLayer) {
	if l == nil {
		return
	}
	for _, c := range l.chunks {
		if c.Tex != 0 {
			gl.DeleteTextures(1, &c.Tex)
			c.Tex = 0
			c.NeedsUpload = true
		}
	}
	for i := range l.stale {
		if l.stale[i] != 0 {
			gl.DeleteTextures(1, &l.stale[i])
		}
	}
	l.stale = l.stale[:0]
}
