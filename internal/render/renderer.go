package render

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

type Renderer struct {
	// Map program. Shares the unit quad VAO with the rect program.
	mapProg uint32
	quadVAO uint32
	quadVBO uint32

	mUOrigin     int32
	mUSize       int32
	mUCamera     int32
	mUZoom       int32
	mUResolution int32
	mUTex        int32

	// Rect program (overlays, flashes).
	rectProg uint32

	rUOrigin     int32
	rUSize       int32
	rUCamera     int32
	rUZoom       int32
	rUResolution int32
	rUColor      int32

	// Point sprite programs. Both stream from the same VBO.
	pointProg uint32
	pointVAO  uint32
	pointVBO  uint32

	pUCamera     int32
	pUZoom       int32
	pUResolution int32

	// Textured, rotated point sprites.
	spriteProg uint32

	sUCamera     int32
	sUZoom       int32
	sUResolution int32
	sUSpriteTex  int32
}

func NewRenderer() (*Renderer, error) {
	mapProg, err := linkProgram(quadVertSrc, mapFragSrc)
	if err != nil {
		return nil, fmt.Errorf("map program: %w", err)
	}
	rectProg, err := linkProgram(quadVertSrc, rectFragSrc)
	if err != nil {
		gl.DeleteProgram(mapProg)
		return nil, fmt.Errorf("rect program: %w", err)
	}
	pointProg, err := linkProgram(pointVertSrc, pointFragSrc)
	if err != nil {
		gl.DeleteProgram(mapProg)
		gl.DeleteProgram(rectProg)
		return nil, fmt.Errorf("point program: %w", err)
	}
	spriteProg, err := linkProgram(pointVertSrc, spriteFragSrc)
	if err != nil {
		gl.DeleteProgram(mapProg)
		gl.DeleteProgram(rectProg)
		gl.DeleteProgram(pointProg)
		return nil, fmt.Errorf("sprite program: %w", err)
	}

	r := &Renderer{
		mapProg:    mapProg,
		rectProg:   rectProg,
		pointProg:  pointProg,
		spriteProg: spriteProg,
	}

	// Quad VAO/VBO: a unit quad (6 vertices, 2 triangles).
	var qVAO, qVBO uint32
	gl.GenVertexArrays(1, &qVAO)
	gl.GenBuffers(1, &qVBO)
	gl.BindVertexArray(qVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, qVBO)

	quadVerts := [12]float32{
		0, 0, 1, 0, 1, 1,
		0, 0, 1, 1, 0, 1,
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVerts)*4, gl.Ptr(&quadVerts[0]), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, glOffset(0))
	r.quadVAO = qVAO
	r.quadVBO = qVBO

	// Map uniforms.
	gl.UseProgram(mapProg)
	r.mUOrigin = gl.GetUniformLocation(mapProg, gl.Str("uOrigin\x00"))
	r.mUSize = gl.GetUniformLocation(mapProg, gl.Str("uSize\x00"))
	r.mUCamera = gl.GetUniformLocation(mapProg, gl.Str("uCamera\x00"))
	r.mUZoom = gl.GetUniformLocation(mapProg, gl.Str("uZoom\x00"))
	r.mUResolution = gl.GetUniformLocation(mapProg, gl.Str("uResolution\x00"))
	r.mUTex = gl.GetUniformLocation(mapProg, gl.Str("uTex\x00"))
	gl.Uniform1i(r.mUTex, 0)

	// Rect uniforms.
	gl.UseProgram(rectProg)
	r.rUOrigin = gl.GetUniformLocation(rectProg, gl.Str("uOrigin\x00"))
	r.rUSize = gl.GetUniformLocation(rectProg, gl.Str("uSize\x00"))
	r.rUCamera = gl.GetUniformLocation(rectProg, gl.Str("uCamera\x00"))
	r.rUZoom = gl.GetUniformLocation(rectProg, gl.Str("uZoom\x00"))
	r.rUResolution = gl.GetUniformLocation(rectProg, gl.Str("uResolution\x00"))
	r.rUColor = gl.GetUniformLocation(rectProg, gl.Str("uColor\x00"))

	// Point VAO/VBO: streaming buffer for point sprites.
	// Each sprite: 8 floats (x, y, size, r, g, b, a, rotation).
	var pVAO, pVBO uint32
	gl.GenVertexArrays(1, &pVAO)
	gl.GenBuffers(1, &pVBO)
	gl.BindVertexArray(pVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, pVBO)

	stride := int32(8 * 4)
	gl.BufferData(gl.ARRAY_BUFFER, MaxSpriteRender*int(stride), nil, gl.STREAM_DRAW)
	// aWorldPos (vec2)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	// aSize (float)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 1, gl.FLOAT, false, stride, glOffset(2*4))
	// aColor (vec4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(3*4))
	// aRotation (float)
	gl.EnableVertexAttribArray(3)
	gl.VertexAttribPointer(3, 1, gl.FLOAT, false, stride, glOffset(7*4))
	r.pointVAO = pVAO
	r.pointVBO = pVBO

	// Point uniforms.
	gl.UseProgram(pointProg)
	r.pUCamera = gl.GetUniformLocation(pointProg, gl.Str("uCamera\x00"))
	r.pUZoom = gl.GetUniformLocation(pointProg, gl.Str("uZoom\x00"))
	r.pUResolution = gl.GetUniformLocation(pointProg, gl.Str("uResolution\x00"))

	// Sprite uniforms. The sprite texture lives on unit 1 so it never
	// clobbers the map chunk binding on unit 0.
	gl.UseProgram(spriteProg)
	r.sUCamera = gl.GetUniformLocation(spriteProg, gl.Str("uCamera\x00"))
	r.sUZoom = gl.GetUniformLocation(spriteProg, gl.Str("uZoom\x00"))
	r.sUResolution = gl.GetUniformLocation(spriteProg, gl.Str("uResolution\x00"))
	r.sUSpriteTex = gl.GetUniformLocation(spriteProg, gl.Str("uSpriteTex\x00"))
	gl.Uniform1i(r.sUSpriteTex, 1)

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	for _, id := range []uint32{r.quadVBO, r.pointVBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	for _, id := range []uint32{r.quadVAO, r.pointVAO} {
		if id != 0 {
			gl.DeleteVertexArrays(1, &id)
		}
	}
	for _, id := range []uint32{r.mapProg, r.rectProg, r.pointProg, r.spriteProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
}

func (r *Renderer) BeginFrame(cam Camera, fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.Clear(gl.COLOR_BUFFER_BIT)

	// Set up the map program as default for the frame.
	gl.UseProgram(r.mapProg)
	gl.BindVertexArray(r.quadVAO)

	gl.Uniform2f(r.mUCamera, float32(cam.X), float32(cam.Y))
	gl.Uniform1f(r.mUZoom, float32(cam.Zoom))
	gl.Uniform2f(r.mUResolution, float32(fbW), float32(fbH))

	gl.ActiveTexture(gl.TEXTURE0)
}

// RestoreMapProgram switches back to the map program after sprite or rect
// drawing.
func (r *Renderer) RestoreMapProgram() {
	gl.UseProgram(r.mapProg)
	gl.BindVertexArray(r.quadVAO)
}
