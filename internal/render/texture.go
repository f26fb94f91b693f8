package render

import "github.com/go-gl/gl/v4.1-core/gl"

// MakeSnowflakeTexture builds the small six-point flake sampled by the
// textured sprite program: white arms, alpha fading toward the tips,
// transparent elsewhere.
func MakeSnowflakeTexture() uint32 {
	const s = 15
	pix := make([]uint8, s*s*4)

	set := func(x, y int, a uint8) {
		if x < 0 || x >= s || y < 0 || y >= s {
			return
		}
		i := (y*s + x) * 4
		pix[i+0] = 255
		pix[i+1] = 255
		pix[i+2] = 255
		if a > pix[i+3] {
			pix[i+3] = a
		}
	}

	c := s / 2

	// Straight arms.
	for d := -c; d <= c; d++ {
		ad := d
		if ad < 0 {
			ad = -ad
		}
		a := uint8(250 - ad*20)
		set(c+d, c, a)
		set(c, c+d, a)
	}
	// Shorter diagonal arms.
	for d := -(c - 2); d <= c-2; d++ {
		ad := d
		if ad < 0 {
			ad = -ad
		}
		a := uint8(205 - ad*24)
		set(c+d, c+d, a)
		set(c+d, c-d, a)
	}
	// Prongs partway out each straight arm.
	for _, d := range [2]int{-4, 4} {
		set(c+d, c-1, 140)
		set(c+d, c+1, 140)
		set(c-1, c+d, 140)
		set(c+1, c+d, 140)
	}

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, s, s, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pix))
	return tex
}
