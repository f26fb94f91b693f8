package render

import "stormgrid/internal/scene"

// rectCmd is a deferred rect draw collected during the scene walk.
type rectCmd struct {
	x, y, w, h float64
	col        scene.Color
	alpha      float64
}

// ScenePass flattens a scene tree into point-sprite batches and rect
// draws. Sprites batch per texture; rects keep tree order so overlays and
// flashes stack the way the tree says. Buffers persist across frames.
type ScenePass struct {
	solid []float32
	tex   map[uint32][]float32
	rects []rectCmd
}

func NewScenePass() *ScenePass {
	return &ScenePass{tex: make(map[uint32][]float32)}
}

// Draw walks root and renders everything in it: untextured sprites first,
// then textured batches, then rects in tree order on top.
func (sp *ScenePass) Draw(r *Renderer, root *scene.Node, cam Camera, fbW, fbH int) {
	sp.solid = sp.solid[:0]
	for k := range sp.tex {
		sp.tex[k] = sp.tex[k][:0]
	}
	sp.rects = sp.rects[:0]
	if root == nil {
		return
	}

	root.Walk(func(n *scene.Node, wx, wy, alpha float64) {
		switch n.Kind {
		case scene.KindSprite:
			v := [8]float32{
				float32(wx), float32(wy), float32(n.Size),
				float32(n.Color.R) / 255, float32(n.Color.G) / 255, float32(n.Color.B) / 255,
				float32(alpha), float32(n.Rotation),
			}
			if n.Tex != 0 {
				sp.tex[n.Tex] = append(sp.tex[n.Tex], v[:]...)
			} else {
				sp.solid = append(sp.solid, v[:]...)
			}
		case scene.KindRect:
			sp.rects = append(sp.rects, rectCmd{wx, wy, n.W, n.H, n.Color, alpha})
		}
	})

	r.DrawPoints(sp.solid, cam, fbW, fbH)
	for tex, buf := range sp.tex {
		r.DrawTexturedPoints(buf, tex, cam, fbW, fbH)
	}
	for _, rc := range sp.rects {
		r.DrawRect(rc.x, rc.y, rc.w, rc.h, rc.col, rc.alpha, cam, fbW, fbH)
	}
}
