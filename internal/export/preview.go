package export

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	gomath "math"
	"sort"

	"golang.org/x/image/vector"

	"github.com/Faultbox/meadow/internal/engine/shading"
	"github.com/Faultbox/meadow/pkg/math"
)

// Preview rasterizes a displaced frame on the CPU. Triangles are flat
// shaded at their centroid gradient and painted far to near.
type Preview struct {
	Width, Height  int
	ViewProjection math.Mat4
	Shading        shading.Model
	Clear          [4]float32
}

type screenTri struct {
	pts      [3][2]float32
	depth    float32
	gradient float32
	front    bool
}

// Render draws f into a new RGBA image.
func (p Preview) Render(f *Frame) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.Width, p.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(toRGBA(p.Clear)), image.Point{}, draw.Src)

	tris := p.project(f)
	sort.Slice(tris, func(i, j int) bool { return tris[i].depth > tris[j].depth })

	z := vector.NewRasterizer(0, 0)
	for _, t := range tris {
		c := p.Shading.Shade(shading.Fragment{Gradient: t.gradient, FrontFacing: t.front}, f.Params)
		p.fill(z, img, t, toRGBA(c))
	}
	return img
}

func (p Preview) project(f *Frame) []screenTri {
	idx := f.Mesh.Indices
	tris := make([]screenTri, 0, len(idx)/3)
	w, h := float32(p.Width), float32(p.Height)

	for i := 0; i+2 < len(idx); i += 3 {
		var (
			t   screenTri
			ndc [3]math.Vec3
			ok  = true
		)
		for k := 0; k < 3; k++ {
			v := idx[i+k]
			pos := math.Vec3{X: f.Positions[v*3], Y: f.Positions[v*3+1], Z: f.Positions[v*3+2]}
			var in bool
			ndc[k], in = p.ViewProjection.Project(pos)
			if !in || ndc[k].Z < -1 || ndc[k].Z > 1 {
				ok = false
				break
			}
			t.pts[k] = [2]float32{(ndc[k].X*0.5 + 0.5) * w, (0.5 - ndc[k].Y*0.5) * h}
			t.depth += ndc[k].Z / 3
			t.gradient += f.Gradients[v] / 3
		}
		if !ok {
			continue
		}
		// Counter-clockwise in NDC (y up) is the front face.
		area := (ndc[1].X-ndc[0].X)*(ndc[2].Y-ndc[0].Y) - (ndc[2].X-ndc[0].X)*(ndc[1].Y-ndc[0].Y)
		if area == 0 {
			continue
		}
		t.front = area > 0
		tris = append(tris, t)
	}
	return tris
}

func (p Preview) fill(z *vector.Rasterizer, dst *image.RGBA, t screenTri, c color.RGBA) {
	minX, minY := t.pts[0][0], t.pts[0][1]
	maxX, maxY := minX, minY
	for _, pt := range t.pts[1:] {
		minX, maxX = min(minX, pt[0]), max(maxX, pt[0])
		minY, maxY = min(minY, pt[1]), max(maxY, pt[1])
	}
	r := image.Rect(
		int(gomath.Floor(float64(minX))), int(gomath.Floor(float64(minY))),
		int(gomath.Ceil(float64(maxX))), int(gomath.Ceil(float64(maxY))),
	).Intersect(dst.Bounds())
	if r.Empty() {
		return
	}

	// Points are clamped to the clip rect so the rasterizer never sees
	// coordinates outside its own bounds.
	ox, oy := float32(r.Min.X), float32(r.Min.Y)
	dx, dy := float32(r.Dx()), float32(r.Dy())
	local := func(pt [2]float32) (float32, float32) {
		return math.Clamp(pt[0]-ox, 0, dx), math.Clamp(pt[1]-oy, 0, dy)
	}
	z.Reset(r.Dx(), r.Dy())
	z.MoveTo(local(t.pts[0]))
	z.LineTo(local(t.pts[1]))
	z.LineTo(local(t.pts[2]))
	z.ClosePath()
	z.Draw(dst, r, image.NewUniform(c), image.Point{})
}

func toRGBA(c [4]float32) color.RGBA {
	ch := func(v float32) uint8 {
		return uint8(math.Clamp(v, 0, 1)*255 + 0.5)
	}
	return color.RGBA{R: ch(c[0]), G: ch(c[1]), B: ch(c[2]), A: ch(c[3])}
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}
