package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/suzubu/Infinite-Image-Slider/internal/scene"
	"github.com/suzubu/Infinite-Image-Slider/internal/transition"
)

// Renderer draws the slide plane. It owns no transition logic: each frame it
// turns a transition.Frame into a deformed mesh and the shader's uniforms.
type Renderer struct {
	shader     *ebiten.Shader
	background color.Color
	breakpoint float64
	segments   int

	camera scene.Camera
	plane  scene.Plane
	mesh   scene.Mesh

	vertices []ebiten.Vertex
	op       *ebiten.DrawTrianglesShaderOptions

	// Last layout, to rebuild the plane only on resize.
	logicalWidth float64
	screenW      int
	screenH      int
}

// NewRenderer compiles the shader and prepares an empty layout.
func NewRenderer(background color.Color, breakpoint float64, segments int) (*Renderer, error) {
	shader, err := NewSlideShader()
	if err != nil {
		return nil, err
	}
	return &Renderer{
		shader:     shader,
		background: background,
		breakpoint: breakpoint,
		segments:   segments,
		camera:     scene.NewCamera(1, 1),
		op: &ebiten.DrawTrianglesShaderOptions{
			AntiAlias: true,
			Uniforms:  map[string]any{},
		},
	}, nil
}

// Resize recomputes the camera aspect and the plane size for a screen of
// w×h pixels whose logical (unscaled) width is logicalWidth.
func (r *Renderer) Resize(logicalWidth float64, w, h int) {
	if logicalWidth == r.logicalWidth && w == r.screenW && h == r.screenH {
		return
	}
	r.logicalWidth, r.screenW, r.screenH = logicalWidth, w, h
	r.camera.Resize(float64(w), float64(h))
	r.plane = scene.NewPlane(r.camera, logicalWidth, r.breakpoint, r.segments)
}

// PlaneBottom returns the screen y of the undeformed plane's bottom edge, or
// the screen's bottom when that edge cannot be projected.
func (r *Renderer) PlaneBottom() float64 {
	_, y, ok := r.camera.Project(0, -r.plane.Height/2, 0, float64(r.screenW), float64(r.screenH))
	if !ok {
		return float64(r.screenH)
	}
	return y
}

// Draw renders frame f with the current and next textures. A frame whose
// deformed plane leaves the camera frustum draws only the background.
func (r *Renderer) Draw(screen *ebiten.Image, f transition.Frame, current, next *ebiten.Image) {
	screen.Fill(r.background)
	if r.screenW == 0 || r.screenH == 0 {
		return
	}

	if !r.mesh.Build(r.plane, r.camera, f.Intensity, float64(r.screenW), float64(r.screenH)) {
		return
	}

	tw := float32(current.Bounds().Dx())
	th := float32(current.Bounds().Dy())
	if cap(r.vertices) < len(r.mesh.Vertices) {
		r.vertices = make([]ebiten.Vertex, len(r.mesh.Vertices))
	}
	r.vertices = r.vertices[:len(r.mesh.Vertices)]
	for i, v := range r.mesh.Vertices {
		r.vertices[i] = ebiten.Vertex{
			DstX:   v.X,
			DstY:   v.Y,
			SrcX:   v.U * tw,
			SrcY:   (1 - v.V) * th,
			ColorR: 1,
			ColorG: 1,
			ColorB: 1,
			ColorA: 1,
		}
	}

	r.op.Images[0] = current
	r.op.Images[1] = next
	r.op.Uniforms["ScrollPosition"] = float32(f.Pair.Blend)
	screen.DrawTrianglesShader(r.vertices, r.mesh.Indices, r.shader, r.op)
}
