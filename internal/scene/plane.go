package scene

import "math"

const (
	DefaultSegments   = 32
	DefaultBreakpoint = 900.0

	// maxSegments keeps vertex indices within uint16.
	maxSegments = 255

	narrowWidthFactor = 0.9
	wideWidthFactor   = 0.5
	heightFromWidth   = 9.0 / 16.0

	scaleIntensity = 0.1
	sideWave       = 0.5 // z amplitude across v
	edgeWave       = 0.2 // z amplitude across u
)

// Plane is the world-space size of the slide plane.
type Plane struct {
	Width    float64
	Height   float64
	Segments int
}

// NewPlane sizes the plane against the camera frustum. Viewports narrower
// than breakpoint (in logical pixels) get a wider plane.
func NewPlane(cam Camera, viewportWidth, breakpoint float64, segments int) Plane {
	visibleWidth, _ := cam.Visible()
	factor := wideWidthFactor
	if viewportWidth < breakpoint {
		factor = narrowWidthFactor
	}
	segments = min(max(segments, 1), maxSegments)
	w := visibleWidth * factor
	return Plane{Width: w, Height: w * heightFromWidth, Segments: segments}
}

// Scale returns the uniform x/y scale of the plane for an intensity:
// 1 grows by a tenth of the intensity when positive and shrinks by a tenth of
// its magnitude when negative.
func Scale(intensity float64) float64 {
	if intensity > 0 {
		return 1 + intensity*scaleIntensity
	}
	return 1 - math.Abs(intensity)*scaleIntensity
}

// Displacement is the z offset of the plane at uv for an intensity.
func Displacement(u, v, intensity float64) float64 {
	return math.Sin(v*math.Pi)*intensity*sideWave + math.Sin(u*math.Pi)*intensity*edgeWave
}

// Vertex is a projected plane vertex. U and V are texture coordinates with V
// growing upward, V=1 on the top edge.
type Vertex struct {
	X, Y float32
	U, V float32
}

// Mesh is a projected, triangulated plane. Buffers are reused across frames.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint16
}

// Build projects the plane, deformed by intensity, onto a w×h screen. It
// reports false, leaving the mesh unusable, when a vertex falls outside the
// camera's near/far range.
func (m *Mesh) Build(p Plane, cam Camera, intensity, w, h float64) bool {
	cols := p.Segments + 1
	n := cols * cols
	if cap(m.Vertices) < n {
		m.Vertices = make([]Vertex, n)
	}
	m.Vertices = m.Vertices[:n]

	vp := cam.ViewProjection()
	s := Scale(intensity)
	for iy := 0; iy < cols; iy++ {
		v := 1 - float64(iy)/float64(p.Segments)
		for ix := 0; ix < cols; ix++ {
			u := float64(ix) / float64(p.Segments)
			x := (u - 0.5) * p.Width * s
			y := (v - 0.5) * p.Height * s
			z := Displacement(u, v, intensity)
			sx, sy, ok := project(vp, x, y, z, w, h)
			if !ok {
				return false
			}
			m.Vertices[iy*cols+ix] = Vertex{X: float32(sx), Y: float32(sy), U: float32(u), V: float32(v)}
		}
	}

	if len(m.Indices) != p.Segments*p.Segments*6 {
		m.Indices = triangulate(p.Segments)
	}
	return true
}

// triangulate returns two triangles per grid cell.
func triangulate(segments int) []uint16 {
	cols := segments + 1
	idx := make([]uint16, 0, segments*segments*6)
	for iy := 0; iy < segments; iy++ {
		for ix := 0; ix < segments; ix++ {
			a := uint16(iy*cols + ix)
			b := uint16((iy+1)*cols + ix)
			c := b + 1
			d := a + 1
			idx = append(idx, a, b, d, b, c, d)
		}
	}
	return idx
}
