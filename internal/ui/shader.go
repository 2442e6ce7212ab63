package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// slideShaderSrc splits the plane horizontally at v = fract(ScrollPosition),
// with v growing upward: the next slide fills the band below the line and
// the current slide the rest. Image 0 is the current texture, image 1 the
// next.
const slideShaderSrc = `//kage:unit pixels

package main

var ScrollPosition float

func sampleCurrent(u, v float) vec4 {
	size := imageSrc0Size()
	pos := clamp(vec2(u, 1-v)*size, vec2(0.5), size-vec2(0.5))
	return imageSrc0At(imageSrc0Origin() + pos)
}

func sampleNext(u, v float) vec4 {
	size := imageSrc1Size()
	pos := clamp(vec2(u, 1-v)*size, vec2(0.5), size-vec2(0.5))
	return imageSrc1At(imageSrc1Origin() + pos)
}

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	uv := (srcPos - imageSrc0Origin()) / imageSrc0Size()
	v := 1 - uv.y
	p := fract(ScrollPosition)
	if v < p {
		return sampleNext(uv.x, mod(v+1-p, 1)) * color
	}
	return sampleCurrent(uv.x, mod(v-p, 1)) * color
}
`

// NewSlideShader compiles the slide transition shader.
func NewSlideShader() (*ebiten.Shader, error) {
	s, err := ebiten.NewShader([]byte(slideShaderSrc))
	if err != nil {
		return nil, fmt.Errorf("compiling slide shader: %w", err)
	}
	return s, nil
}
