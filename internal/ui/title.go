package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/charmbracelet/harmonica"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/suzubu/Infinite-Image-Slider/internal/catalog"
)

// TitleOverlay draws the active slide's title and link below the plane.
// It implements transition.TitleView: the controller decides when the look
// changes, the overlay eases toward it with springs.
type TitleOverlay struct {
	catalog *catalog.Catalog
	source  *text.GoTextFaceSource
	color   color.Color

	title string
	link  string

	maxOffset float64
	fontSize  float64

	spring                    harmonica.Spring
	offset, offsetVel         float64
	opacity, opacityVel       float64
	targetOffset, targetAlpha float64
}

// NewTitleOverlay creates an overlay showing slide 0.
func NewTitleOverlay(c *catalog.Catalog, fontSize, offset float64, col color.Color) (*TitleOverlay, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("loading title font: %w", err)
	}
	o := &TitleOverlay{
		catalog:     c,
		source:      src,
		color:       col,
		maxOffset:   offset,
		fontSize:    fontSize,
		spring:      harmonica.NewSpring(harmonica.FPS(ebiten.DefaultTPS), 8.0, 1.0),
		opacity:     1,
		targetAlpha: 1,
	}
	o.SetSlide(0)
	return o, nil
}

// SetSlide replaces the text with slide index's title and link.
func (o *TitleOverlay) SetSlide(index int) {
	s := o.catalog.At(index)
	o.title = s.Title
	o.link = s.URL
}

// ApplyHidden eases the text down and out.
func (o *TitleOverlay) ApplyHidden() {
	o.targetOffset = o.maxOffset
	o.targetAlpha = 0
}

// ApplyShown eases the text back into place.
func (o *TitleOverlay) ApplyShown() {
	o.targetOffset = 0
	o.targetAlpha = 1
}

// Update advances the springs one tick.
func (o *TitleOverlay) Update() {
	o.offset, o.offsetVel = o.spring.Update(o.offset, o.offsetVel, o.targetOffset)
	o.opacity, o.opacityVel = o.spring.Update(o.opacity, o.opacityVel, o.targetAlpha)
}

// Draw renders the overlay centered horizontally with its top at y.
// scale is the device scale factor applied to font size and offset.
func (o *TitleOverlay) Draw(screen *ebiten.Image, y, scale float64) {
	alpha := min(max(o.opacity, 0), 1)
	if alpha <= 0.001 {
		return
	}
	w := float64(screen.Bounds().Dx())
	y += o.offset * scale

	titleFace := &text.GoTextFace{Source: o.source, Size: o.fontSize * scale}
	y = o.drawCentered(screen, o.title, titleFace, w, y, alpha)

	if o.link != "" {
		linkFace := &text.GoTextFace{Source: o.source, Size: o.fontSize * 0.4 * scale}
		o.drawCentered(screen, o.link, linkFace, w, y+8*scale, alpha*0.7)
	}
}

// drawCentered draws s centered on width w and returns the y below it.
func (o *TitleOverlay) drawCentered(screen *ebiten.Image, s string, face *text.GoTextFace, w, y, alpha float64) float64 {
	lineHeight := face.Size * 1.2
	tw, th := text.Measure(s, face, lineHeight)
	op := &text.DrawOptions{}
	op.LineSpacing = lineHeight
	op.GeoM.Translate((w-tw)/2, y)
	op.ColorScale.ScaleWithColor(o.color)
	op.ColorScale.ScaleAlpha(float32(alpha))
	text.Draw(screen, s, face, op)
	return y + th
}
