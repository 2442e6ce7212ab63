package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/suzubu/Infinite-Image-Slider/internal/input"
)

// PollInput gathers all raw input events for the current frame.
// This separates input polling from input handling logic.
func PollInput() input.Sample {
	_, wheelY := ebiten.Wheel()
	return input.Sample{
		Quit:             inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		ToggleFullscreen: inpututil.IsKeyJustPressed(ebiten.KeyF11),
		ToggleHUD:        inpututil.IsKeyJustPressed(ebiten.KeyH),
		Next:             inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) || inpututil.IsKeyJustPressed(ebiten.KeyArrowDown),
		Prev:             inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) || inpututil.IsKeyJustPressed(ebiten.KeyArrowUp),
		WheelY:           wheelY,
	}
}
