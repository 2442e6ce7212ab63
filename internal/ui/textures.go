package ui

import (
	"context"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/suzubu/Infinite-Image-Slider/internal/catalog"
	"github.com/suzubu/Infinite-Image-Slider/internal/service"
)

// TextureStore holds the GPU textures of every slide.
type TextureStore = service.Textures[*ebiten.Image]

// NewTextureStore starts loading the catalog's images with the given number
// of workers. Its Update must be called from the game loop, as ebiten.Image
// creation belongs to the main thread.
func NewTextureStore(ctx context.Context, c *catalog.Catalog, ivs *service.ImageService, workers int, log *slog.Logger) *TextureStore {
	locators := make([]string, c.Len())
	for i, s := range c.Slides {
		locators[i] = s.Image
	}
	return service.NewTextures(ctx, ivs, locators, workers, ebiten.NewImageFromImage, (*ebiten.Image).Deallocate, log)
}
