package service

import (
	"context"
	"image"
	"log/slog"
	"sync"
)

// textureJob represents a request to load one slide texture.
type textureJob struct {
	index   int
	locator string
}

// textureResult holds a decoded image, ready to be uploaded.
type textureResult struct {
	index   int
	locator string
	img     image.Image
	err     error
}

// Textures loads slide images in the background. Decoding happens on worker
// goroutines; upload turns a decoded image into T and only runs inside
// Update, on the caller's goroutine. Until a slide's texture arrives, or if
// it fails, the placeholder is used in its place.
type Textures[T any] struct {
	images *ImageService
	upload func(image.Image) T
	free   func(T)
	log    *slog.Logger

	slots       []T
	loaded      []bool
	placeholder T
	resultQueue chan textureResult
	remaining   int

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewTextures starts loading one texture per locator with the given number
// of workers.
func NewTextures[T any](ctx context.Context, ivs *ImageService, locators []string, workers int,
	upload func(image.Image) T, free func(T), log *slog.Logger) *Textures[T] {
	ctx, cancel := context.WithCancel(ctx)
	ts := &Textures[T]{
		images:      ivs,
		upload:      upload,
		free:        free,
		log:         log,
		slots:       make([]T, len(locators)),
		loaded:      make([]bool, len(locators)),
		placeholder: upload(ivs.Placeholder()),
		resultQueue: make(chan textureResult, len(locators)),
		remaining:   len(locators),
		cancel:      cancel,
	}

	jobQueue := make(chan textureJob, len(locators))
	for i, l := range locators {
		jobQueue <- textureJob{index: i, locator: l}
	}
	close(jobQueue)

	for i := 0; i < max(workers, 1); i++ {
		ts.wg.Add(1)
		go ts.loader(ctx, jobQueue)
	}
	return ts
}

// loader is a background worker that decodes slide images.
func (ts *Textures[T]) loader(ctx context.Context, jobs <-chan textureJob) {
	defer ts.wg.Done()
	for job := range jobs {
		if ctx.Err() != nil {
			return
		}
		img, err := ts.images.LoadTexture(ctx, job.locator)
		// resultQueue holds one slot per slide, so this never blocks.
		ts.resultQueue <- textureResult{index: job.index, locator: job.locator, img: img, err: err}
	}
}

// Update uploads every image decoded since the last call. Failed images keep
// the placeholder.
func (ts *Textures[T]) Update() {
	for {
		select {
		case result := <-ts.resultQueue:
			ts.remaining--
			if result.err != nil {
				ts.log.Warn("using fallback", "image", result.locator, "err", result.err)
				continue
			}
			ts.slots[result.index] = ts.upload(result.img)
			ts.loaded[result.index] = true
			ts.log.Debug("texture loaded", "slide", result.index, "image", result.locator)
		default:
			return
		}
	}
}

// Texture returns the texture of slide i, or the placeholder.
func (ts *Textures[T]) Texture(i int) T {
	if i < 0 || i >= len(ts.slots) || !ts.loaded[i] {
		return ts.placeholder
	}
	return ts.slots[i]
}

// Pending returns how many slides are still loading.
func (ts *Textures[T]) Pending() int {
	return ts.remaining
}

// Close stops the loaders and frees every texture.
func (ts *Textures[T]) Close() {
	ts.cancel()
	ts.wg.Wait()
	var zero T
	for i := range ts.slots {
		if ts.loaded[i] {
			ts.free(ts.slots[i])
			ts.slots[i], ts.loaded[i] = zero, false
		}
	}
	ts.free(ts.placeholder)
}
