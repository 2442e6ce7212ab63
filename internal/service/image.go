// Package service provides image loading and metadata extraction services.
package service

import (
	"context"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // Register GIF decoder
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/rwcarlsen/goexif/exif"
)

// ImageInfo holds metadata about an image.
type ImageInfo struct {
	Width  int
	Height int
	// Title is the EXIF image description, or the file name without its
	// extension when the description is missing.
	Title string
}

// ImageService loads slide images and normalizes them into textures of one
// size, since a shader draw samples all of its sources at the same size.
type ImageService struct {
	TextureWidth  int
	TextureHeight int
	Client        *http.Client
}

// NewImageService creates a new ImageService producing w×h textures.
func NewImageService(w, h int) *ImageService {
	return &ImageService{
		TextureWidth:  w,
		TextureHeight: h,
		Client:        &http.Client{Timeout: 30 * time.Second},
	}
}

// GetImageInfo reads an image file and extracts metadata without decoding the full image,
// which is significantly more performant.
func (is *ImageService) GetImageInfo(path string) (*ImageInfo, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	// Efficiently get image dimensions without decoding the entire image.
	config, _, err := image.DecodeConfig(file)
	if err != nil {
		return nil, fmt.Errorf("decoding image config: %w", err)
	}

	// Reset file pointer to read EXIF data
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seeking file for exif: %w", err)
	}

	exifData, _ := exif.Decode(file) // Ignore error, EXIF might not be present

	base := filepath.Base(path)
	info := &ImageInfo{
		Width:  config.Width,
		Height: config.Height,
		Title:  strings.TrimSuffix(base, filepath.Ext(base)),
	}

	if exifData != nil {
		if desc, err := exifData.Get(exif.ImageDescription); err == nil {
			if s, err := desc.StringVal(); err == nil && strings.TrimSpace(s) != "" {
				info.Title = strings.TrimSpace(s)
			}
		}
	}

	return info, nil
}

// LoadTexture fetches the image at locator (a file path, file:// or
// http(s):// URL), applies its EXIF orientation and crops it to fill the
// texture size.
func (is *ImageService) LoadTexture(ctx context.Context, locator string) (image.Image, error) {
	rc, err := is.open(ctx, locator)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	img, err := imaging.Decode(rc, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", locator, err)
	}
	return imaging.Fill(img, is.TextureWidth, is.TextureHeight, imaging.Center, imaging.Lanczos), nil
}

// Placeholder returns the texture shown for slides whose image failed to load.
func (is *ImageService) Placeholder() image.Image {
	return imaging.New(is.TextureWidth, is.TextureHeight, color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff})
}

func (is *ImageService) open(ctx context.Context, locator string) (io.ReadCloser, error) {
	switch {
	case strings.HasPrefix(locator, "http://"), strings.HasPrefix(locator, "https://"):
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, locator, nil)
		if err != nil {
			return nil, fmt.Errorf("building request: %w", err)
		}
		resp, err := is.Client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("fetching %s: %w", locator, err)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("fetching %s: status %s", locator, resp.Status)
		}
		return resp.Body, nil
	default:
		f, err := os.Open(strings.TrimPrefix(locator, "file://"))
		if err != nil {
			return nil, fmt.Errorf("opening file: %w", err)
		}
		return f, nil
	}
}
