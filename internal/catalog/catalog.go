// Package catalog loads the ordered list of slides shown by the slider.
package catalog

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/suzubu/Infinite-Image-Slider/internal/scan"
	"github.com/suzubu/Infinite-Image-Slider/internal/service"
)

// ErrEmpty is returned when a catalog has no slides. Index math needs at
// least one.
var ErrEmpty = errors.New("catalog has no slides")

// Slide is one entry of the catalog.
type Slide struct {
	Title string `yaml:"title"`
	URL   string `yaml:"url"`
	// Image is a file path, file:// or http(s):// locator.
	Image string `yaml:"image"`
}

// Catalog is the fixed, ordered slide list.
type Catalog struct {
	Slides []Slide `yaml:"slides"`
	// Source describes where the catalog came from, for logging.
	Source string `yaml:"-"`
}

// Len returns the number of slides.
func (c *Catalog) Len() int { return len(c.Slides) }

// At returns slide i, wrapping out of range indices.
func (c *Catalog) At(i int) Slide {
	n := len(c.Slides)
	return c.Slides[((i%n)+n)%n]
}

// Validate checks the catalog can drive the slider.
func (c *Catalog) Validate() error {
	if len(c.Slides) == 0 {
		return ErrEmpty
	}
	for i, s := range c.Slides {
		if strings.TrimSpace(s.Image) == "" {
			return fmt.Errorf("slide %d (%q): missing image", i, s.Title)
		}
	}
	return nil
}

// LoadFile reads a YAML catalog. Relative image paths are resolved against
// the catalog's directory.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}
	defer f.Close()

	c, err := LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	base := filepath.Dir(path)
	for i := range c.Slides {
		c.Slides[i].Image = resolveImage(base, c.Slides[i].Image)
	}
	c.Source = path
	return c, nil
}

// LoadFromReader decodes and validates a YAML catalog.
func LoadFromReader(r io.Reader) (*Catalog, error) {
	var c Catalog
	if err := yaml.NewDecoder(r).Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmpty
		}
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// FromDir builds a catalog from the images under dir. Titles come from the
// image metadata; links point at the image file.
func FromDir(svc *service.ScannerService, dir string, logger scan.LoggerFunc) (*Catalog, error) {
	found := svc.ScanDir(dir, logger)
	c := &Catalog{Source: dir}
	for _, s := range found {
		abs, err := filepath.Abs(s.Path)
		if err != nil {
			abs = s.Path
		}
		c.Slides = append(c.Slides, Slide{
			Title: s.Title,
			URL:   "file://" + filepath.ToSlash(abs),
			Image: s.Path,
		})
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", dir, err)
	}
	return c, nil
}

func resolveImage(base, image string) string {
	if strings.Contains(image, "://") || filepath.IsAbs(image) {
		return image
	}
	return filepath.Join(base, image)
}
