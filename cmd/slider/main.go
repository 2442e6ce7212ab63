// slider renders a full-window image slideshow on a single 3D plane. Scrolling
// drives a smoothed, distorted transition between adjacent slides, snaps onto
// the nearest slide when motion settles, and fades the slide's title in.
//
// Usage:
//
//	slider [flags] [dir]
//
// Flags:
//
//	-config string   Path to a TOML configuration file
//	-catalog string  Path to a YAML slide catalog (overrides the config)
//	-dir string      Directory to scan for images when no catalog is given
//	-verbose         Enable debug logging and the on-screen HUD
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"k8s.io/utils/clock"

	"github.com/suzubu/Infinite-Image-Slider/internal/catalog"
	"github.com/suzubu/Infinite-Image-Slider/internal/config"
	"github.com/suzubu/Infinite-Image-Slider/internal/input"
	"github.com/suzubu/Infinite-Image-Slider/internal/scan"
	"github.com/suzubu/Infinite-Image-Slider/internal/service"
	"github.com/suzubu/Infinite-Image-Slider/internal/transition"
	"github.com/suzubu/Infinite-Image-Slider/internal/ui"
)

type Game struct {
	cfg *config.Config

	machine  *transition.Machine
	mapper   input.Mapper
	frame    transition.Frame
	textures *ui.TextureStore
	renderer *ui.Renderer
	title    *ui.TitleOverlay

	hudVisible bool
	scale      float64
}

func (g *Game) Update() error {
	// 1. Poll all input at the beginning of the frame.
	in := ui.PollInput()

	// 2. Handle non-state-dependent inputs immediately.
	if in.Quit {
		return ebiten.Termination
	}
	if in.ToggleFullscreen {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	if in.ToggleHUD {
		g.hudVisible = !g.hudVisible
	}

	// 3. Feed every raw scroll sample into the state machine, then advance it
	// exactly once.
	for _, delta := range g.mapper.Deltas(in) {
		g.machine.HandleScroll(delta)
	}
	g.frame = g.machine.Step()

	// 4. Update UI components.
	g.title.Update()
	g.textures.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	f := g.frame
	g.renderer.Draw(screen, f, g.textures.Texture(f.Pair.Current), g.textures.Texture(f.Pair.Next))
	g.title.Draw(screen, g.renderer.PlaneBottom()+24*g.scale, g.scale)

	if g.hudVisible {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("Phase: %s\nPosition: %.4f\nIntensity: %.4f\nSlides: %d -> %d (%.3f)\nTitle: %s\nLoading: %d\nTPS: %.1f",
			f.Phase,
			f.Position,
			f.Intensity,
			f.Pair.Current,
			f.Pair.Next,
			f.Pair.Blend,
			g.machine.Title().State(),
			g.textures.Pending(),
			ebiten.ActualTPS()))
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	// Render at device resolution, capped, while the plane breakpoint keeps
	// using the logical window width.
	g.scale = 1
	if m := ebiten.Monitor(); m != nil {
		g.scale = min(m.DeviceScaleFactor(), g.cfg.Render.MaxScaleFactor)
	}
	screenWidth = int(float64(outsideWidth) * g.scale)
	screenHeight = int(float64(outsideHeight) * g.scale)
	g.renderer.Resize(float64(outsideWidth), screenWidth, screenHeight)
	return screenWidth, screenHeight
}

// loadCatalog reads the YAML catalog if one is configured, otherwise builds
// one from the images under the configured directory.
func loadCatalog(cfg *config.Config, ivs *service.ImageService, logger *slog.Logger) (*catalog.Catalog, error) {
	if cfg.Catalog.Path != "" {
		return catalog.LoadFile(cfg.Catalog.Path)
	}
	dir := cfg.Catalog.Dir
	if dir == "" {
		dir = "."
	}
	scanner := service.NewScannerService(&scan.FileScannerImpl{}, ivs)
	return catalog.FromDir(scanner, dir, func(msg string) { logger.Warn(msg) })
}

func main() {
	// Define command-line flags
	configPath := flag.String("config", "", "Path to a TOML configuration file")
	catalogPath := flag.String("catalog", "", "Path to a YAML slide catalog")
	imageDirFlag := flag.String("dir", "", "Directory to scan for images. Can also be provided as a positional argument.")
	verbose := flag.Bool("verbose", false, "Enable debug logging and the on-screen HUD")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading config: %v\n", err)
		os.Exit(1)
	}
	if *catalogPath != "" {
		cfg.Catalog.Path = *catalogPath
	}
	// If -dir is not used, check for a positional argument.
	switch {
	case *imageDirFlag != "":
		cfg.Catalog.Dir = *imageDirFlag
	case flag.NArg() > 0:
		cfg.Catalog.Dir = flag.Arg(0)
	}

	level, _ := cfg.Level()
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ivs := service.NewImageService(cfg.Render.TextureWidth, cfg.Render.TextureHeight)
	slides, err := loadCatalog(cfg, ivs, logger)
	if err != nil {
		logger.Error("loading catalog", "err", err)
		os.Exit(1)
	}
	logger.Info("catalog loaded", "slides", slides.Len(), "source", slides.Source)
	if slides.Len() == 1 {
		logger.Warn("catalog has a single slide; every transition shows the same image")
	}

	title, err := ui.NewTitleOverlay(slides, cfg.Title.FontSize, cfg.Title.Offset, cfg.TitleColor())
	if err != nil {
		logger.Error("creating title overlay", "err", err)
		os.Exit(1)
	}
	renderer, err := ui.NewRenderer(cfg.BackgroundColor(), cfg.Render.Breakpoint, cfg.Render.Segments)
	if err != nil {
		logger.Error("creating renderer", "err", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	game := &Game{
		cfg:     cfg,
		machine: transition.NewMachine(transition.Options{
			Slides:        slides.Len(),
			Tuning:        cfg.Tuning(),
			TitleDuration: cfg.TitleDuration(),
			Clock:         clock.RealClock{},
			Logger:        logger,
		}, title),
		mapper: input.Mapper{
			WheelScale: cfg.Input.WheelScale,
			KeyStep:    cfg.Input.KeyStep,
		},
		textures:   ui.NewTextureStore(ctx, slides, ivs, cfg.Render.Workers, logger),
		renderer:   renderer,
		title:      title,
		hudVisible: *verbose,
		scale:      1,
	}
	defer game.textures.Close()
	defer game.machine.Close()

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.Window.Fullscreen)

	if err := ebiten.RunGame(game); err != nil {
		logger.Error("game loop", "err", err)
	}
}
