package ui

import (
	"fmt"
	"os"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// inGameLoop is set while the tests run inside ebiten's game loop, where
// pixels can be read back.
var inGameLoop bool

type testGame struct {
	m    *testing.M
	code int
	ran  bool
}

func (g *testGame) Update() error {
	g.ran = true
	inGameLoop = true
	g.code = g.m.Run()
	return ebiten.Termination
}

func (g *testGame) Draw(*ebiten.Image) {}

func (g *testGame) Layout(int, int) (int, int) { return 16, 16 }

func TestMain(m *testing.M) {
	ebiten.SetWindowSize(16, 16)
	ebiten.SetInitFocused(false)
	g := &testGame{m: m}
	if err := ebiten.RunGame(g); err != nil && !g.ran {
		fmt.Fprintf(os.Stderr, "running without a game loop: %v\n", err)
		os.Exit(m.Run())
	}
	os.Exit(g.code)
}
