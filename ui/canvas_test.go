package ui

import (
	"context"
	"image"
	"path/filepath"
	"testing"

	"classic-snake/config"
	"classic-snake/game"
	"classic-snake/game/types"

	"github.com/disintegration/imaging"
	"golang.org/x/exp/rand"
)

func pixel(img image.Image, x, y int) types.Color {
	r, g, b, _ := img.At(x, y).RGBA()
	return types.Color{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}

func TestCanvasDrawsCells(t *testing.T) {
	cfg := config.Default()
	c := NewCanvas(cfg, 1)

	c.Clear(cfg.Background)
	c.FillCell(types.Point{X: 340, Y: 240}, cfg.CellSize, cfg.AppleColor)

	img := c.Image()
	if got := pixel(img, 350, 250); got != cfg.AppleColor {
		t.Errorf("Expected apple color inside the cell, got %v", got)
	}
	if got := pixel(img, 330, 250); got != cfg.Background {
		t.Errorf("Expected background left of the cell, got %v", got)
	}
	if got := pixel(img, 5, 5); got != cfg.Background {
		t.Errorf("Expected background in the corner, got %v", got)
	}
}

func TestCanvasScript(t *testing.T) {
	c := NewCanvas(config.Default(), 3)
	c.Hold(1, types.KeyUp, types.KeyLeft)

	if c.Pressed(types.KeyUp) {
		t.Error("Expected no keys in frame 0")
	}
	if c.PollQuit() {
		t.Error("Expected frame 0 to continue")
	}
	c.Present()

	if !c.Pressed(types.KeyUp) || !c.Pressed(types.KeyLeft) || c.Pressed(types.KeyDown) {
		t.Error("Expected up and left held in frame 1")
	}
	c.Present()

	if !c.PollQuit() {
		t.Error("Expected the last budgeted frame to ask to quit")
	}
}

func TestCanvasRunsGame(t *testing.T) {
	cfg := config.Default()
	g := game.NewGame(cfg, rand.New(rand.NewSource(5)))
	g.GetApple().Place(types.Point{X: 0, Y: 0})

	c := NewCanvas(cfg, 4)
	c.Hold(2, types.KeyDown)

	if err := game.Run(context.Background(), g, c, &noWait{}); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if c.Frames() != 4 {
		t.Fatalf("Expected 4 frames, got %d", c.Frames())
	}

	// right, right, down, down from (320,240)
	head := g.GetSnake().Head()
	if head != (types.Point{X: 360, Y: 280}) {
		t.Fatalf("Expected head at (360,280), got %v", head)
	}
	if got := pixel(c.Image(), head.X+10, head.Y+10); got != cfg.SnakeColor {
		t.Errorf("Expected snake color at the head, got %v", got)
	}
	if got := pixel(c.Image(), 10, 10); got != cfg.AppleColor {
		t.Errorf("Expected apple color at (0,0), got %v", got)
	}
}

func TestCanvasSnapshot(t *testing.T) {
	cfg := config.Default()
	c := NewCanvas(cfg, 1)
	c.Clear(cfg.Background)
	c.FillCell(types.Point{X: 0, Y: 0}, cfg.CellSize, cfg.SnakeColor)

	path := filepath.Join(t.TempDir(), "frame.png")
	if err := c.Snapshot(path, 2); err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}

	img, err := imaging.Open(path)
	if err != nil {
		t.Fatalf("Failed to reopen snapshot: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 1280 || b.Dy() != 960 {
		t.Errorf("Expected a 1280x960 image, got %dx%d", b.Dx(), b.Dy())
	}
	if got := pixel(img, 39, 39); got != cfg.SnakeColor {
		t.Errorf("Expected the upscaled cell to cover 40x40 pixels, got %v at (39,39)", got)
	}
	if got := pixel(img, 41, 41); got != cfg.Background {
		t.Errorf("Expected background past the upscaled cell, got %v", got)
	}

	if err := c.Snapshot(path, 0); err == nil {
		t.Error("Expected scale 0 to be rejected")
	}
}

type noWait struct{}

func (noWait) Wait() {}
