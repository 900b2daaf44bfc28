package ui

import (
	"fmt"
	"image"

	"classic-snake/config"
	"classic-snake/game/types"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
)

// Canvas is an offscreen backend: frames are drawn into an image, keys come
// from a script, and it asks to quit once its frame budget is spent.
type Canvas struct {
	dc     *gg.Context
	script map[int][]types.Key
	frames int
	frame  int
}

// NewCanvas returns a canvas that runs for frames frames; 0 means no limit.
func NewCanvas(cfg config.Config, frames int) *Canvas {
	return &Canvas{
		dc:     gg.NewContext(cfg.Width, cfg.Height),
		script: make(map[int][]types.Key),
		frames: frames,
	}
}

// Hold scripts keys to be held during the given frame (0-based).
func (c *Canvas) Hold(frame int, keys ...types.Key) {
	c.script[frame] = append(c.script[frame], keys...)
}

func (c *Canvas) Clear(col types.Color) {
	c.dc.SetRGB255(int(col.R), int(col.G), int(col.B))
	c.dc.Clear()
}

func (c *Canvas) FillCell(p types.Point, size int, col types.Color) {
	c.dc.DrawRectangle(float64(p.X), float64(p.Y), float64(size), float64(size))
	c.dc.SetRGB255(int(col.R), int(col.G), int(col.B))
	c.dc.Fill()
}

func (c *Canvas) Pressed(k types.Key) bool {
	for _, held := range c.script[c.frame] {
		if held == k {
			return true
		}
	}
	return false
}

// PollQuit asks to stop during the last budgeted frame so that frame still runs.
func (c *Canvas) PollQuit() bool {
	return c.frames > 0 && c.frame+1 >= c.frames
}

func (c *Canvas) Present() error {
	c.frame++
	return nil
}

func (c *Canvas) Close() error {
	return nil
}

// Frames returns the number of frames presented so far.
func (c *Canvas) Frames() int {
	return c.frame
}

// Image returns the current frame.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// Snapshot writes the current frame to path, upscaled by scale with
// nearest-neighbour sampling so cells stay crisp. The format follows the extension.
func (c *Canvas) Snapshot(path string, scale int) error {
	if scale < 1 {
		return fmt.Errorf("snapshot scale must be at least 1, got %d", scale)
	}

	var img image.Image = c.dc.Image()
	if scale > 1 {
		b := img.Bounds()
		img = imaging.Resize(img, b.Dx()*scale, b.Dy()*scale, imaging.NearestNeighbor)
	}
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("save snapshot %s: %w", path, err)
	}
	return nil
}
