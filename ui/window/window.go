package window

import (
	"classic-snake/config"
	"classic-snake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var windowKeys = map[types.Key]int32{
	types.KeyUp:    rl.KeyUp,
	types.KeyDown:  rl.KeyDown,
	types.KeyLeft:  rl.KeyLeft,
	types.KeyRight: rl.KeyRight,
}

// Window renders into a fixed-size raylib window and reads the arrow keys
// straight from raylib's key state.
type Window struct {
	drawing bool
	closed  bool
}

// NewWindow opens a window of exactly cfg.Width x cfg.Height pixels.
// Only the close button quits; Escape is left to the game.
func NewWindow(cfg config.Config) *Window {
	rl.InitWindow(int32(cfg.Width), int32(cfg.Height), cfg.Title)
	rl.SetExitKey(rl.KeyNull)
	return &Window{}
}

func toRL(c types.Color) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: 255}
}

// Clear starts a new frame.
func (w *Window) Clear(c types.Color) {
	if !w.drawing {
		rl.BeginDrawing()
		w.drawing = true
	}
	rl.ClearBackground(toRL(c))
}

func (w *Window) FillCell(p types.Point, size int, c types.Color) {
	rl.DrawRectangle(int32(p.X), int32(p.Y), int32(size), int32(size), toRL(c))
}

func (w *Window) Present() error {
	if w.drawing {
		rl.EndDrawing()
		w.drawing = false
	}
	return nil
}

func (w *Window) Pressed(k types.Key) bool {
	key, ok := windowKeys[k]
	return ok && rl.IsKeyDown(key)
}

// PollQuit reports a click on the window's close button.
func (w *Window) PollQuit() bool {
	return rl.WindowShouldClose()
}

func (w *Window) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	rl.CloseWindow()
	return nil
}
