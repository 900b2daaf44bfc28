package ui

import (
	"fmt"
	"sync"

	"classic-snake/config"
	"classic-snake/game/types"

	"github.com/gdamore/tcell/v2"
)

// Each board cell is two terminal columns wide so cells look roughly square.
const columnsPerCell = 2

// Terminal renders the board with tcell, one board cell per two character
// cells, and quits on Escape, q or Ctrl+C.
//
// Terminals only report key presses, so a key counts as held for the frame
// that follows its press event.
type Terminal struct {
	screen tcell.Screen
	grid   types.Grid

	events chan tcell.Event
	done   chan struct{}

	held map[types.Key]bool
	quit bool

	closeOnce sync.Once
}

// NewTerminal takes over the controlling terminal.
func NewTerminal(cfg config.Config) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.HideCursor()
	return newTerminal(cfg, screen), nil
}

func newTerminal(cfg config.Config, screen tcell.Screen) *Terminal {
	t := &Terminal{
		screen: screen,
		grid:   cfg.Grid(),
		events: make(chan tcell.Event, 64),
		done:   make(chan struct{}),
		held:   make(map[types.Key]bool),
	}
	go t.pollEvents()
	return t
}

// pollEvents forwards screen events until the screen is finalized.
func (t *Terminal) pollEvents() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case t.events <- ev:
		case <-t.done:
			return
		}
	}
}

// PollQuit forgets last frame's keys, then applies every event that arrived since.
func (t *Terminal) PollQuit() bool {
	clear(t.held)
	for {
		select {
		case ev := <-t.events:
			t.handleEvent(ev)
		default:
			return t.quit
		}
	}
}

func (t *Terminal) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyUp:
			t.held[types.KeyUp] = true
		case tcell.KeyDown:
			t.held[types.KeyDown] = true
		case tcell.KeyLeft:
			t.held[types.KeyLeft] = true
		case tcell.KeyRight:
			t.held[types.KeyRight] = true
		case tcell.KeyEscape, tcell.KeyCtrlC:
			t.quit = true
		case tcell.KeyRune:
			if ev.Rune() == 'q' {
				t.quit = true
			}
		}
	case *tcell.EventResize:
		t.screen.Sync()
	}
}

func (t *Terminal) Pressed(k types.Key) bool {
	return t.held[k]
}

// Clear paints the whole board area in c.
func (t *Terminal) Clear(c types.Color) {
	t.screen.Clear()
	style := cellStyle(c)
	for y := 0; y < t.grid.Rows(); y++ {
		for x := 0; x < t.grid.Columns()*columnsPerCell; x++ {
			t.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// FillCell paints the cell at p. Points off the board are dropped so they
// never spill into the terminal beside it.
func (t *Terminal) FillCell(p types.Point, size int, c types.Color) {
	if !t.grid.Contains(p) {
		return
	}
	style := cellStyle(c)
	col, row := p.X/size*columnsPerCell, p.Y/size
	for i := 0; i < columnsPerCell; i++ {
		t.screen.SetContent(col+i, row, ' ', nil, style)
	}
}

func (t *Terminal) Present() error {
	t.screen.Show()
	return nil
}

// Close restores the terminal. Safe to call more than once.
func (t *Terminal) Close() error {
	t.closeOnce.Do(func() {
		close(t.done)
		t.screen.Fini()
	})
	return nil
}

func cellStyle(c types.Color) tcell.Style {
	return tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}
