package game

import (
	"context"
	"fmt"
	"time"

	"classic-snake/game/types"

	"github.com/charmbracelet/log"
)

// Backend is the display and input collaborator driven by Run.
type Backend interface {
	types.Surface
	types.Keyboard

	// PollQuit drains pending events and reports whether any of them asked to quit.
	PollQuit() bool
	// Present shows the frame drawn since the last Clear.
	Present() error
	Close() error
}

// Pacer blocks until the next frame is due.
type Pacer interface {
	Wait()
}

// TickerPacer paces frames with a time.Ticker.
type TickerPacer struct {
	ticker *time.Ticker
}

func NewTickerPacer(interval time.Duration) *TickerPacer {
	return &TickerPacer{ticker: time.NewTicker(interval)}
}

func (p *TickerPacer) Wait() {
	<-p.ticker.C
}

func (p *TickerPacer) Stop() {
	p.ticker.Stop()
}

// Run drives g one frame per iteration until the backend reports a quit or
// ctx is cancelled. The frame in which the quit is seen still completes.
// The backend is closed exactly once when Run returns.
func Run(ctx context.Context, g *Game, b Backend, pacer Pacer) (err error) {
	defer func() {
		if cerr := b.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close backend: %w", cerr)
		}
	}()

	log.Info("session started", "session", g.UUID,
		"board", fmt.Sprintf("%dx%d", g.Config.Width, g.Config.Height),
		"cell", g.Config.CellSize, "fps", g.Config.FPS)

	running := true
	for running {
		if b.PollQuit() {
			running = false
		}
		select {
		case <-ctx.Done():
			running = false
		default:
		}

		g.Update(b)
		g.Draw(b)
		if err := b.Present(); err != nil {
			return fmt.Errorf("present frame: %w", err)
		}

		pacer.Wait()
	}

	stats := g.stateManager.Stats()
	log.Info("session ended", "session", g.UUID,
		"elapsed", g.ElapsedTime().Round(time.Millisecond),
		"frames", stats.Frames, "resets", stats.Resets, "best", stats.HighScore,
		"avg", fmt.Sprintf("%.2f", g.stateManager.AverageScore()),
		"median", g.stateManager.MedianScore())
	return nil
}
