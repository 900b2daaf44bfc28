package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"classic-snake/config"
	"classic-snake/game"
	"classic-snake/ui"
	"classic-snake/ui/window"

	"github.com/charmbracelet/log"
	"golang.org/x/exp/rand"
)

type options struct {
	configPath string
	backend    string
	fps        int
	seed       uint64
	frames     int
	snapshot   string
	scale      int
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "JSON config file (written with defaults if missing)")
	flag.StringVar(&opts.backend, "backend", "window", "Backend: window, terminal, headless")
	flag.IntVar(&opts.fps, "fps", 0, "Override the configured frame rate")
	flag.Uint64Var(&opts.seed, "seed", 0, "Apple placement seed (0 = time based)")
	flag.IntVar(&opts.frames, "frames", 300, "Frames to run with -backend=headless")
	flag.StringVar(&opts.snapshot, "snapshot", "", "Write the last headless frame to this image file")
	flag.IntVar(&opts.scale, "scale", 1, "Snapshot upscale factor")
	debugFlag := flag.Bool("debug", false, "Write logs to logs/snake.log")
	flag.Parse()

	logFile := setupLogging(*debugFlag)

	// Backends restore the terminal in Close, which game.Run defers, so by
	// the time a panic reaches here the screen is usable again.
	defer func() {
		if r := recover(); r != nil {
			log.Error("crashed", "panic", r, "stack", string(debug.Stack()))
			fmt.Fprintf(os.Stderr, "\nSNAKE CRASHED: %v\nStack Trace:\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, opts)
	stop()

	if err != nil {
		log.Error("exiting", "err", err)
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
	}
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		os.Exit(1)
	}
}

func loadConfig(opts options) (config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		var err error
		if cfg, err = config.Load(opts.configPath); err != nil {
			return config.Config{}, err
		}
	}
	if opts.fps > 0 {
		cfg.FPS = opts.fps
	}
	return cfg, cfg.Validate()
}

type noPacing struct{}

func (noPacing) Wait() {}

func run(ctx context.Context, opts options) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	seed := opts.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	g := game.NewGame(cfg, rand.New(rand.NewSource(seed)))
	log.Info("starting", "session", g.UUID, "backend", opts.backend, "seed", seed)

	switch opts.backend {
	case "window":
		pacer := game.NewTickerPacer(cfg.FrameInterval())
		defer pacer.Stop()
		return game.Run(ctx, g, window.NewWindow(cfg), pacer)

	case "terminal":
		term, err := ui.NewTerminal(cfg)
		if err != nil {
			return err
		}
		pacer := game.NewTickerPacer(cfg.FrameInterval())
		defer pacer.Stop()
		return game.Run(ctx, g, term, pacer)

	case "headless":
		if opts.frames <= 0 {
			return errors.New("headless backend needs -frames > 0")
		}
		canvas := ui.NewCanvas(cfg, opts.frames)
		if err := game.Run(ctx, g, canvas, noPacing{}); err != nil {
			return err
		}
		if opts.snapshot != "" {
			return canvas.Snapshot(opts.snapshot, opts.scale)
		}
		return nil

	default:
		return fmt.Errorf("unknown backend %q", opts.backend)
	}
}
