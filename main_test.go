package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"classic-snake/config"
)

func TestRunHeadlessWritesSnapshot(t *testing.T) {
	out := filepath.Join(t.TempDir(), "frame.png")
	opts := options{backend: "headless", seed: 9, frames: 20, snapshot: out, scale: 1}

	if err := run(context.Background(), opts); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	info, err := os.Stat(out)
	if err != nil {
		t.Fatalf("Expected snapshot to be written: %v", err)
	}
	if info.Size() == 0 {
		t.Error("Expected a non-empty snapshot")
	}
}

func TestRunRejectsBadOptions(t *testing.T) {
	tests := []struct {
		name string
		opts options
	}{
		{"unknown backend", options{backend: "vga"}},
		{"headless without frames", options{backend: "headless"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := run(context.Background(), tt.opts); err == nil {
				t.Error("Expected an error")
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	cfg, err := loadConfig(options{fps: 30})
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}
	if cfg.FPS != 30 || cfg.Width != config.Default().Width {
		t.Errorf("Expected defaults with 30 fps, got %+v", cfg)
	}

	path := filepath.Join(t.TempDir(), "snake.json")
	if err := os.WriteFile(path, []byte(`{"cell_size": 7}`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadConfig(options{configPath: path}); !errors.Is(err, config.ErrInvalid) {
		t.Errorf("Expected ErrInvalid for a 7px cell on a 640px board, got %v", err)
	}
}
