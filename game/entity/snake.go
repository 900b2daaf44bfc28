package entity

import (
	"classic-snake/config"
	"classic-snake/game/types"
)

type Snake struct {
	segments     []types.Point // head first
	direction    types.Direction
	pending      types.Direction
	growthTarget int
	color        types.Color
	grid         types.Grid
}

// NewSnake returns a one-segment snake in the middle of the board heading right.
func NewSnake(cfg config.Config) *Snake {
	s := &Snake{
		color: cfg.SnakeColor,
		grid:  cfg.Grid(),
	}
	s.Reset()
	return s
}

// Reset puts the snake back to its starting state. A buffered direction is kept.
func (s *Snake) Reset() {
	s.growthTarget = 1
	s.segments = []types.Point{s.grid.Center()}
	s.direction = types.Right
}

// SetPending buffers the direction to apply on the next UpdateDirection.
func (s *Snake) SetPending(dir types.Direction) {
	s.pending = dir
}

// UpdateDirection commits the buffered direction, if any.
func (s *Snake) UpdateDirection() {
	if s.pending == types.None {
		return
	}
	s.direction = s.pending
	s.pending = types.None
}

// Move advances the head one cell, wrapping at the board edges, and drops
// the tail while the body is longer than the growth target.
func (s *Snake) Move() {
	newHead := s.Head().Add(s.direction.Offset(s.grid.CellSize)).Wrap(s.grid.Width, s.grid.Height)

	s.segments = append(s.segments, types.Point{})
	copy(s.segments[1:], s.segments)
	s.segments[0] = newHead

	if len(s.segments) > s.growthTarget {
		s.segments = s.segments[:len(s.segments)-1]
	}
}

// Grow raises the growth target by one. The body catches up on the next Move.
func (s *Snake) Grow() {
	s.growthTarget++
}

// HitsSelf reports whether the head shares a cell with any other segment.
func (s *Snake) HitsSelf() bool {
	head := s.Head()
	for _, part := range s.segments[1:] {
		if part == head {
			return true
		}
	}
	return false
}

func (s *Snake) Head() types.Point {
	return s.segments[0]
}

// Position is the head cell.
func (s *Snake) Position() types.Point {
	return s.Head()
}

func (s *Snake) Color() types.Color {
	return s.color
}

func (s *Snake) Direction() types.Direction {
	return s.direction
}

func (s *Snake) Pending() types.Direction {
	return s.pending
}

func (s *Snake) GrowthTarget() int {
	return s.growthTarget
}

func (s *Snake) Len() int {
	return len(s.segments)
}

// Segments returns a copy of the body, head first.
func (s *Snake) Segments() []types.Point {
	body := make([]types.Point, len(s.segments))
	copy(body, s.segments)
	return body
}

// Draw paints every segment in the body color.
func (s *Snake) Draw(surface types.Surface) {
	for _, p := range s.segments {
		surface.FillCell(p, s.grid.CellSize, s.color)
	}
}
