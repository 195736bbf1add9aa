package app

import (
	"context"
	"fmt"
)

// Source yields one logical command per user action. Next blocks until a
// command is available.
type Source interface {
	Next(ctx context.Context) (Command, error)
}

// Target draws a frame.
type Target interface {
	Draw(Frame) error
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context) (Command, error)

func (f SourceFunc) Next(ctx context.Context) (Command, error) { return f(ctx) }

// TargetFunc adapts a function to Target.
type TargetFunc func(Frame) error

func (f TargetFunc) Draw(fr Frame) error { return f(fr) }

// Run alternates draw, read and apply until the session exits. Quitting
// returns nil without drawing again. A draw or read failure, or a cancelled
// context, stops the loop and is returned.
func Run(ctx context.Context, s *Session, vp Viewport, src Source, dst Target) error {
	for s.State() == StateRunning {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := dst.Draw(s.Frame(vp)); err != nil {
			return fmt.Errorf("draw failed: %w", err)
		}
		cmd, err := src.Next(ctx)
		if err != nil {
			return fmt.Errorf("read input failed: %w", err)
		}
		s.Apply(cmd)
	}
	return nil
}
