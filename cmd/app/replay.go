package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/x/ansi"
	"github.com/darksworm/colortable/pkg/app"
	"github.com/darksworm/colortable/pkg/tui/keys"
	"github.com/darksworm/colortable/pkg/tui/render"
	"github.com/tidwall/gjson"
)

// runReplay drives the session from a key script instead of a terminal. It
// writes the last frame drawn, then the session state as indented JSON.
// Running out of keys before a quit is not an error.
func runReplay(ctx context.Context, w io.Writer, s *app.Session, km keys.KeyMap, script string, vp app.Viewport, color bool) error {
	r := render.New(km.HelpLine())
	err := app.Run(ctx, s, vp, keys.ParseScript(km, script), r)
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	frame := r.String()
	if !color {
		frame = ansi.Strip(frame)
	}

	snapshot := s.Snapshot()
	if !gjson.Valid(snapshot) {
		return fmt.Errorf("invalid state snapshot: %s", snapshot)
	}

	if _, err := fmt.Fprintf(w, "%s\n\n%s\n", frame, gjson.Get(snapshot, "@pretty").String()); err != nil {
		return fmt.Errorf("failed to write replay output: %w", err)
	}
	return nil
}
