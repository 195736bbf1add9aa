package model

import "errors"

var (
	// ErrEmptyDataset is returned when a table is built without any rows.
	ErrEmptyDataset = errors.New("dataset must contain at least one record")

	// ErrNoThemes is returned when navigation is built without any palettes.
	ErrNoThemes = errors.New("at least one theme is required")
)
