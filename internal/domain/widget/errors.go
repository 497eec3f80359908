package widget

import "errors"

var (
	ErrWidgetNotFound  = errors.New("widget not found")
	ErrInvalidWidget   = errors.New("invalid widget")
	ErrInvalidOrder    = errors.New("order must not be negative")
	ErrInvalidSettings = errors.New("settings must be a JSON object")
)
