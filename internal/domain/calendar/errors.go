package calendar

import "errors"

var (
	ErrFeedNotFound    = errors.New("calendar feed not found")
	ErrInvalidFeedURL  = errors.New("url must be an http, https or webcal address")
	ErrInvalidFeedName = errors.New("name is required")
)
