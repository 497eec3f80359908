package mirror

import "errors"

var (
	ErrConfigVersionNotFound = errors.New("config version not initialized")
	ErrSystemStateNotFound   = errors.New("system state not initialized")
)
