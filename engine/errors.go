package engine

import "errors"

var (
	ErrModelNotLoaded = errors.New("no model loaded")
)
