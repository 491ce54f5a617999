package config

import "errors"

// ErrNilConfig indicates Load was called with a nil destination.
var ErrNilConfig = errors.New("config destination must not be nil")
