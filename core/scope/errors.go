package scope

import "errors"

// ErrNotRegistered indicates no entry matches the requested type in the
// scope or any of its parents.
var ErrNotRegistered = errors.New("type not registered in scope")
