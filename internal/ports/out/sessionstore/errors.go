package sessionstore

import "errors"

// ErrNoSession indicates no complete session is stored.
var ErrNoSession = errors.New("no stored session")
