package game

import "errors"

// ErrInvariant signals a broken simulation invariant; it is a programming error
var ErrInvariant = errors.New("simulation invariant violated")
