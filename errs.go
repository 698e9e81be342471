package ydiff

import "errors"

// ErrUsage marks a misuse of the session API, such as stepping
// before init or stepping an unknown key.  It is distinct from parse
// errors so callers can tell contract violations from bad input.
var ErrUsage = errors.New("usage error")
