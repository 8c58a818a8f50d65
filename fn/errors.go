package fn

import "errors"

// ErrBadFunctionCall is reported when an empty wrapper is invoked.
var ErrBadFunctionCall = errors.New("bad function call")
