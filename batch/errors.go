package batch

import "errors"

// ErrShapeMismatch is returned by Eval when the ten input Fields do not
// broadcast to a common Shape, or when a caller-supplied output buffer's
// length does not match the broadcast Shape's element count.
var ErrShapeMismatch = errors.New("batch: fields do not broadcast to a common shape")
