package nest

import "errors"

// ErrInvalidConfig is returned by NewConfig when one or more options are
// out of range; wraps one joined error per offending field (errors.Is still
// matches this sentinel via errors.Join's wrapping).
var ErrInvalidConfig = errors.New("nest: invalid configuration")
