package copier

import "errors"

// ErrRawUnsupported is returned by OpenRaw on platforms without unix descriptors.
var ErrRawUnsupported = errors.New("raw descriptor I/O is not supported on this platform")
