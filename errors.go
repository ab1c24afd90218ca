package compress

import "errors"

// Registry errors.
// Use errors.Is() to check for these as they may be wrapped with context.
var (
	// ErrInvalidEncodingName indicates a message encoding name that cannot
	// be registered: empty, or containing a comma (the separator used when
	// joining advertised encodings into a header value).
	ErrInvalidEncodingName = errors.New("invalid message encoding name")
)
