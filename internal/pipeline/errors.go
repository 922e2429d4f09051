package pipeline

import "errors"

// Sentinel errors for pipeline runs. Returned errors wrap one of these with
// the failing path or entry name; match them with errors.Is.
var (
	ErrInputNotFound = errors.New("input directory not found")
	ErrNoImagesFound = errors.New("no images found")
	ErrDecode        = errors.New("failed to decode image")
	ErrEncode        = errors.New("failed to encode page")
	ErrSinkWrite     = errors.New("failed to write archive entry")
	ErrSinkFinish    = errors.New("failed to finish archive")
)
