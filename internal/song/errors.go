package song

import "errors"

var (
	// ErrUnsupportedFormat is returned for file extensions no decoder
	// handles.
	ErrUnsupportedFormat = errors.New("song: unsupported format")

	// ErrEmptyTrack is returned when a file decodes to zero samples.
	ErrEmptyTrack = errors.New("song: no audio samples")
)
