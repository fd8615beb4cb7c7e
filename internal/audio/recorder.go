package audio

import "errors"

var (
	ErrUnavailable       = errors.New("audio recorder unavailable")
	ErrUnsupportedFormat = errors.New("unsupported audio format")
	ErrNotRecording      = errors.New("not recording")
)

// Handle identifies a running recording.
type Handle interface {
	Path() string
}

// Recorder is the platform recording backend. Only one Handle is expected
// to be live at a time.
type Recorder interface {
	Start(path string, cfg Config) (Handle, error)
	Stop(h Handle) error
}
