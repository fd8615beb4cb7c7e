package audio

import (
	"fmt"
	"path/filepath"
)

// RecordingFilename is the fixed name of the recording in app storage.
const RecordingFilename = "recording.m4a"

type Format string

const FormatAACM4A Format = "aac-m4a"

// Quality is the encoder quality hint.
type Quality int

const (
	QualityMin Quality = iota
	QualityLow
	QualityMedium
	QualityHigh
	QualityMax
)

func (q Quality) String() string {
	switch q {
	case QualityMin:
		return "min"
	case QualityLow:
		return "low"
	case QualityMedium:
		return "medium"
	case QualityHigh:
		return "high"
	case QualityMax:
		return "max"
	default:
		return fmt.Sprintf("Quality(%d)", int(q))
	}
}

// ParseQuality is the inverse of Quality.String.
func ParseQuality(s string) (Quality, error) {
	for q := QualityMin; q <= QualityMax; q++ {
		if q.String() == s {
			return q, nil
		}
	}
	return 0, fmt.Errorf("unknown audio quality %q", s)
}

// Config is the encoding setup handed to a Recorder.
type Config struct {
	Format     Format
	SampleRate int // Hz
	Channels   int
	Quality    Quality
}

// DefaultConfig records mono AAC at 12 kHz.
var DefaultConfig = Config{
	Format:     FormatAACM4A,
	SampleRate: 12000,
	Channels:   1,
	Quality:    QualityHigh,
}

func (c Config) Validate() error {
	if c.Format != FormatAACM4A {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, c.Format)
	}
	if c.SampleRate <= 0 {
		return fmt.Errorf("invalid sample rate %d", c.SampleRate)
	}
	if c.Channels < 1 || c.Channels > 2 {
		return fmt.Errorf("invalid channel count %d", c.Channels)
	}
	if c.Quality < QualityMin || c.Quality > QualityMax {
		return fmt.Errorf("invalid quality %v", c.Quality)
	}
	return nil
}

// RecordingPath returns where the recording lives inside dir.
func RecordingPath(dir string) string {
	return filepath.Join(dir, RecordingFilename)
}
