package audio

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHandle string

func (h fakeHandle) Path() string { return string(h) }

type fakeRecorder struct {
	startErr error
	started  []Config
	stopped  []Handle
}

func (f *fakeRecorder) Start(path string, cfg Config) (Handle, error) {
	if f.startErr != nil {
		return nil, f.startErr
	}
	f.started = append(f.started, cfg)
	return fakeHandle(path), nil
}

func (f *fakeRecorder) Stop(h Handle) error {
	f.stopped = append(f.stopped, h)
	return nil
}

func TestController_ToggleStartsAndStops(t *testing.T) {
	rec := &fakeRecorder{}
	c := NewController(rec, "/tmp/x/recording.m4a", DefaultConfig)
	var states []bool
	c.OnChange = func(on bool) { states = append(states, on) }

	require.NoError(t, c.Toggle())
	assert.True(t, c.On())
	assert.True(t, c.Recording())
	assert.Equal(t, []Config{DefaultConfig}, rec.started)

	require.NoError(t, c.Toggle())
	assert.False(t, c.On())
	assert.False(t, c.Recording())
	assert.Equal(t, []Handle{fakeHandle("/tmp/x/recording.m4a")}, rec.stopped)
	assert.Equal(t, []bool{true, false}, states)
}

func TestController_StartFailureLeavesSwitchOn(t *testing.T) {
	denied := errors.New("permission denied")
	rec := &fakeRecorder{startErr: denied}
	c := NewController(rec, "recording.m4a", DefaultConfig)

	err := c.Toggle()
	assert.ErrorIs(t, err, denied)
	assert.True(t, c.On())
	assert.False(t, c.Recording())

	require.NoError(t, c.Toggle())
	assert.False(t, c.On())
	assert.Empty(t, rec.stopped)
}

func TestController_Close(t *testing.T) {
	rec := &fakeRecorder{}
	c := NewController(rec, "recording.m4a", DefaultConfig)
	var states []bool
	c.OnChange = func(on bool) { states = append(states, on) }
	require.NoError(t, c.Toggle())
	require.NoError(t, c.Close())
	assert.False(t, c.On())
	assert.Len(t, rec.stopped, 1)
	assert.Equal(t, []bool{true, false}, states)

	require.NoError(t, c.Close())
	assert.Len(t, rec.stopped, 1)
	assert.Equal(t, []bool{true, false}, states)
}

func TestConfig_Validate(t *testing.T) {
	require.NoError(t, DefaultConfig.Validate())

	bad := DefaultConfig
	bad.Format = "wav"
	assert.ErrorIs(t, bad.Validate(), ErrUnsupportedFormat)

	bad = DefaultConfig
	bad.Channels = 0
	assert.Error(t, bad.Validate())

	bad = DefaultConfig
	bad.SampleRate = -1
	assert.Error(t, bad.Validate())

	bad = DefaultConfig
	bad.Quality = QualityMax + 1
	assert.Error(t, bad.Validate())
}

func TestQualityRoundTrip(t *testing.T) {
	for q := QualityMin; q <= QualityMax; q++ {
		got, err := ParseQuality(q.String())
		require.NoError(t, err)
		assert.Equal(t, q, got)
	}
	_, err := ParseQuality("ultra")
	assert.Error(t, err)
}

func TestRecordingPath(t *testing.T) {
	assert.Equal(t, filepath.Join("data", "recording.m4a"), RecordingPath("data"))
}

func TestFFmpegRecorder_Args(t *testing.T) {
	r := &FFmpegRecorder{Binary: "ffmpeg", InputFormat: "pulse", InputDevice: "default"}
	args, err := r.Args("out.m4a", DefaultConfig)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"-hide_banner", "-loglevel", "error", "-y",
		"-f", "pulse", "-i", "default",
		"-c:a", "aac",
		"-ar", "12000",
		"-ac", "1",
		"-b:a", "96k",
		"out.m4a",
	}, args)

	cfg := DefaultConfig
	cfg.Format = "flac"
	_, err = r.Args("out.m4a", cfg)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestFFmpegRecorder_MissingBinary(t *testing.T) {
	r := NewFFmpegRecorder(filepath.Join(t.TempDir(), "no-such-ffmpeg"))
	_, err := r.Start(filepath.Join(t.TempDir(), RecordingFilename), DefaultConfig)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestFFmpegRecorder_StopWithoutHandle(t *testing.T) {
	r := NewFFmpegRecorder("")
	assert.ErrorIs(t, r.Stop(nil), ErrNotRecording)
	assert.ErrorIs(t, r.Stop(fakeHandle("x")), ErrNotRecording)
}
