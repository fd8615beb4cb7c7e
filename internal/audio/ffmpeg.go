package audio

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os/exec"
	"runtime"
	"strconv"
)

// FFmpegRecorder captures the default microphone by running ffmpeg.
type FFmpegRecorder struct {
	Binary      string
	InputFormat string
	InputDevice string
}

// NewFFmpegRecorder returns a recorder using the platform's default capture
// input. An empty binary means "ffmpeg" from PATH.
func NewFFmpegRecorder(binary string) *FFmpegRecorder {
	if binary == "" {
		binary = "ffmpeg"
	}
	r := &FFmpegRecorder{Binary: binary}
	switch runtime.GOOS {
	case "darwin", "ios":
		r.InputFormat, r.InputDevice = "avfoundation", ":0"
	case "windows":
		r.InputFormat, r.InputDevice = "dshow", "audio=Microphone"
	default:
		r.InputFormat, r.InputDevice = "pulse", "default"
	}
	return r
}

var bitrates = map[Quality]string{
	QualityMin:    "32k",
	QualityLow:    "48k",
	QualityMedium: "64k",
	QualityHigh:   "96k",
	QualityMax:    "128k",
}

// Args builds the ffmpeg command line for recording to path.
func (r *FFmpegRecorder) Args(path string, cfg Config) ([]string, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return []string{
		"-hide_banner", "-loglevel", "error", "-y",
		"-f", r.InputFormat, "-i", r.InputDevice,
		"-c:a", "aac",
		"-ar", strconv.Itoa(cfg.SampleRate),
		"-ac", strconv.Itoa(cfg.Channels),
		"-b:a", bitrates[cfg.Quality],
		path,
	}, nil
}

type ffmpegHandle struct {
	path  string
	cmd   *exec.Cmd
	stdin io.WriteCloser
}

func (h *ffmpegHandle) Path() string { return h.path }

func (r *FFmpegRecorder) Start(path string, cfg Config) (Handle, error) {
	args, err := r.Args(path, cfg)
	if err != nil {
		return nil, err
	}
	bin, err := exec.LookPath(r.Binary)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	cmd := exec.Command(bin, args...)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("could not open recorder input: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("could not start recorder: %w", err)
	}
	log.Printf("[AUDIO] Recording to %s (pid %d)", path, cmd.Process.Pid)
	return &ffmpegHandle{path: path, cmd: cmd, stdin: stdin}, nil
}

// Stop asks ffmpeg to finalize the file and waits for it to exit.
func (r *FFmpegRecorder) Stop(h Handle) error {
	fh, ok := h.(*ffmpegHandle)
	if !ok || fh == nil {
		return ErrNotRecording
	}
	if _, err := io.WriteString(fh.stdin, "q"); err != nil {
		log.Printf("[AUDIO] Could not signal recorder, killing it: %v", err)
		_ = fh.cmd.Process.Kill()
	}
	fh.stdin.Close()
	err := fh.cmd.Wait()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return fmt.Errorf("recorder exited with status %d", exitErr.ExitCode())
	}
	if err != nil {
		return fmt.Errorf("waiting for recorder: %w", err)
	}
	log.Printf("[AUDIO] Saved %s", fh.path)
	return nil
}
