package audio

import (
	"fmt"
	"log"
)

// Controller backs the Talk tile: each Toggle flips the recording switch and
// starts or stops the recorder.
//
// A failed start leaves the switch on with nothing recording; the next Toggle
// turns it off again.
type Controller struct {
	rec    Recorder
	path   string
	cfg    Config
	on     bool
	handle Handle

	// OnChange is called after every Toggle with the new switch state.
	OnChange func(on bool)
}

func NewController(rec Recorder, path string, cfg Config) *Controller {
	return &Controller{rec: rec, path: path, cfg: cfg}
}

// Toggle flips the switch and returns the recorder error, if any.
func (c *Controller) Toggle() error {
	c.on = !c.on
	var err error
	if c.on {
		err = c.start()
	} else {
		err = c.stop()
	}
	if c.OnChange != nil {
		c.OnChange(c.on)
	}
	return err
}

// On reports the switch state shown to the user.
func (c *Controller) On() bool { return c.on }

// Recording reports whether a recording is actually running.
func (c *Controller) Recording() bool { return c.handle != nil }

func (c *Controller) Path() string { return c.path }

func (c *Controller) start() error {
	if c.handle != nil {
		if err := c.stop(); err != nil {
			log.Printf("[AUDIO] Failed to stop previous recording: %v", err)
		}
	}
	h, err := c.rec.Start(c.path, c.cfg)
	if err != nil {
		log.Printf("[AUDIO] Failed to record audio: %v", err)
		return fmt.Errorf("start recording: %w", err)
	}
	c.handle = h
	return nil
}

func (c *Controller) stop() error {
	if c.handle == nil {
		return nil
	}
	h := c.handle
	c.handle = nil
	if err := c.rec.Stop(h); err != nil {
		log.Printf("[AUDIO] Failed to stop recording: %v", err)
		return fmt.Errorf("stop recording: %w", err)
	}
	return nil
}

// Close stops any running recording, for use when the app quits.
func (c *Controller) Close() error {
	if c.on {
		c.on = false
		if c.OnChange != nil {
			c.OnChange(false)
		}
	}
	return c.stop()
}

// SetConfig changes the encoding used by the next recording.
func (c *Controller) SetConfig(cfg Config) { c.cfg = cfg }
