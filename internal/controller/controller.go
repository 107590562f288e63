// Package controller implements the tick-driven machine at the heart of
// the appliance: wait for removable storage, mount it, print the
// top-level directory listing exactly once, then idle. All sequencing,
// retry policy, and failure containment lives here; the storage and
// dirent services only carry out single steps.
package controller

import (
	"mountls/internal/dirent"
	"mountls/internal/storage"
)

const (
	// LongNameCap is the capacity of the reusable long-filename buffer
	// handed to the enumeration service on every read.
	LongNameCap = 100

	// MountLogInterval throttles the "still waiting" diagnostic to one
	// line per this many failed mount attempts. It bounds log volume
	// only; the wait itself retries without limit.
	MountLogInterval = 100000
)

// Sink receives the controller's output: Infof carries the banner and
// listing, Debugf the state-transition and error trace. Writes are
// fire-and-forget.
type Sink interface {
	Infof(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

// Config fixes the paths the sequence operates on. On the appliance
// these are burned into the image; nothing is negotiated at runtime.
type Config struct {
	DevicePath    string
	MountPath     string
	Filesystem    string
	Version       string
	ListDirectory bool
}

// Controller is the machine's context. It is held by the caller, has no
// global instance, and must only be touched by the single goroutine
// driving Tick.
type Controller struct {
	cfg     Config
	storage storage.Service
	dir     dirent.Service
	log     Sink

	state        State
	mountRetries uint64
	handle       dirent.Handle
	nameBuf      [LongNameCap]byte
}

func New(cfg Config, st storage.Service, dir dirent.Service, sink Sink) *Controller {
	return &Controller{
		cfg:     cfg,
		storage: st,
		dir:     dir,
		log:     sink,
	}
}

// Initialize resets the machine and emits the startup banner. Safe to
// call once before any Tick; it cannot fail.
func (c *Controller) Initialize() {
	c.state = Idle
	c.mountRetries = 0
	c.handle = nil
	c.log.Infof("####################")
	c.log.Infof("# mountls v%s", c.cfg.Version)
	c.log.Infof("####################")
}

// Tick advances the machine by one bounded, non-blocking step. The
// caller invokes it repeatedly; once a terminal state is reached,
// further ticks do nothing.
func (c *Controller) Tick() {
	switch c.state {
	case Idle:
		c.setState(AwaitFilesystem)

	case AwaitFilesystem:
		c.mountRetries++
		if err := c.storage.Mount(c.cfg.DevicePath, c.cfg.MountPath, c.cfg.Filesystem); err != nil {
			// Not ready yet. Retry forever; the interval only keeps the
			// trace readable while polling at high frequency.
			if c.mountRetries%MountLogInterval == 0 {
				c.log.Debugf("still waiting for %s (%d attempts): %v",
					c.cfg.DevicePath, c.mountRetries, err)
			}
			return
		}
		if err := c.storage.SetCurrentDrive(c.cfg.MountPath); err != nil {
			c.log.Debugf("failed to select drive %s: %v", c.cfg.MountPath, err)
			c.setState(Error)
			return
		}
		if !c.cfg.ListDirectory {
			c.setState(Complete)
			return
		}
		c.setState(OpeningDirectory)

	case OpeningDirectory:
		h, err := c.dir.OpenDirectory(c.cfg.MountPath)
		if err != nil {
			c.log.Debugf("failed to open %s: %v", c.cfg.MountPath, err)
			c.setState(Error)
			return
		}
		c.handle = h
		c.setState(ReadingDirectory)
		c.log.Infof("Size Name")

	case ReadingDirectory:
		// One entry per tick.
		e, err := c.dir.ReadNextEntry(c.handle, c.nameBuf[:])
		if err != nil {
			c.log.Debugf("failed to read directory entry: %v", err)
			c.setState(Error)
			return
		}
		if e.End() {
			c.log.Infof("End of listing")
			c.setState(ClosingDirectory)
			return
		}
		c.log.Infof("%d %s", e.Size, e.Name())

	case ClosingDirectory:
		if err := c.dir.CloseDirectory(c.handle); err != nil {
			// Best-effort cleanup; the run still completes.
			c.log.Debugf("failed to close directory: %v", err)
		}
		c.handle = nil
		c.setState(Complete)

	case Complete, Error:
		// Terminal. Idle forever.
	}
}

// setState is a guarded assignment: it traces and records only actual
// changes, so self-loops stay silent.
func (c *Controller) setState(next State) {
	if c.state == next {
		return
	}
	c.log.Debugf("%s => %s", c.state, next)
	c.state = next
}

// State returns the machine's current state.
func (c *Controller) State() State {
	return c.state
}

// Done reports whether the machine has reached a terminal state.
func (c *Controller) Done() bool {
	return c.state.Terminal()
}

// MountRetries returns how many mount attempts have been made.
func (c *Controller) MountRetries() uint64 {
	return c.mountRetries
}
