package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"

	"mountls/internal/log"

	"github.com/fsnotify/fsnotify"
)

// Waiter tracks whether a single device node exists, using an fsnotify
// watch on its parent directory so polling callers don't stat the node
// on every tick. Ready is safe to call from the polling loop; the event
// goroutine only flips the flag.
type Waiter struct {
	node  string
	fsw   *fsnotify.Watcher
	ready atomic.Bool
	done  chan struct{}
}

// WaitForDevice starts watching for the given device node. The node's
// parent directory must exist (for block devices that's /dev).
func WaitForDevice(node string) (*Waiter, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	if err := fsw.Add(filepath.Dir(node)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(node), err)
	}

	w := &Waiter{
		node: node,
		fsw:  fsw,
		done: make(chan struct{}),
	}

	// The node may predate the watch.
	if _, err := os.Stat(node); err == nil {
		w.ready.Store(true)
	}

	go w.loop()
	return w, nil
}

// Ready reports whether the device node currently exists. Non-blocking.
func (w *Waiter) Ready() bool {
	return w.ready.Load()
}

// Close stops the watch. The waiter must not be used afterwards.
func (w *Waiter) Close() error {
	close(w.done)
	return w.fsw.Close()
}

func (w *Waiter) loop() {
	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if event.Name != w.node {
				continue
			}
			switch {
			case event.Op&(fsnotify.Create|fsnotify.Write) != 0:
				w.ready.Store(true)
			case event.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
				// Device yanked; go back to waiting.
				w.ready.Store(false)
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.Warnf("device watcher error: %v", err)
		case <-w.done:
			return
		}
	}
}
