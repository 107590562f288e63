//go:build linux

package storage

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// System is the real storage service. The filesystem is mounted
// read-only; the appliance never writes to removable media.
type System struct {
	waiter  *Waiter
	mounted bool
}

// NewSystem creates a storage service that waits for the given device
// node to appear.
func NewSystem(devicePath string) (*System, error) {
	waiter, err := WaitForDevice(devicePath)
	if err != nil {
		return nil, err
	}
	return &System{waiter: waiter}, nil
}

// Mount attaches the device's filesystem at mountPoint. Returns
// ErrDeviceNotReady while the device node is absent; any other failure
// is a real mount error.
func (s *System) Mount(devicePath, mountPoint, fsType string) error {
	if s.mounted {
		return nil
	}
	if !s.waiter.Ready() {
		return ErrDeviceNotReady
	}
	if err := os.MkdirAll(mountPoint, 0755); err != nil {
		return fmt.Errorf("create mount point %s: %w", mountPoint, err)
	}
	if err := unix.Mount(devicePath, mountPoint, fsType, unix.MS_RDONLY, ""); err != nil {
		if errors.Is(err, unix.EBUSY) {
			// Something is already mounted there, most likely us after a
			// restart; treat it as mounted.
			s.mounted = true
			return nil
		}
		return fmt.Errorf("mount %s on %s: %w", devicePath, mountPoint, err)
	}
	s.mounted = true
	return nil
}

// SetCurrentDrive makes the mount point the working directory, the
// hosted-OS equivalent of selecting the default drive.
func (s *System) SetCurrentDrive(mountPoint string) error {
	if err := os.Chdir(mountPoint); err != nil {
		return fmt.Errorf("select drive %s: %w", mountPoint, err)
	}
	return nil
}

// Close releases the device watcher.
func (s *System) Close() error {
	return s.waiter.Close()
}
