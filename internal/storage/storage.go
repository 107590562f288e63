// Package storage provides the mount side of the listing sequence: it
// knows when the removable device's node is present and attaches its
// filesystem to the configured mount point.
package storage

import "errors"

// ErrDeviceNotReady is returned by Mount while the block device has not
// appeared yet. It is the one retriable error in the mount flow; callers
// are expected to keep polling.
var ErrDeviceNotReady = errors.New("storage: device not ready")

// ErrUnsupported is returned on platforms without a mount syscall surface.
var ErrUnsupported = errors.New("storage: not supported on this platform")

// Service mounts removable storage and selects it as the current drive.
// Mount may be called repeatedly while the device is absent and must be
// idempotent once the filesystem is attached.
type Service interface {
	Mount(devicePath, mountPoint, fsType string) error
	SetCurrentDrive(mountPoint string) error
}
