//go:build !linux

package storage

// System only mounts on Linux; elsewhere it exists so the CLI still
// compiles and reports a clear error.
type System struct{}

func NewSystem(devicePath string) (*System, error) {
	return &System{}, nil
}

func (s *System) Mount(devicePath, mountPoint, fsType string) error {
	return ErrUnsupported
}

func (s *System) SetCurrentDrive(mountPoint string) error {
	return ErrUnsupported
}

func (s *System) Close() error {
	return nil
}
