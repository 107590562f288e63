// Package dirent exposes directory enumeration as a cursor: open a
// handle, pull one entry per call, close. The one-entry-per-call shape
// lets a polling caller spread a full listing across many short
// invocations.
package dirent

import "errors"

// ErrBadHandle indicates a handle that did not come from this service's
// OpenDirectory. That is a caller bug, not a filesystem condition.
var ErrBadHandle = errors.New("dirent: bad directory handle")

// Entry is one directory entry. LongName aliases the buffer passed to
// ReadNextEntry, truncated to the buffer's length; ShortName is the
// 8.3-style rendering. An entry with both names empty marks the end of
// the listing and is not an error.
type Entry struct {
	Size      int64
	ShortName string
	LongName  []byte
}

// End reports whether the entry is the end-of-listing marker.
func (e Entry) End() bool {
	return len(e.LongName) == 0 && e.ShortName == ""
}

// Name returns the long name when present, the short name otherwise.
func (e Entry) Name() string {
	if len(e.LongName) > 0 {
		return string(e.LongName)
	}
	return e.ShortName
}

// Handle is an opaque cursor over a directory's entries, owned by
// exactly one reader from open to close.
type Handle interface {
	dirHandle()
}

// Service enumerates a directory one entry at a time.
type Service interface {
	OpenDirectory(path string) (Handle, error)
	ReadNextEntry(h Handle, longName []byte) (Entry, error)
	CloseDirectory(h Handle) error
}
