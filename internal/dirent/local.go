package dirent

import (
	"fmt"
	"io"
	"os"

	"github.com/gobwas/glob"
)

// Local enumerates directories on the host filesystem. Entries whose
// name matches an ignore pattern are skipped without being returned.
type Local struct {
	ignore []glob.Glob
}

// NewLocal compiles the ignore patterns and returns the service.
func NewLocal(ignorePatterns []string) (*Local, error) {
	l := &Local{}
	for _, p := range ignorePatterns {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("bad ignore pattern %q: %w", p, err)
		}
		l.ignore = append(l.ignore, g)
	}
	return l, nil
}

type localHandle struct {
	f *os.File
}

func (*localHandle) dirHandle() {}

// OpenDirectory opens an enumeration cursor at path.
func (l *Local) OpenDirectory(path string) (Handle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open directory %s: %w", path, err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if !info.IsDir() {
		f.Close()
		return nil, fmt.Errorf("%s is not a directory", path)
	}
	return &localHandle{f: f}, nil
}

// ReadNextEntry returns the next non-ignored entry, copying its name
// into longName (truncated to len(longName)). At the end of the listing
// it returns the zero Entry and no error.
func (l *Local) ReadNextEntry(h Handle, longName []byte) (Entry, error) {
	lh, ok := h.(*localHandle)
	if !ok || lh == nil {
		return Entry{}, ErrBadHandle
	}

	for {
		infos, err := lh.f.Readdir(1)
		if err == io.EOF {
			return Entry{}, nil
		}
		if err != nil {
			return Entry{}, fmt.Errorf("read directory: %w", err)
		}
		info := infos[0]
		if l.ignored(info.Name()) {
			continue
		}

		size := info.Size()
		if info.IsDir() {
			size = 0
		}
		n := copy(longName, info.Name())
		return Entry{
			Size:      size,
			ShortName: ShortName(info.Name()),
			LongName:  longName[:n],
		}, nil
	}
}

// CloseDirectory releases the cursor.
func (l *Local) CloseDirectory(h Handle) error {
	lh, ok := h.(*localHandle)
	if !ok || lh == nil {
		return ErrBadHandle
	}
	if err := lh.f.Close(); err != nil {
		return fmt.Errorf("close directory: %w", err)
	}
	return nil
}

func (l *Local) ignored(name string) bool {
	for _, g := range l.ignore {
		if g.Match(name) {
			return true
		}
	}
	return false
}
