package dirent_test

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"mountls/internal/dirent"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// readAll drains the cursor and returns name->size for every entry.
func readAll(t *testing.T, svc *dirent.Local, dir string) map[string]int64 {
	t.Helper()

	h, err := svc.OpenDirectory(dir)
	require.NoError(t, err)

	buf := make([]byte, 100)
	entries := map[string]int64{}
	for {
		e, err := svc.ReadNextEntry(h, buf)
		require.NoError(t, err)
		if e.End() {
			break
		}
		entries[e.Name()] = e.Size
	}

	require.NoError(t, svc.CloseDirectory(h))
	return entries
}

func TestReadDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "A.TXT"), make([]byte, 10), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "B.BIN"), make([]byte, 20), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "SUB"), 0755))

	svc, err := dirent.NewLocal(nil)
	require.NoError(t, err)

	entries := readAll(t, svc, dir)
	assert.Equal(t, map[string]int64{
		"A.TXT": 10,
		"B.BIN": 20,
		"SUB":   0, // directories report size 0
	}, entries)
}

func TestEmptyDirectory(t *testing.T) {
	svc, err := dirent.NewLocal(nil)
	require.NoError(t, err)

	h, err := svc.OpenDirectory(t.TempDir())
	require.NoError(t, err)
	defer svc.CloseDirectory(h)

	buf := make([]byte, 100)
	e, err := svc.ReadNextEntry(h, buf)
	require.NoError(t, err)
	assert.True(t, e.End())

	// The end marker repeats on further reads.
	e, err = svc.ReadNextEntry(h, buf)
	require.NoError(t, err)
	assert.True(t, e.End())
}

func TestIgnorePatterns(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"keep.txt", "skip.tmp", ".Trash-1000"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0644))
	}

	svc, err := dirent.NewLocal([]string{"*.tmp", ".Trash*"})
	require.NoError(t, err)

	entries := readAll(t, svc, dir)
	require.Len(t, entries, 1)
	assert.Contains(t, entries, "keep.txt")
}

func TestBadIgnorePattern(t *testing.T) {
	_, err := dirent.NewLocal([]string{"[unclosed"})
	assert.Error(t, err)
}

func TestLongNameTruncatedToBuffer(t *testing.T) {
	dir := t.TempDir()
	long := "this-name-is-definitely-longer-than-the-tiny-buffer.txt"
	require.NoError(t, os.WriteFile(filepath.Join(dir, long), nil, 0644))

	svc, err := dirent.NewLocal(nil)
	require.NoError(t, err)

	h, err := svc.OpenDirectory(dir)
	require.NoError(t, err)
	defer svc.CloseDirectory(h)

	buf := make([]byte, 16)
	e, err := svc.ReadNextEntry(h, buf)
	require.NoError(t, err)
	assert.Equal(t, long[:16], string(e.LongName))
	assert.NotEmpty(t, e.ShortName)
}

func TestOpenNonDirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "f")
	require.NoError(t, os.WriteFile(file, nil, 0644))

	svc, err := dirent.NewLocal(nil)
	require.NoError(t, err)

	_, err = svc.OpenDirectory(file)
	assert.Error(t, err)
}

func TestOpenMissingDirectory(t *testing.T) {
	svc, err := dirent.NewLocal(nil)
	require.NoError(t, err)

	_, err = svc.OpenDirectory(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestBadHandle(t *testing.T) {
	svc, err := dirent.NewLocal(nil)
	require.NoError(t, err)

	_, err = svc.ReadNextEntry(nil, make([]byte, 10))
	assert.ErrorIs(t, err, dirent.ErrBadHandle)
	assert.ErrorIs(t, svc.CloseDirectory(nil), dirent.ErrBadHandle)
}

func TestEntriesSortable(t *testing.T) {
	// Readdir order is platform-dependent; callers that need a stable
	// listing sort names themselves, as the reporting layer does.
	dir := t.TempDir()
	names := []string{"c", "a", "b"}
	for _, n := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, n), nil, 0644))
	}

	svc, err := dirent.NewLocal(nil)
	require.NoError(t, err)

	entries := readAll(t, svc, dir)
	got := make([]string, 0, len(entries))
	for n := range entries {
		got = append(got, n)
	}
	sort.Strings(got)
	assert.Equal(t, []string{"a", "b", "c"}, got)
}
