package tui

import (
	"testing"
	"time"

	"mountls/internal/controller"
	"mountls/internal/dirent"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type readyStorage struct{}

func (readyStorage) Mount(string, string, string) error { return nil }
func (readyStorage) SetCurrentDrive(string) error       { return nil }

func newTestModel(t *testing.T) (*Model, *controller.Controller, *Capture) {
	t.Helper()

	svc, err := dirent.NewLocal(nil)
	require.NoError(t, err)

	capture := &Capture{}
	ctrl := controller.New(controller.Config{
		DevicePath:    "/dev/null",
		MountPath:     t.TempDir(),
		Filesystem:    "vfat",
		Version:       "test",
		ListDirectory: true,
	}, readyStorage{}, svc, capture)
	ctrl.Initialize()

	return New(ctrl, capture), ctrl, capture
}

func TestFrameAdvancesController(t *testing.T) {
	m, ctrl, _ := newTestModel(t)

	// One frame batches enough ticks to finish an empty listing.
	next, cmd := m.Update(frameMsg(time.Now()))

	assert.True(t, ctrl.Done())
	assert.Equal(t, controller.Complete, ctrl.State())
	assert.Same(t, m, next, "model is updated in place")
	assert.NotNil(t, cmd, "another frame is scheduled")
}

func TestFrameIsNoOpOnceDone(t *testing.T) {
	m, ctrl, capture := newTestModel(t)

	m.Update(frameMsg(time.Now()))
	require.True(t, ctrl.Done())

	lines := len(capture.Lines())
	m.Update(frameMsg(time.Now()))
	assert.Len(t, capture.Lines(), lines)
}

func TestViewShowsStateAndOutput(t *testing.T) {
	m, _, capture := newTestModel(t)
	m.Update(frameMsg(time.Now()))

	view := m.View()
	assert.Contains(t, view, "mountls")
	assert.Contains(t, view, "Complete")
	assert.Contains(t, capture.Lines(), "End of listing")
}

func TestViewWhileWaiting(t *testing.T) {
	m, _, _ := newTestModel(t)

	// No ticks yet: the machine is still in Idle; after the first
	// transition it waits on the (instantly ready) fake storage, so
	// render before any frame to see the initial state.
	assert.Contains(t, m.View(), "Idle")
}

func TestQuitKeys(t *testing.T) {
	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyEsc},
	} {
		m, _, _ := newTestModel(t)
		_, cmd := m.Update(key)
		require.NotNil(t, cmd, "key %v should quit", key)
		assert.Equal(t, tea.Quit(), cmd())
	}
}
