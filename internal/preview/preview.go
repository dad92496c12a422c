// Package preview manages the transient thumbnail resource derived from a
// selected attachment. A preview is a temp-file copy of the attachment
// bytes; it must be released on every transition away from the owning
// selection, and exactly once.
package preview

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrReleased is returned when a handle is released a second time.
var ErrReleased = errors.New("preview: handle already released")

// Handle is a live preview resource. It stays valid until Release removes
// the backing file.
type Handle struct {
	path     string
	released bool
}

// Path returns the location of the preview file.
func (h *Handle) Path() string { return h.path }

// Release removes the backing file. Releasing twice is a bug in the caller
// and reported as ErrReleased.
func (h *Handle) Release() error {
	if h.released {
		return ErrReleased
	}
	h.released = true
	if err := os.Remove(h.path); err != nil {
		return fmt.Errorf("remove preview file: %w", err)
	}
	return nil
}

// Manager owns at most one live handle at a time. Setting a new preview
// releases the previous one first, so a handle can never be left dangling.
// Manager is not safe for concurrent use; the session serializes access.
type Manager struct {
	dir     string
	current *Handle
}

// NewManager creates a manager that stores preview files under dir, or the
// system temp directory when dir is empty.
func NewManager(dir string) *Manager {
	if dir == "" {
		dir = os.TempDir()
	}
	return &Manager{dir: dir}
}

// Set derives a preview for the given attachment, superseding any previous
// one. Only image media types get a preview; for anything else Set just
// releases the previous handle and returns nil.
func (m *Manager) Set(name, mediaType string, src io.Reader) (*Handle, error) {
	if err := m.Clear(); err != nil {
		return nil, err
	}
	if !strings.HasPrefix(mediaType, "image/") {
		return nil, nil
	}

	f, err := os.CreateTemp(m.dir, "preview-*"+filepath.Ext(name))
	if err != nil {
		return nil, fmt.Errorf("create preview file: %w", err)
	}
	if _, err := io.Copy(f, src); err != nil {
		f.Close()
		os.Remove(f.Name())
		return nil, fmt.Errorf("write preview file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return nil, fmt.Errorf("close preview file: %w", err)
	}

	m.current = &Handle{path: f.Name()}
	return m.current, nil
}

// Current returns the live handle, or nil when no preview is outstanding.
func (m *Manager) Current() *Handle { return m.current }

// Clear releases the current handle, if any.
func (m *Manager) Clear() error {
	if m.current == nil {
		return nil
	}
	h := m.current
	m.current = nil
	return h.Release()
}

// Close releases any outstanding handle. Called on session teardown.
func (m *Manager) Close() error {
	return m.Clear()
}
