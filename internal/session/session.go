// Package session implements the chat submission pipeline: input collection
// and attachment validation, the append-only transcript, and the submission
// orchestrator that talks to the assistant API.
package session

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"legalbot/internal/assistant"
	app_errors "legalbot/internal/errors"
	"legalbot/internal/history"
	"legalbot/internal/model"
	"legalbot/internal/preview"
)

// Authorizer is the external capability check guarding submissions.
type Authorizer interface {
	// SignedIn reports whether the current user may submit messages.
	SignedIn(ctx context.Context) bool
}

// SelectedFile is the single attachment candidate that passed validation and
// awaits upload. At most one is alive at a time.
type SelectedFile struct {
	Name      string
	Path      string
	Size      int64
	MediaType string
}

// Controller owns one chat session: the transcript, the pending input, the
// selected file and its preview, and the loading flag. All state transitions
// go through its methods; there is no ambient state.
type Controller struct {
	client   assistant.Client
	auth     Authorizer
	previews *preview.Manager
	history  history.Repository // optional; nil disables persistence
	policy   Policy
	logger   *slog.Logger
	now      func() time.Time

	mu         sync.Mutex
	transcript []model.Message
	entries    []model.HistoryEntry
	input      string
	selected   *SelectedFile
	fileErr    string
	loading    bool
	greeting   bool
	activeChat string
}

// Options configures a Controller. Client and Auth are required; the rest
// have usable defaults.
type Options struct {
	Client   assistant.Client
	Auth     Authorizer
	Previews *preview.Manager
	History  history.Repository
	Policy   Policy
	Logger   *slog.Logger
	Now      func() time.Time
}

func New(opts Options) *Controller {
	if opts.Previews == nil {
		opts.Previews = preview.NewManager("")
	}
	if len(opts.Policy.AllowedExtensions) == 0 {
		opts.Policy = DefaultPolicy()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Controller{
		client:   opts.Client,
		auth:     opts.Auth,
		previews: opts.Previews,
		history:  opts.History,
		policy:   opts.Policy,
		logger:   opts.Logger,
		now:      opts.Now,
		greeting: true,
	}
}

// Transcript returns a copy of the message sequence in append order.
func (s *Controller) Transcript() []model.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Message, len(s.transcript))
	copy(out, s.transcript)
	return out
}

// HistoryEntries returns the session's conversation summaries, newest first.
func (s *Controller) HistoryEntries() []model.HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.HistoryEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// SetInput replaces the pending input text.
func (s *Controller) SetInput(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.input = text
}

func (s *Controller) Input() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.input
}

func (s *Controller) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// ShowGreeting reports whether the initial greeting should be displayed.
// True until the first submission, and again after a reset.
func (s *Controller) ShowGreeting() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.greeting
}

// Selected returns the current attachment, or nil.
func (s *Controller) Selected() *SelectedFile {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == nil {
		return nil
	}
	f := *s.selected
	return &f
}

// FileError returns the surfaced validation message, empty when none.
func (s *Controller) FileError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fileErr
}

// PreviewPath returns the location of the live preview file, or empty when
// no preview is outstanding.
func (s *Controller) PreviewPath() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if h := s.previews.Current(); h != nil {
		return h.Path()
	}
	return ""
}

// Attach validates a candidate and, on success, makes it the SelectedFile.
// Rejection leaves the current selection untouched and surfaces the policy
// message; acceptance releases any previous preview and derives a new one
// for image attachments.
func (s *Controller) Attach(c FileCandidate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg, err := s.policy.Check(c)
	if err != nil {
		s.fileErr = msg
		return err
	}

	if strings.HasPrefix(c.MediaType, "image/") {
		src, err := os.Open(c.Path)
		if err != nil {
			s.logger.Warn("could not open attachment for preview", "path", c.Path, "error", err)
			s.releasePreview()
		} else {
			if _, perr := s.previews.Set(c.Name, c.MediaType, src); perr != nil {
				s.logger.Warn("could not derive preview", "name", c.Name, "error", perr)
			}
			src.Close()
		}
	} else {
		s.releasePreview()
	}

	s.selected = &SelectedFile{Name: c.Name, Path: c.Path, Size: c.Size, MediaType: c.MediaType}
	s.fileErr = ""
	return nil
}

// RemoveFile clears the selection and releases its preview.
func (s *Controller) RemoveFile() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = nil
	s.fileErr = ""
	s.releasePreview()
}

// NewChat resets the session to its initial state: empty transcript, empty
// input, no selection, greeting restored. Refused while a submission is in
// flight.
func (s *Controller) NewChat() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loading {
		return app_errors.ErrBusy
	}
	s.transcript = nil
	s.input = ""
	s.selected = nil
	s.fileErr = ""
	s.greeting = true
	s.activeChat = ""
	s.releasePreview()
	return nil
}

// Close tears the session down, releasing any outstanding preview.
func (s *Controller) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.previews.Close()
}

// releasePreview drops the live preview handle. Callers hold the lock. A
// remove failure is logged, never propagated; the handle is gone either way.
func (s *Controller) releasePreview() {
	if err := s.previews.Clear(); err != nil {
		s.logger.Warn("could not release preview", "error", err)
	}
}
