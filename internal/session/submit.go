package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"

	"legalbot/internal/assistant"
	app_errors "legalbot/internal/errors"
	"legalbot/internal/model"
)

// User-facing strings for submission outcomes. Failures of either call are
// swallowed into the transcript as bot messages; the conversation always
// stays usable.
const (
	msgGenericFailure = "⚠️ Error: Could not process your request. Please try again."
	msgUploadSuccess  = "✅ File uploaded successfully: %s"
)

const (
	titleLimit   = 30
	previewLimit = 50
)

// Submit runs one submission: the optimistic user-message append, then the
// chat call and the upload call. The two calls are independent; they run in
// source order so transcript appends stay deterministic (user message, chat
// reply, upload confirmation). The loading flag is cleared on every exit
// path.
//
// Preconditions: the caller must be signed in (refusal has no side effects),
// and submitting with empty text and no file is a no-op.
func (s *Controller) Submit(ctx context.Context) error {
	s.mu.Lock()
	if !s.auth.SignedIn(ctx) {
		s.mu.Unlock()
		return app_errors.ErrAuthRequired
	}
	if s.loading {
		s.mu.Unlock()
		return app_errors.ErrBusy
	}

	text := strings.TrimSpace(s.input)
	file := s.selected
	if text == "" && file == nil {
		s.mu.Unlock()
		return nil
	}

	userMsg := model.Message{
		ID:        uuid.NewString(),
		Sender:    model.SenderUser,
		Text:      s.input,
		Timestamp: s.now(),
	}
	if file != nil {
		userMsg.File = &model.FileRef{Name: file.Name, MediaType: file.MediaType}
	}

	first := len(s.transcript) == 0
	s.transcript = append(s.transcript, userMsg)
	s.input = ""
	s.loading = true
	s.greeting = false
	if first {
		s.recordHistoryEntry(ctx, userMsg.Text)
	}
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}()

	if text != "" {
		resp, err := s.client.Chat(ctx, userMsg.Text)
		if err != nil {
			s.logger.Warn("chat call failed", "error", err)
			s.appendBot(msgGenericFailure)
		} else {
			s.appendBot(resp.Reply)
		}
	}

	if file != nil {
		s.uploadSelected(ctx, file)
	}

	return nil
}

// Ask is the programmatic submission used by example prompts and the guided
// document-upload flow: it replaces the pending input and submits it.
func (s *Controller) Ask(ctx context.Context, text string) error {
	s.mu.Lock()
	if !s.auth.SignedIn(ctx) {
		s.mu.Unlock()
		return app_errors.ErrAuthRequired
	}
	if s.loading {
		s.mu.Unlock()
		return app_errors.ErrBusy
	}
	s.input = text
	s.mu.Unlock()
	return s.Submit(ctx)
}

// uploadSelected sends the selected file. Success clears the selection and
// its preview; a server-confirmed oversize upload surfaces the server's
// detail message; anything else gets the generic failure message. The
// selection survives failures so the user can resubmit without re-picking.
func (s *Controller) uploadSelected(ctx context.Context, file *SelectedFile) {
	src, err := os.Open(file.Path)
	if err != nil {
		s.logger.Warn("could not open selected file", "path", file.Path, "error", err)
		s.appendBot(msgGenericFailure)
		return
	}
	resp, err := s.client.UploadFile(ctx, file.Name, src)
	src.Close()

	var tooLarge *assistant.PayloadTooLargeError
	switch {
	case err == nil:
		s.appendBot(fmt.Sprintf(msgUploadSuccess, resp.Filename))
		s.mu.Lock()
		s.selected = nil
		s.fileErr = ""
		s.releasePreview()
		s.mu.Unlock()
	case errors.As(err, &tooLarge):
		s.logger.Warn("upload rejected as too large", "detail", tooLarge.Detail)
		s.appendBot(tooLarge.Detail)
	default:
		s.logger.Warn("upload call failed", "error", err)
		s.appendBot(msgGenericFailure)
	}
}

func (s *Controller) appendBot(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transcript = append(s.transcript, model.Message{
		ID:        uuid.NewString(),
		Sender:    model.SenderBot,
		Text:      text,
		Timestamp: s.now(),
	})
}

// recordHistoryEntry derives the conversation summary from the first user
// message and prepends it to the in-memory list. Persistence is best-effort;
// a storage failure never breaks the submission. Callers hold the lock.
func (s *Controller) recordHistoryEntry(ctx context.Context, text string) {
	entry := model.HistoryEntry{
		ID:      uuid.NewString(),
		Title:   deriveTitle(text),
		Date:    s.now(),
		Preview: truncate(text, previewLimit),
	}
	s.entries = append([]model.HistoryEntry{entry}, s.entries...)
	s.activeChat = entry.ID

	if s.history != nil {
		if err := s.history.SaveEntry(ctx, &entry); err != nil {
			s.logger.Warn("could not persist history entry", "id", entry.ID, "error", err)
		}
	}
}

func deriveTitle(s string) string {
	t := truncate(s, titleLimit)
	if t != s {
		t += "..."
	}
	return t
}

// truncate shortens a string to at most n runes.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
