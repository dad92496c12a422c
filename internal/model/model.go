package model

import "time"

// Sender identifies who produced a transcript message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// Message is a single entry in a chat transcript. Messages are immutable
// once appended; the transcript only ever grows.
type Message struct {
	ID        string    `json:"id"`
	Sender    Sender    `json:"sender"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
	File      *FileRef  `json:"file,omitempty"` // Attachment metadata carried on the user message, if any.
}

// FileRef records the name and media type of an attachment. The file bytes
// themselves never enter the transcript.
type FileRef struct {
	Name      string `json:"name"`
	MediaType string `json:"type"`
}

// HistoryEntry summarizes one conversation for the history list. It is
// created at most once per conversation, on its first user message, and is
// never mutated afterwards.
type HistoryEntry struct {
	ID      string    `json:"id"`
	Title   string    `json:"title"`
	Date    time.Time `json:"date"`
	Preview string    `json:"preview"`
}
