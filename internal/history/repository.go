package history

import (
	"context"

	"legalbot/internal/model"
)

// Repository defines the storage operations for conversation history
// entries. Only the summary entry persists; transcripts live in memory for
// the duration of a session.
type Repository interface {
	SaveEntry(ctx context.Context, entry *model.HistoryEntry) error
	GetEntry(ctx context.Context, id string) (*model.HistoryEntry, error)
	ListEntries(ctx context.Context) ([]*model.HistoryEntry, error)
	DeleteEntry(ctx context.Context, id string) error
}
