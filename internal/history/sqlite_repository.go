package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"legalbot/internal/model"
)

type sqliteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) SaveEntry(ctx context.Context, entry *model.HistoryEntry) error {
	query := "INSERT INTO history_entries (id, title, preview, created_at) VALUES (?, ?, ?, ?)"
	_, err := r.db.ExecContext(ctx, query, entry.ID, entry.Title, entry.Preview, entry.Date)
	if err != nil {
		return fmt.Errorf("could not insert history entry: %w", err)
	}
	return nil
}

func (r *sqliteRepository) GetEntry(ctx context.Context, id string) (*model.HistoryEntry, error) {
	query := "SELECT id, title, preview, created_at FROM history_entries WHERE id = ?"
	row := r.db.QueryRowContext(ctx, query, id)

	var entry model.HistoryEntry
	err := row.Scan(&entry.ID, &entry.Title, &entry.Preview, &entry.Date)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

func (r *sqliteRepository) ListEntries(ctx context.Context) ([]*model.HistoryEntry, error) {
	query := "SELECT id, title, preview, created_at FROM history_entries ORDER BY created_at DESC"
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*model.HistoryEntry
	for rows.Next() {
		var entry model.HistoryEntry
		if err := rows.Scan(&entry.ID, &entry.Title, &entry.Preview, &entry.Date); err != nil {
			return nil, err
		}
		entries = append(entries, &entry)
	}
	return entries, rows.Err()
}

func (r *sqliteRepository) DeleteEntry(ctx context.Context, id string) error {
	query := "DELETE FROM history_entries WHERE id = ?"
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
