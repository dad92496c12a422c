package history

import "errors"

// ErrNotFound is returned when a query for a single entry finds no rows.
// Callers check for it instead of the database driver's sql.ErrNoRows, which
// keeps them decoupled from the storage implementation.
var ErrNotFound = errors.New("history: not found")
