package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// =============================================================================
// Error Types
// =============================================================================

var (
	// ErrNotFound is returned when a requested record doesn't exist
	ErrNotFound = errors.New("not found")

	// ErrExists is returned when inserting a definition whose name is taken
	ErrExists = errors.New("already exists")
)

// IsNotFound checks if an error is a not-found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsExists checks if an error reports a name collision
func IsExists(err error) bool {
	return errors.Is(err, ErrExists)
}

// =============================================================================
// Helper Functions
// =============================================================================

// parseTimestamp parses a timestamp from SQLite TEXT format.
// Tries multiple formats and returns the zero time if parsing fails.
func parseTimestamp(ns sql.NullString) time.Time {
	if !ns.Valid || ns.String == "" {
		return time.Time{}
	}

	for _, layout := range []string{
		time.RFC3339,
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05.999999",
	} {
		if t, err := time.Parse(layout, ns.String); err == nil {
			return t
		}
	}
	return time.Time{}
}

// =============================================================================
// Calendar Definition Queries
// =============================================================================

// InsertDefinition stores a new calendar definition.
// Returns ErrExists if the name is already taken.
func (db *DB) InsertDefinition(ctx context.Context, def *CalendarDefinition) error {
	optionsJSON, err := marshalOptions(def.Options)
	if err != nil {
		return err
	}

	res, err := db.ExecContext(ctx, `
		INSERT INTO calendar_definitions (name, cycle, options)
		VALUES (?, ?, ?)
		ON CONFLICT (name) DO NOTHING
	`, def.Name, def.Cycle, optionsJSON)
	if err != nil {
		return fmt.Errorf("insert calendar definition: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("insert calendar definition: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("calendar definition %q: %w", def.Name, ErrExists)
	}
	return nil
}

// GetDefinition retrieves a stored definition by name.
// Returns ErrNotFound if no definition exists under that name.
func (db *DB) GetDefinition(ctx context.Context, name string) (*CalendarDefinition, error) {
	row := db.QueryRowContext(ctx, `
		SELECT name, cycle, options, created_at, updated_at
		FROM calendar_definitions
		WHERE name = ?
	`, name)

	def, err := scanDefinition(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query calendar definition: %w", err)
	}
	return def, nil
}

// ListDefinitions returns every stored definition ordered by name.
func (db *DB) ListDefinitions(ctx context.Context) ([]CalendarDefinition, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT name, cycle, options, created_at, updated_at
		FROM calendar_definitions
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("query calendar definitions: %w", err)
	}
	defer rows.Close()

	var defs []CalendarDefinition
	for rows.Next() {
		def, err := scanDefinition(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan calendar definition: %w", err)
		}
		defs = append(defs, *def)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate calendar definitions: %w", err)
	}
	return defs, nil
}

// DeleteDefinition removes a stored definition.
// Returns ErrNotFound if nothing was deleted. Note that removal only affects
// storage: variants already registered in the running process stay usable
// until restart, by design.
func (db *DB) DeleteDefinition(ctx context.Context, name string) error {
	res, err := db.ExecContext(ctx,
		"DELETE FROM calendar_definitions WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("delete calendar definition: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete calendar definition: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// scanDefinition reads one definition row via the given Scan function, so it
// works for both QueryRow and Rows.
func scanDefinition(scan func(dest ...any) error) (*CalendarDefinition, error) {
	var def CalendarDefinition
	var optionsJSON string
	var createdAt, updatedAt sql.NullString

	if err := scan(&def.Name, &def.Cycle, &optionsJSON, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	opts, err := unmarshalOptions(optionsJSON)
	if err != nil {
		return nil, err
	}
	def.Options = opts
	def.CreatedAt = parseTimestamp(createdAt)
	def.UpdatedAt = parseTimestamp(updatedAt)
	return &def, nil
}
