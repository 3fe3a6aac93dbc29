package database

// migrationsSQL contains all database migrations.
// Migrations are applied in order by version number.
// Each migration should be idempotent (safe to run multiple times).
var migrationsSQL = map[int]string{
	1: migrationV1CalendarDefinitions,
}

// migrationV1CalendarDefinitions creates the definition store.
//
// A row holds everything the factory needs to rebuild a variant: its name,
// cycle, and the raw options map as JSON. The compiled variant itself is
// never persisted; it is synthesized again from the options at startup, so
// the factory's validation stays the single source of truth.
const migrationV1CalendarDefinitions = `
-- Migration 001: Calendar definition store

CREATE TABLE IF NOT EXISTS calendar_definitions (
    name TEXT PRIMARY KEY,

    -- Addressing scheme of the variant: month- or week-based dates
    cycle TEXT NOT NULL CHECK (cycle IN ('month', 'week')),

    -- Factory options as a JSON object, exactly as submitted
    options TEXT NOT NULL DEFAULT '{}',

    created_at TEXT NOT NULL DEFAULT (datetime('now')),
    updated_at TEXT NOT NULL DEFAULT (datetime('now'))
);
`
