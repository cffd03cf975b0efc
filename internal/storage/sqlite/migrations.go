package sqlite

import "database/sql"

// migrations contains the SQL statements to set up the database schema.
// These run on startup to ensure tables exist.
//
// Responsibility for required items is never stored: item_participants only
// holds explicit selections on optional items, everything else is derived
// from event_members at read time.
const schema = `
CREATE TABLE IF NOT EXISTS people (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    phone_number TEXT NOT NULL UNIQUE,
    date_of_birth TEXT NOT NULL,
    gender TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS events (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    date TEXT NOT NULL,
    address TEXT NOT NULL,
    hash_invite TEXT NOT NULL UNIQUE,
    owner_id INTEGER NOT NULL,
    FOREIGN KEY (owner_id) REFERENCES people(id)
);

CREATE TABLE IF NOT EXISTS items (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    event_id INTEGER NOT NULL,
    name TEXT NOT NULL,
    is_required INTEGER NOT NULL DEFAULT 0,
    total_cost REAL NOT NULL DEFAULT 0,
    FOREIGN KEY (event_id) REFERENCES events(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS event_members (
    event_id INTEGER NOT NULL,
    people_id INTEGER NOT NULL,
    joined_at INTEGER NOT NULL,
    PRIMARY KEY (event_id, people_id),
    FOREIGN KEY (event_id) REFERENCES events(id) ON DELETE CASCADE,
    FOREIGN KEY (people_id) REFERENCES people(id)
);

CREATE TABLE IF NOT EXISTS item_participants (
    item_id INTEGER NOT NULL,
    people_id INTEGER NOT NULL,
    PRIMARY KEY (item_id, people_id),
    FOREIGN KEY (item_id) REFERENCES items(id) ON DELETE CASCADE,
    FOREIGN KEY (people_id) REFERENCES people(id)
);

CREATE INDEX IF NOT EXISTS idx_events_owner_id ON events(owner_id);
CREATE INDEX IF NOT EXISTS idx_items_event_id ON items(event_id);
CREATE INDEX IF NOT EXISTS idx_event_members_people_id ON event_members(people_id);
CREATE INDEX IF NOT EXISTS idx_item_participants_people_id ON item_participants(people_id);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
