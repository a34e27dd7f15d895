package sqlstore

// Dates, times, and timestamps are stored as ISO-formatted TEXT in both
// drivers. The ordering and range contracts rely on those strings sorting
// lexicographically, so no driver-native date types are involved.

const schemaSQLite = `
CREATE TABLE IF NOT EXISTS events (
  id TEXT PRIMARY KEY,
  title TEXT NOT NULL,
  description TEXT,
  start_date TEXT NOT NULL,
  end_date TEXT NOT NULL,
  start_time TEXT NOT NULL,
  end_time TEXT NOT NULL,
  creator_name TEXT NOT NULL,
  creator_email TEXT NOT NULL,
  location TEXT,
  created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
)`

const schemaPostgres = `
CREATE TABLE IF NOT EXISTS events (
  id TEXT PRIMARY KEY,
  title TEXT NOT NULL,
  description TEXT,
  start_date TEXT NOT NULL,
  end_date TEXT NOT NULL,
  start_time TEXT NOT NULL,
  end_time TEXT NOT NULL,
  creator_name TEXT NOT NULL,
  creator_email TEXT NOT NULL,
  location TEXT,
  created_at TEXT NOT NULL DEFAULT now()::text,
  updated_at TEXT NOT NULL DEFAULT now()::text
)`

const insertEventSQL = `
INSERT INTO events (
  id, title, description, start_date, end_date, start_time, end_time,
  creator_name, creator_email, location, created_at, updated_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

const getEventSQL = `
SELECT id, title, description, start_date, end_date, start_time, end_time,
       creator_name, creator_email, location, created_at, updated_at
FROM events WHERE id = ?
`

const updateEventSQL = `
UPDATE events SET
  title = ?, description = ?, start_date = ?, end_date = ?,
  start_time = ?, end_time = ?, creator_name = ?, creator_email = ?,
  location = ?, updated_at = ?
WHERE id = ?
`

const deleteEventSQL = `
DELETE FROM events WHERE id = ?
`

const listEventsSQL = `
SELECT id, title, description, start_date, end_date, start_time, end_time,
       creator_name, creator_email, location, created_at, updated_at
FROM events
ORDER BY start_date ASC, start_time ASC
`

const listRangeSQL = `
SELECT id, title, description, start_date, end_date, start_time, end_time,
       creator_name, creator_email, location, created_at, updated_at
FROM events
WHERE start_date >= ? AND start_date <= ?
ORDER BY start_date ASC, start_time ASC
`
