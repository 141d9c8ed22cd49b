package state

import (
	"context"
	"fmt"
	"time"
)

// Release is one recorded version advance.
type Release struct {
	Project    string
	Version    string
	Tag        string
	CommitHash string
	CreatedAt  time.Time
}

// ReleaseLog records version advances so "what did we ship and when" can be
// answered locally, without the remote. Writes are best-effort by contract:
// callers log a failed insert and move on.
type ReleaseLog struct {
	db *DB
}

// NewReleaseLog creates the log and ensures the table exists.
func NewReleaseLog(ctx context.Context, database *DB) (*ReleaseLog, error) {
	if database == nil {
		return nil, fmt.Errorf("db: release log requires an open database")
	}
	l := &ReleaseLog{db: database}
	if err := l.ensureSchema(ctx); err != nil {
		return nil, err
	}
	return l, nil
}

var defaultReleaseLog *ReleaseLog

func DefaultReleaseLog(ctx context.Context) (*ReleaseLog, error) {
	if defaultReleaseLog == nil {
		db, err := OpenDefault(ctx)
		if err != nil {
			return nil, err
		}
		defaultReleaseLog, err = NewReleaseLog(ctx, db)
		if err != nil {
			return nil, err
		}
	}

	return defaultReleaseLog, nil
}

func (l *ReleaseLog) ensureSchema(ctx context.Context) error {
	const createTable = `
CREATE TABLE IF NOT EXISTS releases (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	project     TEXT NOT NULL,
	version     TEXT NOT NULL,
	tag         TEXT NOT NULL,
	commit_hash TEXT NOT NULL,
	created_at  INTEGER NOT NULL
);
`
	_, err := l.db.Raw().ExecContext(ctx, createTable)
	if err != nil {
		return fmt.Errorf("releases: ensure schema: %w", err)
	}
	return nil
}

// Record appends one release row.
func (l *ReleaseLog) Record(ctx context.Context, r Release) error {
	const stmt = `
INSERT INTO releases (project, version, tag, commit_hash, created_at)
VALUES (?, ?, ?, ?, strftime('%s','now'));
`
	if _, err := l.db.Raw().ExecContext(ctx, stmt, r.Project, r.Version, r.Tag, r.CommitHash); err != nil {
		return fmt.Errorf("releases: record: %w", err)
	}
	return nil
}

// List returns the newest releases for project, most recent first.
// limit <= 0 means no limit.
func (l *ReleaseLog) List(ctx context.Context, project string, limit int) ([]Release, error) {
	q := `
SELECT project, version, tag, commit_hash, created_at
FROM releases
WHERE project = ?
ORDER BY id DESC
`
	args := []any{project}
	if limit > 0 {
		q += "LIMIT ?\n"
		args = append(args, limit)
	}

	rows, err := l.db.Raw().QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("releases: list: %w", err)
	}
	defer rows.Close()

	var out []Release
	for rows.Next() {
		var r Release
		var createdAtUnix int64
		if err := rows.Scan(&r.Project, &r.Version, &r.Tag, &r.CommitHash, &createdAtUnix); err != nil {
			return nil, fmt.Errorf("releases: scan: %w", err)
		}
		r.CreatedAt = time.Unix(createdAtUnix, 0).UTC()
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("releases: rows: %w", err)
	}
	return out, nil
}
