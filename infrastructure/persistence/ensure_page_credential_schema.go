package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// EnsurePageCredentialSchema creates the page_credentials table when it is
// missing. Safe to call at startup.
func EnsurePageCredentialSchema(db *sql.DB) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	ddl := `CREATE TABLE IF NOT EXISTS page_credentials (
		page_id TEXT PRIMARY KEY,
		page_name TEXT NOT NULL DEFAULT '',
		access_token TEXT NOT NULL,
		owner_user_id TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`
	if _, err := db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("creating page_credentials table failed: %w", err)
	}
	return nil
}
