package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_table_users",
		SQL: `CREATE TABLE IF NOT EXISTS users (
  id            BIGSERIAL   PRIMARY KEY,
  username      TEXT        NOT NULL UNIQUE,
  password_hash TEXT        NOT NULL,
  created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_documents",
		SQL: `CREATE TABLE IF NOT EXISTS documents (
  id         BIGSERIAL   PRIMARY KEY,
  owner_id   BIGINT      NOT NULL REFERENCES users (id),
  filename   TEXT        NOT NULL CHECK (filename <> ''),
  text       TEXT        NOT NULL DEFAULT '',
  format     TEXT        NOT NULL,
  image_path TEXT        NOT NULL DEFAULT '',
  image_size BIGINT      NOT NULL DEFAULT 0 CHECK (image_size >= 0),
  created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_folders",
		SQL: `CREATE TABLE IF NOT EXISTS folders (
  id         BIGSERIAL   PRIMARY KEY,
  owner_id   BIGINT      NOT NULL REFERENCES users (id),
  name       TEXT        NOT NULL CHECK (name <> ''),
  created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  UNIQUE (owner_id, name)
);`,
	},
	{
		Name: "create_table_document_folders",
		SQL: `CREATE TABLE IF NOT EXISTS document_folders (
  document_id BIGINT NOT NULL REFERENCES documents (id),
  folder_id   BIGINT NOT NULL REFERENCES folders (id),
  PRIMARY KEY (document_id, folder_id)
);`,
	},
	{
		Name: "create_index_documents_owner_created_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_documents_owner_created_at ON documents (owner_id, created_at DESC, id DESC);`,
	},
	{
		Name: "create_index_documents_owner_format",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_documents_owner_format ON documents (owner_id, format);`,
	},
	{
		Name: "create_index_document_folders_folder",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_document_folders_folder ON document_folders (folder_id);`,
	},
	{
		Name: "create_index_folders_owner_created_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_folders_owner_created_at ON folders (owner_id, created_at, id);`,
	},
}

// EnsureMigrated checks whether the 'documents' table exists and runs the
// migration steps if it does not. All steps are idempotent.
func EnsureMigrated(ctx context.Context, db *sql.DB, log *zap.Logger) error {
	start := time.Now()

	var exists bool
	if err := db.QueryRowContext(ctx, "SELECT to_regclass('public.documents') IS NOT NULL").Scan(&exists); err != nil {
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		log.Info("schema already exists, skipping migration",
			zap.String("component", "database"),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return nil
	}

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.Error("migration step failed",
				zap.String("component", "database"),
				zap.String("migration_step", step.Name),
				zap.Error(err),
			)
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}
		log.Info("migration step applied",
			zap.String("component", "database"),
			zap.String("migration_step", step.Name),
			zap.Int64("step_duration_ms", time.Since(stepStart).Milliseconds()),
		)
	}

	log.Info("migration complete",
		zap.String("component", "database"),
		zap.Int64("duration_ms", time.Since(start).Milliseconds()),
	)
	return nil
}
