package migration

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"
)

type migrationStep struct {
	Name string
	SQL  string
}

// The status CHECK mirrors the API-level enum so a buggy or bypassing writer
// can never persist a third state.
var steps = []migrationStep{
	{
		Name: "create_table_admins",
		SQL: `CREATE TABLE IF NOT EXISTS admins (
  id            SERIAL      PRIMARY KEY,
  username      TEXT        NOT NULL UNIQUE,
  email         TEXT        NOT NULL UNIQUE,
  password_hash TEXT        NOT NULL
);`,
	},
	{
		Name: "create_table_service_requests",
		SQL: `CREATE TABLE IF NOT EXISTS service_requests (
  id            SERIAL      PRIMARY KEY,
  name          TEXT        NOT NULL,
  phone         TEXT        NOT NULL,
  service_type  TEXT        NOT NULL,
  message       TEXT,
  document_file TEXT,
  status        TEXT        NOT NULL DEFAULT 'Pending' CHECK (status IN ('Pending', 'Completed')),
  created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_notices",
		SQL: `CREATE TABLE IF NOT EXISTS notices (
  id         SERIAL      PRIMARY KEY,
  title      TEXT        NOT NULL,
  message    TEXT        NOT NULL,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_service_requests_created_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_service_requests_created_at ON service_requests (created_at DESC, id DESC);`,
	},
	{
		Name: "create_index_notices_created_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_notices_created_at ON notices (created_at DESC, id DESC);`,
	},
}

// EnsureMigrated checks whether the schema exists and creates it if not.
// The admins table is the sentinel; every step is idempotent anyway.
func EnsureMigrated(ctx context.Context, db *sql.DB, dbHost string) error {
	start := time.Now()

	var exists bool
	if err := db.QueryRowContext(ctx, "SELECT to_regclass('public.admins') IS NOT NULL").Scan(&exists); err != nil {
		logJSON(map[string]any{
			"component":     "database",
			"event":         "db_migration_failed",
			"status":        "error",
			"error_message": fmt.Sprintf("failed to check sentinel table: %v", err),
			"db_host":       dbHost,
			"duration_ms":   time.Since(start).Milliseconds(),
		})
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		logJSON(map[string]any{
			"component":   "database",
			"event":       "db_migration_skip",
			"status":      "success",
			"msg":         "schema already exists, skipping migration",
			"db_host":     dbHost,
			"duration_ms": time.Since(start).Milliseconds(),
		})
		return nil
	}

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			logJSON(map[string]any{
				"component":      "database",
				"event":          "db_migration_failed",
				"status":         "error",
				"migration_step": step.Name,
				"error_message":  err.Error(),
				"db_host":        dbHost,
				"duration_ms":    time.Since(start).Milliseconds(),
			})
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		logJSON(map[string]any{
			"component":        "database",
			"event":            "db_migration_step",
			"status":           "success",
			"migration_step":   step.Name,
			"db_host":          dbHost,
			"step_duration_ms": time.Since(stepStart).Milliseconds(),
		})
	}

	logJSON(map[string]any{
		"component":   "database",
		"event":       "db_migration_success",
		"status":      "success",
		"db_host":     dbHost,
		"duration_ms": time.Since(start).Milliseconds(),
	})

	return nil
}

func logJSON(data map[string]any) {
	data["ts"] = time.Now().UTC().Format(time.RFC3339Nano)
	if _, ok := data["level"]; !ok {
		if data["status"] == "error" {
			data["level"] = "error"
		} else {
			data["level"] = "info"
		}
	}

	b, err := json.Marshal(data)
	if err != nil {
		log.Printf("failed to marshal migration log: %v", err)
		return
	}
	log.SetFlags(0)
	log.Println(string(b))
}
