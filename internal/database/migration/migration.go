package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"portfolioapi/internal/logging"
)

type migrationStep struct {
	Name string
	SQL  string
}

// SentinelTable is created by the last step, so it only exists once every
// earlier step has succeeded. A partially applied schema is re-run in full.
const SentinelTable = "schema_info"

const placementColumns = `
  is_published BOOLEAN     NOT NULL DEFAULT TRUE,
  sort_order   INTEGER     NOT NULL DEFAULT 0 CHECK (sort_order >= 0),`

var steps = []migrationStep{
	{
		Name: "create_table_site_profile",
		SQL: `CREATE TABLE IF NOT EXISTS site_profile (
  id                  SMALLINT    PRIMARY KEY DEFAULT 1 CHECK (id = 1),
  name                TEXT        NOT NULL DEFAULT '',
  title               TEXT        NOT NULL DEFAULT '',
  location            TEXT        NOT NULL DEFAULT '',
  email               TEXT        NOT NULL DEFAULT '',
  phone               TEXT        NOT NULL DEFAULT '',
  nationality         TEXT        NOT NULL DEFAULT '',
  current_focus       TEXT        NOT NULL DEFAULT '',
  summary             TEXT        NOT NULL DEFAULT '',
  resume_text         TEXT        NOT NULL DEFAULT '',
  passion_text        TEXT        NOT NULL DEFAULT '',
  collaboration_blurb TEXT        NOT NULL DEFAULT '',
  hero_image          TEXT        NOT NULL DEFAULT '',
  cv_document         TEXT        NOT NULL DEFAULT '',
  updated_at          TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_site_texts",
		SQL: `CREATE TABLE IF NOT EXISTS site_texts (
  key        TEXT        PRIMARY KEY CHECK (key IN ('resume', 'passion')),
  title      TEXT        NOT NULL DEFAULT '',
  content    TEXT        NOT NULL DEFAULT '',
  updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_highlight_stats",
		SQL: `CREATE TABLE IF NOT EXISTS highlight_stats (
  id           BIGSERIAL   PRIMARY KEY,` + placementColumns + `
  label        TEXT        NOT NULL,
  value        TEXT        NOT NULL
);`,
	},
	{
		Name: "create_table_story_items",
		SQL: `CREATE TABLE IF NOT EXISTS story_items (
  id           BIGSERIAL   PRIMARY KEY,` + placementColumns + `
  year         TEXT        NOT NULL,
  title        TEXT        NOT NULL,
  detail       TEXT        NOT NULL
);`,
	},
	{
		Name: "create_table_experience_items",
		SQL: `CREATE TABLE IF NOT EXISTS experience_items (
  id           BIGSERIAL   PRIMARY KEY,` + placementColumns + `
  role         TEXT        NOT NULL,
  organization TEXT        NOT NULL,
  period       TEXT        NOT NULL,
  location     TEXT        NOT NULL DEFAULT '',
  description  TEXT        NOT NULL DEFAULT ''
);`,
	},
	{
		Name: "create_table_experience_highlights",
		SQL: `CREATE TABLE IF NOT EXISTS experience_highlights (
  id            BIGSERIAL PRIMARY KEY,
  experience_id BIGINT    NOT NULL REFERENCES experience_items (id) ON DELETE CASCADE,
  sort_order    INTEGER   NOT NULL DEFAULT 0 CHECK (sort_order >= 0),
  text          TEXT      NOT NULL
);`,
	},
	{
		Name: "create_table_education_items",
		SQL: `CREATE TABLE IF NOT EXISTS education_items (
  id           BIGSERIAL   PRIMARY KEY,` + placementColumns + `
  degree       TEXT        NOT NULL,
  field        TEXT        NOT NULL,
  institution  TEXT        NOT NULL,
  year         TEXT        NOT NULL DEFAULT ''
);`,
	},
	{
		Name: "create_table_program_items",
		SQL: `CREATE TABLE IF NOT EXISTS program_items (
  id           BIGSERIAL   PRIMARY KEY,` + placementColumns + `
  title        TEXT        NOT NULL,
  organization TEXT        NOT NULL DEFAULT '',
  period       TEXT        NOT NULL DEFAULT ''
);`,
	},
	{
		Name: "create_table_skill_items",
		SQL: `CREATE TABLE IF NOT EXISTS skill_items (
  id           BIGSERIAL   PRIMARY KEY,` + placementColumns + `
  category     TEXT        NOT NULL CHECK (category IN ('core', 'technical', 'language', 'interest')),
  label        TEXT        NOT NULL
);`,
	},
	{
		Name: "create_table_publication_items",
		SQL: `CREATE TABLE IF NOT EXISTS publication_items (
  id           BIGSERIAL   PRIMARY KEY,` + placementColumns + `
  title        TEXT        NOT NULL,
  year         TEXT        NOT NULL DEFAULT '',
  item_type    TEXT        NOT NULL DEFAULT '',
  status       TEXT        NOT NULL DEFAULT '',
  summary      TEXT        NOT NULL DEFAULT '',
  external_url TEXT        NOT NULL DEFAULT '',
  document     TEXT        NOT NULL DEFAULT '',
  cover_image  TEXT        NOT NULL DEFAULT ''
);`,
	},
	{
		Name: "create_table_idea_items",
		SQL: `CREATE TABLE IF NOT EXISTS idea_items (
  id           BIGSERIAL   PRIMARY KEY,` + placementColumns + `
  title        TEXT        NOT NULL,
  stage        TEXT        NOT NULL DEFAULT '',
  summary      TEXT        NOT NULL DEFAULT '',
  impact       TEXT        NOT NULL DEFAULT '',
  external_url TEXT        NOT NULL DEFAULT '',
  document     TEXT        NOT NULL DEFAULT '',
  cover_image  TEXT        NOT NULL DEFAULT ''
);`,
	},
	{
		Name: "create_table_media_assets",
		SQL: `CREATE TABLE IF NOT EXISTS media_assets (
  id           BIGSERIAL   PRIMARY KEY,` + placementColumns + `
  title        TEXT        NOT NULL,
  caption      TEXT        NOT NULL DEFAULT '',
  asset_type   TEXT        NOT NULL CHECK (asset_type IN ('image', 'document')),
  section      TEXT        NOT NULL DEFAULT 'general'
               CHECK (section IN ('general', 'home', 'story', 'work', 'research', 'library')),
  file         TEXT        NOT NULL
);`,
	},
	{
		Name: "create_table_blog_items",
		SQL: `CREATE TABLE IF NOT EXISTS blog_items (
  id           BIGSERIAL   PRIMARY KEY,` + placementColumns + `
  category     TEXT        NOT NULL CHECK (category IN ('news', 'articles', 'insights')),
  title        TEXT        NOT NULL,
  summary      TEXT        NOT NULL DEFAULT '',
  content      TEXT        NOT NULL DEFAULT '',
  external_url TEXT        NOT NULL DEFAULT '',
  published_on DATE
);`,
	},
	{
		Name: "create_table_contact_messages",
		SQL: `CREATE TABLE IF NOT EXISTS contact_messages (
  id          BIGSERIAL   PRIMARY KEY,
  name        TEXT        NOT NULL DEFAULT '',
  email       TEXT        NOT NULL DEFAULT '',
  subject     TEXT        NOT NULL DEFAULT '',
  message     TEXT        NOT NULL DEFAULT '',
  received_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_skill_items_order",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_skill_items_order ON skill_items (category, sort_order, id);`,
	},
	{
		Name: "create_index_media_assets_order",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_media_assets_order ON media_assets (section, sort_order, id);`,
	},
	{
		Name: "create_index_blog_items_order",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_blog_items_order ON blog_items (category, sort_order, id);`,
	},
	{
		Name: "create_index_experience_highlights_parent",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_experience_highlights_parent ON experience_highlights (experience_id, sort_order, id);`,
	},
	{
		Name: "create_index_contact_messages_received_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_contact_messages_received_at ON contact_messages (received_at);`,
	},
	{
		Name: "create_table_schema_info",
		SQL: `CREATE TABLE IF NOT EXISTS schema_info (
  completed_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
}

// EnsureMigrated checks if the sentinel table exists and runs migrations if it doesn't.
func EnsureMigrated(ctx context.Context, db *sql.DB, log logging.Logger, dbHost string) error {
	start := time.Now()
	log = log.With("component", "database", "db_host", dbHost)

	log.Info(ctx, "db_migration_check", "status", "starting")

	var exists bool
	query := "SELECT to_regclass('public." + SentinelTable + "') IS NOT NULL"
	if err := db.QueryRowContext(ctx, query).Scan(&exists); err != nil {
		log.Error(ctx, "db_migration_failed",
			"status", "error",
			"error_message", fmt.Sprintf("failed to check sentinel table: %v", err),
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		log.Info(ctx, "db_migration_skip",
			"status", "success",
			"detail", "schema already exists, skipping migration",
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return nil
	}

	log.Info(ctx, "db_migration_start", "status", "in_progress")

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.Error(ctx, "db_migration_failed",
				"status", "error",
				"migration_step", step.Name,
				"error_message", err.Error(),
				"duration_ms", time.Since(start).Milliseconds(),
				"step_duration_ms", time.Since(stepStart).Milliseconds(),
			)
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		log.Info(ctx, "db_migration_step",
			"status", "success",
			"migration_step", step.Name,
			"step_duration_ms", time.Since(stepStart).Milliseconds(),
		)
	}

	log.Info(ctx, "db_migration_success",
		"status", "success",
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return nil
}
