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

var steps = []migrationStep{
	{
		Name: "create_extension_uuid_ossp",
		SQL:  `CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	},
	{
		Name: "create_table_locations",
		SQL: `CREATE TABLE IF NOT EXISTS locations (
  id            UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  name          TEXT        NOT NULL UNIQUE,
  code          TEXT        NOT NULL UNIQUE,
  address_line1 TEXT        NOT NULL DEFAULT '',
  address_line2 TEXT        NOT NULL DEFAULT '',
  city          TEXT        NOT NULL DEFAULT '',
  state         TEXT        NOT NULL DEFAULT '',
  country       TEXT        NOT NULL DEFAULT '',
  postal_code   TEXT        NOT NULL DEFAULT '',
  location_type TEXT        NOT NULL DEFAULT 'OFFICE',
  is_active     BOOLEAN     NOT NULL DEFAULT TRUE,
  created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
  deleted_at    TIMESTAMPTZ
);`,
	},
	{
		Name: "create_table_departments",
		SQL: `CREATE TABLE IF NOT EXISTS departments (
  id          UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  name        TEXT        NOT NULL UNIQUE,
  code        TEXT        NOT NULL UNIQUE,
  description TEXT        NOT NULL DEFAULT '',
  head_id     UUID,
  is_active   BOOLEAN     NOT NULL DEFAULT TRUE,
  created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
  deleted_at  TIMESTAMPTZ
);`,
	},
	{
		Name: "create_table_users",
		SQL: `CREATE TABLE IF NOT EXISTS users (
  id               UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  username         TEXT        NOT NULL UNIQUE,
  email            TEXT        NOT NULL DEFAULT '',
  full_name        TEXT        NOT NULL DEFAULT '',
  password_hash    TEXT        NOT NULL,
  employee_id      TEXT        NOT NULL DEFAULT '',
  designation      TEXT        NOT NULL DEFAULT '',
  phone            TEXT        NOT NULL DEFAULT '',
  department_id    UUID        REFERENCES departments (id),
  location_id      UUID        REFERENCES locations (id),
  is_company_admin BOOLEAN     NOT NULL DEFAULT FALSE,
  is_approver      BOOLEAN     NOT NULL DEFAULT FALSE,
  is_custodian     BOOLEAN     NOT NULL DEFAULT FALSE,
  is_active        BOOLEAN     NOT NULL DEFAULT TRUE,
  created_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
  deleted_at       TIMESTAMPTZ
);`,
	},
	{
		Name: "create_table_categories",
		SQL: `CREATE TABLE IF NOT EXISTS categories (
  id          UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  name        TEXT        NOT NULL UNIQUE,
  code        TEXT        NOT NULL UNIQUE,
  description TEXT        NOT NULL DEFAULT '',
  parent_id   UUID        REFERENCES categories (id),
  is_active   BOOLEAN     NOT NULL DEFAULT TRUE,
  created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
  deleted_at  TIMESTAMPTZ
);`,
	},
	{
		Name: "create_table_vendors",
		SQL: `CREATE TABLE IF NOT EXISTS vendors (
  id             UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  name           TEXT        NOT NULL UNIQUE,
  code           TEXT        NOT NULL UNIQUE,
  contact_person TEXT        NOT NULL DEFAULT '',
  email          TEXT        NOT NULL DEFAULT '',
  phone          TEXT        NOT NULL DEFAULT '',
  address        TEXT        NOT NULL DEFAULT '',
  city           TEXT        NOT NULL DEFAULT '',
  state          TEXT        NOT NULL DEFAULT '',
  country        TEXT        NOT NULL DEFAULT '',
  postal_code    TEXT        NOT NULL DEFAULT '',
  tax_id         TEXT        NOT NULL DEFAULT '',
  vendor_type    TEXT        NOT NULL DEFAULT 'SUPPLIER',
  is_active      BOOLEAN     NOT NULL DEFAULT TRUE,
  created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
  deleted_at     TIMESTAMPTZ
);`,
	},
	{
		Name: "create_table_assets",
		SQL: `CREATE TABLE IF NOT EXISTS assets (
  id                    UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  asset_tag             TEXT        NOT NULL UNIQUE,
  qr_code               UUID        NOT NULL UNIQUE,
  qr_image_key          TEXT        NOT NULL DEFAULT '',
  name                  TEXT        NOT NULL,
  description           TEXT        NOT NULL DEFAULT '',
  make                  TEXT        NOT NULL DEFAULT '',
  model                 TEXT        NOT NULL DEFAULT '',
  serial_number         TEXT        NOT NULL DEFAULT '',
  category_id           UUID        NOT NULL REFERENCES categories (id),
  vendor_id             UUID        REFERENCES vendors (id),
  location_id           UUID        REFERENCES locations (id),
  department_id         UUID        REFERENCES departments (id),
  assigned_to           UUID        REFERENCES users (id),
  custodian_id          UUID        REFERENCES users (id),
  status                TEXT        NOT NULL DEFAULT 'PLANNING',
  condition             TEXT        NOT NULL DEFAULT 'GOOD',
  purchase_order_number TEXT        NOT NULL DEFAULT '',
  purchase_date         DATE,
  purchase_price        NUMERIC(15,2) CHECK (purchase_price >= 0),
  invoice_number        TEXT        NOT NULL DEFAULT '',
  warranty_end_date     DATE,
  amc_vendor_id         UUID        REFERENCES vendors (id),
  amc_end_date          DATE,
  amc_cost              NUMERIC(15,2) CHECK (amc_cost >= 0),
  depreciation_rate     NUMERIC(5,2),
  salvage_value         NUMERIC(15,2) CHECK (salvage_value >= 0),
  useful_life_years     INTEGER,
  notes                 TEXT        NOT NULL DEFAULT '',
  is_critical           BOOLEAN     NOT NULL DEFAULT FALSE,
  is_insured            BOOLEAN     NOT NULL DEFAULT FALSE,
  created_at            TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at            TIMESTAMPTZ NOT NULL DEFAULT now(),
  deleted_at            TIMESTAMPTZ
);`,
	},
	{
		Name: "create_index_assets_status",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_assets_status ON assets (status);`,
	},
	{
		Name: "create_index_assets_category",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_assets_category ON assets (category_id);`,
	},
	{
		Name: "create_index_assets_location",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_assets_location ON assets (location_id);`,
	},
	{
		Name: "create_table_asset_documents",
		SQL: `CREATE TABLE IF NOT EXISTS asset_documents (
  id            UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  asset_id      UUID        NOT NULL REFERENCES assets (id) ON DELETE CASCADE,
  document_type TEXT        NOT NULL,
  title         TEXT        NOT NULL,
  storage_path  TEXT        NOT NULL UNIQUE,
  size          BIGINT      NOT NULL CHECK (size >= 0),
  content_type  TEXT        NOT NULL,
  uploaded_by   UUID        REFERENCES users (id),
  created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_asset_history",
		SQL: `CREATE TABLE IF NOT EXISTS asset_history (
  id               UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  asset_id         UUID        NOT NULL REFERENCES assets (id) ON DELETE CASCADE,
  action_type      TEXT        NOT NULL,
  action_date      TIMESTAMPTZ NOT NULL DEFAULT now(),
  performed_by     UUID        REFERENCES users (id),
  old_value        TEXT        NOT NULL DEFAULT '',
  new_value        TEXT        NOT NULL DEFAULT '',
  from_location_id UUID        REFERENCES locations (id),
  to_location_id   UUID        REFERENCES locations (id),
  from_user_id     UUID        REFERENCES users (id),
  to_user_id       UUID        REFERENCES users (id),
  remarks          TEXT        NOT NULL DEFAULT ''
);`,
	},
	{
		Name: "create_index_asset_history_asset",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_asset_history_asset ON asset_history (asset_id, action_date DESC);`,
	},
	{
		Name: "create_table_asset_transfers",
		SQL: `CREATE TABLE IF NOT EXISTS asset_transfers (
  id                 UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  asset_id           UUID        NOT NULL REFERENCES assets (id) ON DELETE CASCADE,
  transfer_number    TEXT        NOT NULL UNIQUE,
  from_user_id       UUID        REFERENCES users (id),
  from_location_id   UUID        REFERENCES locations (id),
  from_department_id UUID        REFERENCES departments (id),
  to_user_id         UUID        REFERENCES users (id),
  to_location_id     UUID        REFERENCES locations (id),
  to_department_id   UUID        REFERENCES departments (id),
  requested_by       UUID        REFERENCES users (id),
  requested_date     TIMESTAMPTZ NOT NULL DEFAULT now(),
  reason             TEXT        NOT NULL,
  status             TEXT        NOT NULL DEFAULT 'PENDING',
  approved_by        UUID        REFERENCES users (id),
  approval_date      TIMESTAMPTZ,
  approval_remarks   TEXT        NOT NULL DEFAULT '',
  completed_by       UUID        REFERENCES users (id),
  completed_date     TIMESTAMPTZ
);`,
	},
	{
		Name: "create_index_asset_transfers_status",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_asset_transfers_status ON asset_transfers (status, requested_date DESC);`,
	},
	{
		Name: "create_table_asset_disposals",
		SQL: `CREATE TABLE IF NOT EXISTS asset_disposals (
  id                 UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  asset_id           UUID        NOT NULL REFERENCES assets (id) ON DELETE CASCADE,
  disposal_number    TEXT        NOT NULL UNIQUE,
  requested_by       UUID        REFERENCES users (id),
  requested_date     TIMESTAMPTZ NOT NULL DEFAULT now(),
  reason             TEXT        NOT NULL,
  disposal_method    TEXT        NOT NULL,
  current_book_value NUMERIC(15,2),
  disposal_value     NUMERIC(15,2) NOT NULL DEFAULT 0,
  disposal_cost      NUMERIC(15,2) NOT NULL DEFAULT 0,
  status             TEXT        NOT NULL DEFAULT 'PENDING',
  approved_by        UUID        REFERENCES users (id),
  approval_date      TIMESTAMPTZ,
  approval_remarks   TEXT        NOT NULL DEFAULT '',
  completed_by       UUID        REFERENCES users (id),
  completed_date     TIMESTAMPTZ,
  buyer_details      TEXT        NOT NULL DEFAULT ''
);`,
	},
	{
		Name: "create_table_maintenance_types",
		SQL: `CREATE TABLE IF NOT EXISTS maintenance_types (
  id          UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  name        TEXT        NOT NULL UNIQUE,
  code        TEXT        NOT NULL UNIQUE,
  description TEXT        NOT NULL DEFAULT '',
  is_active   BOOLEAN     NOT NULL DEFAULT TRUE,
  created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
  deleted_at  TIMESTAMPTZ
);`,
	},
	{
		Name: "create_table_maintenance_requests",
		SQL: `CREATE TABLE IF NOT EXISTS maintenance_requests (
  id                  UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  request_number      TEXT        NOT NULL UNIQUE,
  asset_id            UUID        NOT NULL REFERENCES assets (id) ON DELETE CASCADE,
  maintenance_type_id UUID        NOT NULL REFERENCES maintenance_types (id),
  request_type        TEXT        NOT NULL DEFAULT 'BREAKDOWN',
  priority            TEXT        NOT NULL DEFAULT 'MEDIUM',
  status              TEXT        NOT NULL DEFAULT 'PENDING',
  requested_by        UUID        REFERENCES users (id),
  requested_date      TIMESTAMPTZ NOT NULL DEFAULT now(),
  issue_description   TEXT        NOT NULL,
  impact_description  TEXT        NOT NULL DEFAULT '',
  approved_by         UUID        REFERENCES users (id),
  approved_date       TIMESTAMPTZ,
  assigned_to         UUID        REFERENCES users (id),
  vendor_id           UUID        REFERENCES vendors (id),
  scheduled_date      DATE,
  started_date        TIMESTAMPTZ,
  completed_date      TIMESTAMPTZ,
  estimated_cost      NUMERIC(10,2) CHECK (estimated_cost >= 0),
  actual_cost         NUMERIC(10,2) CHECK (actual_cost >= 0),
  downtime_hours      NUMERIC(6,1),
  resolution_notes    TEXT        NOT NULL DEFAULT '',
  rejection_reason    TEXT        NOT NULL DEFAULT ''
);`,
	},
	{
		Name: "create_index_maintenance_requests_status",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_maintenance_requests_status ON maintenance_requests (status, requested_date DESC);`,
	},
	{
		Name: "create_table_maintenance_schedules",
		SQL: `CREATE TABLE IF NOT EXISTS maintenance_schedules (
  id                   UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  asset_id             UUID        NOT NULL REFERENCES assets (id) ON DELETE CASCADE,
  maintenance_type_id  UUID        NOT NULL REFERENCES maintenance_types (id),
  frequency            TEXT        NOT NULL,
  interval_days        INTEGER,
  start_date           DATE        NOT NULL,
  next_due_date        DATE        NOT NULL,
  last_completed_date  DATE,
  assigned_to          UUID        REFERENCES users (id),
  vendor_id            UUID        REFERENCES vendors (id),
  estimated_cost       NUMERIC(10,2) CHECK (estimated_cost >= 0),
  is_active            BOOLEAN     NOT NULL DEFAULT TRUE,
  send_reminder        BOOLEAN     NOT NULL DEFAULT TRUE,
  reminder_days_before INTEGER     NOT NULL DEFAULT 7,
  created_at           TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at           TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_maintenance_schedules_due",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_maintenance_schedules_due ON maintenance_schedules (next_due_date) WHERE is_active;`,
	},
	{
		Name: "create_table_audit_logs",
		SQL: `CREATE TABLE IF NOT EXISTS audit_logs (
  id             UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  user_id        UUID,
  username       TEXT        NOT NULL DEFAULT '',
  entity_type    TEXT        NOT NULL,
  entity_id      TEXT        NOT NULL DEFAULT '',
  object_repr    TEXT        NOT NULL DEFAULT '',
  action         TEXT        NOT NULL,
  description    TEXT        NOT NULL DEFAULT '',
  old_values     TEXT        NOT NULL DEFAULT '',
  new_values     TEXT        NOT NULL DEFAULT '',
  ip_address     TEXT        NOT NULL DEFAULT '',
  user_agent     TEXT        NOT NULL DEFAULT '',
  request_path   TEXT        NOT NULL DEFAULT '',
  request_method TEXT        NOT NULL DEFAULT '',
  timestamp      TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_audit_logs_timestamp",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_audit_logs_timestamp ON audit_logs (timestamp DESC);`,
	},
	{
		Name: "create_index_audit_logs_entity",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_audit_logs_entity ON audit_logs (entity_type, entity_id);`,
	},
}

// EnsureMigrated checks if the 'assets' table exists and runs migrations if it doesn't.
func EnsureMigrated(ctx context.Context, db *sql.DB, loc *time.Location, dbHost string) error {
	start := time.Now()

	logJSON(loc, map[string]any{
		"component": "database",
		"event":     "db_migration_check",
		"status":    "starting",
		"db_host":   dbHost,
	})

	var exists bool
	query := "SELECT to_regclass('assets') IS NOT NULL"
	err := db.QueryRowContext(ctx, query).Scan(&exists)
	if err != nil {
		logJSON(loc, map[string]any{
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
		logJSON(loc, map[string]any{
			"component":   "database",
			"event":       "db_migration_skip",
			"status":      "success",
			"msg":         "schema already exists, skipping migration",
			"db_host":     dbHost,
			"duration_ms": time.Since(start).Milliseconds(),
		})
		return nil
	}

	logJSON(loc, map[string]any{
		"component": "database",
		"event":     "db_migration_start",
		"status":    "in_progress",
		"db_host":   dbHost,
	})

	for _, step := range steps {
		stepStart := time.Now()
		_, err := db.ExecContext(ctx, step.SQL)
		if err != nil {
			logJSON(loc, map[string]any{
				"component":        "database",
				"event":            "db_migration_failed",
				"status":           "error",
				"migration_step":   step.Name,
				"error_message":    err.Error(),
				"db_host":          dbHost,
				"duration_ms":      time.Since(start).Milliseconds(),
				"step_duration_ms": time.Since(stepStart).Milliseconds(),
			})
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		logJSON(loc, map[string]any{
			"component":        "database",
			"event":            "db_migration_step",
			"status":           "success",
			"migration_step":   step.Name,
			"db_host":          dbHost,
			"step_duration_ms": time.Since(stepStart).Milliseconds(),
		})
	}

	logJSON(loc, map[string]any{
		"component":   "database",
		"event":       "db_migration_success",
		"status":      "success",
		"db_host":     dbHost,
		"duration_ms": time.Since(start).Milliseconds(),
	})

	return nil
}

func logJSON(loc *time.Location, data map[string]any) {
	data["ts"] = time.Now().In(loc).Format(time.RFC3339Nano)
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
