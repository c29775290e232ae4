package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/agb-hr/attendance-backend-go/internal/pkg/database"
)

const schema = `
CREATE TABLE IF NOT EXISTS employees (
	id              UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	employee_number TEXT NOT NULL UNIQUE,
	full_name       TEXT NOT NULL,
	shift_names     TEXT[],
	created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	deleted_at      TIMESTAMPTZ
);

CREATE TABLE IF NOT EXISTS attendances (
	id           UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	employee_id  UUID NOT NULL REFERENCES employees(id),
	check_in     TIMESTAMPTZ,
	check_out    TIMESTAMPTZ,
	late_display TEXT
);

CREATE TABLE IF NOT EXISTS leave_requests (
	id               UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	employee_id      UUID NOT NULL REFERENCES employees(id),
	date_from        DATE NOT NULL,
	date_to          DATE NOT NULL,
	state            TEXT NOT NULL,
	number_of_days   NUMERIC(6, 2) NOT NULL,
	is_half_day      BOOLEAN NOT NULL DEFAULT FALSE,
	half_day_period  TEXT,
	leave_type_name  TEXT NOT NULL,
	first_approver   TEXT,
	second_approvers TEXT[],
	reason           TEXT,
	created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS public_holidays (
	id          UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	name        TEXT NOT NULL,
	date_from   TIMESTAMPTZ NOT NULL,
	date_to     TIMESTAMPTZ NOT NULL,
	resource_id UUID
);

CREATE TABLE IF NOT EXISTS employee_logins (
	id               UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	employee_id      UUID NOT NULL UNIQUE REFERENCES employees(id),
	password_hash    TEXT NOT NULL,
	login_token_hash TEXT UNIQUE,
	failed_attempts  INT NOT NULL DEFAULT 0,
	last_failed_at   TIMESTAMPTZ,
	last_login_at    TIMESTAMPTZ,
	created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

// TestDatabaseSetup holds the connection used by the repository tests.
type TestDatabaseSetup struct {
	DB *database.DB
}

// NewTestDatabase connects to TEST_DATABASE_URL and applies the schema. The test is skipped
// when the variable is not set.
func NewTestDatabase(t *testing.T) *TestDatabaseSetup {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	db, err := database.NewPostgreSQLDB(ctx, dsn, database.PoolOptions{MaxConns: 4, MinConns: 1})
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}
	if _, err := db.Exec(ctx, schema); err != nil {
		db.Close()
		t.Fatalf("failed to apply schema: %v", err)
	}

	setup := &TestDatabaseSetup{DB: db}
	if err := setup.TruncateAllTables(ctx); err != nil {
		db.Close()
		t.Fatalf("failed to truncate tables: %v", err)
	}
	t.Cleanup(setup.Close)
	return setup
}

// TruncateAllTables removes all rows.
func (s *TestDatabaseSetup) TruncateAllTables(ctx context.Context) error {
	tx, err := s.DB.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tables := []string{
		"employee_logins",
		"attendances",
		"leave_requests",
		"public_holidays",
		"employees",
	}

	for _, table := range tables {
		_, err := tx.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		if err != nil {
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	return tx.Commit(ctx)
}

func (s *TestDatabaseSetup) Close() {
	s.DB.Close()
}
