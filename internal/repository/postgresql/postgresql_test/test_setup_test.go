package postgresql_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/cmlabs-hris/payroll-report/internal/pkg/database"
	"github.com/cmlabs-hris/payroll-report/internal/repository/postgresql"
	"github.com/stretchr/testify/require"
)

// errRollback ends every test transaction so fixtures never persist
var errRollback = errors.New("rollback test transaction")

// Temp tables shadow any real ones for the lifetime of the transaction
var schema = []string{
	`CREATE TEMP TABLE companies (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		username TEXT NOT NULL,
		default_currency TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		deleted_at TIMESTAMPTZ
	) ON COMMIT DROP`,
	`CREATE TEMP TABLE employees (
		id UUID PRIMARY KEY,
		company_id UUID NOT NULL,
		hire_date DATE
	) ON COMMIT DROP`,
	`CREATE TEMP TABLE salary_components (
		company_id UUID NOT NULL,
		name TEXT NOT NULL,
		type TEXT NOT NULL
	) ON COMMIT DROP`,
	`CREATE TEMP TABLE salary_slips (
		id TEXT PRIMARY KEY,
		company_id UUID NOT NULL,
		employee_id UUID NOT NULL,
		employee_name TEXT NOT NULL,
		department TEXT,
		designation TEXT,
		start_date DATE NOT NULL,
		end_date DATE NOT NULL,
		currency TEXT NOT NULL,
		exchange_rate NUMERIC(21, 9) NOT NULL DEFAULT 1,
		gross_pay NUMERIC(18, 2) NOT NULL DEFAULT 0,
		total_deduction NUMERIC(18, 2) NOT NULL DEFAULT 0,
		net_pay NUMERIC(18, 2) NOT NULL DEFAULT 0,
		docstatus SMALLINT NOT NULL DEFAULT 0
	) ON COMMIT DROP`,
	`CREATE TEMP TABLE salary_details (
		salary_slip_id TEXT NOT NULL,
		parentfield TEXT NOT NULL,
		salary_component TEXT NOT NULL,
		amount NUMERIC(18, 2) NOT NULL,
		idx INT NOT NULL
	) ON COMMIT DROP`,
}

// newTestDatabase connects to TEST_DATABASE_URL or skips the test
func newTestDatabase(t *testing.T) *database.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := database.NewPostgreSQLDB(context.Background(), dsn, database.PoolOptions{MaxConns: 2})
	require.NoError(t, err, "failed to connect to test database")
	t.Cleanup(db.Close)
	return db
}

// withSchema runs fn in a transaction holding a fresh schema, then rolls
// it back.
func withSchema(t *testing.T, db *database.DB, fn func(ctx context.Context)) {
	t.Helper()
	err := postgresql.WithTransaction(context.Background(), db, func(ctx context.Context) error {
		q := postgresql.GetQuerier(ctx, db)
		for _, stmt := range schema {
			if _, err := q.Exec(ctx, stmt); err != nil {
				return err
			}
		}
		fn(ctx)
		return errRollback
	})
	require.ErrorIs(t, err, errRollback)
}

func mustExec(t *testing.T, ctx context.Context, db *database.DB, sql string, args ...interface{}) {
	t.Helper()
	_, err := postgresql.GetQuerier(ctx, db).Exec(ctx, sql, args...)
	require.NoError(t, err)
}
