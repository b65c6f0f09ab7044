//go:build unit || e2e

package dbtest

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by both *pgxpool.Pool and a pgx.Tx.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// SessionRow is the raw checkout_sessions row as stored.
type SessionRow struct {
	SelectedPromotion *string
	AppliedVoucher    *string
	VoucherInput      string
	VoucherError      *string
	UpdatedAt         time.Time
}

func SeedSession(t *testing.T, db DBLike, userID uuid.UUID, promotionCode, voucherInput, voucherErr string) {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		INSERT INTO checkout_sessions (user_id, selected_promotion, voucher_input, voucher_error, updated_at)
		VALUES ($1, NULLIF($2, ''), $3, NULLIF($4, ''), now())`,
		userID, promotionCode, voucherInput, voucherErr)
	require.NoError(t, err)
}

// LoadSession returns nil when the customer has no stored session.
func LoadSession(t *testing.T, db DBLike, userID uuid.UUID) *SessionRow {
	t.Helper()

	var row SessionRow
	err := db.QueryRow(context.Background(), `
		SELECT selected_promotion, applied_voucher::text, voucher_input, voucher_error, updated_at
		FROM checkout_sessions WHERE user_id = $1`, userID).
		Scan(&row.SelectedPromotion, &row.AppliedVoucher, &row.VoucherInput, &row.VoucherError, &row.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil
	}
	require.NoError(t, err)
	return &row
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables except the migration bookkeeping
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + ";")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
