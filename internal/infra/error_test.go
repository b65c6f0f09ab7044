//go:build unit

package infra_test

import (
	"database/sql"
	"testing"

	"petshop-checkout/internal/infra"
	"petshop-checkout/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want infra.RepositoryErrorKind
	}{
		{name: "pgx no rows", err: pgx.ErrNoRows, want: infra.KindNotFound},
		{name: "sql no rows", err: sql.ErrNoRows, want: infra.KindNotFound},
		{name: "wrapped no rows", err: errs.Wrap(pgx.ErrNoRows, "scan"), want: infra.KindNotFound},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, want: infra.KindDuplicateKey},
		{name: "foreign key violation", err: &pgconn.PgError{Code: "23503"}, want: infra.KindForeignKeyViolated},
		{name: "other pg error", err: &pgconn.PgError{Code: "42P01"}, want: infra.KindDBFailure},
		{name: "plain error", err: assert.AnError, want: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := infra.WrapRepoErr("failed", tt.err)

			assert.True(t, infra.IsKind(err, tt.want))
			assert.Contains(t, err.Error(), "failed")
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestNotFound(t *testing.T) {
	err := infra.NotFound("checkout session not found")

	assert.True(t, infra.IsKind(err, infra.KindNotFound))
	assert.False(t, infra.IsKind(err, infra.KindDBFailure))
	assert.Equal(t, "NOT_FOUND: checkout session not found", err.Error())
}

func TestIsKind_ThroughWrapping(t *testing.T) {
	err := errs.Wrap(infra.NotFound("missing"), "load")

	assert.True(t, infra.IsKind(err, infra.KindNotFound))
	assert.False(t, infra.IsKind(assert.AnError, infra.KindNotFound))
}
