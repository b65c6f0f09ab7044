package repository

import (
	"context"
	"time"

	"petshop-checkout/internal/infra"
	"petshop-checkout/internal/infra/repository/converter"
	"petshop-checkout/internal/pkg/pgconv"
	"petshop-checkout/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const getCheckoutSession = `
SELECT COALESCE(selected_promotion, ''),
       COALESCE(applied_voucher::text, ''),
       voucher_input,
       COALESCE(voucher_error, ''),
       updated_at
FROM checkout_sessions
WHERE user_id = $1`

const upsertCheckoutSession = `
INSERT INTO checkout_sessions (user_id, selected_promotion, applied_voucher, voucher_input, voucher_error, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (user_id) DO UPDATE SET
    selected_promotion = EXCLUDED.selected_promotion,
    applied_voucher    = EXCLUDED.applied_voucher,
    voucher_input      = EXCLUDED.voucher_input,
    voucher_error      = EXCLUDED.voucher_error,
    updated_at         = EXCLUDED.updated_at`

const deleteCheckoutSession = `DELETE FROM checkout_sessions WHERE user_id = $1`

type CheckoutSessionRepository struct {
	db DBTX
}

func NewCheckoutSessionRepository(db DBTX) *CheckoutSessionRepository {
	return &CheckoutSessionRepository{db: db}
}

func (r *CheckoutSessionRepository) Get(ctx context.Context, userID uuid.UUID) (*shared.CheckoutSession, error) {
	var (
		selected, voucherJSON, input, voucherErr string
		updatedAt                                time.Time
	)
	err := r.db.QueryRow(ctx, getCheckoutSession, userID).
		Scan(&selected, &voucherJSON, &input, &voucherErr, &updatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get checkout session", err)
	}

	applied, err := converter.AppliedVoucherFromJSON(voucherJSON)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode checkout session", err)
	}

	return &shared.CheckoutSession{
		UserID:            userID,
		SelectedPromotion: selected,
		AppliedVoucher:    applied,
		VoucherInput:      input,
		VoucherError:      voucherErr,
		UpdatedAt:         updatedAt,
	}, nil
}

func (r *CheckoutSessionRepository) Save(ctx context.Context, session *shared.CheckoutSession) error {
	voucherJSON, err := converter.AppliedVoucherToJSON(session.AppliedVoucher)
	if err != nil {
		return infra.WrapRepoErr("failed to encode checkout session", err)
	}

	_, err = r.db.Exec(ctx, upsertCheckoutSession,
		session.UserID,
		pgconv.StringToNullableText(session.SelectedPromotion),
		voucherJSON,
		session.VoucherInput,
		pgconv.StringToNullableText(session.VoucherError),
		pgconv.TimeToPgtype(session.UpdatedAt),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to save checkout session", err)
	}
	return nil
}

func (r *CheckoutSessionRepository) Delete(ctx context.Context, userID uuid.UUID) error {
	tag, err := r.db.Exec(ctx, deleteCheckoutSession, userID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete checkout session", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NotFound("checkout session not found")
	}
	return nil
}
