//go:build unit

package shared_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"petshop-checkout/internal/domain/cart"
	"petshop-checkout/internal/domain/order"
	"petshop-checkout/internal/domain/voucher"
	"petshop-checkout/internal/infra"
	"petshop-checkout/internal/pkg/clock"
	"petshop-checkout/internal/pkg/errs"
	"petshop-checkout/internal/usecase/shared"
	"petshop-checkout/tests/common/builder"
	sharedmock "petshop-checkout/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type runnerFixture struct {
	carts    *sharedmock.MockCartSource
	catalog  *sharedmock.MockPromotionCatalog
	sessions *sharedmock.MockSessionRepository
	clock    *clock.MockClock
	runner   *shared.SessionRunner
}

func newRunnerFixture(t *testing.T) *runnerFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &runnerFixture{
		carts:    sharedmock.NewMockCartSource(ctrl),
		catalog:  sharedmock.NewMockPromotionCatalog(ctrl),
		sessions: sharedmock.NewMockSessionRepository(ctrl),
		clock:    clock.NewMockClock(builder.Now),
	}
	f.runner = shared.NewSessionRunner(f.carts, f.catalog, f.sessions, f.clock, builder.Amount(0))
	return f
}

func (f *runnerFixture) expectLoad(subtotal int64, stored *shared.CheckoutSession) {
	snap := builder.NewCartBuilder().WithSubtotal(subtotal).MustBuildDomain()
	f.carts.EXPECT().GetCart(gomock.Any(), gomock.Any()).Return(snap, nil)
	f.catalog.EXPECT().FetchPromotions(gomock.Any()).Return(builder.Catalog(), nil)
	if stored == nil {
		f.sessions.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, infra.NotFound("checkout session"))
		return
	}
	f.sessions.EXPECT().Get(gomock.Any(), stored.UserID).Return(stored, nil)
}

func TestSessionRunner_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("fresh session with nothing to reconcile is not saved", func(t *testing.T) {
		f := newRunnerFixture(t)
		f.expectLoad(1_000_000, nil)

		summary, err := f.runner.Run(ctx, uuid.New(), nil)

		require.NoError(t, err)
		assert.True(t, builder.Amount(1_000_000).Equal(summary.FinalTotal))
		assert.Nil(t, summary.SelectedPromotion)
		assert.Nil(t, summary.VoucherError)
		assert.Len(t, summary.Items, 1)
	})

	t.Run("ineligible stored promotion is dropped and saved", func(t *testing.T) {
		f := newRunnerFixture(t)
		userID := uuid.New()
		stored := &shared.CheckoutSession{UserID: userID, SelectedPromotion: "SUMMER10"}
		f.expectLoad(400_000, stored)

		f.sessions.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s *shared.CheckoutSession) error {
				assert.Equal(t, userID, s.UserID)
				assert.Empty(t, s.SelectedPromotion)
				assert.Equal(t, builder.Now, s.UpdatedAt)
				return nil
			})

		summary, err := f.runner.Run(ctx, userID, nil)

		require.NoError(t, err)
		assert.Nil(t, summary.SelectedPromotion)
		assert.True(t, summary.PromotionDiscount.IsZero())
	})

	t.Run("mutate error still saves the slots", func(t *testing.T) {
		f := newRunnerFixture(t)
		f.expectLoad(1_000_000, nil)
		rejected := errors.New("rejected")

		f.sessions.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s *shared.CheckoutSession) error {
				assert.Equal(t, "FLAT200K", s.SelectedPromotion)
				return nil
			})

		summary, err := f.runner.Run(ctx, uuid.New(), func(_ context.Context, p *shared.Pass) error {
			_, _ = p.Engine.SelectPromotion("FLAT200K")
			return rejected
		})

		require.ErrorIs(t, err, rejected)
		assert.Nil(t, summary)
	})

	t.Run("discard deletes instead of saving", func(t *testing.T) {
		f := newRunnerFixture(t)
		userID := uuid.New()
		f.expectLoad(1_000_000, &shared.CheckoutSession{UserID: userID, SelectedPromotion: "SUMMER10"})
		f.sessions.EXPECT().Delete(gomock.Any(), userID).Return(nil)

		summary, err := f.runner.Run(ctx, userID, func(_ context.Context, p *shared.Pass) error {
			p.Engine.ClearPromotion()
			p.Discard()
			return nil
		})

		require.NoError(t, err)
		require.NotNil(t, summary)
	})

	t.Run("cart failure is upstream unavailable", func(t *testing.T) {
		f := newRunnerFixture(t)
		f.carts.EXPECT().GetCart(gomock.Any(), gomock.Any()).Return(cart.Snapshot{}, errors.New("dial tcp: refused"))

		_, err := f.runner.Run(ctx, uuid.New(), nil)

		require.Error(t, err)
		assert.True(t, errs.Is(err, shared.ErrUpstreamUnavailable), "got %v", err)
	})

	t.Run("expired login passes through", func(t *testing.T) {
		f := newRunnerFixture(t)
		f.carts.EXPECT().GetCart(gomock.Any(), gomock.Any()).Return(cart.Snapshot{}, order.ErrAuthRequired)

		_, err := f.runner.Run(ctx, uuid.New(), nil)

		require.ErrorIs(t, err, order.ErrAuthRequired)
		assert.False(t, errs.Is(err, shared.ErrUpstreamUnavailable))
	})

	t.Run("session store failure", func(t *testing.T) {
		f := newRunnerFixture(t)
		f.carts.EXPECT().GetCart(gomock.Any(), gomock.Any()).Return(builder.NewCartBuilder().MustBuildDomain(), nil)
		f.catalog.EXPECT().FetchPromotions(gomock.Any()).Return(builder.Catalog(), nil)
		f.sessions.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, infra.WrapRepoErr("get session", errors.New("conn closed")))

		_, err := f.runner.Run(ctx, uuid.New(), nil)

		require.Error(t, err)
		assert.True(t, errs.Is(err, shared.ErrSessionStoreFailed))
	})

	t.Run("percentage voucher amount follows the live cart", func(t *testing.T) {
		f := newRunnerFixture(t)
		userID := uuid.New()
		f.expectLoad(400_000, &shared.CheckoutSession{
			UserID: userID,
			AppliedVoucher: &voucher.Applied{
				VoucherID:      3,
				Code:           "PET10",
				DiscountType:   voucher.DiscountPercentage,
				DiscountValue:  builder.Amount(10),
				DiscountAmount: builder.Amount(100_000),
			},
		})
		f.sessions.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s *shared.CheckoutSession) error {
				require.NotNil(t, s.AppliedVoucher)
				assert.True(t, builder.Amount(40_000).Equal(s.AppliedVoucher.DiscountAmount))
				return nil
			})

		summary, err := f.runner.Run(ctx, userID, nil)

		require.NoError(t, err)
		require.NotNil(t, summary.AppliedVoucher)
		assert.True(t, builder.Amount(360_000).Equal(summary.FinalTotal))
	})
}

func TestSessionRunner_SerialisesPerUser(t *testing.T) {
	f := newRunnerFixture(t)
	userID := uuid.New()
	snap := builder.NewCartBuilder().MustBuildDomain()
	f.carts.EXPECT().GetCart(gomock.Any(), userID).Return(snap, nil).Times(2)
	f.catalog.EXPECT().FetchPromotions(gomock.Any()).Return(builder.Catalog(), nil).Times(2)
	f.sessions.EXPECT().Get(gomock.Any(), userID).Return(nil, infra.NotFound("checkout session")).Times(2)

	var inside, maxInside int32
	mutate := func(context.Context, *shared.Pass) error {
		n := atomic.AddInt32(&inside, 1)
		if n > atomic.LoadInt32(&maxInside) {
			atomic.StoreInt32(&maxInside, n)
		}
		time.Sleep(20 * time.Millisecond)
		atomic.AddInt32(&inside, -1)
		return nil
	}

	var wg sync.WaitGroup
	for range 2 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.runner.Run(context.Background(), userID, mutate)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&maxInside))
}

func TestKeyedMutex(t *testing.T) {
	m := shared.NewKeyedMutex()
	a, b := uuid.New(), uuid.New()

	unlockA := m.Lock(a)
	done := make(chan struct{})
	go func() {
		unlock := m.Lock(b)
		unlock()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock on another key blocked")
	}
	unlockA()

	unlockA = m.Lock(a)
	unlockA()
}
