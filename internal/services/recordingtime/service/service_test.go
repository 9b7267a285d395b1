package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"sayitanyway/internal/core/entitlement"
	"sayitanyway/internal/modkit"
	perr "sayitanyway/internal/platform/errors"
	"sayitanyway/internal/platform/logger"
	"sayitanyway/internal/platform/testkit"
	blobsdom "sayitanyway/internal/services/blobs/domain"
	"sayitanyway/internal/services/blobs/repo"
	dom "sayitanyway/internal/services/recordingtime/domain"
)

type tierStub struct {
	tier entitlement.Tier
	err  error
}

func (t *tierStub) CurrentTier(context.Context) (entitlement.Tier, error) { return t.tier, t.err }

type countingBlobs struct {
	*repo.Memory
	sets   int
	setErr error
}

func (c *countingBlobs) Set(ctx context.Context, k string, v json.RawMessage) error {
	if c.setErr != nil {
		return c.setErr
	}
	c.sets++
	return c.Memory.Set(ctx, k, v)
}

type fixture struct {
	svc   *Svc
	blobs *countingBlobs
	clock *testkit.Clock
	tier  *tierStub
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		blobs: &countingBlobs{Memory: repo.NewMemory()},
		clock: testkit.NewClock(time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)),
		tier:  &tierStub{tier: entitlement.TierFree},
	}
	deps := modkit.Deps{Log: logger.Nop()}.WithBlobs(f.blobs)
	f.svc = New(deps, f.tier, DefaultConfig(), WithClock(f.clock.Now))
	return f
}

func (f *fixture) seed(t *testing.T, rt dom.RecordingTime) {
	t.Helper()
	require.NoError(t, f.svc.SaveRecordingTime(context.Background(), rt))
}

func (f *fixture) stored(t *testing.T) dom.RecordingTime {
	t.Helper()
	rt, ok, err := blobsdom.Load[dom.RecordingTime](context.Background(), f.blobs, blobsdom.KeyRecordingTime)
	require.NoError(t, err)
	require.True(t, ok)
	return rt
}

func TestGetRecordingTime_DefaultsPersisted(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	rt, err := f.svc.GetRecordingTime(context.Background())
	require.NoError(t, err)
	require.Equal(t, dom.RecordingTime{FreeMonthly: 300, LastResetMonth: 3, LastResetYear: 2026}, rt)
	require.Equal(t, rt, f.stored(t))
}

func TestGetRecordingTime_MalformedTreatedAsAbsent(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	require.NoError(t, f.blobs.Memory.Set(context.Background(), blobsdom.KeyRecordingTime, json.RawMessage(`{"freeMonthly":`)))

	rt, err := f.svc.GetRecordingTime(context.Background())
	require.NoError(t, err)
	require.Equal(t, 300, rt.FreeMonthly)
	require.Equal(t, rt, f.stored(t))
}

func TestDeduct_Ordering(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.seed(t, dom.RecordingTime{FreeMonthly: 100, SubscriberMonthly: 200, PurchasedExtra: 300, LastResetMonth: 3, LastResetYear: 2026})

	ok, err := f.svc.DeductRecordingTime(context.Background(), 150)
	require.NoError(t, err)
	require.True(t, ok)

	rt := f.stored(t)
	require.Equal(t, 0, rt.FreeMonthly)
	require.Equal(t, 150, rt.SubscriberMonthly)
	require.Equal(t, 300, rt.PurchasedExtra)
}

func TestDeduct_SpillsIntoPurchased(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.seed(t, dom.RecordingTime{FreeMonthly: 10, SubscriberMonthly: 20, PurchasedExtra: 300, LastResetMonth: 3, LastResetYear: 2026})

	ok, err := f.svc.DeductRecordingTime(context.Background(), 100)
	require.NoError(t, err)
	require.True(t, ok)
	rt := f.stored(t)
	require.Equal(t, [3]int{0, 0, 230}, [3]int{rt.FreeMonthly, rt.SubscriberMonthly, rt.PurchasedExtra})
}

func TestDeduct_InsufficientLeavesPoolsUnchanged(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	seed := dom.RecordingTime{FreeMonthly: 20, SubscriberMonthly: 0, PurchasedExtra: 30, LastResetMonth: 3, LastResetYear: 2026}
	f.seed(t, seed)
	writes := f.blobs.sets

	ok, err := f.svc.DeductRecordingTime(context.Background(), 100)
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, writes, f.blobs.sets)

	rt, err := f.svc.GetRecordingTime(context.Background())
	require.NoError(t, err)
	require.Equal(t, seed, rt)
}

func TestDeduct_ZeroAndNegative(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	ok, err := f.svc.DeductRecordingTime(context.Background(), 0)
	require.NoError(t, err)
	require.True(t, ok)

	_, err = f.svc.DeductRecordingTime(context.Background(), -1)
	require.True(t, perr.IsCode(err, perr.ErrorCodeInvalidArgument))
}

func TestDeduct_ExactTotal(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.seed(t, dom.RecordingTime{FreeMonthly: 300, PurchasedExtra: 60, LastResetMonth: 3, LastResetYear: 2026})

	ok, err := f.svc.DeductRecordingTime(context.Background(), 360)
	require.NoError(t, err)
	require.True(t, ok)

	info, err := f.svc.GetNextPoolInfo(context.Background())
	require.NoError(t, err)
	require.Equal(t, dom.PoolInfo{Name: "None", Seconds: 0}, info)
}

func TestMonthlyReset_OncePerMonth(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.seed(t, dom.RecordingTime{FreeMonthly: 12, SubscriberMonthly: 0, PurchasedExtra: 40, LastResetMonth: 2, LastResetYear: 2026})

	rt, err := f.svc.GetRecordingTime(context.Background())
	require.NoError(t, err)
	require.Equal(t, 300, rt.FreeMonthly)
	require.Equal(t, 3, rt.LastResetMonth)

	// spend some, then read again in the same month: no second credit
	ok, err := f.svc.DeductRecordingTime(context.Background(), 100)
	require.NoError(t, err)
	require.True(t, ok)
	writes := f.blobs.sets

	rt, err = f.svc.GetRecordingTime(context.Background())
	require.NoError(t, err)
	require.Equal(t, 200, rt.FreeMonthly)
	require.Equal(t, writes, f.blobs.sets)
}

func TestMonthlyReset_PurchasedExtraRollsOver(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.seed(t, dom.RecordingTime{FreeMonthly: 0, SubscriberMonthly: 5, PurchasedExtra: 777, LastResetMonth: 3, LastResetYear: 2026})

	for _, months := range []int{1, 1, 13} {
		f.clock.AddMonths(months)
		rt, err := f.svc.GetRecordingTime(context.Background())
		require.NoError(t, err)
		require.Equal(t, 777, rt.PurchasedExtra)
		require.Equal(t, 300, rt.FreeMonthly)
		require.Equal(t, 0, rt.SubscriberMonthly)
	}
}

func TestMonthlyReset_SameMonthNextYear(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.seed(t, dom.RecordingTime{FreeMonthly: 1, LastResetMonth: 3, LastResetYear: 2025})

	rt, err := f.svc.GetRecordingTime(context.Background())
	require.NoError(t, err)
	require.Equal(t, 300, rt.FreeMonthly)
	require.Equal(t, 2026, rt.LastResetYear)
}

func TestMonthlyReset_SubscriberTier(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.tier.tier = entitlement.TierUnlocked
	f.seed(t, dom.RecordingTime{SubscriberMonthly: 10, LastResetMonth: 2, LastResetYear: 2026})

	rt, err := f.svc.GetRecordingTime(context.Background())
	require.NoError(t, err)
	require.Equal(t, 3600, rt.SubscriberMonthly)
}

func TestMonthlyReset_TierErrorPropagates(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.seed(t, dom.RecordingTime{LastResetMonth: 2, LastResetYear: 2026})
	f.tier.err = perr.Storagef("status unreadable")

	_, err := f.svc.GetRecordingTime(context.Background())
	require.True(t, perr.IsCode(err, perr.ErrorCodeStorage))
}

func TestPersistenceFailurePropagates(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.blobs.setErr = perr.Storagef("disk full")

	_, err := f.svc.GetRecordingTime(context.Background())
	require.True(t, perr.IsCode(err, perr.ErrorCodeStorage))

	_, err = f.svc.DeductRecordingTime(context.Background(), 1)
	require.Error(t, err)
}

func TestReadFailurePropagates(t *testing.T) {
	t.Parallel()
	boom := errors.New("io")
	deps := modkit.Deps{Log: logger.Nop()}.WithBlobs(failingGet{boom})
	_, err := New(deps, nil, DefaultConfig()).GetRecordingTime(context.Background())
	require.ErrorIs(t, err, boom)
}

type failingGet struct{ err error }

func (f failingGet) Get(context.Context, string) (json.RawMessage, bool, error) {
	return nil, false, f.err
}

func (f failingGet) Set(context.Context, string, json.RawMessage) error { return nil }

func TestTotalNextAndHas(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.seed(t, dom.RecordingTime{FreeMonthly: 0, SubscriberMonthly: 65, PurchasedExtra: 10, LastResetMonth: 3, LastResetYear: 2026})
	ctx := context.Background()

	total, err := f.svc.GetTotalRecordingTime(ctx)
	require.NoError(t, err)
	require.Equal(t, 75, total)

	info, err := f.svc.GetNextPoolInfo(ctx)
	require.NoError(t, err)
	require.Equal(t, dom.PoolInfo{Name: dom.PoolSubscriberMonthly, Seconds: 65}, info)

	has, err := f.svc.HasRecordingTime(ctx, 75)
	require.NoError(t, err)
	require.True(t, has)
	has, err = f.svc.HasRecordingTime(ctx, 76)
	require.NoError(t, err)
	require.False(t, has)
}

func TestPoolsPort(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.svc.GrantSubscriberPool(ctx))
	require.Equal(t, 3600, f.stored(t).SubscriberMonthly)

	require.NoError(t, f.svc.AddPurchasedExtra(ctx))
	require.NoError(t, f.svc.AddPurchasedExtra(ctx))
	require.Equal(t, 7200, f.stored(t).PurchasedExtra)

	require.NoError(t, f.svc.RevokeSubscriberPool(ctx))
	rt := f.stored(t)
	require.Equal(t, 0, rt.SubscriberMonthly)
	require.Equal(t, 300, rt.FreeMonthly)
	require.Equal(t, 7200, rt.PurchasedExtra)
}

func TestNilTierReaderIsFree(t *testing.T) {
	t.Parallel()
	blobs := repo.NewMemory()
	clock := testkit.NewClock(time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC))
	svc := New(modkit.Deps{Log: logger.Nop()}.WithBlobs(blobs), nil, DefaultConfig(), WithClock(clock.Now))
	require.NoError(t, svc.SaveRecordingTime(context.Background(), dom.RecordingTime{SubscriberMonthly: 9, LastResetMonth: 12, LastResetYear: 2025}))

	rt, err := svc.GetRecordingTime(context.Background())
	require.NoError(t, err)
	require.Equal(t, 0, rt.SubscriberMonthly)
}
