package repo

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"sayitanyway/internal/core/entitlement"
	perr "sayitanyway/internal/platform/errors"
	"sayitanyway/internal/platform/logger"
	blobsdom "sayitanyway/internal/services/blobs/domain"
	blobrepo "sayitanyway/internal/services/blobs/repo"
	dom "sayitanyway/internal/services/subscription/domain"
)

func TestStatus_AbsentIsFree(t *testing.T) {
	t.Parallel()
	r := NewStatus(blobrepo.NewMemory(), logger.Nop())
	s, err := r.GetStatus(context.Background())
	require.NoError(t, err)
	require.Equal(t, dom.FreeStatus(), s)

	tier, err := r.CurrentTier(context.Background())
	require.NoError(t, err)
	require.Equal(t, entitlement.TierFree, tier)
}

func TestStatus_MalformedIsFree(t *testing.T) {
	t.Parallel()
	mem := blobrepo.NewMemory()
	require.NoError(t, mem.Set(context.Background(), blobsdom.KeySubscriptionStatus, json.RawMessage(`{"tier":`)))
	s, err := NewStatus(mem, logger.Nop()).GetStatus(context.Background())
	require.NoError(t, err)
	require.Equal(t, entitlement.TierFree, s.Tier)
}

func TestStatus_RoundTripWireNames(t *testing.T) {
	t.Parallel()
	mem := blobrepo.NewMemory()
	r := NewStatus(mem, logger.Nop())
	in := dom.Status{Tier: entitlement.TierUnlocked, IsUnlocked: true, UnlockedAt: 1700000000000}
	require.NoError(t, r.SaveStatus(context.Background(), in))

	raw, _, _ := mem.Get(context.Background(), blobsdom.KeySubscriptionStatus)
	require.JSONEq(t, `{"tier":"Subscriber (Unlocked)","isUnlocked":true,"storeSubscriptionActive":false,"unlockedDate":1700000000000}`, string(raw))

	tier, err := r.CurrentTier(context.Background())
	require.NoError(t, err)
	require.Equal(t, entitlement.TierUnlocked, tier)
}

func TestStatus_UnknownTierNormalized(t *testing.T) {
	t.Parallel()
	mem := blobrepo.NewMemory()
	require.NoError(t, mem.Set(context.Background(), blobsdom.KeySubscriptionStatus, json.RawMessage(`{"tier":"subscriber"}`)))
	s, err := NewStatus(mem, logger.Nop()).GetStatus(context.Background())
	require.NoError(t, err)
	require.Equal(t, entitlement.TierSubscriber, s.Tier)
}

type failing struct{}

func (failing) Get(context.Context, string) (json.RawMessage, bool, error) {
	return nil, false, perr.Storagef("locked")
}
func (failing) Set(context.Context, string, json.RawMessage) error { return perr.Storagef("locked") }

func TestStatus_ErrorsPropagate(t *testing.T) {
	t.Parallel()
	r := NewStatus(failing{}, logger.Nop())
	_, err := r.GetStatus(context.Background())
	require.True(t, perr.IsCode(err, perr.ErrorCodeStorage))
	_, err = r.CurrentTier(context.Background())
	require.Error(t, err)
	require.Error(t, r.SaveStatus(context.Background(), dom.FreeStatus()))
}
