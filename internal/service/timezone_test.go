package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/24svcs/svcs-api/internal/cache"
	"github.com/24svcs/svcs-api/internal/model"
)

func setTimezone(t *testing.T, f *testFixture, name string) {
	t.Helper()
	err := f.db.Model(&model.OrganizationPreferences{}).
		Where("organization_id = ?", f.orgID).
		Update("timezone", name).Error
	require.NoError(t, err)
}

func TestResolveUsesPreferences(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	setTimezone(t, f, "America/New_York")

	loc := f.tz.Resolve(context.Background(), f.orgID)
	require.Equal(t, "America/New_York", loc.String())
}

func TestResolveServesStaleCacheUntilExpiry(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()

	now := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	store := cache.NewMemoryStoreWithClock(func() time.Time { return now })
	tz := NewTimezoneResolver(f.orgs, store)
	prefs := NewPreferenceService(f.orgs)

	setTimezone(t, f, "America/New_York")
	require.Equal(t, "America/New_York", tz.Resolve(ctx, f.orgID).String())

	// 偏好更新不清缓存，TTL 内仍返回旧时区
	newTZ := "Asia/Tokyo"
	_, err := prefs.Update(ctx, f.orgID, model.UpdatePreferencesRequest{Timezone: &newTZ})
	require.NoError(t, err)
	require.Equal(t, "America/New_York", tz.Resolve(ctx, f.orgID).String())

	// 缓存过期后才看到新时区
	now = now.Add(TimezoneCacheTTL + time.Second)
	require.Equal(t, "Asia/Tokyo", tz.Resolve(ctx, f.orgID).String())
}

func TestResolveFallsBackToUTC(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()

	t.Run("invalid timezone name", func(t *testing.T) {
		setTimezone(t, f, "Mars/Olympus_Mons")
		require.Equal(t, time.UTC, f.tz.Resolve(ctx, f.orgID))
	})

	t.Run("missing preferences", func(t *testing.T) {
		require.Equal(t, time.UTC, f.tz.Resolve(ctx, "11111111-2222-3333-4444-555555555555"))
	})
}
