package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/24svcs/svcs-api/internal/model"
	"github.com/24svcs/svcs-api/pkg/errors"
)

func TestPreferencesGetCreatesDefaults(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()
	svc := NewPreferenceService(f.orgs)

	orgID := uuid.NewString()
	require.NoError(t, f.db.Create(&model.Organization{
		ID:     orgID,
		Name:   "Fresh Org",
		Status: model.OrganizationStatusActive,
	}).Error)

	prefs, err := svc.Get(ctx, orgID)
	require.NoError(t, err)
	require.Equal(t, "UTC", prefs.Timezone)
	require.Equal(t, DefaultGraceMinutes, prefs.GraceMinutes)
	require.True(t, prefs.AlertOnLate)
	require.True(t, prefs.AlertOnHalfDay)

	// 默认值已持久化，第二次读取拿到同一条
	again, err := svc.Get(ctx, orgID)
	require.NoError(t, err)
	require.Equal(t, prefs.ID, again.ID)
}

func TestPreferencesUpdate(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()
	svc := NewPreferenceService(f.orgs)

	strPtr := func(s string) *string { return &s }
	intPtr := func(n int) *int { return &n }
	boolPtr := func(b bool) *bool { return &b }

	t.Run("invalid timezone rejected", func(t *testing.T) {
		_, err := svc.Update(ctx, f.orgID, model.UpdatePreferencesRequest{
			Timezone: strPtr("Mars/Olympus_Mons"),
		})
		require.ErrorIs(t, err, errors.InvalidTimezone)
	})

	t.Run("empty timezone rejected", func(t *testing.T) {
		_, err := svc.Update(ctx, f.orgID, model.UpdatePreferencesRequest{
			Timezone: strPtr(""),
		})
		require.ErrorIs(t, err, errors.InvalidTimezone)
	})

	t.Run("grace minutes out of range rejected", func(t *testing.T) {
		_, err := svc.Update(ctx, f.orgID, model.UpdatePreferencesRequest{
			GraceMinutes: intPtr(-1),
		})
		require.ErrorIs(t, err, errors.InvalidRequest)

		_, err = svc.Update(ctx, f.orgID, model.UpdatePreferencesRequest{
			GraceMinutes: intPtr(24*60 + 1),
		})
		require.ErrorIs(t, err, errors.InvalidRequest)
	})

	t.Run("partial update keeps other fields", func(t *testing.T) {
		prefs, err := svc.Update(ctx, f.orgID, model.UpdatePreferencesRequest{
			GraceMinutes: intPtr(30),
			AlertOnLate:  boolPtr(false),
		})
		require.NoError(t, err)
		require.Equal(t, 30, prefs.GraceMinutes)
		require.False(t, prefs.AlertOnLate)
		require.Equal(t, "UTC", prefs.Timezone)
		require.True(t, prefs.AlertOnHalfDay)
	})

	t.Run("timezone update persists", func(t *testing.T) {
		prefs, err := svc.Update(ctx, f.orgID, model.UpdatePreferencesRequest{
			Timezone: strPtr("Asia/Tokyo"),
		})
		require.NoError(t, err)
		require.Equal(t, "Asia/Tokyo", prefs.Timezone)

		stored, err := f.orgs.GetPreferences(ctx, f.orgID)
		require.NoError(t, err)
		require.Equal(t, "Asia/Tokyo", stored.Timezone)
	})
}
