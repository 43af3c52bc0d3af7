package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seasonDates(year int) (time.Time, time.Time) {
	start := time.Date(year, time.March, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 8, 0)
}

func TestSeasonCreate(t *testing.T) {
	svc := NewSeasonService(newFakeSeasonRepo())

	start, end := seasonDates(2026)
	season, err := svc.Create("2026 春季", 2026, start, end)
	require.NoError(t, err)
	assert.Equal(t, 2026, season.Year)
	assert.False(t, season.Active)

	_, err = svc.Create("顛倒的賽季", 2026, end, start)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSeasonActivateSwitchesActive(t *testing.T) {
	svc := NewSeasonService(newFakeSeasonRepo())

	start, end := seasonDates(2025)
	first, err := svc.Create("2025", 2025, start, end)
	require.NoError(t, err)
	start, end = seasonDates(2026)
	second, err := svc.Create("2026", 2026, start, end)
	require.NoError(t, err)

	_, err = svc.Activate(first.ID)
	require.NoError(t, err)
	active, err := svc.Active()
	require.NoError(t, err)
	assert.Equal(t, first.ID, active.ID)

	// 啟用新賽季時舊賽季同時停用
	_, err = svc.Activate(second.ID)
	require.NoError(t, err)
	active, err = svc.Active()
	require.NoError(t, err)
	assert.Equal(t, second.ID, active.ID)

	old, err := svc.Get(first.ID)
	require.NoError(t, err)
	assert.False(t, old.Active)

	_, err = svc.Activate(99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSeasonUpdate(t *testing.T) {
	svc := NewSeasonService(newFakeSeasonRepo())

	start, end := seasonDates(2026)
	season, err := svc.Create("2026", 2026, start, end)
	require.NoError(t, err)

	newEnd := end.AddDate(0, 1, 0)
	updated, err := svc.Update(season.ID, "2026 延長", time.Time{}, newEnd)
	require.NoError(t, err)
	assert.Equal(t, "2026 延長", updated.Name)
	assert.True(t, updated.EndDate.Equal(newEnd))
	// 未指定的開始日不變
	assert.True(t, updated.StartDate.Equal(start))

	_, err = svc.Update(season.ID, "", time.Time{}, start)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSeasonActiveNone(t *testing.T) {
	svc := NewSeasonService(newFakeSeasonRepo())
	_, err := svc.Active()
	assert.ErrorIs(t, err, ErrNotFound)
}
