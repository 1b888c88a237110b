package service

import (
	"testing"
	"time"

	"github.com/shenikar/crime_analysis_system/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestRankMatches(t *testing.T) {
	matches := []*models.CrimeMatch{
		{CrimeID: 1, DistanceMeters: 450},
		{CrimeID: 2, DistanceMeters: 120},
		{CrimeID: 3, DistanceMeters: 501},
		{CrimeID: 4, DistanceMeters: 120},
		{CrimeID: 5, DistanceMeters: 500},
	}

	ranked, total := rankMatches(matches, 500, 3)

	assert.Equal(t, 4, total)
	if assert.Len(t, ranked, 3) {
		// равные расстояния сохраняют порядок по id
		assert.Equal(t, int64(2), ranked[0].CrimeID)
		assert.Equal(t, int64(4), ranked[1].CrimeID)
		assert.Equal(t, int64(1), ranked[2].CrimeID)
	}

	all, total := rankMatches(matches, 500, 0)
	assert.Equal(t, 4, total)
	assert.Len(t, all, 4)
	assert.Equal(t, int64(5), all[3].CrimeID)
}

func TestCheckInterval(t *testing.T) {
	testCases := []struct {
		freq models.CheckFrequency
		want time.Duration
	}{
		{models.FrequencyRealtime, 30 * time.Second},
		{models.FrequencyHourly, time.Hour},
		{models.FrequencyDaily, 24 * time.Hour},
		{models.FrequencyWeekly, 7 * 24 * time.Hour},
		{"", 24 * time.Hour},
	}
	for _, tc := range testCases {
		t.Run(string(tc.freq), func(t *testing.T) {
			assert.Equal(t, tc.want, CheckInterval(tc.freq, 30*time.Second))
		})
	}
}

func TestIsDue(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	checked := func(ago time.Duration) *time.Time {
		at := now.Add(-ago)
		return &at
	}

	testCases := []struct {
		name  string
		alert *models.Alert
		want  bool
	}{
		{"never checked", &models.Alert{IsActive: true, CheckFrequency: models.FrequencyDaily}, true},
		{"inactive", &models.Alert{IsActive: false, CheckFrequency: models.FrequencyRealtime}, false},
		{"hourly not yet", &models.Alert{IsActive: true, CheckFrequency: models.FrequencyHourly, LastCheckedAt: checked(59 * time.Minute)}, false},
		{"hourly due", &models.Alert{IsActive: true, CheckFrequency: models.FrequencyHourly, LastCheckedAt: checked(time.Hour)}, true},
		{"realtime due", &models.Alert{IsActive: true, CheckFrequency: models.FrequencyRealtime, LastCheckedAt: checked(2 * time.Minute)}, true},
		{"weekly not yet", &models.Alert{IsActive: true, CheckFrequency: models.FrequencyWeekly, LastCheckedAt: checked(6 * 24 * time.Hour)}, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsDue(tc.alert, now, time.Minute))
		})
	}
}

func TestIdempotencyKey(t *testing.T) {
	first := time.Date(2024, 5, 1, 12, 10, 0, 0, time.UTC)
	second := time.Date(2024, 5, 1, 12, 50, 0, 0, time.UTC)
	next := time.Date(2024, 5, 1, 13, 0, 1, 0, time.UTC)

	assert.Equal(t, "7:2024-05-01T12:00:00Z", IdempotencyKey(7, first, time.Hour))
	assert.Equal(t, IdempotencyKey(7, first, time.Hour), IdempotencyKey(7, second, time.Hour))
	assert.NotEqual(t, IdempotencyKey(7, first, time.Hour), IdempotencyKey(7, next, time.Hour))
	assert.NotEqual(t, IdempotencyKey(7, first, time.Hour), IdempotencyKey(8, first, time.Hour))
}

func TestNewMatchQuery_InWindow(t *testing.T) {
	alert := &models.Alert{ID: 3, Location: models.NewPoint(-1.2864, 36.8172), SearchDistanceMeters: 500, CrimeTypeIDs: []int64{1, 2}}
	from := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	to := from.Add(time.Hour)

	q := NewMatchQuery(alert, 10).InWindow(from, to)

	assert.Equal(t, int64(3), q.AlertID)
	assert.Equal(t, 500.0, q.RadiusMeters)
	assert.Equal(t, 10, q.Limit)
	assert.Equal(t, from, *q.CreatedAfter)
	assert.Equal(t, to, *q.CreatedUntil)
	assert.False(t, q.ExcludeNotified)
}
