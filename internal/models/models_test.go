package models

import (
	"testing"
	"time"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from, to JobStatus
		allowed  bool
	}{
		{JobScheduled, JobRunning, true},
		{JobScheduled, JobCanceled, true},
		{JobScheduled, JobCompleted, false},
		{JobRunning, JobCompleted, true},
		{JobRunning, JobFailed, true},
		{JobRunning, JobCanceled, true},
		{JobRunning, JobScheduled, false},
		{JobCompleted, JobRunning, false},
		{JobFailed, JobRunning, false},
		{JobCanceled, JobScheduled, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestJobStatus_IsTerminal(t *testing.T) {
	assert.False(t, JobScheduled.IsTerminal())
	assert.False(t, JobRunning.IsTerminal())
	assert.True(t, JobCompleted.IsTerminal())
	assert.True(t, JobFailed.IsTerminal())
	assert.True(t, JobCanceled.IsTerminal())
}

func TestJobCounters_DecreasedFrom(t *testing.T) {
	prev := JobCounters{Processed: 10, Created: 4, Updated: 3, Skipped: 2, Failed: 1}

	_, decreased := JobCounters{Processed: 12, Created: 4, Updated: 5, Skipped: 2, Failed: 1}.DecreasedFrom(prev)
	assert.False(t, decreased)

	field, decreased := JobCounters{Processed: 12, Created: 4, Updated: 2, Skipped: 2, Failed: 1}.DecreasedFrom(prev)
	assert.True(t, decreased)
	assert.Equal(t, "records_updated", field)
}

func TestCrimeFilter_NormalizePage(t *testing.T) {
	f := CrimeFilter{Page: 0, PageSize: 0}
	f.NormalizePage()
	assert.Equal(t, 1, f.Page)
	assert.Equal(t, DefaultPageSize, f.PageSize)

	f = CrimeFilter{Page: 3, PageSize: 1000}
	f.NormalizePage()
	assert.Equal(t, 3, f.Page)
	assert.Equal(t, MaxPageSize, f.PageSize)
}

func TestMatchQuery_InWindow(t *testing.T) {
	from := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	to := from.Add(time.Hour)

	q := MatchQuery{AlertID: 1}.InWindow(from, to)

	require.NotNil(t, q.CreatedAfter)
	require.NotNil(t, q.CreatedUntil)
	assert.Equal(t, from, *q.CreatedAfter)
	assert.Equal(t, to, *q.CreatedUntil)
}

func TestNewPoint_LonLatOrder(t *testing.T) {
	p := NewPoint(-1.286, 36.817)
	assert.Equal(t, 36.817, p.Lon())
	assert.Equal(t, -1.286, p.Lat())
	assert.NoError(t, ValidatePoint(p))
	assert.ErrorIs(t, ValidatePoint(orb.Point{200, 0}), ErrInvalidCoordinates)
}

func TestValidatePolygon(t *testing.T) {
	closed := orb.Polygon{{{0, 0}, {1, 0}, {1, 1}, {0, 0}}}
	open := orb.Polygon{{{0, 0}, {1, 0}, {1, 1}, {0, 1}}}
	short := orb.Polygon{{{0, 0}, {1, 0}, {0, 0}}}

	assert.NoError(t, ValidatePolygon(closed))
	assert.ErrorIs(t, ValidatePolygon(open), ErrInvalidGeometry)
	assert.ErrorIs(t, ValidatePolygon(short), ErrInvalidGeometry)
	assert.ErrorIs(t, ValidatePolygon(nil), ErrInvalidGeometry)
	assert.ErrorIs(t, ValidateMultiPolygon(orb.MultiPolygon{closed, open}), ErrInvalidGeometry)
}

func TestGeometryRoundTrip(t *testing.T) {
	poly := orb.Polygon{{{36.8, -1.3}, {36.9, -1.3}, {36.9, -1.2}, {36.8, -1.3}}}

	encoded, err := MarshalGeometry(poly)
	require.NoError(t, err)
	require.NotNil(t, encoded)

	g, err := UnmarshalGeometry([]byte(*encoded))
	require.NoError(t, err)

	mp, err := AsMultiPolygon(g)
	require.NoError(t, err)
	assert.Equal(t, orb.MultiPolygon{poly}, mp)

	_, err = AsPoint(g)
	assert.ErrorIs(t, err, ErrInvalidGeometry)
}

func TestGeometryNil(t *testing.T) {
	encoded, err := MarshalGeometry(nil)
	assert.NoError(t, err)
	assert.Nil(t, encoded)

	g, err := UnmarshalGeometry(nil)
	assert.NoError(t, err)
	assert.Nil(t, g)

	poly, err := AsPolygon(nil)
	assert.NoError(t, err)
	assert.Nil(t, poly)
}
