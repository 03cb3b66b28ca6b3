package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldforge/fieldforge/internal/sample"
)

var anchor = time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

const horizonDays = 90

func newPicker(seed int64) *Picker {
	return NewPicker(sample.New(seed), anchor, horizonDays)
}

func TestDayTruncates(t *testing.T) {
	in := time.Date(2024, 3, 9, 17, 45, 12, 999, time.UTC)
	assert.Equal(t, time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC), Day(in))
}

func TestDateBetweenStaysInBounds(t *testing.T) {
	p := newPicker(1)
	lo := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	hi := time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 2000; i++ {
		d := p.DateBetween(lo, hi)
		require.False(t, d.Before(lo), "drew %s before %s", d, lo)
		require.False(t, d.After(hi), "drew %s after %s", d, hi)
		require.Equal(t, 0, d.Hour())
	}
}

func TestDateBetweenHitsBothEndpoints(t *testing.T) {
	p := newPicker(2)
	lo := time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)
	hi := time.Date(2023, 5, 3, 0, 0, 0, 0, time.UTC)
	seen := make(map[string]bool)
	for i := 0; i < 500; i++ {
		seen[p.DateBetween(lo, hi).Format(time.DateOnly)] = true
	}
	assert.True(t, seen["2023-05-01"])
	assert.True(t, seen["2023-05-03"])
	assert.Len(t, seen, 3)
}

func TestDateBetweenSingleDay(t *testing.T) {
	p := newPicker(3)
	d := time.Date(2023, 7, 4, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, d, p.DateBetween(d, d))
}

func TestDateBetweenPanicsOnInversion(t *testing.T) {
	p := newPicker(4)
	lo := time.Date(2023, 2, 2, 0, 0, 0, 0, time.UTC)
	hi := time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC)
	assert.Panics(t, func() { p.DateBetween(lo, hi) })
}

func TestPastDateNeverAfterAnchor(t *testing.T) {
	p := newPicker(5)
	for i := 0; i < 1000; i++ {
		d := p.PastDate(2, 0, 0)
		require.False(t, d.After(anchor))
		require.False(t, d.Before(anchor.AddDate(-2, 0, 0)))
	}
}

func TestFutureWithinHorizon(t *testing.T) {
	p := newPicker(6)
	for i := 0; i < 1000; i++ {
		d := p.Future()
		require.True(t, d.After(anchor), "future date %s not after anchor", d)
		require.False(t, d.After(anchor.AddDate(0, 0, horizonDays)))
	}
}

func TestNewPickerRejectsEmptyHorizon(t *testing.T) {
	assert.Panics(t, func() { NewPicker(sample.New(1), anchor, 0) })
}

func TestTimeBetweenSecondGranularity(t *testing.T) {
	p := newPicker(7)
	lo := time.Date(2023, 3, 1, 9, 0, 0, 0, time.UTC)
	hi := time.Date(2023, 3, 1, 17, 0, 0, 0, time.UTC)
	for i := 0; i < 500; i++ {
		ts := p.TimeBetween(lo, hi)
		require.False(t, ts.Before(lo))
		require.False(t, ts.After(hi))
		require.Zero(t, ts.Nanosecond())
	}
}

func TestOnDayWithinWorkingHours(t *testing.T) {
	p := newPicker(8)
	day := time.Date(2024, 8, 20, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 500; i++ {
		ts := p.OnDay(day)
		require.Equal(t, day.Year(), ts.Year())
		require.Equal(t, day.YearDay(), ts.YearDay())
		require.GreaterOrEqual(t, ts.Hour(), 7)
		require.LessOrEqual(t, ts.Hour(), 17)
		require.Contains(t, []int{0, 30}, ts.Minute())
	}
}

func TestSameSeedSameDates(t *testing.T) {
	a, b := newPicker(99), newPicker(99)
	lo := anchor.AddDate(-1, 0, 0)
	for i := 0; i < 200; i++ {
		assert.Equal(t, a.DateBetween(lo, anchor), b.DateBetween(lo, anchor))
	}
}

func TestEarlierLater(t *testing.T) {
	x := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	y := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, x, Earlier(x, y))
	assert.Equal(t, y, Later(x, y))
	assert.Equal(t, x, Earlier(x, x))
}
