// Package timeline draws dates and datetimes under ordering constraints.
// Every bound is explicit at the call site, so a generator reads like the
// business rule it implements: an invoice is issued between the service date
// and a few days after, a warranty ends after the install, and so on.
package timeline

import (
	"fmt"
	"time"

	"github.com/fieldforge/fieldforge/internal/sample"
)

// Day truncates t to midnight UTC. All date-valued columns carry midnight
// timestamps so date arithmetic and formatting stay exact.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Picker draws times relative to a fixed anchor date. The anchor is the
// run's notion of "today"; pinning it makes a seeded run reproducible no
// matter when it is replayed. Future draws stay within the forward horizon.
type Picker struct {
	s       *sample.Sampler
	now     time.Time
	horizon int
}

// NewPicker anchors a picker at now, truncated to midnight UTC, with a
// forward horizon in days. Panics when the horizon is under a day.
func NewPicker(s *sample.Sampler, now time.Time, horizonDays int) *Picker {
	if horizonDays < 1 {
		panic(fmt.Sprintf("timeline: horizon of %d days", horizonDays))
	}
	return &Picker{s: s, now: Day(now), horizon: horizonDays}
}

// Now returns the anchor date at midnight UTC.
func (p *Picker) Now() time.Time {
	return p.now
}

// DateBetween returns a uniform date in [earliest, latest], both inclusive,
// at midnight UTC. Panics when latest precedes earliest: bounds are always
// derived from already-generated parent rows, so an inversion is a
// constraint bug rather than bad input.
func (p *Picker) DateBetween(earliest, latest time.Time) time.Time {
	earliest, latest = Day(earliest), Day(latest)
	if latest.Before(earliest) {
		panic(fmt.Sprintf("timeline: inverted date range %s..%s",
			earliest.Format(time.DateOnly), latest.Format(time.DateOnly)))
	}
	days := int(latest.Sub(earliest).Hours() / 24)
	return earliest.AddDate(0, 0, p.s.Int(0, days))
}

// PastDate returns a date within the given span before the anchor,
// inclusive of the anchor itself.
func (p *Picker) PastDate(years, months, days int) time.Time {
	return p.DateBetween(p.now.AddDate(-years, -months, -days), p.now)
}

// Future returns a date within the forward horizon, strictly later than
// the anchor.
func (p *Picker) Future() time.Time {
	return p.DateBetween(p.now.AddDate(0, 0, 1), p.now.AddDate(0, 0, p.horizon))
}

// TimeBetween returns a uniform instant in [earliest, latest] with second
// granularity. Panics on an inverted range.
func (p *Picker) TimeBetween(earliest, latest time.Time) time.Time {
	if latest.Before(earliest) {
		panic(fmt.Sprintf("timeline: inverted time range %s..%s",
			earliest.Format(time.DateTime), latest.Format(time.DateTime)))
	}
	span := int(latest.Sub(earliest) / time.Second)
	return earliest.Add(time.Duration(p.s.Int(0, span)) * time.Second).UTC()
}

// OnDay returns a datetime on the given day during working hours, on the
// half hour. Dispatchers book visits between 07:00 and 17:30.
func (p *Picker) OnDay(day time.Time) time.Time {
	day = Day(day)
	halfHours := p.s.Int(0, 21)
	return day.Add(7*time.Hour + time.Duration(halfHours)*30*time.Minute)
}

// Earlier returns the earlier of a and b.
func Earlier(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}

// Later returns the later of a and b.
func Later(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}
