// Package attendance holds the pure status rules applied at check-in
// and check-out. Everything here is a function of wall-clock time and
// the configured thresholds so the rules can be tested without a
// database and retuned without code changes.
package attendance

import (
	"math"
	"time"

	"github.com/iliyamo/employee-attendance-tracker/internal/model"
)

// Policy carries the attendance thresholds. LateHour is the local hour
// (0-23) at which a check-in starts counting as late. HalfDayHours is
// the minimum worked duration below which a closed day is downgraded
// to half-day.
type Policy struct {
	LateHour     int
	HalfDayHours float64
}

// DefaultPolicy matches the company rules: late from 10:00, half-day
// under 4 worked hours.
var DefaultPolicy = Policy{LateHour: 10, HalfDayHours: 4}

// StatusForCheckIn classifies a check-in instant. The hour is taken in
// the location of now, so callers decide the relevant timezone.
func (p Policy) StatusForCheckIn(now time.Time) string {
	if now.Hour() >= p.LateHour {
		return model.StatusLate
	}
	return model.StatusPresent
}

// CloseStatus returns the status a record ends the day with. A short
// day becomes half-day regardless of the status earned at check-in.
func (p Policy) CloseStatus(prev string, totalHours float64) string {
	if totalHours < p.HalfDayHours {
		return model.StatusHalfDay
	}
	return prev
}

// HoursBetween returns the elapsed time from in to out in hours,
// rounded to two decimals. Negative spans clamp to zero so a skewed
// clock can never produce a negative total.
func HoursBetween(in, out time.Time) float64 {
	h := out.Sub(in).Hours()
	if h < 0 {
		h = 0
	}
	return Round2(h)
}

// Round2 rounds to two decimal places, the precision total_hours is
// stored and reported with.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
