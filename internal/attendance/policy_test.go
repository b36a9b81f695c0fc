package attendance

import (
	"testing"
	"time"

	"github.com/iliyamo/employee-attendance-tracker/internal/model"
)

func at(hour, min int) time.Time {
	return time.Date(2024, time.March, 11, hour, min, 0, 0, time.Local)
}

func TestStatusForCheckIn(t *testing.T) {
	p := DefaultPolicy

	cases := []struct {
		name string
		now  time.Time
		want string
	}{
		{"early morning", at(8, 30), model.StatusPresent},
		{"just before threshold", at(9, 59), model.StatusPresent},
		{"exactly at threshold", at(10, 0), model.StatusLate},
		{"after threshold", at(10, 15), model.StatusLate},
		{"late evening", at(18, 0), model.StatusLate},
	}
	for _, tc := range cases {
		if got := p.StatusForCheckIn(tc.now); got != tc.want {
			t.Errorf("%s: StatusForCheckIn(%v) = %q, want %q", tc.name, tc.now, got, tc.want)
		}
	}
}

func TestStatusForCheckInCustomThreshold(t *testing.T) {
	p := Policy{LateHour: 9, HalfDayHours: 4}
	if got := p.StatusForCheckIn(at(9, 0)); got != model.StatusLate {
		t.Errorf("with LateHour=9, 09:00 = %q, want late", got)
	}
	if got := p.StatusForCheckIn(at(8, 59)); got != model.StatusPresent {
		t.Errorf("with LateHour=9, 08:59 = %q, want present", got)
	}
}

func TestCloseStatus(t *testing.T) {
	p := DefaultPolicy

	// Short day downgrades whatever status was earned at check-in.
	if got := p.CloseStatus(model.StatusLate, 0.75); got != model.StatusHalfDay {
		t.Errorf("late + 0.75h = %q, want half-day", got)
	}
	if got := p.CloseStatus(model.StatusPresent, 3.99); got != model.StatusHalfDay {
		t.Errorf("present + 3.99h = %q, want half-day", got)
	}
	// At or above the threshold the original status survives.
	if got := p.CloseStatus(model.StatusPresent, 4); got != model.StatusPresent {
		t.Errorf("present + 4h = %q, want present", got)
	}
	if got := p.CloseStatus(model.StatusLate, 8.25); got != model.StatusLate {
		t.Errorf("late + 8.25h = %q, want late", got)
	}
}

func TestHoursBetween(t *testing.T) {
	in := at(8, 30)
	out := at(16, 45)
	if got := HoursBetween(in, out); got != 8.25 {
		t.Errorf("HoursBetween(08:30, 16:45) = %v, want 8.25", got)
	}

	in = at(10, 15)
	out = at(11, 0)
	if got := HoursBetween(in, out); got != 0.75 {
		t.Errorf("HoursBetween(10:15, 11:00) = %v, want 0.75", got)
	}

	// Clock skew must not go negative.
	if got := HoursBetween(out, in); got != 0 {
		t.Errorf("HoursBetween(out, in) = %v, want 0", got)
	}
}

func TestRound2(t *testing.T) {
	if got := Round2(8.256); got != 8.26 {
		t.Errorf("Round2(8.256) = %v, want 8.26", got)
	}
	if got := Round2(8.254); got != 8.25 {
		t.Errorf("Round2(8.254) = %v, want 8.25", got)
	}
}
