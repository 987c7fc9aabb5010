package attendance

import (
	"fmt"
	"math"
	"time"

	"github.com/worklog-hq/worklog-backend-go/internal/config"
	"github.com/worklog-hq/worklog-backend-go/internal/domain/attendance"
)

// Rules are the workday thresholds used to derive attendance status. Clock
// times are compared in the application timezone; instants are stored UTC.
type Rules struct {
	location     *time.Location
	startSeconds int
	endSeconds   int
	fullDayHours float64
}

func NewRules(cfg config.WorkdayConfig, loc *time.Location) (Rules, error) {
	start, err := time.Parse("15:04", cfg.StandardStart)
	if err != nil {
		return Rules{}, fmt.Errorf("invalid standard start time: %w", err)
	}
	end, err := time.Parse("15:04", cfg.StandardEnd)
	if err != nil {
		return Rules{}, fmt.Errorf("invalid standard end time: %w", err)
	}

	return Rules{
		location:     loc,
		startSeconds: start.Hour()*3600 + start.Minute()*60,
		endSeconds:   end.Hour()*3600 + end.Minute()*60,
		fullDayHours: cfg.FullDayHours,
	}, nil
}

// WorkDate is the calendar day of t in the application timezone, stored as
// a bare date.
func (r Rules) WorkDate(t time.Time) time.Time {
	local := t.In(r.location)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}

func (r Rules) secondOfDay(t time.Time) int {
	local := t.In(r.location)
	return local.Hour()*3600 + local.Minute()*60 + local.Second()
}

// ClockInStatus derives the status set at clock-in: late when the clock
// time is past the standard start, present otherwise.
func (r Rules) ClockInStatus(now time.Time) attendance.Status {
	if r.secondOfDay(now) > r.startSeconds {
		return attendance.StatusLate
	}
	return attendance.StatusPresent
}

// ClockOutStatus derives the final status at clock-out. Leaving before the
// standard end with less than a full day worked becomes early_leave and
// overrides the clock-in status; otherwise the clock-in status stands.
func (r Rules) ClockOutStatus(clockInStatus attendance.Status, now time.Time, totalHours float64) attendance.Status {
	if r.secondOfDay(now) < r.endSeconds && totalHours < r.fullDayHours {
		return attendance.StatusEarlyLeave
	}
	return clockInStatus
}

// roundHours converts a duration to hours rounded to 2 decimal places.
func roundHours(d time.Duration) float64 {
	return math.Round(d.Hours()*100) / 100
}

// roundMinutes converts a duration to the nearest whole minute.
func roundMinutes(d time.Duration) int {
	return int(math.Round(d.Minutes()))
}
