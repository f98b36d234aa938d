package analytics

import (
	"fmt"
	"strings"
	"time"
)

type Period string

const (
	PeriodToday Period = "today"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

func ParsePeriod(s string) (Period, error) {
	switch Period(strings.ToLower(strings.TrimSpace(s))) {
	case PeriodToday:
		return PeriodToday, nil
	case PeriodWeek:
		return PeriodWeek, nil
	case PeriodMonth:
		return PeriodMonth, nil
	case PeriodYear:
		return PeriodYear, nil
	case "":
		return PeriodMonth, nil
	}
	return "", fmt.Errorf("unknown period %q", s)
}

// Window is a [Start, End) range plus the equal-length range immediately
// before it, used for period-over-period trends.
type Window struct {
	Start     time.Time
	End       time.Time
	PrevStart time.Time
	PrevEnd   time.Time
}

// ResolveWindow computes the current and comparison windows for a period.
// "today" anchors to midnight of the current day so intraday comparisons
// stay stable; the other periods are rolling windows ending at now. The
// comparison window is the same span shifted back once.
func ResolveWindow(p Period, now time.Time) Window {
	var start time.Time
	switch p {
	case PeriodToday:
		start = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	case PeriodWeek:
		start = now.AddDate(0, 0, -7)
	case PeriodYear:
		start = now.AddDate(-1, 0, 0)
	default:
		start = now.AddDate(0, -1, 0)
	}
	span := now.Sub(start)
	return Window{
		Start:     start,
		End:       now,
		PrevStart: start.Add(-span),
		PrevEnd:   start,
	}
}
