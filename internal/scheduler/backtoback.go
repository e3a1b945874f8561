package scheduler

import (
	"slices"

	"github.com/rhyrak/course-planner/pkg/model"
)

const (
	// Limit on next.Start.HHMM() - prev.End.HHMM(), which is not a duration.
	hhmmGapLimit   = 100
	minuteGapLimit = 60
)

// IsBackToBack reports whether, on every day, consecutive sessions are
// separated by at most an hour. Overlapping neighbours (negative gaps) are
// ignored.
func IsBackToBack(courses []model.Course, elapsed bool) bool {
	byDay := make(map[model.Day][]model.Session)
	for _, c := range courses {
		for _, s := range c.Sessions {
			byDay[s.Day] = append(byDay[s.Day], s)
		}
	}
	for _, sessions := range byDay {
		slices.SortStableFunc(sessions, func(a, b model.Session) int {
			return int(a.Start) - int(b.Start)
		})
		for i := 1; i < len(sessions); i++ {
			prev, next := sessions[i-1], sessions[i]
			gap, limit := next.Start.HHMM()-prev.End.HHMM(), hhmmGapLimit
			if elapsed {
				gap, limit = int(next.Start-prev.End), minuteGapLimit
			}
			if gap >= 0 && gap > limit {
				return false
			}
		}
	}
	return true
}
