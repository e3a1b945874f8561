package scheduler

import (
	"strings"

	"github.com/rhyrak/course-planner/pkg/model"
)

// Filter keeps a course when it returns true.
type Filter func(model.Course) bool

var (
	morningStart   = model.MustClock("06:00")
	noon           = model.MustClock("12:00")
	afternoonUntil = model.MustClock("20:00")
)

// CreditCap keeps courses that fit into max credits on their own. No course
// above the cap can appear in a feasible schedule, so applying it before the
// search does not change the result set.
func CreditCap(max int) Filter {
	return func(c model.Course) bool {
		return c.Credit <= max
	}
}

// DesiredCourses keeps courses whose name contains one of subs.
func DesiredCourses(subs []string) Filter {
	var wanted []string
	for _, s := range subs {
		if s = strings.TrimSpace(s); s != "" {
			wanted = append(wanted, s)
		}
	}
	return func(c model.Course) bool {
		if len(wanted) == 0 {
			return true
		}
		for _, s := range wanted {
			if strings.Contains(c.Name, s) {
				return true
			}
		}
		return false
	}
}

// DaysOff drops courses meeting on any of days.
func DaysOff(days []model.Day) Filter {
	return func(c model.Course) bool {
		for _, s := range c.Sessions {
			if containsDay(days, s.Day) {
				return false
			}
		}
		return true
	}
}

// InstructorContains keeps courses taught by a matching instructor.
func InstructorContains(sub string) Filter {
	return func(c model.Course) bool {
		return sub == "" || strings.Contains(c.Instructor, sub)
	}
}

// InTimeOfDay keeps courses whose every session starts inside the window.
func InTimeOfDay(tod model.TimeOfDay) Filter {
	var from, until model.Clock
	switch tod {
	case model.Morning:
		from, until = morningStart, noon
	case model.Afternoon:
		from, until = noon, afternoonUntil
	default:
		return func(model.Course) bool { return true }
	}
	return func(c model.Course) bool {
		for _, s := range c.Sessions {
			if s.Start < from || s.Start >= until {
				return false
			}
		}
		return true
	}
}

// FiltersFor builds the predicate chain for a request.
func FiltersFor(c model.Constraints) []Filter {
	filters := []Filter{CreditCap(c.MaxCredit)}
	if len(c.DesiredCourses) > 0 {
		filters = append(filters, DesiredCourses(c.DesiredCourses))
	}
	if len(c.ExcludedDays) > 0 {
		filters = append(filters, DaysOff(c.ExcludedDays))
	}
	if c.Instructor != "" {
		filters = append(filters, InstructorContains(c.Instructor))
	}
	if c.TimeOfDay != "" && c.TimeOfDay != model.AnyTime {
		filters = append(filters, InTimeOfDay(c.TimeOfDay))
	}
	return filters
}

// Apply returns the courses passing every filter, in catalog order.
func Apply(catalog []model.Course, filters ...Filter) []model.Course {
	var kept []model.Course
next:
	for _, c := range catalog {
		for _, f := range filters {
			if !f(c) {
				continue next
			}
		}
		kept = append(kept, c)
	}
	return kept
}

// Candidates narrows the catalog to the courses a request may use.
func Candidates(catalog []model.Course, c model.Constraints) []model.Course {
	return Apply(catalog, FiltersFor(c)...)
}
