package scheduler

import (
	"fmt"

	"github.com/rhyrak/course-planner/pkg/model"
)

// Validate re-checks a schedule against the request without relying on
// the search. Returns false and a report for invalid schedules.
func Validate(schedule model.Schedule, c model.Constraints, opts *Options) (bool, string) {
	if opts == nil {
		opts = NewDefaultOptions()
	}
	var message string
	var valid bool = true
	var hasDuplicate bool = false
	var hasCollision bool = false
	var hasFilterMiss bool = false

	credits := totalCredits(schedule.Courses)
	overBudget := credits > c.MaxCredit
	if overBudget {
		valid = false
		message += fmt.Sprintf("- Total credit %d exceeds limit %d\n", credits, c.MaxCredit)
	}
	if credits != schedule.Credits {
		valid = false
		message += fmt.Sprintf("- Reported credit %d, counted %d\n", schedule.Credits, credits)
	}

	seen := make(map[int]bool, len(schedule.Courses))
	for _, course := range schedule.Courses {
		if seen[course.ID] {
			valid = false
			hasDuplicate = true
			message += fmt.Sprintf("- Course %d %s listed more than once\n", course.ID, course.Name)
		}
		seen[course.ID] = true
	}

	for i, c1 := range schedule.Courses {
		for _, c2 := range schedule.Courses[i+1:] {
			if CoursesConflict(c1, c2) {
				valid = false
				hasCollision = true
				message += fmt.Sprintf("- %s and %s meet at the same time\n", c1.Name, c2.Name)
			}
		}
	}

	filters := FiltersFor(c)
	for _, course := range schedule.Courses {
		for _, f := range filters {
			if !f(course) {
				valid = false
				hasFilterMiss = true
				message += fmt.Sprintf("- %s does not match the request filters\n", course.Name)
				break
			}
		}
	}

	gapOK := true
	if c.BackToBack {
		b2b := IsBackToBack(schedule.Courses, opts.ElapsedGap)
		if opts.BackToBackBonus > 0 {
			// gaps are allowed, only the flag must be honest
			gapOK = b2b == schedule.BackToBack
		} else {
			gapOK = b2b
		}
	}

	header := ""
	header += status(!overBudget) + "Credit limit check.\n"
	header += status(!hasDuplicate) + "Distinct course check.\n"
	header += status(!hasCollision) + "Time collision check.\n"
	header += status(!hasFilterMiss) + "Request filter check.\n"
	if c.BackToBack {
		if !gapOK {
			valid = false
			message += "- Back-to-back requirement not met\n"
		}
		header += status(gapOK) + "Back-to-back check.\n"
	}
	return valid, header + message
}

func status(ok bool) string {
	if ok {
		return "[  OK]: "
	}
	return "[FAIL]: "
}
