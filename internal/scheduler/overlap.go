package scheduler

import "github.com/rhyrak/course-planner/pkg/model"

// Overlaps reports whether any session of a meets on the same day as a
// session of b with intersecting [start, end) ranges.
func Overlaps(a, b []model.Session) bool {
	for _, x := range a {
		for _, y := range b {
			if sessionsOverlap(x, y) {
				return true
			}
		}
	}
	return false
}

func sessionsOverlap(x, y model.Session) bool {
	return x.Day == y.Day && !(x.End <= y.Start || y.End <= x.Start)
}

// CoursesConflict reports whether two courses cannot be taken together.
func CoursesConflict(x, y model.Course) bool {
	return Overlaps(x.Sessions, y.Sessions)
}
