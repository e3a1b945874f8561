package scheduler

import (
	"slices"
	"time"

	"github.com/rhyrak/course-planner/pkg/model"
)

// Options tunes the combination search and ranking.
type Options struct {
	TopN            int           // schedules returned
	MaxSize         int           // courses per schedule, 0 = unbounded
	MaxNodes        int           // search nodes before giving up, 0 = unbounded
	Timeout         time.Duration // wall time before giving up, 0 = unbounded
	DisablePruning  bool
	ElapsedGap      bool // back-to-back gaps in real minutes instead of HHMM difference
	BackToBackBonus int  // > 0 scores back-to-back schedules instead of filtering
}

func NewDefaultOptions() *Options {
	return &Options{
		TopN:     5,
		MaxSize:  0,
		MaxNodes: 5_000_000,
		Timeout:  10 * time.Second,
	}
}

// LegacyOptions caps schedules at five courses.
func LegacyOptions() *Options {
	opts := NewDefaultOptions()
	opts.MaxSize = 5
	return opts
}

func totalCredits(courses []model.Course) int {
	sum := 0
	for _, c := range courses {
		sum += c.Credit
	}
	return sum
}

func containsDay(s []model.Day, d model.Day) bool {
	return slices.Contains(s, d)
}
