package scheduler

import (
	"slices"

	"github.com/rhyrak/course-planner/pkg/model"
)

// ranker keeps the n best schedules seen so far. Schedules arrive in
// generation order, so placing a newcomer after every equal score keeps
// ties in that order.
type ranker struct {
	n   int
	top []model.Schedule
}

func newRanker(n int) *ranker {
	if n <= 0 {
		n = 5
	}
	return &ranker{n: n, top: make([]model.Schedule, 0, n+1)}
}

func (r *ranker) offer(score int, build func() model.Schedule) {
	pos := len(r.top)
	for pos > 0 && r.top[pos-1].Score < score {
		pos--
	}
	if pos >= r.n {
		return
	}
	r.top = slices.Insert(r.top, pos, build())
	if len(r.top) > r.n {
		r.top = r.top[:r.n]
	}
}

func (r *ranker) schedules() []model.Schedule {
	return r.top
}
