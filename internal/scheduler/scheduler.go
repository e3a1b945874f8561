package scheduler

import (
	"errors"
	"fmt"

	"github.com/rhyrak/course-planner/pkg/model"
)

// ErrNoSchedule is returned when no combination satisfies the request.
var ErrNoSchedule = errors.New("no feasible schedule")

// Generate filters catalog by c, searches every conflict-free combination
// within the credit cap and returns the best opts.TopN by score.
//
// When nothing is feasible the returned Result still carries the search
// statistics and the error is ErrNoSchedule. A search cut short by the node
// or time budget is not an error; Result.Truncated is set instead.
func Generate(catalog []model.Course, c model.Constraints, opts *Options) (*model.Result, error) {
	if opts == nil {
		opts = NewDefaultOptions()
	}
	if c.MaxCredit < 0 {
		return nil, fmt.Errorf("max credit must not be negative, got %d", c.MaxCredit)
	}

	candidates := Candidates(catalog, c)
	r := newRanker(opts.TopN)
	stats := runSearch(candidates, c, opts, func(chosen []int, credits, score int, b2b bool) bool {
		r.offer(score, func() model.Schedule {
			return materialize(candidates, chosen, credits, score, b2b)
		})
		return true
	})

	res := &model.Result{
		Schedules:  r.schedules(),
		Candidates: len(candidates),
		Feasible:   stats.Feasible,
		Nodes:      stats.Nodes,
		Truncated:  stats.Truncated,
	}
	if len(res.Schedules) == 0 {
		return res, ErrNoSchedule
	}
	return res, nil
}
