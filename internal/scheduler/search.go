package scheduler

import (
	"time"

	"github.com/rhyrak/course-planner/pkg/model"
)

// SearchStats summarises one combination search.
type SearchStats struct {
	Nodes     int
	Feasible  int
	Truncated bool
}

// emitFunc receives candidate indices of a feasible schedule. chosen is
// only valid during the call.
type emitFunc func(chosen []int, credits, score int, backToBack bool) bool

type search struct {
	candidates []model.Course
	maxCredit  int
	backToBack bool
	opts       *Options
	deadline   time.Time
	chosen     []int
	buf        []model.Course
	stats      SearchStats
	stopped    bool
	emit       emitFunc
}

func runSearch(candidates []model.Course, c model.Constraints, opts *Options, emit emitFunc) SearchStats {
	s := &search{
		candidates: candidates,
		maxCredit:  c.MaxCredit,
		backToBack: c.BackToBack,
		opts:       opts,
		emit:       emit,
	}
	if opts.Timeout > 0 {
		s.deadline = time.Now().Add(opts.Timeout)
	}
	s.extend(0, 0, true)
	return s.stats
}

// extend grows the current selection with candidates after index from.
// Credit overflow and time conflicts only ever get worse as a selection
// grows, so with pruning on such branches are not entered at all.
func (s *search) extend(from, credits int, feasible bool) {
	if s.opts.MaxSize > 0 && len(s.chosen) >= s.opts.MaxSize {
		return
	}
	for i := from; i < len(s.candidates); i++ {
		if s.exhausted() {
			return
		}
		s.stats.Nodes++
		c := s.candidates[i]
		ok := feasible && credits+c.Credit <= s.maxCredit && !s.conflicts(c)
		if !ok && !s.opts.DisablePruning {
			continue
		}
		s.chosen = append(s.chosen, i)
		if ok {
			s.accept(credits + c.Credit)
		}
		s.extend(i+1, credits+c.Credit, ok)
		s.chosen = s.chosen[:len(s.chosen)-1]
	}
}

func (s *search) conflicts(c model.Course) bool {
	for _, idx := range s.chosen {
		if CoursesConflict(s.candidates[idx], c) {
			return true
		}
	}
	return false
}

func (s *search) accept(credits int) {
	score, b2b := credits, false
	if s.backToBack {
		s.buf = s.buf[:0]
		for _, idx := range s.chosen {
			s.buf = append(s.buf, s.candidates[idx])
		}
		b2b = IsBackToBack(s.buf, s.opts.ElapsedGap)
		switch {
		case s.opts.BackToBackBonus > 0 && b2b:
			score += s.opts.BackToBackBonus
		case s.opts.BackToBackBonus <= 0 && !b2b:
			return
		}
	}
	s.stats.Feasible++
	if !s.emit(s.chosen, credits, score, b2b) {
		s.stopped = true
	}
}

func (s *search) exhausted() bool {
	if s.stopped || s.stats.Truncated {
		return true
	}
	switch {
	case s.opts.MaxNodes > 0 && s.stats.Nodes >= s.opts.MaxNodes:
		s.stats.Truncated = true
	case !s.deadline.IsZero() && s.stats.Nodes%256 == 0 && time.Now().After(s.deadline):
		s.stats.Truncated = true
	}
	return s.stats.Truncated
}

// Enumerate calls visit with every feasible schedule of candidates, in
// generation order. Returning false from visit ends the search early.
func Enumerate(candidates []model.Course, c model.Constraints, opts *Options, visit func(model.Schedule) bool) SearchStats {
	if opts == nil {
		opts = NewDefaultOptions()
	}
	return runSearch(candidates, c, opts, func(chosen []int, credits, score int, b2b bool) bool {
		return visit(materialize(candidates, chosen, credits, score, b2b))
	})
}

func materialize(candidates []model.Course, chosen []int, credits, score int, b2b bool) model.Schedule {
	courses := make([]model.Course, len(chosen))
	for i, idx := range chosen {
		courses[i] = candidates[idx]
	}
	return model.Schedule{Courses: courses, Credits: credits, Score: score, BackToBack: b2b}
}
