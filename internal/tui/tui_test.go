package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rhyrak/course-planner/internal/wizard"
	"github.com/rhyrak/course-planner/pkg/model"
)

func sample() model.Schedule {
	return model.Schedule{
		Courses: []model.Course{
			{Name: "자료구조", Instructor: "김민수", Credit: 3, Sessions: []model.Session{
				{Day: model.Monday, Start: model.MustClock("09:00"), End: model.MustClock("10:30")},
			}},
			{Name: "Seminar", Instructor: "Choi", Credit: 1, RawTime: "TBA"},
		},
		Credits:    4,
		Score:      9,
		BackToBack: true,
	}
}

func TestRenderSchedule(t *testing.T) {
	out := RenderSchedule(2, sample())
	assert.Contains(t, out, "#2  4 credits (score 9)")
	assert.Contains(t, out, "back-to-back")
	assert.Contains(t, out, "자료구조")
	assert.Contains(t, out, "월(09:00~10:30)")
	assert.Contains(t, out, "TBA")
	assert.Contains(t, out, "Instructor")
}

func TestRenderResult(t *testing.T) {
	res := &model.Result{Schedules: []model.Schedule{sample(), sample()}, Candidates: 4, Feasible: 11, Nodes: 15, Truncated: true}
	out := RenderResult(res)
	assert.Equal(t, 2, strings.Count(out, "credits"))
	assert.Contains(t, out, "4 candidates, 11 feasible combinations, 15 nodes, search stopped early")
}

func TestOptionsKeepValues(t *testing.T) {
	p := wizard.PromptFor(wizard.State{Step: wizard.StepTimeOfDay})
	opts := options(p.Options)
	require.Len(t, opts, 3)
	assert.Equal(t, string(model.Morning), opts[1].Value)
}

func TestYesNoFeedsWizard(t *testing.T) {
	s := wizard.State{Step: wizard.StepBackToBack}
	next, err := wizard.Advance(s, yesNo(true))
	require.NoError(t, err)
	assert.True(t, next.Constraints.BackToBack)
	next, err = wizard.Advance(s, yesNo(false))
	require.NoError(t, err)
	assert.False(t, next.Constraints.BackToBack)
}
