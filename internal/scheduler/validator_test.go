package scheduler

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rhyrak/course-planner/pkg/model"
)

func TestValidateAcceptsGeneratedSchedule(t *testing.T) {
	c := model.Constraints{MaxCredit: 9}
	res, err := Generate(abcCatalog(), c, nil)
	require.NoError(t, err)
	valid, msg := Validate(res.Schedules[0], c, nil)
	require.True(t, valid, msg)
	require.Contains(t, msg, "[  OK]: Time collision check.")
}

func TestValidateReportsProblems(t *testing.T) {
	a := mkCourse(0, "A", 3, "월(09:00~10:30)", "")
	b := mkCourse(1, "B", 3, "월(10:00~11:30)", "")
	s := model.Schedule{Courses: []model.Course{a, b, a}, Credits: 9, Score: 9}

	valid, msg := Validate(s, model.Constraints{MaxCredit: 6}, nil)
	require.False(t, valid)
	require.Contains(t, msg, "[FAIL]: Credit limit check.")
	require.Contains(t, msg, "[FAIL]: Distinct course check.")
	require.Contains(t, msg, "[FAIL]: Time collision check.")
	require.Contains(t, msg, "A and B meet at the same time")
}

func TestValidateChecksFilters(t *testing.T) {
	s := model.Schedule{Courses: []model.Course{mkCourse(0, "A", 3, "화(15:00~16:00)", "Lee")}, Credits: 3, Score: 3}
	c := model.Constraints{MaxCredit: 9, TimeOfDay: model.Morning}
	valid, msg := Validate(s, c, nil)
	require.False(t, valid)
	require.Contains(t, msg, "[FAIL]: Request filter check.")
}
