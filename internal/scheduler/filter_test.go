package scheduler

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rhyrak/course-planner/pkg/model"
)

func mkCourse(id int, name string, credit int, raw, instructor string) model.Course {
	return model.Course{
		ID:         id,
		Name:       name,
		Credit:     credit,
		Instructor: instructor,
		RawTime:    raw,
		Sessions:   Parse(raw),
	}
}

func names(courses []model.Course) []string {
	out := make([]string, len(courses))
	for i, c := range courses {
		out[i] = c.Name
	}
	return out
}

func TestTimeOfDayFilter(t *testing.T) {
	early := mkCourse(0, "early", 3, "월(07:00~08:30)", "")
	late := mkCourse(1, "late", 3, "화(12:00~13:00)", "")
	mixed := mkCourse(2, "mixed", 3, "월(11:00~12:00)/수(13:00~14:00)", "")
	online := mkCourse(3, "online", 3, "", "")
	night := mkCourse(4, "night", 3, "목(20:00~21:00)", "")

	require.True(t, InTimeOfDay(model.Morning)(early))
	require.False(t, InTimeOfDay(model.Afternoon)(early))
	require.True(t, InTimeOfDay(model.Afternoon)(late))
	require.False(t, InTimeOfDay(model.Morning)(late))
	require.False(t, InTimeOfDay(model.Morning)(mixed))
	require.False(t, InTimeOfDay(model.Afternoon)(mixed))
	require.True(t, InTimeOfDay(model.Morning)(online))
	require.True(t, InTimeOfDay(model.Afternoon)(online))
	require.False(t, InTimeOfDay(model.Afternoon)(night))
	require.True(t, InTimeOfDay(model.AnyTime)(night))
}

func TestDaysOffFilter(t *testing.T) {
	c := mkCourse(0, "a", 3, "월(09:00~10:00)/수(09:00~10:00)", "")
	require.False(t, DaysOff([]model.Day{model.Wednesday})(c))
	require.True(t, DaysOff([]model.Day{model.Tuesday, model.Friday})(c))
	require.True(t, DaysOff(nil)(c))
	require.True(t, DaysOff([]model.Day{model.Monday})(mkCourse(1, "online", 3, "", "")))
}

func TestInstructorAndDesiredFilters(t *testing.T) {
	c := mkCourse(0, "자료구조", 3, "", "김철수")
	require.True(t, InstructorContains("")(c))
	require.True(t, InstructorContains("철수")(c))
	require.False(t, InstructorContains("영희")(c))

	require.True(t, DesiredCourses(nil)(c))
	require.True(t, DesiredCourses([]string{" "})(c))
	require.True(t, DesiredCourses([]string{"알고리즘", "자료"})(c))
	require.False(t, DesiredCourses([]string{"알고리즘"})(c))
}

func TestCandidatesComposesFilters(t *testing.T) {
	catalog := []model.Course{
		mkCourse(0, "A", 3, "월(09:00~10:30)", "Kim"),
		mkCourse(1, "B", 3, "화(09:00~10:30)", "Kim"),
		mkCourse(2, "C", 3, "수(14:00~15:30)", "Lee"),
		mkCourse(3, "D", 12, "목(09:00~10:30)", "Kim"),
		mkCourse(4, "A2", 3, "금(09:00~10:30)", "Kim"),
	}
	c := model.Constraints{
		MaxCredit:      9,
		ExcludedDays:   []model.Day{model.Tuesday},
		Instructor:     "Kim",
		TimeOfDay:      model.Morning,
		DesiredCourses: []string{"A", "D"},
	}
	require.Equal(t, []string{"A", "A2"}, names(Candidates(catalog, c)))

	// the catalog itself is untouched
	require.Len(t, catalog, 5)
	require.Equal(t, "B", catalog[1].Name)
}
