package csvio

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/rhyrak/course-planner/pkg/model"
)

// ExportSchedules formats the ranked schedules into ScheduleCSVRow structs
// and writes them to the CSV file specified by the given path.
func ExportSchedules(schedules []model.Schedule, path string) error {
	nice := formatSchedules(schedules)
	out, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer out.Close()
	if err := gocsv.MarshalFile(&nice, out); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// ExportSchedulesString is ExportSchedules into a string.
func ExportSchedulesString(schedules []model.Schedule) (string, error) {
	nice := formatSchedules(schedules)
	return gocsv.MarshalString(&nice)
}

// PrintSchedule prints one ranked schedule as a weekly listing, one line
// per session, ordered by weekday and start time.
func PrintSchedule(w io.Writer, rank int, s model.Schedule) {
	header := fmt.Sprintf("#%d  %d credits  score %d", rank, s.Credits, s.Score)
	fmt.Fprintf(w, "\n%s %s %s\n", strings.Repeat("-", (40-len(header))/2), header, strings.Repeat("-", (41-len(header))/2))

	type line struct {
		session model.Session
		course  model.Course
	}
	var lines []line
	var unscheduled []model.Course
	for _, c := range s.Courses {
		if len(c.Sessions) == 0 {
			unscheduled = append(unscheduled, c)
			continue
		}
		for _, ss := range c.Sessions {
			lines = append(lines, line{ss, c})
		}
	}
	slices.SortStableFunc(lines, func(a, b line) int {
		if d := a.session.Day.Index() - b.session.Day.Index(); d != 0 {
			return d
		}
		return int(a.session.Start - b.session.Start)
	})
	for _, l := range lines {
		fmt.Fprintf(w, "%-4s %s-%s  %-24s %s\n", l.session.Day.English(), l.session.Start, l.session.End, l.course.Name, l.course.Instructor)
	}
	for _, c := range unscheduled {
		fmt.Fprintf(w, "%-4s %-11s  %-24s %s\n", "-", "unscheduled", c.Name, c.Instructor)
	}
	if s.BackToBack {
		fmt.Fprintln(w, "back-to-back")
	}
}

func formatSchedules(schedules []model.Schedule) []*model.ScheduleCSVRow {
	formatted := []*model.ScheduleCSVRow{}
	for i, s := range schedules {
		for _, c := range s.Courses {
			formatted = append(formatted, &model.ScheduleCSVRow{
				Rank:       i + 1,
				Score:      s.Score,
				CourseName: c.Name,
				Instructor: c.Instructor,
				Credit:     c.Credit,
				Year:       c.Year,
				Time:       c.RawTime,
			})
		}
	}
	return formatted
}
