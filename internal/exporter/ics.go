package exporter

import (
	"errors"
	"fmt"
	"io"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/rhyrak/course-planner/pkg/model"
)

// Term anchors weekly sessions to real dates.
type Term struct {
	Start    time.Time      // first day of classes
	Weeks    int            // number of weekly repetitions
	Location *time.Location // zone of the session clocks
}

// GenerateICS writes one recurring weekly event per session of the
// schedule. Courses without sessions are left out.
func GenerateICS(s model.Schedule, term Term, w io.Writer) error {
	if term.Start.IsZero() {
		return errors.New("term start is required")
	}
	if term.Weeks <= 0 {
		term.Weeks = 16
	}
	loc := term.Location
	if loc == nil {
		loc = time.Local
	}
	first := time.Date(term.Start.Year(), term.Start.Month(), term.Start.Day(), 0, 0, 0, 0, loc)

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//rhyrak//course-planner//EN")

	now := time.Now()
	for _, c := range s.Courses {
		for i, ss := range c.Sessions {
			wd, ok := ss.Day.Weekday()
			if !ok {
				continue
			}
			day := first.AddDate(0, 0, (int(wd)-int(first.Weekday())+7)%7)
			start := at(day, ss.Start)
			end := at(day, ss.End)

			event := cal.AddEvent(fmt.Sprintf("course-%d-%d@course-planner", c.ID, i))
			event.SetDtStampTime(now)
			event.SetStartAt(start)
			event.SetEndAt(end)
			event.SetSummary(c.Name)
			event.SetDescription(fmt.Sprintf("Instructor: %s\nCredits: %d", c.Instructor, c.Credit))
			event.AddRrule(fmt.Sprintf("FREQ=WEEKLY;COUNT=%d", term.Weeks))
		}
	}

	return cal.SerializeTo(w)
}

// at places a wall clock time on day, DST change days included.
func at(day time.Time, c model.Clock) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, c.Hour(), c.Minute(), 0, 0, day.Location())
}
