package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Day is a weekday symbol as it appears at the start of a meeting-time segment.
type Day string

const (
	Monday    Day = "월"
	Tuesday   Day = "화"
	Wednesday Day = "수"
	Thursday  Day = "목"
	Friday    Day = "금"
	Saturday  Day = "토"
	Sunday    Day = "일"
)

// Week lists the known day symbols in calendar order.
var Week = []Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

var englishDays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

var weekdays = []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday, time.Sunday}

// Index returns the position of d in Week. Unknown symbols sort last.
func (d Day) Index() int {
	for i, w := range Week {
		if w == d {
			return i
		}
	}
	return len(Week)
}

// English returns a three letter English label, or the raw symbol if unknown.
func (d Day) English() string {
	i := d.Index()
	if i == len(Week) {
		return string(d)
	}
	name := englishDays[i]
	return strings.ToUpper(name[:1]) + name[1:3]
}

// Weekday maps d to time.Weekday.
func (d Day) Weekday() (time.Weekday, bool) {
	i := d.Index()
	if i == len(Week) {
		return 0, false
	}
	return weekdays[i], true
}

// ParseDay accepts a Korean day symbol or an English day name or prefix
// of at least three letters ("Tue", "tuesday").
func ParseDay(s string) (Day, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	for _, d := range Week {
		if string(d) == s || string(d)+"요일" == s {
			return d, true
		}
	}
	lower := strings.ToLower(s)
	if len(lower) < 3 {
		return "", false
	}
	for i, name := range englishDays {
		if strings.HasPrefix(name, lower) {
			return Week[i], true
		}
	}
	return "", false
}

// Clock is a time of day in minutes after midnight.
type Clock int

// ParseClock parses a 24-hour "HH:MM" value.
func ParseClock(s string) (Clock, error) {
	s = strings.TrimSpace(s)
	hh, mm, ok := strings.Cut(s, ":")
	if !ok || len(hh) == 0 || len(hh) > 2 || len(mm) != 2 {
		return 0, fmt.Errorf("invalid clock %q: want HH:MM", s)
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid hour in %q", s)
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid minute in %q", s)
	}
	return Clock(h*60 + m), nil
}

// MustClock is ParseClock for literals known to be valid.
func MustClock(s string) Clock {
	c, err := ParseClock(s)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Clock) Hour() int   { return int(c) / 60 }
func (c Clock) Minute() int { return int(c) % 60 }

// HHMM returns the clock as the integer hour*100+minute.
func (c Clock) HHMM() int { return c.Hour()*100 + c.Minute() }

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

func (c Clock) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Clock) UnmarshalText(b []byte) error {
	v, err := ParseClock(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// Session is one weekly meeting of a course. Start is always before End.
type Session struct {
	Day   Day   `json:"day"`
	Start Clock `json:"start"`
	End   Clock `json:"end"`
}

func (s Session) String() string {
	return fmt.Sprintf("%s(%s~%s)", s.Day, s.Start, s.End)
}
