// Package wizard collects a schedule request one question at a time. The
// state is a plain value and Advance is a pure transition, so the same
// flow drives the terminal form and the stateless HTTP endpoint.
package wizard

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rhyrak/course-planner/pkg/model"
)

type Step int

const (
	StepMaxCredit Step = iota
	StepDaysOff
	StepBackToBack
	StepInstructor
	StepTimeOfDay
	StepDesired
	StepDone
)

const (
	DefaultMaxCredit = 9
	MinCredit        = 1
	MaxCredit        = 21
)

var stepNames = map[Step]string{
	StepMaxCredit:  "max_credit",
	StepDaysOff:    "days_off",
	StepBackToBack: "back_to_back",
	StepInstructor: "instructor",
	StepTimeOfDay:  "time_of_day",
	StepDesired:    "desired_courses",
	StepDone:       "done",
}

func (s Step) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}
	return fmt.Sprintf("step(%d)", int(s))
}

func (s Step) MarshalText() ([]byte, error) {
	if _, ok := stepNames[s]; !ok {
		return nil, fmt.Errorf("unknown wizard step %d", int(s))
	}
	return []byte(s.String()), nil
}

func (s *Step) UnmarshalText(b []byte) error {
	for step, name := range stepNames {
		if name == string(b) {
			*s = step
			return nil
		}
	}
	return fmt.Errorf("unknown wizard step %q", string(b))
}

// ErrFinished is returned by Advance once every question is answered.
var ErrFinished = errors.New("wizard already finished")

// State is the wizard progress. Constraints holds the answers so far.
type State struct {
	Step        Step              `json:"step"`
	Constraints model.Constraints `json:"constraints"`
}

func New() State {
	return State{
		Step:        StepMaxCredit,
		Constraints: model.Constraints{MaxCredit: DefaultMaxCredit, TimeOfDay: model.AnyTime},
	}
}

func (s State) Done() bool {
	return s.Step == StepDone
}

// Advance applies the answer to the current question and moves to the
// next one. On invalid input the state is returned unchanged with an
// error. Blank input keeps the current default.
func Advance(s State, input string) (State, error) {
	input = strings.TrimSpace(input)
	next := s
	next.Constraints.ExcludedDays = append([]model.Day(nil), s.Constraints.ExcludedDays...)
	next.Constraints.DesiredCourses = append([]string(nil), s.Constraints.DesiredCourses...)

	switch s.Step {
	case StepMaxCredit:
		if input != "" {
			n, err := ParseMaxCredit(input)
			if err != nil {
				return s, err
			}
			next.Constraints.MaxCredit = n
		}
	case StepDaysOff:
		days, err := ParseDays(input)
		if err != nil {
			return s, err
		}
		next.Constraints.ExcludedDays = days
	case StepBackToBack:
		if input != "" {
			yes, err := ParseYesNo(input)
			if err != nil {
				return s, err
			}
			next.Constraints.BackToBack = yes
		}
	case StepInstructor:
		next.Constraints.Instructor = input
	case StepTimeOfDay:
		tod, err := model.ParseTimeOfDay(input)
		if err != nil {
			return s, err
		}
		next.Constraints.TimeOfDay = tod
	case StepDesired:
		next.Constraints.DesiredCourses = splitList(input)
	case StepDone:
		return s, ErrFinished
	default:
		return s, fmt.Errorf("unknown wizard step %d", int(s.Step))
	}
	next.Step = s.Step + 1
	return next, nil
}

func ParseMaxCredit(input string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, fmt.Errorf("max credit must be a whole number, got %q", input)
	}
	if n < MinCredit || n > MaxCredit {
		return 0, fmt.Errorf("max credit must be between %d and %d, got %d", MinCredit, MaxCredit, n)
	}
	return n, nil
}

// ParseDays reads a comma or space separated list of weekdays. Duplicates
// are dropped.
func ParseDays(input string) ([]model.Day, error) {
	var days []model.Day
	seen := map[model.Day]bool{}
	for _, f := range splitList(input) {
		d, ok := model.ParseDay(f)
		if !ok {
			return nil, fmt.Errorf("unknown weekday %q", f)
		}
		if !seen[d] {
			seen[d] = true
			days = append(days, d)
		}
	}
	return days, nil
}

func ParseYesNo(input string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "y", "yes", "true", "1", "예", "네":
		return true, nil
	case "n", "no", "false", "0", "아니오", "아니요":
		return false, nil
	}
	return false, fmt.Errorf("expected yes or no, got %q", input)
}

func splitList(input string) []string {
	fields := strings.FieldsFunc(input, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) == 0 {
		return nil
	}
	return fields
}
