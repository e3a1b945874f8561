package wizard

import (
	"strconv"

	"github.com/rhyrak/course-planner/pkg/model"
)

type Kind string

const (
	KindNumber  Kind = "number"
	KindMulti   Kind = "multiselect"
	KindConfirm Kind = "confirm"
	KindText    Kind = "text"
	KindSelect  Kind = "select"
	KindNone    Kind = "none"
)

type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Prompt describes the question for a step so a front end can render it.
type Prompt struct {
	Step        Step     `json:"step"`
	Kind        Kind     `json:"kind"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Default     string   `json:"default,omitempty"`
	Options     []Option `json:"options,omitempty"`
}

var weekdayOptions = []Option{
	{Label: "Monday (월)", Value: string(model.Monday)},
	{Label: "Tuesday (화)", Value: string(model.Tuesday)},
	{Label: "Wednesday (수)", Value: string(model.Wednesday)},
	{Label: "Thursday (목)", Value: string(model.Thursday)},
	{Label: "Friday (금)", Value: string(model.Friday)},
}

var timeOfDayOptions = []Option{
	{Label: "Any time (전체)", Value: string(model.AnyTime)},
	{Label: "Morning, 06:00-12:00 (아침)", Value: string(model.Morning)},
	{Label: "Afternoon, 12:00-20:00 (오후)", Value: string(model.Afternoon)},
}

// PromptFor returns the question asked at the state's current step.
func PromptFor(s State) Prompt {
	switch s.Step {
	case StepMaxCredit:
		return Prompt{
			Step:        s.Step,
			Kind:        KindNumber,
			Title:       "Maximum credits",
			Description: "Between " + strconv.Itoa(MinCredit) + " and " + strconv.Itoa(MaxCredit) + ".",
			Default:     strconv.Itoa(s.Constraints.MaxCredit),
		}
	case StepDaysOff:
		return Prompt{Step: s.Step, Kind: KindMulti, Title: "Days off", Description: "Weekdays without classes.", Options: weekdayOptions}
	case StepBackToBack:
		return Prompt{Step: s.Step, Kind: KindConfirm, Title: "Back-to-back classes?", Description: "At most an hour between classes on the same day.", Default: strconv.FormatBool(s.Constraints.BackToBack)}
	case StepInstructor:
		return Prompt{Step: s.Step, Kind: KindText, Title: "Preferred instructor", Description: "Part of the name; leave blank for anyone."}
	case StepTimeOfDay:
		return Prompt{Step: s.Step, Kind: KindSelect, Title: "Time of day", Default: string(model.AnyTime), Options: timeOfDayOptions}
	case StepDesired:
		return Prompt{Step: s.Step, Kind: KindText, Title: "Courses you want", Description: "Comma separated parts of course names; leave blank for all."}
	}
	return Prompt{Step: s.Step, Kind: KindNone, Title: "Done"}
}
