package model

import (
	"fmt"
	"strings"
)

type TimeOfDay string

const (
	AnyTime   TimeOfDay = "any"
	Morning   TimeOfDay = "morning"
	Afternoon TimeOfDay = "afternoon"
)

// ParseTimeOfDay accepts the English names and the labels used by the
// course portal (전체, 아침, 오후). Empty input means AnyTime.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "any", "all", "전체":
		return AnyTime, nil
	case "morning", "am", "아침", "오전":
		return Morning, nil
	case "afternoon", "pm", "오후":
		return Afternoon, nil
	}
	return "", fmt.Errorf("unknown time of day %q", s)
}

// Constraints is a user's schedule request.
type Constraints struct {
	MaxCredit      int       `json:"maxCredit"`
	ExcludedDays   []Day     `json:"excludedDays"`
	Instructor     string    `json:"instructor"`
	TimeOfDay      TimeOfDay `json:"timeOfDay"`
	BackToBack     bool      `json:"backToBack"`
	DesiredCourses []string  `json:"desiredCourses"`
}
