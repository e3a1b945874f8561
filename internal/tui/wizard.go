package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/rhyrak/course-planner/internal/wizard"
	"github.com/rhyrak/course-planner/pkg/model"
)

// RunWizard asks the wizard questions one form at a time and returns the
// collected constraints.
func RunWizard() (model.Constraints, error) {
	state := wizard.New()
	for !state.Done() {
		input, err := ask(state)
		if err != nil {
			return model.Constraints{}, err
		}
		next, err := wizard.Advance(state, input)
		if err != nil {
			return model.Constraints{}, err
		}
		state = next
	}
	return state.Constraints, nil
}

// ask renders the prompt of the current step and returns the raw answer.
// Inputs are validated with the same transition that will consume them.
func ask(state wizard.State) (string, error) {
	p := wizard.PromptFor(state)
	validate := func(s string) error {
		_, err := wizard.Advance(state, s)
		return err
	}

	var field huh.Field
	var answer func() string

	switch p.Kind {
	case wizard.KindNumber, wizard.KindText:
		value := p.Default
		field = huh.NewInput().
			Title(p.Title).
			Description(p.Description).
			Value(&value).
			Validate(validate)
		answer = func() string { return value }
	case wizard.KindMulti:
		var values []string
		field = huh.NewMultiSelect[string]().
			Title(p.Title).
			Description(p.Description).
			Options(options(p.Options)...).
			Value(&values)
		answer = func() string { return strings.Join(values, ",") }
	case wizard.KindConfirm:
		value, _ := strconv.ParseBool(p.Default)
		field = huh.NewConfirm().
			Title(p.Title).
			Description(p.Description).
			Affirmative("Yes").
			Negative("No").
			Value(&value)
		answer = func() string { return yesNo(value) }
	case wizard.KindSelect:
		value := p.Default
		field = huh.NewSelect[string]().
			Title(p.Title).
			Options(options(p.Options)...).
			Value(&value)
		answer = func() string { return value }
	default:
		return "", nil
	}

	if err := huh.NewForm(huh.NewGroup(field)).WithTheme(Theme()).Run(); err != nil {
		return "", err
	}
	return answer(), nil
}

func options(opts []wizard.Option) []huh.Option[string] {
	out := make([]huh.Option[string], len(opts))
	for i, o := range opts {
		out[i] = huh.NewOption(o.Label, o.Value)
	}
	return out
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
