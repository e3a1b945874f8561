package scheduler

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rhyrak/course-planner/pkg/model"
)

// ErrMalformedSegment is wrapped by ParseStrict for segments it cannot read.
var ErrMalformedSegment = errors.New("malformed meeting-time segment")

// Parse reads a meeting-time descriptor such as
// "월1,2(09:00~10:30)/수3(13:00~14:30)" and skips segments it cannot read.
// A blank descriptor has no sessions.
func Parse(raw string) []model.Session {
	sessions, _ := parse(raw, false)
	return sessions
}

// ParseStrict is Parse but fails on the first malformed segment.
func ParseStrict(raw string) ([]model.Session, error) {
	return parse(raw, true)
}

func parse(raw string, strict bool) ([]model.Session, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	var sessions []model.Session
	for _, seg := range strings.Split(raw, "/") {
		s, err := parseSegment(seg)
		if err != nil {
			if strict {
				return nil, err
			}
			continue
		}
		sessions = append(sessions, s)
	}
	return sessions, nil
}

func parseSegment(seg string) (model.Session, error) {
	seg = strings.TrimSpace(seg)
	day, _ := utf8.DecodeRuneInString(seg)
	if day == utf8.RuneError || day == '(' {
		return model.Session{}, fmt.Errorf("%w %q: missing day", ErrMalformedSegment, seg)
	}
	open := strings.IndexByte(seg, '(')
	if open < 0 {
		return model.Session{}, fmt.Errorf("%w %q: missing time range", ErrMalformedSegment, seg)
	}
	closing := strings.IndexByte(seg[open+1:], ')')
	if closing < 0 {
		return model.Session{}, fmt.Errorf("%w %q: unterminated time range", ErrMalformedSegment, seg)
	}
	from, to, ok := strings.Cut(seg[open+1:open+1+closing], "~")
	if !ok {
		return model.Session{}, fmt.Errorf("%w %q: missing '~'", ErrMalformedSegment, seg)
	}
	start, err := model.ParseClock(from)
	if err != nil {
		return model.Session{}, fmt.Errorf("%w %q: %v", ErrMalformedSegment, seg, err)
	}
	end, err := model.ParseClock(to)
	if err != nil {
		return model.Session{}, fmt.Errorf("%w %q: %v", ErrMalformedSegment, seg, err)
	}
	if start >= end {
		return model.Session{}, fmt.Errorf("%w %q: start not before end", ErrMalformedSegment, seg)
	}
	return model.Session{Day: model.Day(string(day)), Start: start, End: end}, nil
}
