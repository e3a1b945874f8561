package scheduler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rhyrak/course-planner/pkg/model"
)

func TestParseRecoversDayAndClock(t *testing.T) {
	cases := []struct {
		raw   string
		day   model.Day
		start string
		end   string
	}{
		{"월(09:00~10:30)", model.Monday, "09:00", "10:30"},
		{"화1,2,3(13:30~16:20)", model.Tuesday, "13:30", "16:20"},
		{"금 공학관 301(00:05~23:59)", model.Friday, "00:05", "23:59"},
		{"X(07:00~07:01)", model.Day("X"), "07:00", "07:01"},
	}
	for _, tc := range cases {
		sessions := Parse(tc.raw)
		require.Len(t, sessions, 1, tc.raw)
		require.Equal(t, tc.day, sessions[0].Day)
		require.Equal(t, tc.start, sessions[0].Start.String())
		require.Equal(t, tc.end, sessions[0].End.String())
	}
}

func TestParseKeepsSegmentOrder(t *testing.T) {
	sessions := Parse("수3(13:00~14:30)/월1(09:00~10:30)/금(18:00~19:00)")
	require.Equal(t, []model.Session{
		{Day: model.Wednesday, Start: model.MustClock("13:00"), End: model.MustClock("14:30")},
		{Day: model.Monday, Start: model.MustClock("09:00"), End: model.MustClock("10:30")},
		{Day: model.Friday, Start: model.MustClock("18:00"), End: model.MustClock("19:00")},
	}, sessions)
}

func TestParseBlankHasNoSessions(t *testing.T) {
	require.Empty(t, Parse(""))
	require.Empty(t, Parse("   "))
	sessions, err := ParseStrict("")
	require.NoError(t, err)
	require.Empty(t, sessions)
}

func TestParseLenientSkipsMalformedSegments(t *testing.T) {
	raw := "월(09:00~10:30)/화 미정/수(11:00-12:00)/목(12:00~11:00)/금(14:00~15:00"
	sessions := Parse(raw)
	require.Len(t, sessions, 1)
	require.Equal(t, model.Monday, sessions[0].Day)

	_, err := ParseStrict(raw)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrMalformedSegment))
	require.Contains(t, err.Error(), "화 미정")
}

func TestParseStrictRejectsBadClock(t *testing.T) {
	for _, raw := range []string{"월(9:0~10:00)", "월(24:00~25:00)", "월(aa:bb~10:00)", "(09:00~10:00)", "월/"} {
		_, err := ParseStrict(raw)
		require.Error(t, err, raw)
	}
}

func TestClockOrdering(t *testing.T) {
	a := model.MustClock("09:00")
	b := model.MustClock("09:05")
	c := model.MustClock("09:10")
	require.True(t, a < b && b < c)
	require.Equal(t, 905, b.HHMM())
	require.Equal(t, "09:05", b.String())
}
