package scheduler

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOverlaps(t *testing.T) {
	mon9 := Parse("월(09:00~10:30)")
	mon1030 := Parse("월(10:30~12:00)")
	mon10 := Parse("월(10:00~11:30)")
	tue9 := Parse("화(09:00~10:30)")
	multi := Parse("화(15:00~16:00)/월(11:00~11:15)")

	require.False(t, Overlaps(mon9, mon1030), "touching ranges do not overlap")
	require.True(t, Overlaps(mon9, mon10))
	require.False(t, Overlaps(mon9, tue9), "different days")
	require.True(t, Overlaps(multi, mon10))
	require.False(t, Overlaps(nil, mon9))
	require.False(t, Overlaps(mon9, nil))
}

func TestOverlapsSymmetricAndReflexive(t *testing.T) {
	sets := [][]string{
		{"월(09:00~10:30)"},
		{"월(10:00~11:30)/수(09:00~10:00)"},
		{"수(09:30~09:45)"},
		{"금(13:00~15:00)/월(08:00~09:00)"},
		{},
	}
	for _, a := range sets {
		for _, b := range sets {
			sa, sb := Parse(strings.Join(a, "/")), Parse(strings.Join(b, "/"))
			require.Equal(t, Overlaps(sa, sb), Overlaps(sb, sa))
		}
		sa := Parse(strings.Join(a, "/"))
		require.Equal(t, len(sa) > 0, Overlaps(sa, sa))
	}
}
