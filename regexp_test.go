package mregex

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegexp_BasicMatch(t *testing.T) {
	re, err := Compile("a(b|c)d", MemoNone, EncodingNone, 1)
	require.NoError(t, err)

	m, err := re.FindStringMatch("acd")
	require.NoError(t, err)
	require.NotNil(t, m)
	require.Equal(t, "match (0,3) (1,2)", m.String())
}

func TestRegexp_NoMatchIsNotAnError(t *testing.T) {
	re, err := Compile("abc", MemoNone, EncodingNone, 1)
	require.NoError(t, err)

	m, err := re.FindStringMatch("xyz")
	require.NoError(t, err)
	require.Nil(t, m)
}

func TestRegexp_MemoNoneForcesEncodingNone(t *testing.T) {
	re, err := Compile("a*", MemoNone, EncodingRLE, 1)
	require.NoError(t, err)
	require.Equal(t, EncodingNone, re.Program().MemoEncoding)
}

func TestRegexp_MustCompilePanicsOnBadPattern(t *testing.T) {
	require.Panics(t, func() {
		MustCompile("(a", MemoNone, EncodingNone, 1)
	})
}

func TestRegexp_StatsPopulatedAfterMatch(t *testing.T) {
	re, err := Compile("(a+)+b", MemoIndegGT1, EncodingRLE, 1)
	require.NoError(t, err)

	_, err = re.FindStringMatch("aaaaaaaaaaaaaaaaX")
	require.NoError(t, err)

	stats := re.LastStats()
	require.Greater(t, stats.InputInfo.NStates, 0)
	require.Equal(t, 17, stats.InputInfo.LenW)
}

func TestRegexp_String(t *testing.T) {
	re, err := Compile("a+b", MemoNone, EncodingNone, 1)
	require.NoError(t, err)
	require.Equal(t, "a+b", re.String())
}
