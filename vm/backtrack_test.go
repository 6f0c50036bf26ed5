package vm

import (
	"testing"

	"github.com/aman0408/memoized-regex-engine/syntax"
	"github.com/stretchr/testify/require"
)

func compileFor(t *testing.T, pattern string, mode syntax.MemoMode, enc syntax.MemoEncoding, rleK int) *syntax.Program {
	t.Helper()
	root, err := syntax.Parse(pattern)
	require.NoError(t, err)
	root = syntax.Transform(root)
	prog, err := syntax.Compile(root, mode, enc, rleK)
	require.NoError(t, err)
	return prog
}

func TestBacktrack_AlternationCapture(t *testing.T) {
	prog := compileFor(t, "a(b|c)d", syntax.MemoNone, syntax.EncodingNone, 1)
	res, err := Backtrack(prog, "acd")
	require.NoError(t, err)
	require.True(t, res.Matched)
	require.Equal(t, 0, res.Caps[0])
	require.Equal(t, 3, res.Caps[1])
	require.Equal(t, 1, res.Caps[2])
	require.Equal(t, 2, res.Caps[3])
}

func TestBacktrack_StarMatchesEmpty(t *testing.T) {
	prog := compileFor(t, "a*", syntax.MemoNone, syntax.EncodingNone, 1)
	res, err := Backtrack(prog, "")
	require.NoError(t, err)
	require.True(t, res.Matched)
	require.Equal(t, 0, res.Caps[0])
	require.Equal(t, 0, res.Caps[1])
}

func TestBacktrack_CurlyExpansion(t *testing.T) {
	prog := compileFor(t, "a{2,3}", syntax.MemoNone, syntax.EncodingNone, 1)
	res, err := Backtrack(prog, "aaa")
	require.NoError(t, err)
	require.True(t, res.Matched)
	require.Equal(t, 0, res.Caps[0])
	require.Equal(t, 3, res.Caps[1])
}

func TestBacktrack_PlusOverAltWithTrailingCapture(t *testing.T) {
	prog := compileFor(t, "(a|b)+c", syntax.MemoNone, syntax.EncodingNone, 1)
	res, err := Backtrack(prog, "ababac")
	require.NoError(t, err)
	require.True(t, res.Matched)
	require.Equal(t, 0, res.Caps[0])
	require.Equal(t, 6, res.Caps[1])
	require.Equal(t, 4, res.Caps[2])
	require.Equal(t, 5, res.Caps[3])
}

func TestBacktrack_CatastrophicPatternNoMatchBoundedVisits(t *testing.T) {
	prog := compileFor(t, "(a+)+b", syntax.MemoIndegGT1, syntax.EncodingRLE, 1)
	input := "aaaaaaaaaaaaaaaaX"
	res, err := Backtrack(prog, input)
	require.NoError(t, err)
	require.False(t, res.Matched)
	bound := res.Stats.InputInfo.NStates * (len(input) + 1)
	require.LessOrEqual(t, res.Stats.SimulationInfo.NTotalVisits, bound)
}

func TestBacktrack_CharClassWithBuiltinEscape(t *testing.T) {
	prog := compileFor(t, `[a-z\d]+`, syntax.MemoNone, syntax.EncodingNone, 1)
	res, err := Backtrack(prog, "abc123")
	require.NoError(t, err)
	require.True(t, res.Matched)
	require.Equal(t, 0, res.Caps[0])
	require.Equal(t, 6, res.Caps[1])
}

func TestBacktrack_MatchOutcomeInvariantAcrossEncodings(t *testing.T) {
	encodings := []syntax.MemoEncoding{
		syntax.EncodingNone,
		syntax.EncodingNegative,
		syntax.EncodingRLE,
		syntax.EncodingRLETuned,
	}
	for _, enc := range encodings {
		prog := compileFor(t, "(a|b)+c", syntax.MemoIndegGT1, enc, 2)
		res, err := Backtrack(prog, "ababac")
		require.NoError(t, err, "enc=%v", enc)
		require.True(t, res.Matched, "enc=%v", enc)
		require.Equal(t, 0, res.Caps[0], "enc=%v", enc)
		require.Equal(t, 6, res.Caps[1], "enc=%v", enc)
	}
}

func TestBacktrack_MemoFullMatchesUnmemoizedOutcome(t *testing.T) {
	progMemoized := compileFor(t, "(a|b)+c", syntax.MemoFull, syntax.EncodingNone, 1)
	progPlain := compileFor(t, "(a|b)+c", syntax.MemoNone, syntax.EncodingNone, 1)

	for _, input := range []string{"ababac", "ababad", ""} {
		resMemo, err := Backtrack(progMemoized, input)
		require.NoError(t, err)
		resPlain, err := Backtrack(progPlain, input)
		require.NoError(t, err)
		require.Equal(t, resPlain.Matched, resMemo.Matched, "input=%q", input)
	}
}

func TestBacktrack_WordBoundary(t *testing.T) {
	prog := compileFor(t, `.*\B(SUCCESS)\B.*`, syntax.MemoNone, syntax.EncodingNone, 1)
	res, err := Backtrack(prog, "adfadsfSUCCESSadsfadsf")
	require.NoError(t, err)
	require.True(t, res.Matched)
}

func TestBacktrack_Backreference(t *testing.T) {
	prog := compileFor(t, `(ab)\1`, syntax.MemoNone, syntax.EncodingNone, 1)

	res, err := Backtrack(prog, "abab")
	require.NoError(t, err)
	require.True(t, res.Matched)

	res2, err := Backtrack(prog, "abcd")
	require.NoError(t, err)
	require.False(t, res2.Matched)
}

func TestBacktrack_Lookahead(t *testing.T) {
	prog := compileFor(t, `a(?=b)`, syntax.MemoNone, syntax.EncodingNone, 1)

	res, err := Backtrack(prog, "ab")
	require.NoError(t, err)
	require.True(t, res.Matched)
	require.Equal(t, 0, res.Caps[0])
	require.Equal(t, 1, res.Caps[1])

	res2, err := Backtrack(prog, "ac")
	require.NoError(t, err)
	require.False(t, res2.Matched)
}
