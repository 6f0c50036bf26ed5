// Package mregex implements an experimental regular-expression matcher
// whose backtracking simulator bounds catastrophic-backtracking cost by
// memoizing visited (program vertex, input offset) search states.
package mregex

import (
	"github.com/aman0408/memoized-regex-engine/syntax"
	"github.com/aman0408/memoized-regex-engine/vm"
)

// MemoMode selects which program vertices the compiler marks memoizable.
type MemoMode = syntax.MemoMode

const (
	MemoNone     = syntax.MemoNone
	MemoFull     = syntax.MemoFull
	MemoIndegGT1 = syntax.MemoIndegGT1
	MemoLoopDest = syntax.MemoLoopDest
)

// MemoEncoding selects the memo table's physical representation.
type MemoEncoding = syntax.MemoEncoding

const (
	EncodingNone     = syntax.EncodingNone
	EncodingNegative = syntax.EncodingNegative
	EncodingRLE      = syntax.EncodingRLE
	EncodingRLETuned = syntax.EncodingRLETuned
)

// Regexp is a compiled pattern, ready to match against input strings.
// FindStringMatch never mutates re.prog, but it does record its
// statistics in re.lastStats, so concurrent FindStringMatch calls on one
// *Regexp race on that field.
type Regexp struct {
	pattern      string
	memoMode     MemoMode
	memoEncoding MemoEncoding
	rleK         int

	prog *syntax.Program

	// lastStats is populated by the most recent FindStringMatch call on
	// this Regexp, so a driver can print statistics after the fact
	// instead of threading them through the match return value.
	lastStats Stats
}

// Compile parses pattern, normalizes it, and compiles it into a Program
// under the given memoization mode/encoding/run-width. When memoMode is
// MemoNone, memoEncoding is forced to EncodingNone.
func Compile(pattern string, memoMode MemoMode, memoEncoding MemoEncoding, rleK int) (*Regexp, error) {
	root, err := syntax.Parse(pattern)
	if err != nil {
		return nil, err
	}

	root = syntax.Transform(root)

	if memoMode == MemoNone {
		memoEncoding = EncodingNone
	}

	prog, err := syntax.Compile(root, memoMode, memoEncoding, rleK)
	if err != nil {
		return nil, err
	}

	return &Regexp{
		pattern:      pattern,
		memoMode:     memoMode,
		memoEncoding: memoEncoding,
		rleK:         rleK,
		prog:         prog,
	}, nil
}

// MustCompile is like Compile but panics if pattern cannot be compiled.
func MustCompile(pattern string, memoMode MemoMode, memoEncoding MemoEncoding, rleK int) *Regexp {
	re, err := Compile(pattern, memoMode, memoEncoding, rleK)
	if err != nil {
		panic("mregex: Compile(" + pattern + "): " + err.Error())
	}
	return re
}

// String returns the source pattern re was compiled from.
func (re *Regexp) String() string { return re.pattern }

// Program exposes the compiled instruction program, for callers (the CLI
// driver) that want to print it or inspect NMemoizedStates directly.
func (re *Regexp) Program() *syntax.Program { return re.prog }

// LastStats returns the statistics snapshot from the most recent
// FindStringMatch call, or a zero Stats if none has run yet.
func (re *Regexp) LastStats() Stats { return re.lastStats }

// FindStringMatch runs the backtracking VM against input and returns the
// match, or nil if the pattern did not match. A non-nil error means the
// match attempt itself failed (currently only possible via
// StackOverflowError); "no match" is not an error.
func (re *Regexp) FindStringMatch(input string) (*Match, error) {
	result, err := vm.Backtrack(re.prog, input)
	re.lastStats = result.Stats
	if err != nil {
		return nil, err
	}
	if !result.Matched {
		return nil, nil
	}
	return buildMatch(input, result.Caps), nil
}
