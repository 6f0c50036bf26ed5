package mregex

import (
	"strconv"
	"strings"

	"github.com/aman0408/memoized-regex-engine/vm"
)

// Capture is one (start, end) byte-offset pair into the matched string.
// Either field is -1 if the slot was never written.
type Capture struct {
	Start, End int
}

// Unset reports whether this capture slot was never written.
func (c Capture) Unset() bool { return c.Start < 0 || c.End < 0 }

// Group is one capture group's result: group 0 is the whole match.
type Group struct {
	Number  int
	Capture Capture
}

// Match is the result of a successful FindStringMatch.
type Match struct {
	input  string
	Groups []Group
}

// String renders the match as "match" followed by each populated group's
// "(start,end)" pair, with "?" standing in for an unset bound.
func (m *Match) String() string {
	var b strings.Builder
	b.WriteString("match")
	for _, g := range m.Groups {
		b.WriteByte(' ')
		b.WriteByte('(')
		writeBound(&b, g.Capture.Start)
		b.WriteByte(',')
		writeBound(&b, g.Capture.End)
		b.WriteByte(')')
	}
	return b.String()
}

func writeBound(b *strings.Builder, v int) {
	if v < 0 {
		b.WriteByte('?')
		return
	}
	b.WriteString(strconv.Itoa(v))
}

// GroupByNumber returns the group with the given number, or a zero Group
// and false if the engine never allocated that slot.
func (m *Match) GroupByNumber(n int) (Group, bool) {
	for _, g := range m.Groups {
		if g.Number == n {
			return g, true
		}
	}
	return Group{}, false
}

// buildMatch converts the VM's flat capture array into a Match, trimming
// trailing wholly-unset groups by scanning down from the last slot until
// a populated pair is found.
func buildMatch(input string, caps [vm.MaxSub]int) *Match {
	highest := 0
	for i := vm.MaxSub; i > 0; i -= 2 {
		if caps[i-2] >= 0 || caps[i-1] >= 0 {
			highest = i
			break
		}
	}

	groups := make([]Group, 0, highest/2)
	for i := 0; i < highest; i += 2 {
		groups = append(groups, Group{
			Number: i / 2,
			Capture: Capture{Start: caps[i], End: caps[i+1]},
		})
	}

	return &Match{input: input, Groups: groups}
}

// NoMatchString is what the CLI driver prints when FindStringMatch finds
// nothing.
const NoMatchString = "-no match-"
