// Package vm implements the backtracking virtual machine: reference
// counted capture state and the thread-stack opcode interpreter.
package vm

// MaxSub is the number of capture slots a Sub holds: up to 10 capture
// groups, each a (start, end) pair of offsets into the input.
const MaxSub = 20

// Sub is the reference-counted capture-group record threads carry. Slots
// are int offsets into the input rather than raw pointers.
type Sub struct {
	ref    int
	slots  [MaxSub]int
}

// unset marks a capture slot that has not been written.
const unset = -1

// NewSub returns a fresh Sub with every slot unset and ref count 1.
func NewSub() *Sub {
	s := &Sub{ref: 1}
	for i := range s.slots {
		s.slots[i] = unset
	}
	return s
}

// Incref increments s's reference count and returns it, for a thread that
// shares s with a newly forked sibling (Split/SplitMany).
func Incref(s *Sub) *Sub {
	s.ref++
	return s
}

// Decref decrements s's reference count when a thread carrying it dies or
// hands it off. Go's GC reclaims the backing memory regardless; the count
// exists only to drive Update's copy-on-write decision.
func Decref(s *Sub) {
	s.ref--
}

// Update sets slot n to offset, copying s first if it is shared (ref > 1)
// so sibling threads keep seeing their own unmodified capture state.
func Update(s *Sub, n, offset int) *Sub {
	if s.ref > 1 {
		c := &Sub{ref: 1, slots: s.slots}
		Decref(s)
		s = c
	}
	s.slots[n] = offset
	return s
}

// Slot reads capture slot n, or unset's sentinel -1 if it was never
// written.
func (s *Sub) Slot(n int) int { return s.slots[n] }
