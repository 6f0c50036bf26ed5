package vm

import (
	"github.com/aman0408/memoized-regex-engine/memo"
	"github.com/aman0408/memoized-regex-engine/syntax"
)

// MaxReadyStack bounds the ready stack's depth.
const MaxReadyStack = 1000

// Thread is a suspended or running VM continuation: a (pc, sp, sub) triple.
type Thread struct {
	PC, SP int
	Sub    *Sub
}

// Result is the outcome of a Backtrack call: whether the program matched,
// the populated capture slots (valid only if Matched), and statistics
// that are populated on every outcome.
type Result struct {
	Matched bool
	Caps    [MaxSub]int
	Stats   Stats
}

// execContext carries the state shared by the top-level match and any
// nested lookahead sub-runs: the program, input, and the memo/visit
// tables (shared across the whole invocation, since they are keyed by
// instruction index regardless of which sub-run visits them).
type execContext struct {
	prog  *syntax.Program
	input string
	n     int
	table memo.Table
	visits [][]int
}

// Backtrack runs prog against input and returns the first match found
// (leftmost, greedy unless a quantifier's compiled Split was swapped for
// non-greedy), or no match, plus statistics. It drives a bounded LIFO
// ready stack of threads, checking and marking the memo table before
// dispatching each instruction, and decrefing a thread's sub on death.
func Backtrack(prog *syntax.Program, input string) (Result, error) {
	lenW := len(input)

	visits := make([][]int, len(prog.Insts))
	for i := range visits {
		visits[i] = make([]int, lenW+1)
	}

	var table memo.Table
	if prog.MemoMode != syntax.MemoNone {
		k := 1
		if len(prog.Insts) > 0 {
			k = prog.Insts[0].Memo.VisitInterval
		}
		table = memo.NewTable(prog.MemoEncoding, prog.NMemoizedStates, lenW, k)
	}

	ctx := &execContext{prog: prog, input: input, n: lenW, table: table, visits: visits}

	var maxCost []int
	if table != nil {
		maxCost = table.MaxObservedCostPerMemoizedVertex()
	}

	matched, _, sub, err := ctx.run(0, 0, NewSub(), syntax.Match)
	if table != nil {
		maxCost = table.MaxObservedCostPerMemoizedVertex()
	}
	stats := buildStats(prog, visits, lenW, maxCost)
	if err != nil {
		return Result{Stats: stats}, err
	}

	var res Result
	res.Stats = stats
	if matched {
		res.Matched = true
		for i := 0; i < MaxSub; i++ {
			res.Caps[i] = sub.Slot(i)
		}
		Decref(sub)
	}
	return res, nil
}

// run executes a ready-stack loop starting from one thread at
// (startPC, startSP, initialSub), returning when a thread's instruction
// is stopOp. Used both for the top-level match (stopOp = Match) and for
// a lookahead's sub-program (stopOp = RecursiveMatch), sharing ctx's memo
// and visit tables across both scopes since they're keyed by plain
// instruction index.
func (ctx *execContext) run(startPC, startSP int, initialSub *Sub, stopOp syntax.Opcode) (matched bool, matchSP int, finalSub *Sub, err error) {
	ready := make([]Thread, 0, 16)
	ready = append(ready, Thread{PC: startPC, SP: startSP, Sub: initialSub})

	for len(ready) > 0 {
		th := ready[len(ready)-1]
		ready = ready[:len(ready)-1]
		pc, sp, sub := th.PC, th.SP, th.Sub

	runThread:
		for {
			inst := &ctx.prog.Insts[pc]

			if ctx.table != nil && inst.Memo.ShouldMemo && inst.Memo.MemoStateNum >= 0 {
				if ctx.table.IsMarked(inst.Memo.MemoStateNum, sp) {
					Decref(sub)
					break runThread
				}
				ctx.table.Mark(inst.Memo.MemoStateNum, sp)
			}
			ctx.visits[pc][sp]++

			switch inst.Op {
			case syntax.Char:
				if sp >= ctx.n || rune(ctx.input[sp]) != inst.Ch {
					Decref(sub)
					break runThread
				}
				pc++
				sp++

			case syntax.CharClass:
				if sp >= ctx.n || !matchCharClass(inst, rune(ctx.input[sp])) {
					Decref(sub)
					break runThread
				}
				pc++
				sp++

			case syntax.Any:
				if sp >= ctx.n {
					Decref(sub)
					break runThread
				}
				pc++
				sp++

			case syntax.Match:
				if stopOp == syntax.Match {
					return true, sp, sub, nil
				}
				Decref(sub)
				break runThread

			case syntax.RecursiveMatch:
				if stopOp == syntax.RecursiveMatch {
					return true, sp, sub, nil
				}
				Decref(sub)
				break runThread

			case syntax.Jmp:
				pc = inst.X

			case syntax.Split:
				if len(ready) >= MaxReadyStack {
					Decref(sub)
					return false, 0, nil, &StackOverflowError{}
				}
				ready = append(ready, Thread{PC: inst.Y, SP: sp, Sub: Incref(sub)})
				pc = inst.X

			case syntax.SplitMany:
				if len(ready)+len(inst.Edges)-1 > MaxReadyStack {
					Decref(sub)
					return false, 0, nil, &StackOverflowError{}
				}
				for i := len(inst.Edges) - 1; i >= 1; i-- {
					ready = append(ready, Thread{PC: inst.Edges[i], SP: sp, Sub: Incref(sub)})
				}
				pc = inst.Edges[0]

			case syntax.Save:
				sub = Update(sub, inst.N, sp)
				pc++

			case syntax.StringCompare:
				matchedLen, ok := ctx.matchBackref(inst.CgNum, sub, sp)
				if !ok {
					Decref(sub)
					break runThread
				}
				pc++
				sp += matchedLen

			case syntax.InlineZeroWidthAssertion:
				if !ctx.checkZWA(inst.Ch, sp) {
					Decref(sub)
					break runThread
				}
				pc++

			case syntax.RecursiveZeroWidthAssertion:
				ok, _, lookSub, err := ctx.run(inst.X, sp, NewSub(), syntax.RecursiveMatch)
				if err != nil {
					Decref(sub)
					return false, 0, nil, err
				}
				if ok {
					Decref(lookSub)
				}
				if !ok {
					Decref(sub)
					break runThread
				}
				pc = inst.Y
			}
		}
	}
	return false, 0, nil, nil
}

// matchCharClass evaluates a CharClass instruction's ranges against ch,
// combined with the instruction-level invert flag.
func matchCharClass(inst *syntax.Instruction, ch rune) bool {
	inRange := false
	for _, r := range inst.Ranges {
		if ch >= r.Low && ch <= r.High {
			inRange = true
			break
		}
	}
	if inst.Invert {
		return !inRange
	}
	return inRange
}

// isWordChar is the \w definition used for word-boundary checks: a-z, A-Z,
// 0-9, no underscore.
func isWordChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// checkZWA evaluates an inline zero-width assertion at offset sp. '^' and
// '$' are whole-string anchors (no multi-line mode); '\b'/'\B' use the
// same ASCII word-character definition as \w.
func (ctx *execContext) checkZWA(ch rune, sp int) bool {
	switch ch {
	case '^':
		return sp == 0
	case '$':
		return sp == ctx.n
	case 'b', 'B':
		before := sp > 0 && isWordChar(ctx.input[sp-1])
		after := sp < ctx.n && isWordChar(ctx.input[sp])
		boundary := before != after
		if ch == 'B' {
			return !boundary
		}
		return boundary
	default:
		return false
	}
}

// matchBackref compares the input starting at sp against the text
// previously captured by group cgNum. An unset or empty group matches
// the empty string, the common backreference convention.
func (ctx *execContext) matchBackref(cgNum int, sub *Sub, sp int) (matchedLen int, ok bool) {
	start := sub.Slot(2 * cgNum)
	end := sub.Slot(2*cgNum + 1)
	if start < 0 || end < 0 || end < start {
		return 0, true
	}
	length := end - start
	if sp+length > ctx.n {
		return 0, false
	}
	if ctx.input[start:end] != ctx.input[sp:sp+length] {
		return 0, false
	}
	return length, true
}
