package syntax

// Compile lowers a normalized AST into a flat Program in two passes: count
// instructions per node, then allocate and emit into a flat array with
// index-based edges.
func Compile(root *Node, memoMode MemoMode, memoEncoding MemoEncoding, rleK int) (*Program, error) {
	eolAnchor := hasTrailingEOLAnchor(root)

	// Group 0 is the whole match, captured the same way an explicit
	// capturing group is: wrap root in an implicit Paren before sizing
	// and emitting, so sub[0]/sub[1] always hold the match's overall span.
	root = newParen(0, root)

	n, err := countInsts(root)
	if err != nil {
		return nil, err
	}

	prog := &Program{
		Insts:        make([]Instruction, n+1),
		MemoMode:     memoMode,
		MemoEncoding: memoEncoding,
	}

	c := &compiler{prog: prog}
	if _, err := c.emit(root); err != nil {
		return nil, err
	}
	prog.Insts[c.pc].Op = Match
	c.pc++

	for i := range prog.Insts {
		prog.Insts[i].StateNum = i
	}
	prog.EOLAnchor = eolAnchor

	if err := verifyNoInfiniteLoops(prog); err != nil {
		return nil, err
	}

	determineMemoNodes(prog, memoMode)
	assignVisitIntervals(prog, memoEncoding, rleK)

	return prog, nil
}

// countInsts returns the instruction count n will expand to once emitted.
func countInsts(n *Node) (int, error) {
	if n == nil {
		return 0, nil
	}
	switch n.Kind {
	case KindEmpty:
		return 0, nil
	case KindLit, KindDot, KindCharEscape, KindCustomCharClass, KindBackref, KindInlineZWA:
		return 1, nil
	case KindParen:
		c, err := countInsts(n.Left)
		return 2 + c, err
	case KindQuest:
		c, err := countInsts(n.Left)
		return 1 + c, err
	case KindStar:
		c, err := countInsts(n.Left)
		return 2 + c, err
	case KindPlus:
		c, err := countInsts(n.Left)
		return 1 + c, err
	case KindLookahead:
		c, err := countInsts(n.Left)
		return 2 + c, err
	case KindCat:
		l, err := countInsts(n.Left)
		if err != nil {
			return 0, err
		}
		r, err := countInsts(n.Right)
		return l + r, err
	case KindAltList:
		total := 1
		for _, ch := range n.Children {
			c, err := countInsts(ch)
			if err != nil {
				return 0, err
			}
			total += c + 1
		}
		return total, nil
	default:
		return 0, &UnsupportedFeatureError{Pass: "compile.count", Kind: n.Kind}
	}
}

type compiler struct {
	prog *Program
	pc   int
}

// emit writes n's instructions starting at c.pc and returns the index of
// n's first instruction (its "start" for edge-wiring purposes). A Kind
// with zero-instruction form (KindEmpty) emits nothing and returns the
// current, unadvanced pc.
func (c *compiler) emit(n *Node) (int, error) {
	switch n.Kind {
	case KindEmpty:
		return c.pc, nil

	case KindLit:
		start := c.pc
		c.prog.Insts[c.pc] = Instruction{Op: Char, Ch: n.Ch}
		c.pc++
		return start, nil

	case KindDot:
		start := c.pc
		c.prog.Insts[c.pc] = Instruction{Op: Any}
		c.pc++
		return start, nil

	case KindCharEscape:
		start := c.pc
		if ranges, invert, ok := builtinEscapeRanges(n.Ch); ok {
			c.prog.Insts[c.pc] = Instruction{Op: CharClass, Ranges: ranges, Invert: invert}
		} else {
			ch := singletonEscape(n.Ch)
			c.prog.Insts[c.pc] = Instruction{Op: CharClass, Ranges: []CharRange{{ch, ch}}}
		}
		c.pc++
		return start, nil

	case KindCustomCharClass:
		start := c.pc
		ranges := make([]CharRange, 0, len(n.Children)+1)
		for _, ch := range n.Children {
			switch ch.Kind {
			case KindCharRange:
				ranges = append(ranges, CharRange{ch.Left.Ch, ch.Right.Ch})
			case KindLit:
				ranges = append(ranges, CharRange{ch.Ch, ch.Ch})
			case KindCharEscape:
				if escRanges, invert, ok := builtinEscapeRanges(ch.Ch); ok {
					if invert {
						// A negated class (\D, \S, \W) nested inside a
						// custom class has no single-range form; reject
						// rather than silently mismatching.
						return 0, &UnsupportedFeatureError{Pass: "compile.emit.customCharClass", Kind: ch.Kind}
					}
					ranges = append(ranges, escRanges...)
				} else {
					lit := singletonEscape(ch.Ch)
					ranges = append(ranges, CharRange{lit, lit})
				}
			default:
				return 0, &UnsupportedFeatureError{Pass: "compile.emit.customCharClass", Kind: ch.Kind}
			}
		}
		if n.PlusDash {
			ranges = append(ranges, CharRange{'-', '-'})
		}
		c.prog.Insts[c.pc] = Instruction{Op: CharClass, Ranges: ranges, Invert: n.Invert}
		c.pc++
		return start, nil

	case KindBackref:
		start := c.pc
		c.prog.Insts[c.pc] = Instruction{Op: StringCompare, CgNum: n.CgNum}
		c.pc++
		return start, nil

	case KindInlineZWA:
		start := c.pc
		c.prog.Insts[c.pc] = Instruction{Op: InlineZeroWidthAssertion, Ch: n.Ch}
		c.pc++
		return start, nil

	case KindParen:
		start := c.pc
		c.prog.Insts[c.pc] = Instruction{Op: Save, N: 2 * n.CgNum}
		c.pc++
		if _, err := c.emit(n.Left); err != nil {
			return 0, err
		}
		c.prog.Insts[c.pc] = Instruction{Op: Save, N: 2*n.CgNum + 1}
		c.pc++
		return start, nil

	case KindQuest:
		splitPC := c.pc
		c.pc++
		childStart, err := c.emit(n.Left)
		if err != nil {
			return 0, err
		}
		postChild := c.pc
		x, y := childStart, postChild
		if n.NonGreedy {
			x, y = y, x
		}
		c.prog.Insts[splitPC] = Instruction{Op: Split, X: x, Y: y}
		return splitPC, nil

	case KindStar:
		splitPC := c.pc
		c.pc++
		childStart, err := c.emit(n.Left)
		if err != nil {
			return 0, err
		}
		jmpPC := c.pc
		c.prog.Insts[jmpPC] = Instruction{Op: Jmp, X: splitPC}
		c.pc++
		postLoop := c.pc
		x, y := childStart, postLoop
		if n.NonGreedy {
			x, y = y, x
		}
		c.prog.Insts[splitPC] = Instruction{Op: Split, X: x, Y: y}
		return splitPC, nil

	case KindPlus:
		childStart, err := c.emit(n.Left)
		if err != nil {
			return 0, err
		}
		splitPC := c.pc
		c.pc++
		postLoop := c.pc
		x, y := childStart, postLoop
		if n.NonGreedy {
			x, y = y, x
		}
		c.prog.Insts[splitPC] = Instruction{Op: Split, X: x, Y: y}
		return childStart, nil

	case KindCat:
		left, err := c.emit(n.Left)
		if err != nil {
			return 0, err
		}
		if _, err := c.emit(n.Right); err != nil {
			return 0, err
		}
		return left, nil

	case KindAltList:
		splitManyPC := c.pc
		c.pc++
		edges := make([]int, len(n.Children))
		jmpPCs := make([]int, len(n.Children))
		for i, ch := range n.Children {
			edges[i] = c.pc
			if _, err := c.emit(ch); err != nil {
				return 0, err
			}
			jmpPCs[i] = c.pc
			c.pc++
		}
		postAltList := c.pc
		for _, jpc := range jmpPCs {
			c.prog.Insts[jpc] = Instruction{Op: Jmp, X: postAltList}
		}
		c.prog.Insts[splitManyPC] = Instruction{Op: SplitMany, Edges: edges}
		return splitManyPC, nil

	case KindLookahead:
		zwaPC := c.pc
		c.pc++
		childStart, err := c.emit(n.Left)
		if err != nil {
			return 0, err
		}
		recMatchPC := c.pc
		c.prog.Insts[recMatchPC] = Instruction{Op: RecursiveMatch}
		c.pc++
		postLookahead := c.pc
		c.prog.Insts[zwaPC] = Instruction{Op: RecursiveZeroWidthAssertion, X: childStart, Y: postLookahead}
		return zwaPC, nil

	default:
		return 0, &UnsupportedFeatureError{Pass: "compile.emit", Kind: n.Kind}
	}
}

// hasTrailingEOLAnchor reports whether the rightmost leaf of a
// concatenation chain is the '$' anchor.
func hasTrailingEOLAnchor(n *Node) bool {
	for n != nil && n.Kind == KindCat {
		n = n.Right
	}
	return n != nil && n.Kind == KindInlineZWA && n.Ch == '$'
}

// zeroWidthSuccessors returns the instruction indices reachable from pc
// without consuming input, for the no-infinite-loop DFS. StringCompare is
// conservatively treated as character-consuming, so it and every other
// consuming/terminal opcode has no zero-width successors.
func zeroWidthSuccessors(prog *Program, pc int) []int {
	inst := &prog.Insts[pc]
	switch inst.Op {
	case Jmp:
		return []int{inst.X}
	case Split:
		return []int{inst.X, inst.Y}
	case SplitMany:
		return append([]int(nil), inst.Edges...)
	case Save:
		if pc+1 < len(prog.Insts) {
			return []int{pc + 1}
		}
		return nil
	case InlineZeroWidthAssertion:
		if pc+1 < len(prog.Insts) {
			return []int{pc + 1}
		}
		return nil
	case RecursiveZeroWidthAssertion:
		return []int{inst.Y}
	default:
		return nil
	}
}

// verifyNoInfiniteLoops runs an iterative DFS from every Jmp/Split/SplitMany
// instruction over zero-width successors, rejecting if the DFS re-enters
// its own starting instruction.
func verifyNoInfiniteLoops(prog *Program) error {
	n := len(prog.Insts)
	visited := make([]bool, n)
	for start := 0; start < n; start++ {
		switch prog.Insts[start].Op {
		case Jmp, Split, SplitMany:
		default:
			continue
		}
		for i := range visited {
			visited[i] = false
		}
		visited[start] = true
		stack := append([]int(nil), zeroWidthSuccessors(prog, start)...)
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if cur == start {
				return &InfiniteLoopError{StateNum: start}
			}
			if visited[cur] {
				continue
			}
			visited[cur] = true
			stack = append(stack, zeroWidthSuccessors(prog, cur)...)
		}
	}
	return nil
}

// determineMemoNodes assigns Instruction.Memo.ShouldMemo/MemoStateNum per
// memoMode and sets Program.NMemoizedStates.
func determineMemoNodes(prog *Program, mode MemoMode) {
	insts := prog.Insts
	for i := range insts {
		insts[i].Memo.ShouldMemo = false
		insts[i].Memo.MemoStateNum = -1
	}

	switch mode {
	case MemoNone:
		prog.NMemoizedStates = 0
		return

	case MemoFull:
		for i := range insts {
			insts[i].Memo.ShouldMemo = true
		}

	case MemoIndegGT1:
		indeg := computeIndegree(prog)
		for i := range insts {
			if indeg[i] > 1 {
				insts[i].Memo.ShouldMemo = true
			}
		}

	case MemoLoopDest:
		for i := range insts {
			for _, t := range outgoingEdges(&insts[i]) {
				if t <= i {
					insts[t].Memo.ShouldMemo = true
				}
			}
		}
	}

	next := 0
	for i := range insts {
		if insts[i].Memo.ShouldMemo {
			insts[i].Memo.MemoStateNum = next
			next++
		}
	}
	prog.NMemoizedStates = next
}

// outgoingEdges returns every instruction index inst branches to
// (excluding ordinary fallthrough), used by both indegree computation and
// LOOP_DEST's back-edge scan.
func outgoingEdges(inst *Instruction) []int {
	switch inst.Op {
	case Jmp:
		return []int{inst.X}
	case Split:
		return []int{inst.X, inst.Y}
	case SplitMany:
		return inst.Edges
	case RecursiveZeroWidthAssertion:
		return []int{inst.X, inst.Y}
	default:
		return nil
	}
}

// computeIndegree counts incoming edges per instruction, including
// ordinary fallthrough from any instruction that isn't itself a branch
// (Jmp/Split/SplitMany) or a terminal (Match/RecursiveMatch).
func computeIndegree(prog *Program) []int {
	insts := prog.Insts
	indeg := make([]int, len(insts))
	for i := range insts {
		switch insts[i].Op {
		case Jmp, Split, SplitMany:
			for _, t := range outgoingEdges(&insts[i]) {
				indeg[t]++
			}
		case Match, RecursiveMatch:
			// no outgoing edges
		case RecursiveZeroWidthAssertion:
			for _, t := range outgoingEdges(&insts[i]) {
				indeg[t]++
			}
		default:
			if i+1 < len(insts) {
				indeg[i+1]++
			}
		}
	}
	return indeg
}

// assignVisitIntervals sets every instruction's visit interval k.
// RLE_TUNED uses the caller-supplied rleK for every instruction; every
// other encoding uses 1.
func assignVisitIntervals(prog *Program, encoding MemoEncoding, rleK int) {
	k := 1
	if encoding == EncodingRLETuned {
		k = rleK
	}
	for i := range prog.Insts {
		prog.Insts[i].Memo.VisitInterval = k
	}
}
