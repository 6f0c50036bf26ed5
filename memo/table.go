package memo

import "github.com/aman0408/memoized-regex-engine/syntax"

// Table maps (memoStateNum, inputOffset) -> visited?, behind one of three
// physical encodings. IsMarked(q,i) returns true iff Mark(q,i) was called
// previously, regardless of encoding.
type Table interface {
	IsMarked(stateNum, offset int) bool
	Mark(stateNum, offset int)

	// MaxObservedCostPerMemoizedVertex reports, per memoized vertex, the
	// largest storage cost observed so far. Only the RLE encodings track
	// a meaningful per-vertex cost; NONE/NEGATIVE return nil.
	MaxObservedCostPerMemoizedVertex() []int
}

// NewTable builds the Table implementation selected by encoding.
// nMemoizedStates and lenW size the table; rleK is the run-width used
// only by RLE_TUNED (plain RLE always uses k=1).
func NewTable(encoding syntax.MemoEncoding, nMemoizedStates, lenW, rleK int) Table {
	switch encoding {
	case syntax.EncodingNegative:
		return newSparseTable()
	case syntax.EncodingRLE:
		return newRLETable(nMemoizedStates, lenW, 1)
	case syntax.EncodingRLETuned:
		return newRLETable(nMemoizedStates, lenW, rleK)
	default: // syntax.EncodingNone
		return newDenseTable(nMemoizedStates, lenW)
	}
}

// denseTable is the two-dimensional array encoding: fully materialized,
// one bool per (vertex, offset) pair.
type denseTable struct {
	rows [][]bool
}

func newDenseTable(nMemoizedStates, lenW int) *denseTable {
	rows := make([][]bool, nMemoizedStates)
	for i := range rows {
		rows[i] = make([]bool, lenW+1)
	}
	return &denseTable{rows: rows}
}

func (t *denseTable) IsMarked(stateNum, offset int) bool {
	if stateNum < 0 || stateNum >= len(t.rows) {
		return false
	}
	return t.rows[stateNum][offset]
}

func (t *denseTable) Mark(stateNum, offset int) {
	t.rows[stateNum][offset] = true
}

func (t *denseTable) MaxObservedCostPerMemoizedVertex() []int { return nil }

// sparseTable is the NEGATIVE encoding: a hash set keyed by
// (stateNum, offset), sized only by how many search states were actually
// visited rather than by the full state/offset grid.
type sparseTable struct {
	marked map[[2]int]struct{}
}

func newSparseTable() *sparseTable {
	return &sparseTable{marked: make(map[[2]int]struct{})}
}

func (t *sparseTable) IsMarked(stateNum, offset int) bool {
	_, ok := t.marked[[2]int{stateNum, offset}]
	return ok
}

func (t *sparseTable) Mark(stateNum, offset int) {
	t.marked[[2]int{stateNum, offset}] = struct{}{}
}

func (t *sparseTable) MaxObservedCostPerMemoizedVertex() []int { return nil }

// rleTable is the RLE/RLE_TUNED encoding: one RLEVector per memoized
// vertex, each of length lenW+1 and run-width k.
type rleTable struct {
	vectors []*RLEVector
}

func newRLETable(nMemoizedStates, lenW, k int) *rleTable {
	vectors := make([]*RLEVector, nMemoizedStates)
	for i := range vectors {
		vectors[i] = NewRLEVector(lenW+1, k)
	}
	return &rleTable{vectors: vectors}
}

func (t *rleTable) IsMarked(stateNum, offset int) bool {
	if stateNum < 0 || stateNum >= len(t.vectors) {
		return false
	}
	return t.vectors[stateNum].Get(offset) != 0
}

func (t *rleTable) Mark(stateNum, offset int) {
	t.vectors[stateNum].Set(offset)
}

func (t *rleTable) MaxObservedCostPerMemoizedVertex() []int {
	out := make([]int, len(t.vectors))
	for i, v := range t.vectors {
		out[i] = v.MaxBytes()
	}
	return out
}
