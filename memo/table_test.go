package memo

import (
	"testing"

	"github.com/aman0408/memoized-regex-engine/syntax"
	"github.com/stretchr/testify/require"
)

func TestTable_AllEncodingsAgreeOnMarks(t *testing.T) {
	encodings := []syntax.MemoEncoding{
		syntax.EncodingNone,
		syntax.EncodingNegative,
		syntax.EncodingRLE,
		syntax.EncodingRLETuned,
	}

	const nStates = 5
	const lenW = 12
	marks := [][2]int{{0, 0}, {2, 5}, {4, 12}, {1, 1}}

	for _, enc := range encodings {
		table := NewTable(enc, nStates, lenW, 3)
		for _, m := range marks {
			require.False(t, table.IsMarked(m[0], m[1]), "enc=%v", enc)
			table.Mark(m[0], m[1])
			require.True(t, table.IsMarked(m[0], m[1]), "enc=%v", enc)
		}
		require.False(t, table.IsMarked(3, 3), "enc=%v", enc)
	}
}

func TestTable_DenseAndSparseReportNilCost(t *testing.T) {
	dense := NewTable(syntax.EncodingNone, 2, 4, 1)
	require.Nil(t, dense.MaxObservedCostPerMemoizedVertex())

	sparse := NewTable(syntax.EncodingNegative, 2, 4, 1)
	require.Nil(t, sparse.MaxObservedCostPerMemoizedVertex())
}

func TestTable_RLEReportsCostPerVertex(t *testing.T) {
	rle := NewTable(syntax.EncodingRLE, 3, 10, 1)
	costs := rle.MaxObservedCostPerMemoizedVertex()
	require.Len(t, costs, 3)
	for _, c := range costs {
		require.Greater(t, c, 0)
	}
}
