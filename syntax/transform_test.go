package syntax

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// countKind reports how many nodes of kind k appear in the tree rooted at n.
func countKind(n *Node, k Kind) int {
	if n == nil {
		return 0
	}
	total := 0
	if n.Kind == k {
		total++
	}
	total += countKind(n.Left, k)
	total += countKind(n.Right, k)
	for _, c := range n.Children {
		total += countKind(c, k)
	}
	return total
}

func TestTransform_EliminatesCurlies(t *testing.T) {
	root, err := Parse("a{2,3}b")
	require.NoError(t, err)
	root = Transform(root)
	require.Equal(t, 0, countKind(root, KindCurly))
}

func TestTransform_FlattensNestedAlt(t *testing.T) {
	root, err := Parse("a|b|c|d")
	require.NoError(t, err)
	root = Transform(root)
	require.Equal(t, 0, countKind(root, KindAlt))
	require.Equal(t, KindAltList, root.Kind)
	require.Len(t, root.Children, 4)
}

func TestTransform_RewritesBackref(t *testing.T) {
	root, err := Parse(`(a)\1`)
	require.NoError(t, err)
	root = Transform(root)
	require.Equal(t, 0, countKind(root, KindCharEscape))
	require.Equal(t, 1, countKind(root, KindBackref))
}

func TestTransform_ExactRepeatExpandsToConcatChain(t *testing.T) {
	root, err := Parse("a{3}")
	require.NoError(t, err)
	root = Transform(root)
	// a{3} with no upper slack should be a pure Cat chain of three Lits,
	// no Quest/Star remaining.
	require.Equal(t, 0, countKind(root, KindQuest))
	require.Equal(t, 0, countKind(root, KindStar))
	require.Equal(t, 3, countKind(root, KindLit))
}

func TestTransform_UnboundedRepeatUsesStarSuffix(t *testing.T) {
	root, err := Parse("a{2,}")
	require.NoError(t, err)
	root = Transform(root)
	require.Equal(t, 1, countKind(root, KindStar))
	require.Equal(t, 3, countKind(root, KindLit)) // 2 in the prefix, 1 inside the Star's body
}

func TestTransform_ZeroZeroCurlyBecomesEmpty(t *testing.T) {
	root, err := Parse("a{0,0}")
	require.NoError(t, err)
	root = Transform(root)
	require.Equal(t, KindEmpty, root.Kind)
}
