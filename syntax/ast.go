// Package syntax implements the regex AST, its normalization passes, and
// the compiler that lowers a normalized AST into a flat instruction
// program.
package syntax

// Kind tags the variant a Node represents. A single struct carries the
// union of fields needed by any variant, rather than one Go type per
// variant.
type Kind int

const (
	KindEmpty           Kind = iota // (no fields) zero-width, always matches
	KindLit                         // Ch
	KindDot                         // (no fields)
	KindCharEscape                  // Ch
	KindCharRange                   // Left = low, Right = high
	KindCustomCharClass             // Children, Invert, PlusDash
	KindInlineZWA                   // Ch: one of '^' '$' 'b' 'B'
	KindBackref                     // CgNum
	KindLookahead                   // Left = child
	KindParen                       // CgNum, Left = child
	KindQuest                       // Left = child, NonGreedy
	KindStar                        // Left = child, NonGreedy
	KindPlus                        // Left = child, NonGreedy
	KindCurly                       // Left = child, Min, Max (-1 = unspecified)
	KindCat                         // Left, Right
	KindAlt                         // Left, Right
	KindAltList                     // Children
)

// Node is a regex AST node. Lifetime: built by the parser, rebuilt into a
// new tree by the four normalization passes, then consumed by
// the compiler. Fields are reused across Kinds rather than split into one
// struct per Kind.
type Node struct {
	Kind Kind

	Ch rune // KindLit, KindCharEscape, KindInlineZWA

	Left  *Node // KindCharRange.low; child of unary nodes; KindCat/KindAlt left
	Right *Node // KindCharRange.high; KindCat/KindAlt right

	Children []*Node // KindCustomCharClass, KindAltList

	Invert   bool // KindCustomCharClass
	PlusDash bool // KindCustomCharClass: '-' appeared as a literal endpoint

	CgNum int // KindParen, KindBackref

	NonGreedy bool // KindQuest, KindStar, KindPlus

	Min, Max int // KindCurly; -1 means "unspecified"
}

func newEmpty() *Node            { return &Node{Kind: KindEmpty} }
func newLit(ch rune) *Node       { return &Node{Kind: KindLit, Ch: ch} }
func newDot() *Node              { return &Node{Kind: KindDot} }
func newCharEscape(ch rune) *Node { return &Node{Kind: KindCharEscape, Ch: ch} }
func newCharRange(low, high *Node) *Node {
	return &Node{Kind: KindCharRange, Left: low, Right: high}
}
func newInlineZWA(ch rune) *Node { return &Node{Kind: KindInlineZWA, Ch: ch} }
func newBackref(cgNum int) *Node { return &Node{Kind: KindBackref, CgNum: cgNum} }
func newLookahead(child *Node) *Node {
	return &Node{Kind: KindLookahead, Left: child}
}
func newParen(cgNum int, child *Node) *Node {
	return &Node{Kind: KindParen, CgNum: cgNum, Left: child}
}
func newQuest(child *Node, nonGreedy bool) *Node {
	return &Node{Kind: KindQuest, Left: child, NonGreedy: nonGreedy}
}
func newStar(child *Node, nonGreedy bool) *Node {
	return &Node{Kind: KindStar, Left: child, NonGreedy: nonGreedy}
}
func newPlus(child *Node, nonGreedy bool) *Node {
	return &Node{Kind: KindPlus, Left: child, NonGreedy: nonGreedy}
}
func newCurly(child *Node, min, max int) *Node {
	return &Node{Kind: KindCurly, Left: child, Min: min, Max: max}
}
func newCat(left, right *Node) *Node { return &Node{Kind: KindCat, Left: left, Right: right} }
func newAlt(left, right *Node) *Node { return &Node{Kind: KindAlt, Left: left, Right: right} }

// cloneTree deep-copies a subtree. The transform passes need independent
// copies when they duplicate a child, e.g. expanding A{3} into A.A.A.
func cloneTree(n *Node) *Node {
	if n == nil {
		return nil
	}
	c := &Node{
		Kind:      n.Kind,
		Ch:        n.Ch,
		Invert:    n.Invert,
		PlusDash:  n.PlusDash,
		CgNum:     n.CgNum,
		NonGreedy: n.NonGreedy,
		Min:       n.Min,
		Max:       n.Max,
	}
	c.Left = cloneTree(n.Left)
	c.Right = cloneTree(n.Right)
	if n.Children != nil {
		c.Children = make([]*Node, len(n.Children))
		for i, ch := range n.Children {
			c.Children[i] = cloneTree(ch)
		}
	}
	return c
}
