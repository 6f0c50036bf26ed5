package syntax

// Transform runs the four normalization passes over root, in fixed order,
// and returns the normalized tree.
func Transform(root *Node) *Node {
	root = eliminateCurlies(root)
	root = flattenAlts(root)
	root = rewriteBackrefs(root)
	root = flattenCharClasses(root)
	return root
}

// eliminateCurlies removes every Curly node, replacing X{m,n} with a
// concatenation of a literal prefix and an optional/star suffix. Children
// are transformed first (post-order), so nested curlies are eliminated
// inside out.
func eliminateCurlies(n *Node) *Node {
	if n == nil {
		return nil
	}
	switch n.Kind {
	case KindCurly:
		child := eliminateCurlies(n.Left)
		return expandCurly(child, n.Min, n.Max, n.NonGreedy)
	case KindLookahead:
		return &Node{Kind: KindLookahead, Left: eliminateCurlies(n.Left)}
	case KindParen:
		return &Node{Kind: KindParen, CgNum: n.CgNum, Left: eliminateCurlies(n.Left)}
	case KindQuest:
		return &Node{Kind: KindQuest, Left: eliminateCurlies(n.Left), NonGreedy: n.NonGreedy}
	case KindStar:
		return &Node{Kind: KindStar, Left: eliminateCurlies(n.Left), NonGreedy: n.NonGreedy}
	case KindPlus:
		return &Node{Kind: KindPlus, Left: eliminateCurlies(n.Left), NonGreedy: n.NonGreedy}
	case KindCat:
		return &Node{Kind: KindCat, Left: eliminateCurlies(n.Left), Right: eliminateCurlies(n.Right)}
	case KindAlt:
		return &Node{Kind: KindAlt, Left: eliminateCurlies(n.Left), Right: eliminateCurlies(n.Right)}
	case KindAltList:
		out := make([]*Node, len(n.Children))
		for i, c := range n.Children {
			out[i] = eliminateCurlies(c)
		}
		return &Node{Kind: KindAltList, Children: out}
	case KindCustomCharClass:
		// CustomCharClass children are CharRange/Lit leaves, never a
		// Curly; nothing to do below this node.
		return n
	default:
		return n
	}
}

// expandCurly builds the prefix/suffix tree for A{m,n}. A is the
// already-transformed child.
func expandCurly(a *Node, m, n int, nonGreedy bool) *Node {
	var prefix *Node
	if m > 0 {
		prefix = cloneTree(a)
		for i := 1; i < m; i++ {
			prefix = newCat(cloneTree(a), prefix)
		}
	}

	var suffix *Node
	switch {
	case n == -1:
		suffix = newStar(cloneTree(a), nonGreedy)
	default:
		r := n - m
		if r > 0 {
			suffix = newQuest(cloneTree(a), nonGreedy)
			for i := 1; i < r; i++ {
				suffix = newQuest(newCat(cloneTree(a), suffix), nonGreedy)
			}
		}
	}

	switch {
	case prefix != nil && suffix != nil:
		return newCat(prefix, suffix)
	case prefix != nil:
		return prefix
	case suffix != nil:
		return suffix
	default:
		return newEmpty()
	}
}

// flattenAlts collapses left-leaning Alt chains into a single AltList,
// recursing into every node's children so nested alternations (inside
// groups, quantifiers, lookaheads) are flattened too.
func flattenAlts(n *Node) *Node {
	if n == nil {
		return nil
	}
	switch n.Kind {
	case KindAlt:
		var children []*Node
		collectAltChildren(n, &children)
		for i, c := range children {
			children[i] = flattenAlts(c)
		}
		return &Node{Kind: KindAltList, Children: children}
	case KindLookahead:
		return &Node{Kind: KindLookahead, Left: flattenAlts(n.Left)}
	case KindParen:
		return &Node{Kind: KindParen, CgNum: n.CgNum, Left: flattenAlts(n.Left)}
	case KindQuest:
		return &Node{Kind: KindQuest, Left: flattenAlts(n.Left), NonGreedy: n.NonGreedy}
	case KindStar:
		return &Node{Kind: KindStar, Left: flattenAlts(n.Left), NonGreedy: n.NonGreedy}
	case KindPlus:
		return &Node{Kind: KindPlus, Left: flattenAlts(n.Left), NonGreedy: n.NonGreedy}
	case KindCat:
		return &Node{Kind: KindCat, Left: flattenAlts(n.Left), Right: flattenAlts(n.Right)}
	case KindAltList:
		out := make([]*Node, len(n.Children))
		for i, c := range n.Children {
			out[i] = flattenAlts(c)
		}
		return &Node{Kind: KindAltList, Children: out}
	default:
		return n
	}
}

// collectAltChildren walks a left-leaning Alt chain in left-to-right order.
func collectAltChildren(n *Node, out *[]*Node) {
	if n.Kind == KindAlt {
		collectAltChildren(n.Left, out)
		*out = append(*out, n.Right)
		return
	}
	*out = append(*out, n)
}

// rewriteBackrefs turns CharEscape('1'..'9') into Backref(cgNum).
func rewriteBackrefs(n *Node) *Node {
	if n == nil {
		return nil
	}
	if n.Kind == KindCharEscape && n.Ch >= '1' && n.Ch <= '9' {
		return newBackref(int(n.Ch - '0'))
	}
	switch n.Kind {
	case KindLookahead:
		return &Node{Kind: KindLookahead, Left: rewriteBackrefs(n.Left)}
	case KindParen:
		return &Node{Kind: KindParen, CgNum: n.CgNum, Left: rewriteBackrefs(n.Left)}
	case KindQuest:
		return &Node{Kind: KindQuest, Left: rewriteBackrefs(n.Left), NonGreedy: n.NonGreedy}
	case KindStar:
		return &Node{Kind: KindStar, Left: rewriteBackrefs(n.Left), NonGreedy: n.NonGreedy}
	case KindPlus:
		return &Node{Kind: KindPlus, Left: rewriteBackrefs(n.Left), NonGreedy: n.NonGreedy}
	case KindCat:
		return &Node{Kind: KindCat, Left: rewriteBackrefs(n.Left), Right: rewriteBackrefs(n.Right)}
	case KindAltList:
		out := make([]*Node, len(n.Children))
		for i, c := range n.Children {
			out[i] = rewriteBackrefs(c)
		}
		return &Node{Kind: KindAltList, Children: out}
	default:
		return n
	}
}

// flattenCharClasses ensures every CustomCharClass has a flat children
// list with no nested CharRange chain. The parser already builds
// CustomCharClass.Children flat (see parser.go's parseCustomCharClass),
// so this pass is a verifying no-op in this implementation — kept as its
// own pass to mirror the four-pass structure and to be the place a future
// parser producing a left-leaning CharRange chain would get flattened.
func flattenCharClasses(n *Node) *Node {
	if n == nil {
		return nil
	}
	switch n.Kind {
	case KindCustomCharClass:
		return n
	case KindLookahead:
		return &Node{Kind: KindLookahead, Left: flattenCharClasses(n.Left)}
	case KindParen:
		return &Node{Kind: KindParen, CgNum: n.CgNum, Left: flattenCharClasses(n.Left)}
	case KindQuest:
		return &Node{Kind: KindQuest, Left: flattenCharClasses(n.Left), NonGreedy: n.NonGreedy}
	case KindStar:
		return &Node{Kind: KindStar, Left: flattenCharClasses(n.Left), NonGreedy: n.NonGreedy}
	case KindPlus:
		return &Node{Kind: KindPlus, Left: flattenCharClasses(n.Left), NonGreedy: n.NonGreedy}
	case KindCat:
		return &Node{Kind: KindCat, Left: flattenCharClasses(n.Left), Right: flattenCharClasses(n.Right)}
	case KindAltList:
		out := make([]*Node, len(n.Children))
		for i, c := range n.Children {
			out[i] = flattenCharClasses(c)
		}
		return &Node{Kind: KindAltList, Children: out}
	default:
		return n
	}
}
