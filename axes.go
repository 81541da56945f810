package axisml

// The four structural axes. Document order is depth-first, left to
// right, with an element's attribute nodes ordered immediately after the
// element itself and before its first child. For any two distinct nodes
// a and b of one tree, a is in exactly one of ancestors(b),
// descendants(b), preceding(b) or following(b).
//
// Attribute nodes take part purely by document position: their ancestor
// axis is empty, and the owning element (and everything above it) shows
// up in their preceding axis instead.

// NodeIter is a single-pass cursor over one axis sequence. Every axis
// accessor returns a fresh cursor; after exhaustion Next keeps returning
// (nil, false) forever.
type NodeIter struct {
	// spine holds the precomputed axis skeleton: sibling runs along the
	// ancestor chain plus verbatim nodes. Subtrees hanging off the spine
	// are expanded lazily through stack.
	spine []axisItem
	stack []*Node
	pos   int
	done  bool
}

type axisItem struct {
	n *Node
	// expand emits n followed by its whole subtree (attributes first,
	// then children, pre-order); otherwise n is emitted alone.
	expand bool
}

// Next returns the next node of the sequence, or (nil, false) once the
// sequence is exhausted.
func (it *NodeIter) Next() (*Node, bool) {
	if it.done {
		return nil, false
	}
	for {
		if len(it.stack) > 0 {
			m := it.stack[len(it.stack)-1]
			it.stack = it.stack[:len(it.stack)-1]
			it.pushContents(m)
			return m, true
		}
		if it.pos >= len(it.spine) {
			it.done = true
			it.stack = nil
			return nil, false
		}
		item := it.spine[it.pos]
		it.pos++
		if item.expand {
			it.stack = append(it.stack, item.n)
			continue
		}
		return item.n, true
	}
}

// Collect drains the cursor into a slice.
func (it *NodeIter) Collect() []*Node {
	var out []*Node
	for n, ok := it.Next(); ok; n, ok = it.Next() {
		out = append(out, n)
	}
	return out
}

// pushContents pushes n's attributes and children in reverse so that
// pops come off in document order.
func (it *NodeIter) pushContents(n *Node) {
	for i := len(n.Children) - 1; i >= 0; i-- {
		it.stack = append(it.stack, n.Children[i])
	}
	for i := len(n.Attrs) - 1; i >= 0; i-- {
		it.stack = append(it.stack, n.Attrs[i])
	}
}

// Ancestors returns n's parent, grandparent and so on up to the root.
// Empty for the root and for attribute nodes.
func (n *Node) Ancestors() *NodeIter {
	var spine []axisItem
	if n.Kind != NodeAttribute {
		for p := n.Parent; p != nil; p = p.Parent {
			spine = append(spine, axisItem{n: p})
		}
	}
	return &NodeIter{spine: spine}
}

// Descendants returns n's subtree in document order, excluding n itself.
// For an element the attribute nodes come first, in declaration order,
// before the expansion of the first child.
func (n *Node) Descendants() *NodeIter {
	it := &NodeIter{}
	it.pushContents(n)
	return it
}

// Following returns every node after n in document order that is not a
// descendant of n: n's later siblings each with their subtree, then the
// parent's later siblings, and so on out to the root.
func (n *Node) Following() *NodeIter {
	var spine []axisItem
	anchor := n
	if n.Kind == NodeAttribute {
		owner := n.Parent
		for _, a := range laterSiblings(owner.Attrs, n) {
			spine = append(spine, axisItem{n: a, expand: true})
		}
		for _, c := range owner.Children {
			spine = append(spine, axisItem{n: c, expand: true})
		}
		anchor = owner
	}
	for cur := anchor; cur != nil && cur.Parent != nil; cur = cur.Parent {
		for _, s := range laterSiblings(cur.Parent.Children, cur) {
			spine = append(spine, axisItem{n: s, expand: true})
		}
	}
	return &NodeIter{spine: spine}
}

// Preceding returns every node before n in document order that is not an
// ancestor of n, outermost level first: each ancestor's attributes, then
// the earlier siblings (with subtrees) of the next node down the chain,
// ending with n's own earlier siblings. For an attribute node the chain
// nodes themselves are included, so the owner and its ancestors appear
// here rather than on the (empty) ancestor axis.
func (n *Node) Preceding() *NodeIter {
	var spine []axisItem
	if n.Kind == NodeAttribute {
		owner := n.Parent
		chain := chainFromRoot(owner)
		for i, c := range chain {
			if i > 0 {
				for _, s := range earlierSiblings(c.Parent.Children, c) {
					spine = append(spine, axisItem{n: s, expand: true})
				}
			}
			spine = append(spine, axisItem{n: c})
			if c == owner {
				for _, a := range earlierSiblings(c.Attrs, n) {
					spine = append(spine, axisItem{n: a})
				}
			} else {
				for _, a := range c.Attrs {
					spine = append(spine, axisItem{n: a})
				}
			}
		}
		return &NodeIter{spine: spine}
	}
	chain := chainFromRoot(n)
	for i := 0; i < len(chain)-1; i++ {
		for _, a := range chain[i].Attrs {
			spine = append(spine, axisItem{n: a})
		}
		for _, s := range earlierSiblings(chain[i].Children, chain[i+1]) {
			spine = append(spine, axisItem{n: s, expand: true})
		}
	}
	return &NodeIter{spine: spine}
}

// chainFromRoot returns the ancestor chain of n from the root down to
// and including n.
func chainFromRoot(n *Node) []*Node {
	var chain []*Node
	for p := n; p != nil; p = p.Parent {
		chain = append(chain, p)
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}

func indexOf(list []*Node, n *Node) int {
	for i, m := range list {
		if m == n {
			return i
		}
	}
	return -1
}

func earlierSiblings(list []*Node, n *Node) []*Node {
	if i := indexOf(list, n); i > 0 {
		return list[:i]
	}
	return nil
}

func laterSiblings(list []*Node, n *Node) []*Node {
	if i := indexOf(list, n); i >= 0 {
		return list[i+1:]
	}
	return nil
}
