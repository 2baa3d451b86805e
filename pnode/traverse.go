package pnode

// NthChild returns the i-th child of a Rule node, or nil if n is a Literal,
// has no children, or i is out of range. A negative i counts from the end
// (-1 is the last child).
func NthChild(n Node, i int) Node {
	r, ok := n.(*Rule)
	if !ok {
		return nil
	}

	count := len(r.Children)
	if i < 0 {
		i += count
	}
	if i < 0 || i >= count {
		return nil
	}
	return r.Children[i]
}

// CountChildren reports how many nodes lie beneath n. levels bounds the
// depth of the count: 0 counts only n's immediate children, AllLevels
// counts every descendant.
func CountChildren(n Node, levels int) int {
	r, ok := n.(*Rule)
	if !ok {
		return 0
	}

	count := len(r.Children)
	if levels == 0 {
		return count
	}

	nextLevels := levels
	if nextLevels != AllLevels {
		nextLevels--
	}
	for _, c := range r.Children {
		count += CountChildren(c, nextLevels)
	}
	return count
}

// AllLevels tells CountChildren to count every descendant rather than
// stopping at a fixed depth.
const AllLevels = -1
