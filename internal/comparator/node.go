package comparator

// Node is one row of a comparison tree: the field (or array index) at this
// nesting level, the rendered value on each side, and whether the two sides
// agree. Value1/Value2 are nil when the field is absent on that side.
// Container nodes carry Children instead of renderings; Matched on a
// container holds only if every child matched.
type Node struct {
	Field    string  `json:"field"`
	Value1   *string `json:"value1,omitempty"`
	Value2   *string `json:"value2,omitempty"`
	Matched  bool    `json:"matched"`
	Children []*Node `json:"children,omitempty"`
}

// Leaf reports whether the node has no children, either because both sides
// hold a scalar or because a missing field or type mismatch stopped
// recursion.
func (n *Node) Leaf() bool {
	return len(n.Children) == 0
}

// AllMatched reports whether every node in the sequence matched. An empty
// sequence matches trivially, so two empty documents compare equal.
func AllMatched(nodes []*Node) bool {
	for _, n := range nodes {
		if !n.Matched {
			return false
		}
	}
	return true
}
