package comparator

// Stats aggregates leaf-level results of a comparison. Pass a pointer via
// WithStats and Compare will populate it.
type Stats struct {
	// leaf fields whose values agree, plus containers that matched with
	// no children of their own
	Matched int
	// fields present on both sides whose types or values disagree
	Mismatched int
	// fields present only on the left document
	LeftOnly int
	// fields present only on the right document
	RightOnly int
}

// Total returns the number of counted nodes.
func (s *Stats) Total() int {
	return s.Matched + s.Mismatched + s.LeftOnly + s.RightOnly
}

func (s *Stats) collect(nodes []*Node) {
	for _, n := range nodes {
		if !n.Leaf() {
			s.collect(n.Children)
			continue
		}
		switch {
		case n.Matched:
			s.Matched++
		case n.Value1 == nil:
			s.RightOnly++
		case n.Value2 == nil:
			s.LeftOnly++
		default:
			s.Mismatched++
		}
	}
}
