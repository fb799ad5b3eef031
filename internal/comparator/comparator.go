// Package comparator produces a field-by-field comparison tree for two
// parsed JSON documents. It is a pure function over its inputs: no state
// survives a call, inputs are never mutated, and concurrent calls are
// independent.
package comparator

import (
	"encoding/json"
	"fmt"
	"strconv"

	"jsoncompare/internal/errors"
	"jsoncompare/internal/models"
)

// Compare walks two parsed documents and returns one Node per field path
// present on either side, in deterministic order: the left document's keys
// in their original order, then keys present only on the right in theirs.
// Both roots must be JSON objects; anything else fails with
// errors.ErrInvalidRootType. The inputs are assumed well-formed (the parser
// owns malformed-input handling), so this is the only error path.
func Compare(left, right models.Value, opts ...Option) ([]*Node, error) {
	cfg := &compareConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	if left.Kind != models.KindObject || right.Kind != models.KindObject {
		return nil, errors.NewCompareError(
			fmt.Sprintf("both documents must be JSON objects at the top level, got %s and %s", left.Kind, right.Kind),
			errors.ErrInvalidRootType,
		)
	}

	c := &comparer{cfg: cfg}
	nodes := c.compareObjects(left.Obj, right.Obj)
	if cfg.stats != nil {
		cfg.stats.collect(nodes)
	}
	return nodes, nil
}

// compareConfig are any possible configuration parameters for a comparison
type compareConfig struct {
	// compare numbers by literal text instead of parsed numeric value,
	// so "1" and "1.0" count as different
	strictNumbers bool
	// non-nil stats pointer to populate with data from the comparison
	stats *Stats
}

// Option is a function that adjusts a config, zero or more Options can be
// passed to Compare
type Option func(cfg *compareConfig)

// WithStrictNumbers makes numeric equality textual: two numbers match only
// when their literal forms are identical.
func WithStrictNumbers() Option {
	return func(cfg *compareConfig) {
		cfg.strictNumbers = true
	}
}

// WithStats will populate the passed-in stats pointer when Compare is called
func WithStats(st *Stats) Option {
	return func(cfg *compareConfig) {
		cfg.stats = st
	}
}

// comparer carries the config through the recursive walk
type comparer struct {
	cfg *compareConfig
}

func (c *comparer) compareObjects(left, right *models.Object) []*Node {
	keys := keyUnion(left, right)
	nodes := make([]*Node, 0, len(keys))
	for _, key := range keys {
		v1, ok1 := left.Get(key)
		v2, ok2 := right.Get(key)
		nodes = append(nodes, c.compareField(key, v1, ok1, v2, ok2))
	}
	return nodes
}

// keyUnion returns left's keys in their native order followed by any keys
// present only in right, in right's native order.
func keyUnion(left, right *models.Object) []string {
	keys := make([]string, 0, left.Len()+right.Len())
	keys = append(keys, left.Keys()...)
	for _, key := range right.Keys() {
		if !left.Has(key) {
			keys = append(keys, key)
		}
	}
	return keys
}

// compareField emits the node for a single field. Every combination of
// presence, type and value lands in exactly one branch here.
func (c *comparer) compareField(field string, v1 models.Value, ok1 bool, v2 models.Value, ok2 bool) *Node {
	switch {
	case !ok1:
		// missing on the left: nothing to compare against, even if the
		// right side is a container
		return &Node{Field: field, Value2: render(v2)}
	case !ok2:
		return &Node{Field: field, Value1: render(v1)}
	case v1.Kind != v2.Kind:
		// type mismatch is reported, not recursed into
		return &Node{Field: field, Value1: render(v1), Value2: render(v2)}
	case v1.Kind == models.KindObject:
		children := c.compareObjects(v1.Obj, v2.Obj)
		return &Node{Field: field, Matched: AllMatched(children), Children: children}
	case v1.Kind == models.KindArray:
		children := c.compareArrays(v1.Arr, v2.Arr)
		return &Node{Field: field, Matched: AllMatched(children), Children: children}
	default:
		return &Node{
			Field:   field,
			Value1:  render(v1),
			Value2:  render(v2),
			Matched: c.scalarsEqual(v1, v2),
		}
	}
}

// compareArrays compares elements positionally over 0..max(len1,len2)-1.
// An index beyond one side's length is treated the same as a missing object
// field on that side.
func (c *comparer) compareArrays(a1, a2 []models.Value) []*Node {
	max := len(a1)
	if len(a2) > max {
		max = len(a2)
	}
	nodes := make([]*Node, 0, max)
	for i := 0; i < max; i++ {
		var v1, v2 models.Value
		ok1 := i < len(a1)
		ok2 := i < len(a2)
		if ok1 {
			v1 = a1[i]
		}
		if ok2 {
			v2 = a2[i]
		}
		nodes = append(nodes, c.compareField(strconv.Itoa(i), v1, ok1, v2, ok2))
	}
	return nodes
}

// scalarsEqual compares two same-kind scalar values.
func (c *comparer) scalarsEqual(v1, v2 models.Value) bool {
	switch v1.Kind {
	case models.KindNull:
		return true
	case models.KindBool:
		return v1.Bool == v2.Bool
	case models.KindString:
		return v1.Str == v2.Str
	case models.KindNumber:
		return c.numbersEqual(v1.Num, v2.Num)
	default:
		return false
	}
}

// numbersEqual compares by parsed numeric value, so 1 and 1.0 are equal.
// Integers get an exact int64 path before falling back to float64; literals
// outside both ranges compare textually.
func (c *comparer) numbersEqual(n1, n2 json.Number) bool {
	if c.cfg.strictNumbers {
		return n1.String() == n2.String()
	}
	if i1, err := n1.Int64(); err == nil {
		if i2, err := n2.Int64(); err == nil {
			return i1 == i2
		}
	}
	f1, err1 := n1.Float64()
	f2, err2 := n2.Float64()
	if err1 != nil || err2 != nil {
		return n1.String() == n2.String()
	}
	return f1 == f2
}

func render(v models.Value) *string {
	s := v.Render()
	return &s
}
