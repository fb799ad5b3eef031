package comparator

import (
	stderrors "errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	apperrors "jsoncompare/internal/errors"
	"jsoncompare/internal/models"
	"jsoncompare/internal/parser"
)

func mustParse(t *testing.T, src string) models.Value {
	t.Helper()
	v, err := parser.ParseString(src)
	if err != nil {
		t.Fatalf("ParseString(%q) error = %v", src, err)
	}
	return v
}

func strptr(s string) *string { return &s }

func TestCompare_InvalidRootType(t *testing.T) {
	cases := []struct {
		name        string
		left, right string
	}{
		{"left array", `[1,2]`, `{}`},
		{"right array", `{}`, `[1,2]`},
		{"left scalar", `5`, `{}`},
		{"right string", `{}`, `"hi"`},
		{"both scalars", `true`, `null`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Compare(mustParse(t, tc.left), mustParse(t, tc.right))
			if err == nil {
				t.Fatal("Compare() error = nil, want ErrInvalidRootType")
			}
			if !stderrors.Is(err, apperrors.ErrInvalidRootType) {
				t.Errorf("Compare() error = %v, want ErrInvalidRootType", err)
			}
		})
	}
}

func TestCompare_Trees(t *testing.T) {
	cases := []struct {
		name        string
		left, right string
		want        []*Node
	}{
		{
			name:  "empty objects",
			left:  `{}`,
			right: `{}`,
			want:  []*Node{},
		},
		{
			name:  "matching scalars",
			left:  `{"name":"ada","age":36,"admin":true,"note":null}`,
			right: `{"name":"ada","age":36,"admin":true,"note":null}`,
			want: []*Node{
				{Field: "name", Value1: strptr("ada"), Value2: strptr("ada"), Matched: true},
				{Field: "age", Value1: strptr("36"), Value2: strptr("36"), Matched: true},
				{Field: "admin", Value1: strptr("true"), Value2: strptr("true"), Matched: true},
				{Field: "note", Value1: strptr("null"), Value2: strptr("null"), Matched: true},
			},
		},
		{
			name:  "missing field propagation",
			left:  `{"x":1}`,
			right: `{}`,
			want: []*Node{
				{Field: "x", Value1: strptr("1")},
			},
		},
		{
			name:  "missing container short-circuits recursion",
			left:  `{"x":{"y":1}}`,
			right: `{}`,
			want: []*Node{
				{Field: "x", Value1: strptr("[object]")},
			},
		},
		{
			name:  "type mismatch short-circuits recursion",
			left:  `{"x":{"y":1}}`,
			right: `{"x":5}`,
			want: []*Node{
				{Field: "x", Value1: strptr("[object]"), Value2: strptr("5")},
			},
		},
		{
			name:  "null and bool are different types",
			left:  `{"x":null}`,
			right: `{"x":false}`,
			want: []*Node{
				{Field: "x", Value1: strptr("null"), Value2: strptr("false")},
			},
		},
		{
			name:  "nested equality",
			left:  `{"x":{"y":1,"z":2}}`,
			right: `{"x":{"y":1,"z":3}}`,
			want: []*Node{
				{Field: "x", Children: []*Node{
					{Field: "y", Value1: strptr("1"), Value2: strptr("1"), Matched: true},
					{Field: "z", Value1: strptr("2"), Value2: strptr("3")},
				}},
			},
		},
		{
			name:  "array length skew",
			left:  `{"x":[1,2]}`,
			right: `{"x":[1]}`,
			want: []*Node{
				{Field: "x", Children: []*Node{
					{Field: "0", Value1: strptr("1"), Value2: strptr("1"), Matched: true},
					{Field: "1", Value1: strptr("2")},
				}},
			},
		},
		{
			name:  "array of objects recurses per element",
			left:  `{"xs":[{"id":1},{"id":2}]}`,
			right: `{"xs":[{"id":1},{"id":3}]}`,
			want: []*Node{
				{Field: "xs", Children: []*Node{
					{Field: "0", Matched: true, Children: []*Node{
						{Field: "id", Value1: strptr("1"), Value2: strptr("1"), Matched: true},
					}},
					{Field: "1", Children: []*Node{
						{Field: "id", Value1: strptr("2"), Value2: strptr("3")},
					}},
				}},
			},
		},
		{
			name:  "empty object against populated object recurses",
			left:  `{"x":{}}`,
			right: `{"x":{"y":1}}`,
			want: []*Node{
				{Field: "x", Children: []*Node{
					{Field: "y", Value2: strptr("1")},
				}},
			},
		},
		{
			name:  "empty objects on both sides match",
			left:  `{"x":{}}`,
			right: `{"x":{}}`,
			want: []*Node{
				{Field: "x", Matched: true, Children: []*Node{}},
			},
		},
		{
			name:  "key union keeps left order then right-only keys",
			left:  `{"b":1,"a":2}`,
			right: `{"d":4,"a":2,"c":3}`,
			want: []*Node{
				{Field: "b", Value1: strptr("1")},
				{Field: "a", Value1: strptr("2"), Value2: strptr("2"), Matched: true},
				{Field: "d", Value2: strptr("4")},
				{Field: "c", Value2: strptr("3")},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Compare(mustParse(t, tc.left), mustParse(t, tc.right))
			if err != nil {
				t.Fatalf("Compare() error = %v", err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Compare() result mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCompare_Identity(t *testing.T) {
	src := `{
		"name": "service",
		"replicas": 3,
		"labels": {"team": "infra", "tier": "backend"},
		"ports": [80, 443, {"name": "metrics", "port": 9090}],
		"enabled": true,
		"parent": null
	}`
	doc := mustParse(t, src)

	nodes, err := Compare(doc, doc)
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}

	var check func(ns []*Node)
	check = func(ns []*Node) {
		for _, n := range ns {
			if !n.Matched {
				t.Errorf("node %q not matched when comparing a document with itself", n.Field)
			}
			if n.Leaf() && (n.Value1 == nil || n.Value2 == nil || *n.Value1 != *n.Value2) {
				t.Errorf("leaf %q has unequal renderings: %v vs %v", n.Field, n.Value1, n.Value2)
			}
			check(n.Children)
		}
	}
	check(nodes)

	if !AllMatched(nodes) {
		t.Error("AllMatched() = false for identical documents")
	}
}

// mismatchedPaths flattens a tree into the set of leaf paths that did not
// match, for symmetry checks.
func mismatchedPaths(nodes []*Node, prefix string, acc map[string]bool) {
	for _, n := range nodes {
		path := prefix + "/" + n.Field
		if len(n.Children) > 0 {
			mismatchedPaths(n.Children, path, acc)
			continue
		}
		if !n.Matched {
			acc[path] = true
		}
	}
}

func TestCompare_MismatchSymmetry(t *testing.T) {
	left := `{"a":1,"b":{"c":2,"d":[1,2,3]},"e":"x","only_left":true}`
	right := `{"a":1,"b":{"c":9,"d":[1,2]},"e":5,"only_right":false}`

	ab, err := Compare(mustParse(t, left), mustParse(t, right))
	if err != nil {
		t.Fatalf("Compare(A, B) error = %v", err)
	}
	ba, err := Compare(mustParse(t, right), mustParse(t, left))
	if err != nil {
		t.Fatalf("Compare(B, A) error = %v", err)
	}

	gotAB := map[string]bool{}
	gotBA := map[string]bool{}
	mismatchedPaths(ab, "", gotAB)
	mismatchedPaths(ba, "", gotBA)

	if diff := cmp.Diff(gotAB, gotBA); diff != "" {
		t.Errorf("mismatch classification is not symmetric (-AB +BA):\n%s", diff)
	}
}

func TestCompare_NumericEquality(t *testing.T) {
	cases := []struct {
		name         string
		left, right  string
		wantMatch    bool
		strictsMatch bool
	}{
		{"integer vs decimal form", `{"n":1}`, `{"n":1.0}`, true, false},
		{"scientific notation", `{"n":1e2}`, `{"n":100}`, true, false},
		{"same literal", `{"n":3.14}`, `{"n":3.14}`, true, true},
		{"different values", `{"n":1}`, `{"n":2}`, false, false},
		{"large integers stay exact", `{"n":9007199254740993}`, `{"n":9007199254740992}`, false, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			nodes, err := Compare(mustParse(t, tc.left), mustParse(t, tc.right))
			if err != nil {
				t.Fatalf("Compare() error = %v", err)
			}
			if got := nodes[0].Matched; got != tc.wantMatch {
				t.Errorf("Compare() matched = %v, want %v", got, tc.wantMatch)
			}

			nodes, err = Compare(mustParse(t, tc.left), mustParse(t, tc.right), WithStrictNumbers())
			if err != nil {
				t.Fatalf("Compare(WithStrictNumbers) error = %v", err)
			}
			if got := nodes[0].Matched; got != tc.strictsMatch {
				t.Errorf("Compare(WithStrictNumbers) matched = %v, want %v", got, tc.strictsMatch)
			}
		})
	}
}

func TestCompare_Stats(t *testing.T) {
	left := `{"a":1,"b":2,"c":{"d":3,"e":4},"f":[1,2]}`
	right := `{"a":1,"b":9,"c":{"d":3},"g":true,"f":[1]}`

	var st Stats
	_, err := Compare(mustParse(t, left), mustParse(t, right), WithStats(&st))
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}

	want := Stats{
		Matched:    3, // a, c/d, f/0
		Mismatched: 1, // b
		LeftOnly:   2, // c/e, f/1
		RightOnly:  1, // g
	}
	if diff := cmp.Diff(want, st); diff != "" {
		t.Errorf("stats mismatch (-want +got):\n%s", diff)
	}
	if st.Total() != 7 {
		t.Errorf("Total() = %d, want 7", st.Total())
	}
}

func TestCompare_DoesNotMutateInputs(t *testing.T) {
	left := mustParse(t, `{"a":{"b":[1,2]},"c":3}`)
	right := mustParse(t, `{"a":{"b":[1]},"d":4}`)

	if _, err := Compare(left, right); err != nil {
		t.Fatalf("Compare() error = %v", err)
	}

	// a second comparison over the same trees must see identical inputs
	first, err := Compare(left, right)
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}
	second, err := Compare(left, right)
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated comparisons diverged (-first +second):\n%s", diff)
	}
}

func TestAllMatched(t *testing.T) {
	if !AllMatched(nil) {
		t.Error("AllMatched(nil) = false, want true")
	}
	if !AllMatched([]*Node{{Field: "a", Matched: true}}) {
		t.Error("AllMatched(matched) = false, want true")
	}
	if AllMatched([]*Node{{Field: "a", Matched: true}, {Field: "b"}}) {
		t.Error("AllMatched(mixed) = true, want false")
	}
}
