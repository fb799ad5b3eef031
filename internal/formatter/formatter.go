// Package formatter renders comparison trees for terminal or machine
// consumption. It has no comparison semantics of its own.
package formatter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"jsoncompare/internal/comparator"
	apperrors "jsoncompare/internal/errors"
)

// marker identifies what happened to a field, using diff-style symbols:
// a space for agreement, "~" for a value or type change, "-" for a field
// only the left document has, "+" for one only the right document has.
type marker string

const (
	markSame      = marker(" ")
	markChanged   = marker("~")
	markLeftOnly  = marker("-")
	markRightOnly = marker("+")
)

// Formatter renders comparison trees. The zero value renders plain
// uncolored text including matched fields.
type Formatter struct {
	// Color adds ANSI colors to text output
	Color bool
	// OnlyMismatches hides matched fields from text and table output
	OnlyMismatches bool
}

// NewFormatter creates a new Formatter instance
func NewFormatter() *Formatter {
	return &Formatter{}
}

// FormatTextString is a convenience wrapper that outputs to a string
// instead of an io.Writer
func (f *Formatter) FormatTextString(nodes []*comparator.Node) (string, error) {
	buf := &bytes.Buffer{}
	if err := f.FormatText(buf, nodes); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// FormatText writes an indented text report to w, one line per field,
// children indented beneath their container. If Color is set it adds
// red "-" for left-only fields
// green "+" for right-only fields
// blue "~" for changed values
func (f *Formatter) FormatText(w io.Writer, nodes []*comparator.Node) error {
	var colorMap map[marker]string

	if f.Color {
		colorMap = map[marker]string{
			marker("close"): "\x1b[0m", // end color tag

			markSame:      "\x1b[37m", // neutral
			markRightOnly: "\x1b[32m", // green
			markLeftOnly:  "\x1b[31m", // red
			markChanged:   "\x1b[34m", // blue
		}
	}

	return f.formatText(w, nodes, 0, colorMap)
}

func (f *Formatter) formatText(w io.Writer, nodes []*comparator.Node, indent int, colorMap map[marker]string) error {
	for _, n := range nodes {
		if f.OnlyMismatches && n.Matched {
			continue
		}
		mark := nodeMarker(n)
		if _, err := fmt.Fprintf(w, "%s%s%s %s%s%s\n",
			strings.Repeat("  ", indent),
			colorMap[mark], mark, n.Field, valueCell(n),
			colorMap[marker("close")],
		); err != nil {
			return apperrors.NewFormatError("failed to write text report", err)
		}
		if len(n.Children) > 0 {
			if err := f.formatText(w, n.Children, indent+1, colorMap); err != nil {
				return err
			}
		}
	}

	return nil
}

// valueCell renders the value portion of a text line. Containers carry no
// scalar rendering, so their lines end at the field name.
func valueCell(n *comparator.Node) string {
	if len(n.Children) > 0 {
		return ":"
	}
	switch {
	case n.Value1 == nil && n.Value2 == nil:
		// matched empty container
		return ":"
	case n.Value1 == nil:
		return fmt.Sprintf(": %s", *n.Value2)
	case n.Value2 == nil:
		return fmt.Sprintf(": %s", *n.Value1)
	case n.Matched:
		return fmt.Sprintf(": %s", *n.Value1)
	default:
		return fmt.Sprintf(": %s => %s", *n.Value1, *n.Value2)
	}
}

func nodeMarker(n *comparator.Node) marker {
	switch {
	case n.Matched:
		return markSame
	case n.Value1 == nil && len(n.Children) == 0:
		return markRightOnly
	case n.Value2 == nil && len(n.Children) == 0:
		return markLeftOnly
	default:
		return markChanged
	}
}

// FormatTable writes an aligned four-column report to w: full field path,
// left value, right value, result. Paths join nesting levels with "/".
func (f *Formatter) FormatTable(w io.Writer, nodes []*comparator.Node) error {
	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FIELD\tLEFT\tRIGHT\tRESULT")
	f.tableRows(tw, nodes, "")
	if err := tw.Flush(); err != nil {
		return apperrors.NewFormatError("failed to write table report", err)
	}
	return nil
}

func (f *Formatter) tableRows(w io.Writer, nodes []*comparator.Node, prefix string) {
	for _, n := range nodes {
		if f.OnlyMismatches && n.Matched {
			continue
		}
		path := prefix + "/" + n.Field
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", path, cellOrEmpty(n.Value1), cellOrEmpty(n.Value2), resultWord(n))
		if len(n.Children) > 0 {
			f.tableRows(w, n.Children, path)
		}
	}
}

func cellOrEmpty(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func resultWord(n *comparator.Node) string {
	switch {
	case n.Matched:
		return "match"
	case n.Value1 == nil && len(n.Children) == 0:
		return "right only"
	case n.Value2 == nil && len(n.Children) == 0:
		return "left only"
	default:
		return "differ"
	}
}

// FormatJSON re-serializes the comparison tree itself as indented JSON for
// machine consumption.
func (f *Formatter) FormatJSON(w io.Writer, nodes []*comparator.Node) error {
	out := nodes
	if f.OnlyMismatches {
		out = pruneMatched(nodes)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return apperrors.NewFormatError("failed to encode comparison tree", err)
	}
	return nil
}

// pruneMatched returns a copy of the sequence without matched nodes.
// Mismatched containers keep only their mismatched descendants.
func pruneMatched(nodes []*comparator.Node) []*comparator.Node {
	pruned := make([]*comparator.Node, 0, len(nodes))
	for _, n := range nodes {
		if n.Matched {
			continue
		}
		if len(n.Children) == 0 {
			pruned = append(pruned, n)
			continue
		}
		copied := *n
		copied.Children = pruneMatched(n.Children)
		pruned = append(pruned, &copied)
	}
	return pruned
}

// FormatStats prints a one-line summary of comparison stats. A nil Stats
// renders as nothing.
func (f *Formatter) FormatStats(st *comparator.Stats) string {
	if st == nil {
		return ""
	}

	var neutralColor, matchColor, differColor, closeColor string

	if f.Color {
		neutralColor = "\x1b[37m"
		matchColor = "\x1b[32m"
		differColor = "\x1b[31m"
		closeColor = "\x1b[0m"
	}

	buf := &bytes.Buffer{}

	fieldsWord := "fields"
	if st.Total() == 1 {
		fieldsWord = "field"
	}
	buf.WriteString(fmt.Sprintf("%s%d %s.%s", neutralColor, st.Total(), fieldsWord, closeColor))

	buf.WriteString(fmt.Sprintf(" %s%d matched.%s", matchColor, st.Matched, closeColor))
	buf.WriteString(fmt.Sprintf(" %s%d mismatched.%s", differColor, st.Mismatched, closeColor))

	if st.LeftOnly > 0 {
		buf.WriteString(fmt.Sprintf(" %s%d left only.%s", differColor, st.LeftOnly, closeColor))
	}
	if st.RightOnly > 0 {
		buf.WriteString(fmt.Sprintf(" %s%d right only.%s", differColor, st.RightOnly, closeColor))
	}

	buf.WriteRune('\n')

	return buf.String()
}
