package format

import (
	"slices"

	"github.com/toon-format/go-toon/ir"
)

// Layout is the wire form chosen for an array.
type Layout int

const (
	InlineLayout Layout = iota
	ListLayout
	TabularLayout
)

func (l Layout) String() string {
	switch l {
	case InlineLayout:
		return "inline"
	case ListLayout:
		return "list"
	case TabularLayout:
		return "tabular"
	default:
		return "<unknown layout>"
	}
}

// Select classifies array elements. Empty arrays are inline. Arrays
// whose elements are all objects with an identical key set and only
// primitive values are tabular. All-primitive arrays are inline.
// Everything else is a list.
func Select(elts []*ir.Node) Layout {
	if len(elts) == 0 {
		return InlineLayout
	}
	if tabular(elts) {
		return TabularLayout
	}
	for _, elt := range elts {
		if !elt.Type.IsLeaf() {
			return ListLayout
		}
	}
	return InlineLayout
}

// Headers returns the lexicographically sorted key set of the first
// element. Valid only when Select returned TabularLayout.
func Headers(elts []*ir.Node) []string {
	if len(elts) == 0 {
		return nil
	}
	hs := make([]string, 0, len(elts[0].Fields))
	for _, f := range elts[0].Fields {
		hs = append(hs, f.String)
	}
	slices.Sort(hs)
	return hs
}

func tabular(elts []*ir.Node) bool {
	var first []string
	for i, elt := range elts {
		if elt.Type != ir.ObjectType {
			return false
		}
		for _, v := range elt.Values {
			if !v.Type.IsLeaf() {
				return false
			}
		}
		keys := make([]string, 0, len(elt.Fields))
		for _, f := range elt.Fields {
			keys = append(keys, f.String)
		}
		slices.Sort(keys)
		if i == 0 {
			first = keys
			continue
		}
		if !slices.Equal(keys, first) {
			return false
		}
	}
	return true
}
