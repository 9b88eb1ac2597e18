package ast

import (
	"strings"

	"codecleanup/internal/source"
)

// Tree is the immutable result of parsing one compilation unit.
type Tree struct {
	File  *source.File
	Root  NodeID
	nodes *Arena[NodeID, Node]
}

// Empty reports whether the tree has no root.
func (t *Tree) Empty() bool {
	return t == nil || t.nodes == nil || !t.Root.IsValid()
}

// Len returns the number of nodes.
func (t *Tree) Len() int {
	if t == nil || t.nodes == nil {
		return 0
	}
	return int(t.nodes.Len())
}

// Node returns the node for id, or nil when id does not belong to the tree.
func (t *Tree) Node(id NodeID) *Node {
	if t == nil || t.nodes == nil {
		return nil
	}
	return t.nodes.Get(id)
}

// Kind returns the kind of id or KindInvalid.
func (t *Tree) Kind(id NodeID) Kind {
	if n := t.Node(id); n != nil {
		return n.Kind
	}
	return KindInvalid
}

// Parent returns the parent of id.
func (t *Tree) Parent(id NodeID) NodeID {
	if n := t.Node(id); n != nil {
		return n.Parent
	}
	return NoNodeID
}

// Children returns the ordered children of id.
func (t *Tree) Children(id NodeID) []NodeID {
	if n := t.Node(id); n != nil {
		return n.Children
	}
	return nil
}

// Child returns the first direct child of the given kind.
func (t *Tree) Child(id NodeID, kind Kind) NodeID {
	for _, c := range t.Children(id) {
		if t.Kind(c) == kind {
			return c
		}
	}
	return NoNodeID
}

// ChildrenOf returns the direct children of the given kind.
func (t *Tree) ChildrenOf(id NodeID, kind Kind) []NodeID {
	var out []NodeID
	for _, c := range t.Children(id) {
		if t.Kind(c) == kind {
			out = append(out, c)
		}
	}
	return out
}

// Inspect walks the subtree rooted at id in pre-order. Returning false from
// fn skips the children of the visited node.
func (t *Tree) Inspect(id NodeID, fn func(id NodeID, n *Node) bool) {
	n := t.Node(id)
	if n == nil {
		return
	}
	if !fn(id, n) {
		return
	}
	for _, c := range n.Children {
		t.Inspect(c, fn)
	}
}

// Descendants returns, in pre-order, the nodes strictly below id whose kind is
// one of kinds. With no kinds every descendant is returned.
func (t *Tree) Descendants(id NodeID, kinds ...Kind) []NodeID {
	var out []NodeID
	for _, c := range t.Children(id) {
		t.Inspect(c, func(cid NodeID, n *Node) bool {
			if matchKind(n.Kind, kinds) {
				out = append(out, cid)
			}
			return true
		})
	}
	return out
}

// HasDescendant reports whether any node strictly below id has one of kinds.
func (t *Tree) HasDescendant(id NodeID, kinds ...Kind) bool {
	found := false
	for _, c := range t.Children(id) {
		t.Inspect(c, func(_ NodeID, n *Node) bool {
			if found {
				return false
			}
			if matchKind(n.Kind, kinds) {
				found = true
				return false
			}
			return true
		})
		if found {
			return true
		}
	}
	return false
}

// All returns every node of the given kinds in document order.
func (t *Tree) All(kinds ...Kind) []NodeID {
	if t.Empty() {
		return nil
	}
	var out []NodeID
	t.Inspect(t.Root, func(id NodeID, n *Node) bool {
		if matchKind(n.Kind, kinds) {
			out = append(out, id)
		}
		return true
	})
	return out
}

// Text renders the exact source text of the node.
func (t *Tree) Text(id NodeID) string {
	n := t.Node(id)
	if n == nil || t.File == nil || n.Span.File != t.File.ID {
		return ""
	}
	return t.File.Text(n.Span)
}

// Line returns the 1-based line the node starts on. It reports false when the
// node or its position cannot be resolved.
func (t *Tree) Line(id NodeID) (int, bool) {
	n := t.Node(id)
	if n == nil || t.File == nil || n.Span.File != t.File.ID || n.Span.End < n.Span.Start {
		return 0, false
	}
	lc := t.File.Position(n.Span.Start)
	if !lc.Valid() {
		return 0, false
	}
	return int(lc.Line), true
}

// LeadingText concatenates the leading trivia of a declaration.
func (t *Tree) LeadingText(id NodeID) string {
	n := t.Node(id)
	if n == nil {
		return ""
	}
	var sb strings.Builder
	for _, tv := range n.Leading {
		sb.WriteString(tv.Text)
	}
	return sb.String()
}

// Ancestor returns the closest ancestor of id with one of kinds.
func (t *Tree) Ancestor(id NodeID, kinds ...Kind) NodeID {
	for p := t.Parent(id); p.IsValid(); p = t.Parent(p) {
		if matchKind(t.Kind(p), kinds) {
			return p
		}
	}
	return NoNodeID
}

func matchKind(k Kind, kinds []Kind) bool {
	if len(kinds) == 0 {
		return true
	}
	for _, want := range kinds {
		if k == want {
			return true
		}
	}
	return false
}

// Span returns a printable span for debugging dumps.
func (t *Tree) Span(id NodeID) source.Span {
	if n := t.Node(id); n != nil {
		return n.Span
	}
	return source.Span{}
}
