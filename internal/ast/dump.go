package ast

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes an indented outline of the subtree rooted at id, one node per line:
//
//	MethodBlock "Main" Sub @3
func (t *Tree) Dump(w io.Writer, id NodeID) error {
	var err error
	depth := map[NodeID]int{}
	t.Inspect(id, func(nid NodeID, n *Node) bool {
		if err != nil {
			return false
		}
		d := 0
		if n.Parent.IsValid() {
			d = depth[n.Parent] + 1
		}
		depth[nid] = d

		var sb strings.Builder
		sb.WriteString(strings.Repeat("  ", d))
		sb.WriteString(n.Kind.String())
		if n.Name != "" {
			fmt.Fprintf(&sb, " %q", n.Name)
		}
		if n.Op.IsKeyword() || n.Kind == BinaryExpression || n.Kind == UnaryExpression || n.Kind == Assignment {
			fmt.Fprintf(&sb, " %s", n.Op)
		}
		if n.Value != "" {
			fmt.Fprintf(&sb, " [%s]", n.Value)
		}
		if line, ok := t.Line(nid); ok {
			fmt.Fprintf(&sb, " @%d", line)
		}
		sb.WriteByte('\n')
		_, err = io.WriteString(w, sb.String())
		return true
	})
	return err
}
