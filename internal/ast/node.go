package ast

import (
	"codecleanup/internal/source"
	"codecleanup/internal/token"
)

type NodeID uint32

const NoNodeID NodeID = 0

func (id NodeID) IsValid() bool { return id != NoNodeID }

type NodeFlags uint8

const (
	// FlagMultiLine marks multi-line lambdas.
	FlagMultiLine NodeFlags = 1 << iota
	// FlagRecovered marks nodes the parser closed without their End statement.
	FlagRecovered
)

type Node struct {
	Kind     Kind
	Span     source.Span
	Parent   NodeID
	Children []NodeID
	Name     string
	Value    string
	Op       token.Kind
	Flags    NodeFlags
	// Leading is the trivia in front of the node's first token; set on declarations.
	Leading []token.Trivia
}

// Builder allocates nodes for one tree.
type Builder struct {
	nodes *Arena[NodeID, Node]
}

func NewBuilder(capHint uint) *Builder {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Builder{nodes: NewArena[NodeID, Node](capHint)}
}

// New allocates a node; it gets a parent once passed to AddChild.
func (b *Builder) New(kind Kind, sp source.Span) NodeID {
	return b.nodes.Allocate(Node{Kind: kind, Span: sp})
}

// Get returns the node for id. The pointer is invalidated by the next New.
func (b *Builder) Get(id NodeID) *Node {
	return b.nodes.Get(id)
}

// AddChild appends child to parent. Invalid ids are ignored.
func (b *Builder) AddChild(parent, child NodeID) {
	p, c := b.Get(parent), b.Get(child)
	if p == nil || c == nil {
		return
	}
	c.Parent = parent
	p.Children = append(p.Children, child)
}

// Extend widens the node span to end at end.
func (b *Builder) Extend(id NodeID, end uint32) {
	if n := b.Get(id); n != nil && end > n.Span.End {
		n.Span.End = end
	}
}

// Finish freezes the builder into a Tree.
func (b *Builder) Finish(file *source.File, root NodeID) *Tree {
	return &Tree{File: file, nodes: b.nodes, Root: root}
}
