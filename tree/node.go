package tree

import (
	"fmt"

	"github.com/pbanos/grove/feature"
)

/*
Node is a node of a decision tree: either an *InnerNode or a *Leaf.
*/
type Node interface {
	isNode()
}

/*
InnerNode is a decision node: it asks the sample for its value on Attribute
and continues with the child for that value.
*/
type InnerNode struct {
	// The attribute whose value selects the child to descend into
	Attribute *feature.EnumAttribute
	// The subtree for each value of the attribute seen while training
	Children map[feature.Value]Node
}

/*
Leaf is a terminal node holding the class value predicted for samples
reaching it.
*/
type Leaf struct {
	Value feature.Value
}

func (*InnerNode) isNode() {}

func (*Leaf) isNode() {}

// NewInnerNode returns an inner node on the attribute with no children
func NewInnerNode(a *feature.EnumAttribute) *InnerNode {
	return &InnerNode{Attribute: a, Children: make(map[feature.Value]Node, a.Len())}
}

// Child returns the subtree for the value and whether there is one
func (n *InnerNode) Child(v feature.Value) (Node, bool) {
	child, ok := n.Children[v]
	return child, ok
}

func (n *InnerNode) String() string {
	return fmt.Sprintf("<%s>", n.Attribute.Name())
}

func (l *Leaf) String() string {
	return fmt.Sprintf("(%s)", l.Value)
}

/*
Depth returns the number of nodes on the longest path from n down to a
leaf, n included.
*/
func Depth(n Node) int {
	switch n := n.(type) {
	case *InnerNode:
		max := 0
		for _, child := range n.Children {
			if d := Depth(child); d > max {
				max = d
			}
		}
		return max + 1
	case *Leaf:
		return 1
	}
	return 0
}

// LeafCount returns the number of leaves under n
func LeafCount(n Node) int {
	switch n := n.(type) {
	case *InnerNode:
		count := 0
		for _, child := range n.Children {
			count += LeafCount(child)
		}
		return count
	case *Leaf:
		return 1
	}
	return 0
}
