package tree

import (
	"github.com/pbanos/grove/dataset"
	"github.com/pbanos/grove/feature"
	"github.com/pbanos/grove/measure"
)

/*
Build takes a non-empty view, the class attribute, the candidate attributes
to split on, the depth of the node to build and the maximum depth allowed,
and returns the root of the decision (sub)tree induced from the view.

A leaf is returned when the view is pure on the class attribute, when there
are no candidates left or when depth has reached maxDepth. Otherwise the
candidate with the greatest information gain, first one on ties, becomes
the decision attribute of an inner node with a child per domain value. The
child for a value no instance takes is a leaf with the most common class of
the view.

Candidates are not modified; the order they are given in is the order ties
are resolved in.
*/
func Build(v dataset.View, class *feature.EnumAttribute, candidates []*feature.EnumAttribute, depth, maxDepth int) Node {
	if measure.Entropy(v, class) == 0 {
		value, _ := v.InstanceAt(0).ValueFor(class)
		return &Leaf{Value: value}
	}
	if len(candidates) == 0 || depth == maxDepth {
		return &Leaf{Value: measure.MostCommonValue(v, class)}
	}
	p := bestPartition(v, class, candidates)
	node := NewInnerNode(p.Attribute)
	remaining := without(candidates, p.Attribute)
	for _, subset := range p.Subsets {
		if dataset.IsEmpty(subset.View) {
			node.Children[subset.Value] = &Leaf{Value: measure.MostCommonValue(v, class)}
			continue
		}
		node.Children[subset.Value] = Build(subset.View, class, remaining, depth+1, maxDepth)
	}
	return node
}
