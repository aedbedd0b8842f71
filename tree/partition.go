package tree

import (
	"math"

	"github.com/pbanos/grove/dataset"
	"github.com/pbanos/grove/feature"
	"github.com/pbanos/grove/measure"
)

/*
Partition represents a partition of a view according to an attribute into
one subset per attribute value, with the information gain it yields to
predict the class attribute
*/
type Partition struct {
	Attribute       *feature.EnumAttribute
	Subsets         []Subset
	InformationGain float64
}

/*
Subset is the part of a partitioned view whose instances take Value for
the partition attribute.
*/
type Subset struct {
	Value feature.Value
	View  dataset.View
}

/*
NewPartition takes a view, an attribute and a class attribute and returns
the partition of the view for the attribute. Subsets follow the declaration
order of the attribute values and may be empty.
*/
func NewPartition(v dataset.View, a, class *feature.EnumAttribute) *Partition {
	values := a.Values()
	subsets := make([]Subset, 0, len(values))
	for _, value := range values {
		subsets = append(subsets, Subset{Value: value, View: dataset.Select(v, a, value)})
	}
	return &Partition{Attribute: a, Subsets: subsets, InformationGain: measure.InformationGain(v, class, a)}
}

/*
bestPartition returns the partition of the view with the greatest
information gain among the candidate attributes, or nil if there are no
candidates. Candidates are evaluated in the given order and ties resolve to
the first one.
*/
func bestPartition(v dataset.View, class *feature.EnumAttribute, candidates []*feature.EnumAttribute) *Partition {
	var selected *Partition
	maxGain := math.Inf(-1)
	for _, a := range candidates {
		p := NewPartition(v, a, class)
		if p.InformationGain > maxGain {
			maxGain = p.InformationGain
			selected = p
		}
	}
	return selected
}

func without(attributes []*feature.EnumAttribute, a *feature.EnumAttribute) []*feature.EnumAttribute {
	result := make([]*feature.EnumAttribute, 0, len(attributes))
	for _, other := range attributes {
		if other != a {
			result = append(result, other)
		}
	}
	return result
}
