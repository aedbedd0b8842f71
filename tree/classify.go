package tree

import (
	"fmt"

	"github.com/pbanos/grove/feature"
)

// TreeError represents an error related with training trees
type TreeError string

/*
ErrInvalidMaxDepth is returned when training a tree with a maximum depth
lower than 1.
*/
const ErrInvalidMaxDepth = TreeError("maximum depth must be at least 1")

/*
ErrUntrained is returned when classifying with a model that has not been
trained.
*/
const ErrUntrained = TreeError("model has not been trained")

func (te TreeError) Error() string {
	return string(te)
}

/*
UnseenValueError is returned when classifying a sample whose value for the
attribute of an inner node has no subtree: the value was absent from the
training data for that node, or the sample has no value at all.
*/
type UnseenValueError struct {
	Attribute string
	Value     feature.Value
	Missing   bool
}

func (e *UnseenValueError) Error() string {
	if e.Missing {
		return fmt.Sprintf("sample has no value for attribute %s", e.Attribute)
	}
	return fmt.Sprintf("no subtree for value %s of attribute %s", e.Value, e.Attribute)
}

/*
Classify takes the root of a tree and a sample and returns the value of the
leaf the sample reaches, or an *UnseenValueError.
*/
func Classify(root Node, s feature.Sample) (feature.Value, error) {
	n := root
	for {
		switch node := n.(type) {
		case *Leaf:
			return node.Value, nil
		case *InnerNode:
			v, ok := s.ValueFor(node.Attribute)
			if !ok {
				return "", &UnseenValueError{Attribute: node.Attribute.Name(), Missing: true}
			}
			child, ok := node.Child(v)
			if !ok {
				return "", &UnseenValueError{Attribute: node.Attribute.Name(), Value: v}
			}
			n = child
		default:
			return "", fmt.Errorf("unknown node type %T", n)
		}
	}
}
