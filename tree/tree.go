/*
Package tree induces decision trees from views of nominal datasets with the
ID3 algorithm and classifies samples with them.
*/
package tree

import (
	"fmt"
	"strings"

	"github.com/pbanos/grove/dataset"
	"github.com/pbanos/grove/feature"
	"github.com/pkg/errors"
)

/*
Model is a decision tree classifier with a bounded depth. It keeps the root
of the last tree trained and the error rate of its last test.
*/
type Model struct {
	MaxDepth  int
	root      Node
	errorRate float64
}

// New takes a maximum depth and returns an untrained model
func New(maxDepth int) *Model {
	return &Model{MaxDepth: maxDepth}
}

/*
Train induces a tree from the view to predict the class attribute, using
every other attribute of the view, in declaration order, as candidate. It
replaces any previously trained tree and resets the error rate. It returns
ErrInvalidMaxDepth if the model's maximum depth is lower than 1 and
dataset.ErrEmptyDataset if the view has no instances.
*/
func (m *Model) Train(v dataset.View, class *feature.EnumAttribute) error {
	if m.MaxDepth < 1 {
		return ErrInvalidMaxDepth
	}
	if dataset.IsEmpty(v) {
		return dataset.ErrEmptyDataset
	}
	m.root = Build(v, class, dataset.AttributesExcept(v, class), 1, m.MaxDepth)
	m.errorRate = 0
	return nil
}

/*
Classify returns the class value the trained tree predicts for the
instance, an *UnseenValueError if the tree cannot follow the instance's
values, or ErrUntrained.
*/
func (m *Model) Classify(instance *dataset.Instance, class *feature.EnumAttribute) (feature.Value, error) {
	if m.root == nil {
		return "", ErrUntrained
	}
	return Classify(m.root, instance)
}

/*
Test classifies every instance of the view and returns the fraction
classified as their class value. It also records 1 minus that fraction as
the error rate of the model. Instances the tree cannot follow count as
misclassified. It returns dataset.ErrEmptyDataset for an empty view.
*/
func (m *Model) Test(v dataset.View, class *feature.EnumAttribute) (float64, error) {
	accuracy, err := Accuracy(v, class, m.Classify)
	if err != nil {
		return 0, err
	}
	m.errorRate = 1 - accuracy
	return accuracy, nil
}

// ErrorRate returns the error rate computed by the last call to Test
func (m *Model) ErrorRate() float64 {
	return m.errorRate
}

// Root returns the root of the trained tree or nil
func (m *Model) Root() Node {
	return m.root
}

/*
Accuracy returns the fraction of the instances of the view that the
classifier function labels with their class value. Unseen value errors
count as misclassifications; any other error is returned.
*/
func Accuracy(v dataset.View, class *feature.EnumAttribute, classify func(*dataset.Instance, *feature.EnumAttribute) (feature.Value, error)) (float64, error) {
	n := v.InstanceCount()
	if n == 0 {
		return 0, dataset.ErrEmptyDataset
	}
	var correct float64
	for i := 0; i < n; i++ {
		instance := v.InstanceAt(i)
		ok, err := Correct(instance, class, classify)
		if err != nil {
			return 0, err
		}
		if ok {
			correct++
		}
	}
	return correct / float64(n), nil
}

/*
Correct returns whether the classifier labels the instance with its class
value. An unseen value error is reported as a wrong label, not an error.
*/
func Correct(instance *dataset.Instance, class *feature.EnumAttribute, classify func(*dataset.Instance, *feature.EnumAttribute) (feature.Value, error)) (bool, error) {
	predicted, err := classify(instance, class)
	if err != nil {
		var uve *UnseenValueError
		if errors.As(err, &uve) {
			return false, nil
		}
		return false, err
	}
	actual, ok := instance.ValueFor(class)
	return ok && actual == predicted, nil
}

func (m *Model) String() string {
	if m.root == nil {
		return "<untrained>\n"
	}
	return Format(m.root)
}

/*
Format renders a tree as text, one node per line, children indented under
their parent and prefixed with the value that leads to them.
*/
func Format(root Node) string {
	var b strings.Builder
	formatNode(&b, root, 0)
	return b.String()
}

func formatNode(b *strings.Builder, n Node, level int) {
	switch node := n.(type) {
	case *Leaf:
		fmt.Fprintf(b, "%v\n", node)
	case *InnerNode:
		fmt.Fprintf(b, "%v\n", node)
		for _, value := range node.Attribute.Values() {
			child, ok := node.Child(value)
			if !ok {
				continue
			}
			b.WriteString(strings.Repeat("|  ", level))
			fmt.Fprintf(b, "|__%s: ", value)
			formatNode(b, child, level+1)
		}
	}
}
