package boost

import (
	"github.com/pbanos/grove/dataset"
	"github.com/pbanos/grove/feature"
	"github.com/pbanos/grove/tree"
)

/*
Model is a boosted ensemble classifier. It offers the same Train, Classify
and Test operations as a single tree model.
*/
type Model struct {
	Config
	ensemble  *Ensemble
	errorRate float64
}

/*
New takes the maximum number of boosting rounds and the maximum depth of
the trees and returns an untrained model using the default random source.
*/
func New(iterations, maxDepth int) *Model {
	return &Model{Config: Config{Iterations: iterations, MaxDepth: maxDepth}}
}

/*
Train generates a new ensemble from the view, replacing the previous one
and resetting the error rate. The weights of the view's instances are
modified in the process.
*/
func (m *Model) Train(v dataset.View, class *feature.EnumAttribute) error {
	if m.MaxDepth < 1 {
		return tree.ErrInvalidMaxDepth
	}
	ensemble, err := Generate(v, class, m.Config)
	if err != nil {
		return err
	}
	m.ensemble = ensemble
	m.errorRate = 0
	return nil
}

// Classify returns the class value the ensemble votes for the instance
func (m *Model) Classify(instance *dataset.Instance, class *feature.EnumAttribute) (feature.Value, error) {
	return Classify(m.ensemble, instance, class)
}

/*
Test returns the fraction of the view's instances the ensemble classifies
correctly and records the complement as the error rate of the model.
*/
func (m *Model) Test(v dataset.View, class *feature.EnumAttribute) (float64, error) {
	accuracy, err := tree.Accuracy(v, class, m.Classify)
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

// Ensemble returns the last generated ensemble or nil
func (m *Model) Ensemble() *Ensemble {
	return m.ensemble
}

func (m *Model) String() string {
	if m.ensemble == nil {
		return "<untrained>\n"
	}
	return m.ensemble.String()
}
