/*
Package boost builds weighted-vote ensembles of decision trees by
repeatedly training trees on weighted bootstrap samples of a dataset and
reweighting its instances after each round.

Generate mutates the weights of the instances of the view it is given.
Those instances are shared with every other view over the same dataset.
*/
package boost

import (
	"fmt"
	"math"
	"strings"

	"github.com/pbanos/grove/dataset"
	"github.com/pbanos/grove/feature"
	"github.com/pbanos/grove/sampling"
	"github.com/pbanos/grove/tree"
	"go.uber.org/zap"
)

// Termination is the reason an ensemble stopped growing
type Termination int

const (
	// Exhausted means every requested round was run
	Exhausted Termination = iota
	// WeakLearner means a tree with an error of 0.5 or more was trained
	// and discarded
	WeakLearner
	// PerfectFit means a tree with no error was trained and kept
	PerfectFit
)

func (t Termination) String() string {
	switch t {
	case Exhausted:
		return "exhausted"
	case WeakLearner:
		return "weak learner"
	case PerfectFit:
		return "perfect fit"
	}
	return fmt.Sprintf("Termination(%d)", int(t))
}

/*
Member is a tree of an ensemble along with its error rate on the sample it
was trained on.
*/
type Member struct {
	Tree      *tree.Model
	ErrorRate float64
}

// Vote returns the weight of the member's prediction: -ln(e/(1-e))
func (m Member) Vote() float64 {
	e := m.ErrorRate
	return -math.Log(e / (1 - e))
}

// Ensemble is a list of trees combined by a weighted vote
type Ensemble struct {
	Members     []Member
	Termination Termination
}

// Config holds the parameters of the boosting procedure
type Config struct {
	// Iterations is the maximum number of rounds, hence of trees
	Iterations int
	// MaxDepth is the maximum depth of every tree
	MaxDepth int
	// Rand is the source for bootstrap draws, nil for the default one
	Rand sampling.Source
	// Logger receives a debug entry per round, nil to discard them
	Logger *zap.Logger
}

/*
Generate builds an ensemble to predict the class attribute from the view.

Every instance of the view is first given the same weight. Then, for up to
cfg.Iterations rounds, a tree is trained on a weighted bootstrap sample of
the view and tested on that same sample. A tree whose error e is 0.5 or
more is discarded and ends the ensemble. Otherwise it is kept; if e is 0
the ensemble ends, else the weight of every instance of the view the tree
classifies correctly is multiplied by e/(1-e) and the weights are
normalized again.

Early termination is reported in the ensemble's Termination, not as an
error. Errors are returned for an empty view or an invalid maximum depth.
*/
func Generate(v dataset.View, class *feature.EnumAttribute, cfg Config) (*Ensemble, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	err := dataset.AssignEqualWeights(v)
	if err != nil {
		return nil, err
	}
	ensemble := &Ensemble{Termination: Exhausted}
	for i := 0; i < cfg.Iterations; i++ {
		sampled, err := dataset.WeightedBootstrap(v, cfg.Rand)
		if err != nil {
			return nil, err
		}
		// the tree is deliberately tested on the sample it was trained on
		model := tree.New(cfg.MaxDepth)
		err = model.Train(sampled, class)
		if err != nil {
			return nil, err
		}
		_, err = model.Test(sampled, class)
		if err != nil {
			return nil, err
		}
		e := model.ErrorRate()
		logger.Debug("boosting round",
			zap.Int("round", i+1),
			zap.Float64("error", e),
			zap.Int("depth", tree.Depth(model.Root())),
			zap.Int("leaves", tree.LeafCount(model.Root())),
		)
		if e >= 0.5 {
			ensemble.Termination = WeakLearner
			break
		}
		ensemble.Members = append(ensemble.Members, Member{Tree: model, ErrorRate: e})
		if e == 0 {
			ensemble.Termination = PerfectFit
			break
		}
		err = reweight(v, class, model, e)
		if err != nil {
			return nil, err
		}
	}
	logger.Debug("ensemble generated",
		zap.Int("members", len(ensemble.Members)),
		zap.Stringer("termination", ensemble.Termination),
	)
	return ensemble, nil
}

func reweight(v dataset.View, class *feature.EnumAttribute, model *tree.Model, e float64) error {
	factor := e / (1 - e)
	for i := 0; i < v.InstanceCount(); i++ {
		instance := v.InstanceAt(i)
		ok, err := tree.Correct(instance, class, model.Classify)
		if err != nil {
			return err
		}
		if ok {
			instance.MultiplyWeight(factor)
		}
	}
	return dataset.NormalizeWeights(v)
}

/*
Classify returns the class value with the greatest accumulated vote of the
ensemble members for the instance. Ties resolve to the value declared first
in the class attribute. An empty ensemble predicts the first declared class
value.

Members that cannot follow the instance's values abstain. If all of them
do, the first *tree.UnseenValueError is returned.
*/
func Classify(ensemble *Ensemble, instance *dataset.Instance, class *feature.EnumAttribute) (feature.Value, error) {
	if ensemble == nil || len(ensemble.Members) == 0 {
		if class.Len() == 0 {
			return "", fmt.Errorf("class attribute %s has no values", class.Name())
		}
		return class.ValueAt(0), nil
	}
	votes := feature.NewWeightedValues(class)
	var firstErr error
	voted := false
	for _, member := range ensemble.Members {
		value, err := member.Tree.Classify(instance, class)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		votes.Add(value, member.Vote())
		voted = true
	}
	if !voted {
		return "", firstErr
	}
	winner, _ := votes.Max()
	return winner.Value, nil
}

func (e *Ensemble) String() string {
	var b strings.Builder
	for i, m := range e.Members {
		fmt.Fprintf(&b, "[tree %d, error %f]\n%v\n", i+1, m.ErrorRate, m.Tree)
	}
	fmt.Fprintf(&b, "%d trees, terminated: %v\n", len(e.Members), e.Termination)
	return b.String()
}
