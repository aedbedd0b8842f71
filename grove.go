/*
Package grove evaluates decision tree and boosted ensemble classifiers on
views of nominal datasets with k-fold cross validation, stratified or not,
and with repeated random train/test splits.
*/
package grove

import (
	"fmt"

	"github.com/pbanos/grove/dataset"
	"github.com/pbanos/grove/feature"
	"github.com/pbanos/grove/measure"
	"github.com/pbanos/grove/sampling"
)

/*
Model is a classifier that can be trained on a view, classify instances and
be tested on a view. Both *tree.Model and *boost.Model satisfy it.
*/
type Model interface {
	Train(dataset.View, *feature.EnumAttribute) error
	Classify(*dataset.Instance, *feature.EnumAttribute) (feature.Value, error)
	Test(dataset.View, *feature.EnumAttribute) (float64, error)
}

// EvaluationError represents an error in the parameters of an evaluation
type EvaluationError string

/*
ErrInvalidFolds is returned when asking for less than 2 folds or for more
folds than instances in the view.
*/
const ErrInvalidFolds = EvaluationError("number of folds must be between 2 and the number of instances")

/*
ErrInvalidRatio is returned when asking for a random split with a training
ratio outside (0, 1).
*/
const ErrInvalidRatio = EvaluationError("training ratio must be greater than 0 and lower than 1")

/*
ErrInvalidRepeats is returned when asking for a non-positive number of
trials.
*/
const ErrInvalidRepeats = EvaluationError("number of repeats must be at least 1")

func (ee EvaluationError) Error() string {
	return string(ee)
}

// Fold is a pair of training and test views for one trial
type Fold struct {
	Training dataset.View
	Test     dataset.View
}

/*
TrialFunc is called after each trial of an evaluation with the 0-based
trial index and the accuracy obtained.
*/
type TrialFunc func(trial int, accuracy float64)

func foldBounds(n, fold, folds int) (int, int) {
	return fold * n / folds, (fold + 1) * n / folds
}

/*
TestFold returns the view of the instances in the fold-th of folds
contiguous ranges of the view: the positions in
[fold*n/folds, (fold+1)*n/folds). With folds 0 the whole view is returned.
*/
func TestFold(v dataset.View, fold, folds int) dataset.View {
	if folds == 0 {
		return v
	}
	lo, hi := foldBounds(v.InstanceCount(), fold, folds)
	return dataset.NewRangeView(v, lo, hi)
}

/*
TrainFold returns the view of the instances out of the fold-th of folds
contiguous ranges of the view, that is, the complement of TestFold. With
folds 0 the whole view is returned.
*/
func TrainFold(v dataset.View, fold, folds int) dataset.View {
	if folds == 0 {
		return v
	}
	n := v.InstanceCount()
	lo, hi := foldBounds(n, fold, folds)
	return dataset.NewListView(dataset.NewRangeView(v, 0, lo), dataset.NewRangeView(v, hi, n))
}

// Folds returns the folds of a k-fold cross validation on the view
func Folds(v dataset.View, folds int) ([]Fold, error) {
	err := checkFolds(v, folds)
	if err != nil {
		return nil, err
	}
	result := make([]Fold, folds)
	for i := range result {
		result[i] = Fold{Training: TrainFold(v, i, folds), Test: TestFold(v, i, folds)}
	}
	return result, nil
}

/*
Stratify returns a view per value of the class attribute, in declaration
order, with the instances of the view taking that value.
*/
func Stratify(v dataset.View, class *feature.EnumAttribute) []dataset.View {
	strata := make([]dataset.View, 0, class.Len())
	for _, value := range class.Values() {
		strata = append(strata, dataset.Select(v, class, value))
	}
	return strata
}

/*
StratifiedFolds returns the folds of a stratified k-fold cross validation
on the view. Every stratum is shuffled with the given source and the strata
are laid one after the other; instances are then dealt to the folds in
turn, so each fold gets n/folds instances, rounded up or down, and an even
share of every class value.
*/
func StratifiedFolds(v dataset.View, class *feature.EnumAttribute, folds int, src sampling.Source) ([]Fold, error) {
	err := checkFolds(v, folds)
	if err != nil {
		return nil, err
	}
	strata := Stratify(v, class)
	for i, stratum := range strata {
		strata[i] = dataset.NewShuffleView(stratum, src)
	}
	ordered := dataset.NewListView(strata...)
	n := ordered.InstanceCount()
	result := make([]Fold, folds)
	for i := range result {
		training := make([]int, 0, n-n/folds)
		test := make([]int, 0, n/folds+1)
		for j := 0; j < n; j++ {
			if j%folds == i {
				test = append(test, j)
			} else {
				training = append(training, j)
			}
		}
		result[i] = Fold{Training: dataset.NewIndexedView(ordered, training), Test: dataset.NewIndexedView(ordered, test)}
	}
	return result, nil
}

func checkFolds(v dataset.View, folds int) error {
	if folds < 2 || folds > v.InstanceCount() {
		return ErrInvalidFolds
	}
	return nil
}

/*
Evaluate trains and tests the model on every fold and returns the mean and
deviation of the accuracies obtained. The onTrial function, if not nil, is
called after each fold is tested.
*/
func Evaluate(folds []Fold, class *feature.EnumAttribute, m Model, onTrial TrialFunc) (measure.Result, error) {
	accuracies := make([]float64, 0, len(folds))
	for i, f := range folds {
		err := m.Train(f.Training, class)
		if err != nil {
			return measure.Result{}, fmt.Errorf("training on fold %d: %v", i, err)
		}
		accuracy, err := m.Test(f.Test, class)
		if err != nil {
			return measure.Result{}, fmt.Errorf("testing on fold %d: %v", i, err)
		}
		accuracies = append(accuracies, accuracy)
		if onTrial != nil {
			onTrial(i, accuracy)
		}
	}
	return measure.MeanDev(accuracies)
}

/*
CrossValidate runs a k-fold cross validation of the model on the view with
the given number of folds, taken in view order, and returns the mean and
deviation of the accuracy.
*/
func CrossValidate(v dataset.View, class *feature.EnumAttribute, m Model, folds int) (measure.Result, error) {
	fs, err := Folds(v, folds)
	if err != nil {
		return measure.Result{}, err
	}
	return Evaluate(fs, class, m, nil)
}

/*
StratifiedCrossValidate runs a stratified k-fold cross validation of the
model on the view and returns the mean and deviation of the accuracy.
*/
func StratifiedCrossValidate(v dataset.View, class *feature.EnumAttribute, m Model, folds int, src sampling.Source) (measure.Result, error) {
	fs, err := StratifiedFolds(v, class, folds, src)
	if err != nil {
		return measure.Result{}, err
	}
	return Evaluate(fs, class, m, nil)
}

/*
RandomSplits returns repeats folds, each a random split of the view with
ceil(ratio*n) instances for training and the rest for testing.
*/
func RandomSplits(v dataset.View, ratio float64, repeats int, src sampling.Source) ([]Fold, error) {
	if ratio <= 0 || ratio >= 1 {
		return nil, ErrInvalidRatio
	}
	if repeats < 1 {
		return nil, ErrInvalidRepeats
	}
	result := make([]Fold, repeats)
	for i := range result {
		training, test := dataset.RandomSplit(v, ratio, src)
		result[i] = Fold{Training: training, Test: test}
	}
	return result, nil
}

/*
TrainAndTest trains and tests the model on repeats random splits of the
view with the given training ratio and returns the mean and deviation of
the accuracy.
*/
func TrainAndTest(v dataset.View, class *feature.EnumAttribute, m Model, ratio float64, repeats int, src sampling.Source) (measure.Result, error) {
	fs, err := RandomSplits(v, ratio, repeats, src)
	if err != nil {
		return measure.Result{}, err
	}
	return Evaluate(fs, class, m, nil)
}
