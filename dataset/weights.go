package dataset

import (
	"github.com/pbanos/grove/sampling"
)

/*
SumWeights returns the sum of the weights of the instances in the view or
ErrEmptyDataset if it has none.
*/
func SumWeights(v View) (float64, error) {
	n := v.InstanceCount()
	if n == 0 {
		return 0, ErrEmptyDataset
	}
	var sum float64
	for i := 0; i < n; i++ {
		sum += v.InstanceAt(i).Weight()
	}
	return sum, nil
}

/*
AssignEqualWeights sets the weight of every instance in the view to 1/n,
n being the number of instances. It returns ErrEmptyDataset if n is 0.
*/
func AssignEqualWeights(v View) error {
	n := v.InstanceCount()
	if n == 0 {
		return ErrEmptyDataset
	}
	w := 1.0 / float64(n)
	for i := 0; i < n; i++ {
		v.InstanceAt(i).SetWeight(w)
	}
	return nil
}

/*
NormalizeWeights scales the weights of the instances in the view so that
they add up to 1. It returns ErrEmptyDataset if the view has no instances
and ErrZeroWeights if the weights add up to 0.

Instances appearing several times in the view are scaled once per
appearance.
*/
func NormalizeWeights(v View) error {
	sum, err := SumWeights(v)
	if err != nil {
		return err
	}
	if sum == 0 {
		return ErrZeroWeights
	}
	factor := 1 / sum
	for i := 0; i < v.InstanceCount(); i++ {
		v.InstanceAt(i).MultiplyWeight(factor)
	}
	return nil
}

/*
RandomSplit splits the view randomly into a training view with
ceil(ratio*n) of its instances and a test view with the rest.
*/
func RandomSplit(v View, ratio float64, src sampling.Source) (training View, test View) {
	split := sampling.RandomSplit(ratio, v.InstanceCount(), src)
	return NewIndexedView(v, split.First), NewIndexedView(v, split.Second)
}

/*
WeightedBootstrap normalizes the weights of the view and returns a view
with as many instances as it has, drawn with replacement with a probability
proportional to their weight.
*/
func WeightedBootstrap(v View, src sampling.Source) (View, error) {
	err := NormalizeWeights(v)
	if err != nil {
		return nil, err
	}
	weights := make([]float64, v.InstanceCount())
	for i := range weights {
		weights[i] = v.InstanceAt(i).Weight()
	}
	return NewIndexedView(v, sampling.WeightedBootstrap(sampling.NewDistribution(weights), src)), nil
}
