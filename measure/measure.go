/*
Package measure computes the statistics decision tree induction relies on:
value ratios, entropy and information gain over dataset views, and the
aggregation of accuracies over repeated trials.
*/
package measure

import (
	"fmt"
	"math"

	"github.com/pbanos/grove/dataset"
	"github.com/pbanos/grove/feature"
	"gonum.org/v1/gonum/stat"
)

// ErrNoValues is returned by MeanDev when given no values
const ErrNoValues = measureError("no values to aggregate")

type measureError string

func (me measureError) Error() string {
	return string(me)
}

/*
Result holds the mean and the population standard deviation of a sequence
of trial outcomes.
*/
type Result struct {
	Mean      float64
	Deviation float64
}

func (r Result) String() string {
	return fmt.Sprintf("%f ± %f", r.Mean, r.Deviation)
}

/*
Ratio returns the fraction of instances of the view that take the given
value for the attribute. It is 0 for an empty view.
*/
func Ratio(v dataset.View, a *feature.EnumAttribute, value feature.Value) float64 {
	n := v.InstanceCount()
	if n == 0 {
		return 0
	}
	return float64(dataset.Select(v, a, value).InstanceCount()) / float64(n)
}

/*
MostCommonValue returns the value of the attribute's domain with the
greatest ratio on the view. Ties resolve to the value declared first.
*/
func MostCommonValue(v dataset.View, a *feature.EnumAttribute) feature.Value {
	var mcv feature.Value
	maxRatio := math.Inf(-1)
	for _, value := range a.Values() {
		r := Ratio(v, a, value)
		if r > maxRatio {
			maxRatio = r
			mcv = value
		}
	}
	return mcv
}

/*
Entropy returns the Shannon entropy, in bits, of the distribution of the
class attribute values on the view. Values not present contribute nothing.
*/
func Entropy(v dataset.View, class *feature.EnumAttribute) float64 {
	p := make([]float64, 0, class.Len())
	for _, value := range class.Values() {
		p = append(p, Ratio(v, class, value))
	}
	// stat.Entropy skips zero probabilities and works in nats
	return stat.Entropy(p) / math.Ln2
}

/*
InformationGain returns the reduction of the class entropy on the view
obtained by partitioning it by the values of the split attribute.
*/
func InformationGain(v dataset.View, class, split *feature.EnumAttribute) float64 {
	gain := Entropy(v, class)
	n := v.InstanceCount()
	if n == 0 {
		return gain
	}
	for _, value := range split.Values() {
		subset := dataset.Select(v, split, value)
		weight := float64(subset.InstanceCount()) / float64(n)
		if weight == 0 {
			continue
		}
		gain -= weight * Entropy(subset, class)
	}
	return gain
}

/*
MeanDev returns the arithmetic mean and the population standard deviation
(dividing by n) of the given values, or ErrNoValues if there are none.
*/
func MeanDev(values []float64) (Result, error) {
	if len(values) == 0 {
		return Result{}, ErrNoValues
	}
	mean := stat.Mean(values, nil)
	// the second central moment is the population variance
	variance := stat.Moment(2, values, nil)
	return Result{Mean: mean, Deviation: math.Sqrt(variance)}, nil
}
