package dataset

import (
	"fmt"
	"strings"

	"github.com/pbanos/grove/feature"
)

/*
Instance represents a row of a dataset: the values it takes for a set of
attributes plus a weight. The weight is shared by every view that
references the instance.
*/
type Instance struct {
	values map[string]feature.Value
	weight float64
}

// NewInstance returns an instance with no values and a weight of 1
func NewInstance() *Instance {
	return &Instance{values: make(map[string]feature.Value), weight: 1.0}
}

/*
Set takes an enum attribute and a value and assigns the value to the
attribute on the instance, replacing any previous value. It returns a
*feature.InvalidValueError if the value is not in the attribute's domain.
*/
func (i *Instance) Set(a *feature.EnumAttribute, v feature.Value) error {
	if err := a.Validate(v); err != nil {
		return err
	}
	i.values[a.Name()] = v
	return nil
}

/*
ValueFor returns the value of the instance for the given attribute and
whether the instance defines one.
*/
func (i *Instance) ValueFor(a feature.Attribute) (feature.Value, bool) {
	v, ok := i.values[a.Name()]
	return v, ok
}

// Weight returns the weight of the instance
func (i *Instance) Weight() float64 {
	return i.weight
}

// SetWeight sets the weight of the instance
func (i *Instance) SetWeight(w float64) {
	i.weight = w
}

// MultiplyWeight multiplies the weight by factor and returns the new weight
func (i *Instance) MultiplyWeight(factor float64) float64 {
	i.weight *= factor
	return i.weight
}

/*
Format returns the values of the instance for the given attributes joined
by commas, with "?" for the attributes the instance has no value for.
*/
func (i *Instance) Format(attributes []*feature.EnumAttribute) string {
	vs := make([]string, len(attributes))
	for j, a := range attributes {
		v, ok := i.ValueFor(a)
		if !ok {
			vs[j] = "?"
			continue
		}
		vs[j] = v.String()
	}
	return strings.Join(vs, ",")
}

func (i *Instance) String() string {
	return fmt.Sprintf("[%v]", i.values)
}
