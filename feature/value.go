package feature

/*
Value is a nominal value an attribute may take. Values compare and order
by their scalar only, so they can be used as map keys.
*/
type Value string

// Less returns whether v orders before o
func (v Value) Less(o Value) bool {
	return v < o
}

func (v Value) String() string {
	return string(v)
}

/*
WeightedValue is a Value carrying a weight for a single occurrence.
Equal ignores the weight.
*/
type WeightedValue struct {
	Value
	Weight float64
}

// Equal returns whether both weighted values hold the same value
func (wv WeightedValue) Equal(o WeightedValue) bool {
	return wv.Value == o.Value
}

/*
WeightedValues accumulates a weight for each value in the domain of an
enum attribute, keeping the declaration order of the domain.
*/
type WeightedValues struct {
	order   []Value
	weights map[Value]float64
}

/*
NewWeightedValues takes an enum attribute and returns WeightedValues with
a zero weight for every value in its domain.
*/
func NewWeightedValues(ea *EnumAttribute) *WeightedValues {
	wvs := &WeightedValues{order: ea.Values(), weights: make(map[Value]float64, ea.Len())}
	for _, v := range wvs.order {
		wvs.weights[v] = 0
	}
	return wvs
}

// Contains returns whether the value belongs to the tallied domain
func (wvs *WeightedValues) Contains(v Value) bool {
	_, ok := wvs.weights[v]
	return ok
}

/*
Add adds w to the weight of the given value. It returns false, changing
nothing, if the value is not in the domain.
*/
func (wvs *WeightedValues) Add(v Value, w float64) bool {
	if !wvs.Contains(v) {
		return false
	}
	wvs.weights[v] += w
	return true
}

// Weight returns the accumulated weight for the value
func (wvs *WeightedValues) Weight(v Value) float64 {
	return wvs.weights[v]
}

/*
Max returns the value with the greatest accumulated weight along with
that weight. Ties resolve to the value declared first. The boolean result
is false only when the domain is empty.
*/
func (wvs *WeightedValues) Max() (WeightedValue, bool) {
	var result WeightedValue
	found := false
	for _, v := range wvs.order {
		w := wvs.weights[v]
		if !found || w > result.Weight {
			result = WeightedValue{Value: v, Weight: w}
			found = true
		}
	}
	return result, found
}
