package dataset

import (
	"fmt"

	"github.com/pbanos/grove/feature"
	"github.com/pbanos/grove/sampling"
)

/*
IndexedView is a view on the instances of a base view selected by an
ordered list of indices into it. Indices may repeat.
*/
type IndexedView struct {
	base    View
	indices []int
}

/*
NewIndexedView takes a base view and a slice of indices into it and returns
the view whose i-th instance is the base's indices[i]-th instance. The
slice is owned by the view afterwards.
*/
func NewIndexedView(base View, indices []int) *IndexedView {
	return &IndexedView{base: base, indices: indices}
}

// AttributeCount returns the number of attributes of the base view
func (iv *IndexedView) AttributeCount() int {
	return iv.base.AttributeCount()
}

// InstanceCount returns the number of selected indices
func (iv *IndexedView) InstanceCount() int {
	return len(iv.indices)
}

// AttributeAt returns the i-th attribute of the base view
func (iv *IndexedView) AttributeAt(i int) *feature.EnumAttribute {
	return iv.base.AttributeAt(i)
}

// InstanceAt returns the base instance selected by the i-th index
func (iv *IndexedView) InstanceAt(i int) *Instance {
	checkIndex(i, len(iv.indices))
	return iv.base.InstanceAt(iv.indices[i])
}

/*
NewPredicateView takes a base view and a predicate on instances and
returns an indexed view on the base instances satisfying the predicate, in
base order. The predicate is evaluated once per instance at construction.
*/
func NewPredicateView(base View, predicate func(*Instance) bool) *IndexedView {
	indices := []int{}
	for i := 0; i < base.InstanceCount(); i++ {
		if predicate(base.InstanceAt(i)) {
			indices = append(indices, i)
		}
	}
	return NewIndexedView(base, indices)
}

/*
NewCriterionView takes a base view and a criterion and returns a view on
the base instances that satisfy it.
*/
func NewCriterionView(base View, c feature.Criterion) *IndexedView {
	return NewPredicateView(base, func(instance *Instance) bool {
		return c.SatisfiedBy(instance)
	})
}

/*
Select returns a view on the instances of v whose value for the attribute
is the given one.
*/
func Select(v View, a *feature.EnumAttribute, value feature.Value) *IndexedView {
	return NewCriterionView(v, feature.NewValueCriterion(a, value))
}

/*
NewRangeView takes a base view and returns a view on its instances with
positions in [from, to).
*/
func NewRangeView(base View, from, to int) *IndexedView {
	return NewIndexedView(base, sampling.Range(from, to))
}

/*
NewShuffleView takes a base view and a source of randomness and returns a
view on all of its instances in a uniformly random order.
*/
func NewShuffleView(base View, src sampling.Source) *IndexedView {
	return NewIndexedView(base, sampling.Shuffle(base.InstanceCount(), src))
}

/*
ListView is a view concatenating the instances of several views that share
the same attributes.
*/
type ListView struct {
	views []View
	count int
}

/*
NewListView returns a view concatenating the instances of the given views.
The views must share the same attributes; like Append, it panics if their
attribute counts differ.
*/
func NewListView(views ...View) *ListView {
	lv := &ListView{}
	for _, v := range views {
		lv.Append(v)
	}
	return lv
}

/*
Append adds the instances of a view at the end of the list view. The view
must have the attributes of the views already in the list; Append panics
if its attribute count differs.
*/
func (lv *ListView) Append(v View) {
	if len(lv.views) > 0 && v.AttributeCount() != lv.AttributeCount() {
		panic(fmt.Sprintf("list view with %d attributes cannot append a view with %d", lv.AttributeCount(), v.AttributeCount()))
	}
	lv.views = append(lv.views, v)
	lv.count += v.InstanceCount()
}

/*
AttributeCount returns the number of attributes of the first view, or 0 if
the list is empty.
*/
func (lv *ListView) AttributeCount() int {
	if len(lv.views) == 0 {
		return 0
	}
	return lv.views[0].AttributeCount()
}

// InstanceCount returns the number of instances of all the views together
func (lv *ListView) InstanceCount() int {
	return lv.count
}

// AttributeAt returns the i-th attribute of the first view
func (lv *ListView) AttributeAt(i int) *feature.EnumAttribute {
	checkIndex(i, lv.AttributeCount())
	return lv.views[0].AttributeAt(i)
}

// InstanceAt returns the i-th instance of the concatenation
func (lv *ListView) InstanceAt(i int) *Instance {
	checkIndex(i, lv.count)
	for _, v := range lv.views {
		n := v.InstanceCount()
		if i < n {
			return v.InstanceAt(i)
		}
		i -= n
	}
	panic(&IndexError{Index: i, Count: lv.count})
}
