/*
Package dataset provides datasets of nominal-valued instances and the
composable views used to select subsets of them without copying.

Views never own instances: they only hold indices into the view they
decorate, so every view over the same dataset aliases the same instances and
weight changes made through one of them are visible through all of them.
Datasets and views are not safe for concurrent use.
*/
package dataset

import (
	"fmt"
	"strings"

	"github.com/pbanos/grove/feature"
)

/*
View represents a read-only projection over the attributes and instances
of a dataset.

Its AttributeCount and InstanceCount methods return the number of
attributes and instances visible through the view.

Its AttributeAt and InstanceAt methods return the attribute or instance at
the given position, panicking with an *IndexError when the position is out
of range.

Every other operation on views is defined in terms of these four methods.
*/
type View interface {
	AttributeCount() int
	InstanceCount() int
	AttributeAt(int) *feature.EnumAttribute
	InstanceAt(int) *Instance
}

// DatasetError represents an error on a dataset or view operation
type DatasetError string

/*
ErrEmptyDataset is the error returned by weight operations and training
when the view has no instances.
*/
const ErrEmptyDataset = DatasetError("dataset has no instances")

/*
ErrZeroWeights is the error returned when normalizing weights that add up
to zero.
*/
const ErrZeroWeights = DatasetError("instance weights add up to zero")

func (de DatasetError) Error() string {
	return string(de)
}

/*
IndexError is the value views panic with when accessed out of range.
*/
type IndexError struct {
	Index int
	Count int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range [0, %d)", e.Index, e.Count)
}

func checkIndex(i, count int) {
	if i < 0 || i >= count {
		panic(&IndexError{Index: i, Count: count})
	}
}

// IsEmpty returns whether the view has no instances
func IsEmpty(v View) bool {
	return v.InstanceCount() == 0
}

// Attributes returns the attributes of the view in order
func Attributes(v View) []*feature.EnumAttribute {
	result := make([]*feature.EnumAttribute, v.AttributeCount())
	for i := range result {
		result[i] = v.AttributeAt(i)
	}
	return result
}

/*
AttributesExcept returns the attributes of the view, in order, leaving out
the given ones.
*/
func AttributesExcept(v View, exclude ...*feature.EnumAttribute) []*feature.EnumAttribute {
	result := make([]*feature.EnumAttribute, 0, v.AttributeCount())
	for _, a := range Attributes(v) {
		excluded := false
		for _, e := range exclude {
			if a == e {
				excluded = true
				break
			}
		}
		if !excluded {
			result = append(result, a)
		}
	}
	return result
}

/*
LastAttribute returns the last attribute of the view, conventionally the
class attribute, or nil if the view has no attributes.
*/
func LastAttribute(v View) *feature.EnumAttribute {
	if v.AttributeCount() == 0 {
		return nil
	}
	return v.AttributeAt(v.AttributeCount() - 1)
}

/*
AttributeNamed returns the attribute of the view with the given name or
nil if there is none.
*/
func AttributeNamed(v View, name string) *feature.EnumAttribute {
	for _, a := range Attributes(v) {
		if a.Name() == name {
			return a
		}
	}
	return nil
}

// Instances returns the instances of the view in order
func Instances(v View) []*Instance {
	result := make([]*Instance, v.InstanceCount())
	for i := range result {
		result[i] = v.InstanceAt(i)
	}
	return result
}

/*
String returns the attribute names of the view on a line followed by a line
per instance with its values.
*/
func String(v View) string {
	attributes := Attributes(v)
	names := make([]string, len(attributes))
	for i, a := range attributes {
		names[i] = a.Name()
	}
	lines := make([]string, 0, v.InstanceCount()+1)
	lines = append(lines, strings.Join(names, ","))
	for _, instance := range Instances(v) {
		lines = append(lines, instance.Format(attributes))
	}
	return strings.Join(lines, "\n")
}
