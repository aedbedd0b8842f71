package dataset

import (
	"fmt"

	"github.com/pbanos/grove/feature"
)

/*
Dataset owns an ordered list of attributes and an append-only arena of
instances. It is itself the root View every other view derives from.
*/
type Dataset struct {
	Name       string
	attributes []*feature.EnumAttribute
	instances  []*Instance
}

/*
New takes a relation name and the attributes of the dataset and returns an
empty dataset for them.
*/
func New(name string, attributes ...*feature.EnumAttribute) *Dataset {
	return &Dataset{Name: name, attributes: append([]*feature.EnumAttribute{}, attributes...)}
}

// AddAttribute appends an attribute (column) to the dataset
func (d *Dataset) AddAttribute(a *feature.EnumAttribute) {
	d.attributes = append(d.attributes, a)
}

// AddInstances appends instances (rows) to the dataset
func (d *Dataset) AddInstances(instances ...*Instance) {
	d.instances = append(d.instances, instances...)
}

/*
Append takes one value per attribute of the dataset, in attribute order,
builds an instance with them and appends it to the dataset. It returns the
new instance or an error if the number of values does not match the number
of attributes or a value is not allowed for its attribute, in which case
the dataset is left unchanged.
*/
func (d *Dataset) Append(values ...feature.Value) (*Instance, error) {
	if len(values) != len(d.attributes) {
		return nil, fmt.Errorf("expected %d values, got %d", len(d.attributes), len(values))
	}
	instance := NewInstance()
	for i, v := range values {
		err := instance.Set(d.attributes[i], v)
		if err != nil {
			return nil, err
		}
	}
	d.instances = append(d.instances, instance)
	return instance, nil
}

// AttributeCount returns the number of attributes of the dataset
func (d *Dataset) AttributeCount() int {
	return len(d.attributes)
}

// InstanceCount returns the number of instances of the dataset
func (d *Dataset) InstanceCount() int {
	return len(d.instances)
}

// AttributeAt returns the i-th attribute of the dataset
func (d *Dataset) AttributeAt(i int) *feature.EnumAttribute {
	checkIndex(i, len(d.attributes))
	return d.attributes[i]
}

// InstanceAt returns the i-th instance of the dataset
func (d *Dataset) InstanceAt(i int) *Instance {
	checkIndex(i, len(d.instances))
	return d.instances[i]
}

func (d *Dataset) String() string {
	return String(d)
}
