/*
Package feature defines the attributes (columns) of a dataset, the nominal
values they may take and criteria on them.
*/
package feature

import (
	"fmt"
	"strings"
)

/*
Attribute represents a property that can be observed on an instance.

Its Name method returns the name identifying the attribute.

Its Allows method returns whether the given value is admissible for the
attribute.
*/
type Attribute interface {
	Name() string
	Allows(Value) bool
}

/*
EnumAttribute represents an attribute that can only take a value among a
finite, ordered set. The order in which values are declared is the order in
which they are iterated everywhere.
*/
type EnumAttribute struct {
	name   string
	values []Value
}

/*
InvalidValueError is returned when a value outside an attribute's domain
is assigned to it.
*/
type InvalidValueError struct {
	Attribute string
	Value     Value
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("attribute %s got unknown value %s", e.Attribute, e.Value)
}

/*
NewEnumAttribute takes a name string and the values available for the
attribute and returns an enum attribute with them. Repeated values are only
kept once, at the position of their first occurrence.
*/
func NewEnumAttribute(name string, values ...Value) *EnumAttribute {
	ea := &EnumAttribute{name: name, values: make([]Value, 0, len(values))}
	for _, v := range values {
		if ea.Index(v) < 0 {
			ea.values = append(ea.values, v)
		}
	}
	return ea
}

/*
NewEnumAttributeFromStrings is like NewEnumAttribute but takes the
available values as strings.
*/
func NewEnumAttributeFromStrings(name string, values ...string) *EnumAttribute {
	vs := make([]Value, len(values))
	for i, s := range values {
		vs[i] = Value(s)
	}
	return NewEnumAttribute(name, vs...)
}

// Name returns the name of the attribute
func (ea *EnumAttribute) Name() string {
	return ea.name
}

/*
Allows returns true when the given value is one of the values declared for
the attribute and false otherwise.
*/
func (ea *EnumAttribute) Allows(v Value) bool {
	return ea.Index(v) >= 0
}

/*
Validate returns nil if the value is allowed for the attribute or an
*InvalidValueError otherwise.
*/
func (ea *EnumAttribute) Validate(v Value) error {
	if !ea.Allows(v) {
		return &InvalidValueError{Attribute: ea.name, Value: v}
	}
	return nil
}

// Len returns the number of values in the domain of the attribute
func (ea *EnumAttribute) Len() int {
	return len(ea.values)
}

// ValueAt returns the i-th declared value of the attribute
func (ea *EnumAttribute) ValueAt(i int) Value {
	return ea.values[i]
}

/*
Values returns a copy of the declared values of the attribute, in
declaration order.
*/
func (ea *EnumAttribute) Values() []Value {
	result := make([]Value, len(ea.values))
	copy(result, ea.values)
	return result
}

// Index returns the position of the value in the domain or -1
func (ea *EnumAttribute) Index(v Value) int {
	for i, av := range ea.values {
		if av == v {
			return i
		}
	}
	return -1
}

func (ea *EnumAttribute) String() string {
	return ea.name
}

/*
Declaration returns the attribute as declared in the header of an ARFF
document: "@attribute name {v0, v1, ... vn}"
*/
func (ea *EnumAttribute) Declaration() string {
	vs := make([]string, len(ea.values))
	for i, v := range ea.values {
		vs[i] = v.String()
	}
	return fmt.Sprintf("@attribute %s {%s}", ea.name, strings.Join(vs, ", "))
}
