package feature

import "fmt"

/*
Criterion represents a constraint on an attribute

Its SatisfiedBy method takes a sample and returns a boolean indicating if
the sample satisfies the criterion.

Its Attribute method returns the attribute on which the criterion is applied.
*/
type Criterion interface {
	Attribute() Attribute
	SatisfiedBy(sample Sample) bool
}

/*
Sample is an interface for something that can satisfy a Criterion.

Its ValueFor method returns the value corresponding to the attribute
passed as parameter and whether the sample defines one.
*/
type Sample interface {
	ValueFor(Attribute) (Value, bool)
}

/*
ValueCriterion represents a constraint on an enum attribute to take a
specific value.
*/
type ValueCriterion struct {
	attribute *EnumAttribute
	value     Value
}

/*
NewValueCriterion takes an enum attribute and a value and returns a
criterion satisfied by samples having that value for the attribute.
*/
func NewValueCriterion(attribute *EnumAttribute, value Value) *ValueCriterion {
	return &ValueCriterion{attribute, value}
}

// Attribute returns the attribute to which the constraint applies.
func (vc *ValueCriterion) Attribute() Attribute {
	return vc.attribute
}

// Value returns the value the attribute is constrained to
func (vc *ValueCriterion) Value() Value {
	return vc.value
}

/*
SatisfiedBy receives a sample as parameter and returns false if the sample
does not define a value for the attribute, true if the value equals the
value on the criterion, and false otherwise.
*/
func (vc *ValueCriterion) SatisfiedBy(sample Sample) bool {
	v, ok := sample.ValueFor(vc.attribute)
	return ok && v == vc.value
}

func (vc *ValueCriterion) String() string {
	return fmt.Sprintf("%s is %s", vc.attribute.Name(), vc.value)
}
