/*
Package yaml provides methods to parse feature.EnumAttribute declarations,
also known as metadata, from YAML documents.
*/
package yaml

import (
	"fmt"
	"io/ioutil"

	"github.com/pbanos/grove/feature"
	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"
)

/*
ReadAttributes takes a slice of bytes with attribute declarations in YML
and returns the relation name and the attributes parsed from it or an error.
The YML is expected to be an object containing a features property, and
optionally a relation property with the name of the relation. The value for
features should be an object with a property for each attribute with its name
and a list of valid values. Attributes are returned in the order they are
declared in the document.
*/
func ReadAttributes(md []byte) (string, []*feature.EnumAttribute, error) {
	order := struct {
		Features yaml.MapSlice `yaml:"features"`
	}{}
	err := yaml.Unmarshal(md, &order)
	if err != nil {
		return "", nil, errors.Wrap(err, "parsing yml features")
	}
	if len(order.Features) == 0 {
		return "", nil, errors.New("metadata file has no feature information")
	}
	for _, item := range order.Features {
		switch vs := item.Value.(type) {
		case []interface{}:
		case string:
			return "", nil, errors.Errorf("feature %v: only nominal features are supported, got %q", item.Key, vs)
		default:
			return "", nil, errors.Errorf("feature %v: invalid feature declaration of type %T", item.Key, item.Value)
		}
	}
	// values are decoded again as strings so that scalars such as yes or
	// true keep their literal text
	metadata := struct {
		Relation string              `yaml:"relation"`
		Features map[string][]string `yaml:"features"`
	}{}
	err = yaml.Unmarshal(md, &metadata)
	if err != nil {
		return "", nil, errors.Wrap(err, "parsing yml features")
	}
	attributes := make([]*feature.EnumAttribute, 0, len(order.Features))
	for _, item := range order.Features {
		name := fmt.Sprintf("%v", item.Key)
		values, ok := metadata.Features[name]
		if !ok {
			return "", nil, errors.Errorf("feature %v: name is not a plain string, quote it", item.Key)
		}
		attributes = append(attributes, feature.NewEnumAttributeFromStrings(name, values...))
	}
	return metadata.Relation, attributes, nil
}

/*
ReadAttributesFromFile takes a filepath string, reads its contents and uses
ReadAttributes to parse it. If the file indicated by the filepath cannot be
opened for reading an error will be returned.
*/
func ReadAttributesFromFile(filepath string) (string, []*feature.EnumAttribute, error) {
	md, err := ioutil.ReadFile(filepath)
	if err != nil {
		return "", nil, errors.Wrapf(err, "reading features yml file %s", filepath)
	}
	relation, attributes, err := ReadAttributes(md)
	if err != nil {
		err = errors.Wrapf(err, "parsing features yml file %s", filepath)
	}
	return relation, attributes, err
}
