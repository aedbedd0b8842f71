package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/pbanos/grove/arff"
	"github.com/pbanos/grove/dataset"
	"github.com/pbanos/grove/feature"
	"github.com/pbanos/grove/feature/yaml"
	"github.com/pbanos/grove/set/sqlset"
	"github.com/pbanos/grove/set/sqlset/pgadapter"
	"github.com/pbanos/grove/set/sqlset/sqlite3adapter"
	"github.com/spf13/cobra"
)

/*
inputCmdConfig holds the flags of the commands that read a data set and
the attribute to predict from it.
*/
type inputCmdConfig struct {
	*rootCmdConfig
	setInput      string
	metadataInput string
	table         string
	classAttr     string
}

func (icc *inputCmdConfig) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&(icc.setInput), "input", "i", "", "path to an input ARFF (.arff) or SQLite3 (.db) file, or a PostgreSQL DB connection URL with the data set (defaults to STDIN, interpreted as ARFF)")
	cmd.Flags().StringVarP(&(icc.metadataInput), "metadata", "m", "", "path to a YML file with metadata describing the attributes on the input (required for DB inputs)")
	cmd.Flags().StringVar(&(icc.table), "table", "", "name of the DB table holding the data set (defaults to the relation in the metadata)")
	cmd.Flags().StringVarP(&(icc.classAttr), "class", "c", "", "name of the attribute to predict (defaults to the last attribute)")
}

func isDBLocation(location string) bool {
	return strings.HasPrefix(location, "postgresql://") || strings.HasSuffix(location, ".db")
}

// Validate checks the consistency of the input flags
func (icc *inputCmdConfig) Validate() error {
	if isDBLocation(icc.setInput) && icc.metadataInput == "" {
		return fmt.Errorf("metadata flag is required to read from %s", icc.setInput)
	}
	return nil
}

/*
openStore returns an sqlset.Store for the given location: a PostgreSQL
connection URL or a path to an SQLite3 file.
*/
func openStore(location string) (*sqlset.Store, error) {
	if strings.HasPrefix(location, "postgresql://") {
		return pgadapter.Open(location)
	}
	return sqlite3adapter.Open(location)
}

/*
load reads the data set from the input and returns it along with the
attribute to predict.
*/
func (icc *inputCmdConfig) load(ctx context.Context) (*dataset.Dataset, *feature.EnumAttribute, error) {
	d, err := icc.loadDataset(ctx)
	if err != nil {
		return nil, nil, err
	}
	class, err := classAttribute(d, icc.classAttr)
	if err != nil {
		return nil, nil, err
	}
	icc.Logf("Read %d instances with %d attributes, predicting %s", d.InstanceCount(), d.AttributeCount(), class.Name())
	return d, class, nil
}

func (icc *inputCmdConfig) loadDataset(ctx context.Context) (*dataset.Dataset, error) {
	if !isDBLocation(icc.setInput) {
		if icc.setInput == "" {
			icc.Logf("Reading ARFF input set from STDIN...")
		} else {
			icc.Logf("Reading ARFF input set from %s...", icc.setInput)
		}
		return arff.ReadFile(icc.setInput)
	}
	icc.Logf("Reading attributes from metadata at %s...", icc.metadataInput)
	relation, attributes, err := yaml.ReadAttributesFromFile(icc.metadataInput)
	if err != nil {
		return nil, err
	}
	table := icc.table
	if table == "" {
		table = relation
	}
	store, err := openStore(icc.setInput)
	if err != nil {
		return nil, fmt.Errorf("opening input set: %v", err)
	}
	defer store.Close()
	icc.Logf("Reading input set from table %s...", table)
	return store.Read(ctx, table, attributes)
}

/*
classAttribute returns the attribute of the view with the given name, or
its last attribute if the name is empty.
*/
func classAttribute(v dataset.View, name string) (*feature.EnumAttribute, error) {
	if name == "" {
		class := dataset.LastAttribute(v)
		if class == nil {
			return nil, fmt.Errorf("input set has no attributes")
		}
		return class, nil
	}
	class := dataset.AttributeNamed(v, name)
	if class == nil {
		return nil, fmt.Errorf("class attribute '%s' is not defined", name)
	}
	return class, nil
}
