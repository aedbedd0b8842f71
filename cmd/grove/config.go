package main

import (
	"fmt"
	"io/ioutil"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	yaml "gopkg.in/yaml.v2"
)

/*
runConfig holds flag values read from a YML document. Top level scalar
properties apply to any command with a flag of that name; properties under
a key with the name of a command apply only to it and take precedence:

	seed: 42
	class: play
	cv:
	  folds: 5
*/
type runConfig map[string]interface{}

func parseRunConfig(data []byte) (runConfig, error) {
	rc := runConfig{}
	err := yaml.Unmarshal(data, &rc)
	if err != nil {
		return nil, errors.Wrap(err, "parsing yml run config")
	}
	return rc, nil
}

/*
valuesFor returns the flag values the run config holds for the command
with the given name.
*/
func (rc runConfig) valuesFor(command string) map[string]string {
	values := make(map[string]string)
	for k, v := range rc {
		name := fmt.Sprintf("%v", k)
		if _, ok := v.(map[interface{}]interface{}); ok {
			continue
		}
		values[name] = scalar(v)
	}
	if section, ok := rc[command].(map[interface{}]interface{}); ok {
		for k, v := range section {
			values[fmt.Sprintf("%v", k)] = scalar(v)
		}
	}
	return values
}

func scalar(v interface{}) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%v", v)
}

/*
apply sets every flag of the flag set that was not set on the command line
to the value the run config holds for it, if any.
*/
func (rc runConfig) apply(command string, flags *pflag.FlagSet) error {
	values := rc.valuesFor(command)
	var err error
	flags.VisitAll(func(f *pflag.Flag) {
		if err != nil || f.Changed {
			return
		}
		v, ok := values[f.Name]
		if !ok {
			return
		}
		if serr := flags.Set(f.Name, v); serr != nil {
			err = errors.Wrapf(serr, "setting flag %s from run config", f.Name)
		}
	})
	return err
}

func applyRunConfigFile(cmd *cobra.Command, filepath string) error {
	data, err := ioutil.ReadFile(filepath)
	if err != nil {
		return errors.Wrapf(err, "reading run config file %s", filepath)
	}
	rc, err := parseRunConfig(data)
	if err != nil {
		return errors.Wrapf(err, "parsing run config file %s", filepath)
	}
	return rc.apply(cmd.Name(), cmd.Flags())
}
