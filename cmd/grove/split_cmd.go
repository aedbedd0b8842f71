package main

import (
	"context"
	"fmt"

	"github.com/pbanos/grove/arff"
	"github.com/pbanos/grove/dataset"
	"github.com/pbanos/grove/sampling"
	"github.com/spf13/cobra"
)

type splitCmdConfig struct {
	inputCmdConfig
	setOutput   string
	splitOutput string
	ratio       float64
	seed        int64
}

func splitCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &splitCmdConfig{inputCmdConfig: inputCmdConfig{rootCmdConfig: rootConfig}}
	cmd := &cobra.Command{
		Use:   "split",
		Short: "Split a set into two sets",
		Long:  `Split a set randomly into an output set and a split set, written as ARFF`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				config.fail(1, err)
			}
			d, err := config.loadDataset(context.Background())
			if err != nil {
				config.fail(2, err)
			}
			src := sampling.Default()
			if cmd.Flags().Changed("seed") {
				src = sampling.NewSource(config.seed)
			}
			output, split := dataset.RandomSplit(d, config.ratio, src)
			if config.setOutput == "" {
				config.Logf("Writing %d instances of output set to STDOUT...", output.InstanceCount())
			} else {
				config.Logf("Writing %d instances of output set to %s...", output.InstanceCount(), config.setOutput)
			}
			err = arff.WriteFile(config.setOutput, d.Name, output)
			if err != nil {
				config.fail(3, err)
			}
			config.Logf("Writing %d instances of split set to %s...", split.InstanceCount(), config.splitOutput)
			err = arff.WriteFile(config.splitOutput, d.Name, split)
			if err != nil {
				config.fail(4, err)
			}
			config.Logf("Done")
		},
	}
	config.addFlags(cmd)
	cmd.Flags().StringVarP(&(config.setOutput), "output", "o", "", "path to an ARFF file to dump the output set (defaults to STDOUT)")
	cmd.Flags().StringVarP(&(config.splitOutput), "split-output", "s", "", "path to an ARFF file to dump the split set (required)")
	cmd.Flags().Float64VarP(&(config.ratio), "ratio", "r", 0.66, "fraction of the input set that goes to the output set")
	cmd.Flags().Int64Var(&(config.seed), "seed", 0, "seed for the random number generator, to make runs reproducible (defaults to a time-based seed)")
	return cmd
}

func (scc *splitCmdConfig) Validate() error {
	err := scc.inputCmdConfig.Validate()
	if err != nil {
		return err
	}
	if scc.splitOutput == "" {
		return fmt.Errorf("required split-output flag was not set")
	}
	if scc.ratio < 0 || scc.ratio > 1 {
		return fmt.Errorf("ratio flag must be between 0 and 1")
	}
	return nil
}
