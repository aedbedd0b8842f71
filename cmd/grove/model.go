package main

import (
	"fmt"

	"github.com/pbanos/grove"
	"github.com/pbanos/grove/boost"
	"github.com/pbanos/grove/dataset"
	"github.com/pbanos/grove/feature"
	"github.com/pbanos/grove/sampling"
	"github.com/pbanos/grove/tree"
	"github.com/spf13/cobra"
)

/*
modelCmdConfig holds the flags of the commands that train a tree or an
ensemble of them.
*/
type modelCmdConfig struct {
	inputCmdConfig
	maxDepth   int
	iterations int
	boosting   bool
	seed       int64
	seeded     bool
}

type modelKind int

const (
	treeModel modelKind = iota
	boostModel
	anyModel
)

func (mcc *modelCmdConfig) addFlags(cmd *cobra.Command, kind modelKind) {
	mcc.inputCmdConfig.addFlags(cmd)
	cmd.Flags().IntVarP(&(mcc.maxDepth), "max-depth", "d", 0, "maximum depth of the trees, the root being at depth 1 (defaults to 0: no limit)")
	if kind == treeModel {
		return
	}
	cmd.Flags().Int64Var(&(mcc.seed), "seed", 0, "seed for the random number generator, to make runs reproducible (defaults to a time-based seed)")
	switch kind {
	case boostModel:
		mcc.boosting = true
	case anyModel:
		cmd.Flags().BoolVarP(&(mcc.boosting), "boost", "b", false, "use a boosted ensemble of trees instead of a single tree")
	}
	cmd.Flags().IntVarP(&(mcc.iterations), "iterations", "n", 10, "maximum number of boosting rounds, hence of trees in the ensemble")
}

// Validate checks the consistency of the model flags
func (mcc *modelCmdConfig) Validate(cmd *cobra.Command) error {
	err := mcc.inputCmdConfig.Validate()
	if err != nil {
		return err
	}
	if mcc.maxDepth < 0 {
		return fmt.Errorf("max-depth flag cannot be negative")
	}
	if mcc.boosting && mcc.iterations < 1 {
		return fmt.Errorf("iterations flag must be at least 1")
	}
	mcc.seeded = cmd.Flags().Changed("seed")
	return nil
}

// source returns the random source for the command
func (mcc *modelCmdConfig) source() sampling.Source {
	if mcc.seeded {
		return sampling.NewSource(mcc.seed)
	}
	return sampling.Default()
}

/*
depth returns the maximum depth for trees grown from the view to predict
the class, resolving the 0 value to a depth that does not limit them.
*/
func (mcc *modelCmdConfig) depth(v dataset.View, class *feature.EnumAttribute) int {
	if mcc.maxDepth > 0 {
		return mcc.maxDepth
	}
	return len(dataset.AttributesExcept(v, class)) + 1
}

// model returns a new untrained tree or boosted ensemble model
func (mcc *modelCmdConfig) model(v dataset.View, class *feature.EnumAttribute, src sampling.Source) grove.Model {
	if !mcc.boosting {
		return tree.New(mcc.depth(v, class))
	}
	m := boost.New(mcc.iterations, mcc.depth(v, class))
	m.Rand = src
	m.Logger = mcc.Logger()
	return m
}
