package main

import (
	"context"
	"fmt"

	"github.com/pbanos/grove"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type evalCmdConfig struct {
	modelCmdConfig
	ratio   float64
	repeats int
}

func evalCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &evalCmdConfig{modelCmdConfig: modelCmdConfig{inputCmdConfig: inputCmdConfig{rootCmdConfig: rootConfig}}}
	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Evaluate a tree or ensemble on random splits of a set of data",
		Long:  `Estimate the accuracy of a tree or a boosted ensemble by repeatedly growing it from a random part of a set of data and testing it on the rest, and print its mean and standard deviation`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate(cmd)
			if err != nil {
				config.fail(1, err)
			}
			d, class, err := config.load(context.Background())
			if err != nil {
				config.fail(2, err)
			}
			src := config.source()
			splits, err := grove.RandomSplits(d, config.ratio, config.repeats, src)
			if err != nil {
				config.fail(3, err)
			}
			m := config.model(d, class, src)
			result, err := grove.Evaluate(splits, class, m, func(trial int, accuracy float64) {
				config.Logger().Debug("split tested", zap.Int("trial", trial+1), zap.Float64("accuracy", accuracy))
			})
			if err != nil {
				config.fail(4, err)
			}
			fmt.Printf("accuracy: %v\n", result)
		},
	}
	config.addFlags(cmd, anyModel)
	cmd.Flags().Float64VarP(&(config.ratio), "ratio", "r", 0.66, "fraction of the set used for training on every split")
	cmd.Flags().IntVar(&(config.repeats), "repeats", 10, "number of random splits")
	return cmd
}
