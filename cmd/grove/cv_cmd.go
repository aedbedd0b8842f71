package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pbanos/grove"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	pb "gopkg.in/cheggaaa/pb.v1"
)

type cvCmdConfig struct {
	modelCmdConfig
	folds      int
	stratified bool
	progress   bool
}

func cvCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &cvCmdConfig{modelCmdConfig: modelCmdConfig{inputCmdConfig: inputCmdConfig{rootCmdConfig: rootConfig}}}
	cmd := &cobra.Command{
		Use:   "cv",
		Short: "Cross validate a tree or ensemble on a set of data",
		Long:  `Estimate the accuracy of a tree or a boosted ensemble grown from a set of data with a k-fold cross validation, stratified by default, and print its mean and standard deviation`,
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
			var folds []grove.Fold
			if config.stratified {
				folds, err = grove.StratifiedFolds(d, class, config.folds, src)
			} else {
				folds, err = grove.Folds(d, config.folds)
			}
			if err != nil {
				config.fail(3, err)
			}
			m := config.model(d, class, src)
			var bar *pb.ProgressBar
			if config.progress {
				bar = pb.New(len(folds))
				bar.Output = os.Stderr
				bar.Start()
			}
			result, err := grove.Evaluate(folds, class, m, func(fold int, accuracy float64) {
				config.Logger().Debug("fold tested", zap.Int("fold", fold+1), zap.Float64("accuracy", accuracy))
				if bar != nil {
					bar.Increment()
				}
			})
			if bar != nil {
				bar.Finish()
			}
			if err != nil {
				config.fail(4, err)
			}
			fmt.Printf("accuracy: %v\n", result)
		},
	}
	config.addFlags(cmd, anyModel)
	cmd.Flags().IntVarP(&(config.folds), "folds", "k", 10, "number of folds")
	cmd.Flags().BoolVar(&(config.stratified), "stratified", true, "keep the class distribution of the set on every fold")
	cmd.Flags().BoolVar(&(config.progress), "progress", true, "show a progress bar on STDERR")
	return cmd
}

func (ccc *cvCmdConfig) Validate(cmd *cobra.Command) error {
	err := ccc.modelCmdConfig.Validate(cmd)
	if err != nil {
		return err
	}
	if ccc.folds < 2 {
		return fmt.Errorf("folds flag must be at least 2")
	}
	return nil
}
