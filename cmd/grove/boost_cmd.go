package main

import (
	"context"
	"fmt"

	"github.com/pbanos/grove/boost"
	"github.com/spf13/cobra"
)

func boostCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &modelCmdConfig{inputCmdConfig: inputCmdConfig{rootCmdConfig: rootConfig}}
	cmd := &cobra.Command{
		Use:   "boost",
		Short: "Grow a boosted ensemble of decision trees from a set of data",
		Long: `Grow a boosted ensemble of decision trees from a set of data to predict a certain attribute.
Each tree is grown from a weighted bootstrap sample of the data, after which instances it classifies correctly lose weight.
The trees are printed along with their error, the reason the ensemble stopped growing and its accuracy on the data.`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate(cmd)
			if err != nil {
				config.fail(1, err)
			}
			d, class, err := config.load(context.Background())
			if err != nil {
				config.fail(2, err)
			}
			m := config.model(d, class, config.source()).(*boost.Model)
			config.Logf("Growing ensemble of up to %d trees with maximum depth %d...", m.Iterations, m.MaxDepth)
			err = m.Train(d, class)
			if err != nil {
				config.fail(3, fmt.Errorf("growing the ensemble: %v", err))
			}
			config.Logf("Done")
			accuracy, err := m.Test(d, class)
			if err != nil {
				config.fail(4, fmt.Errorf("testing the ensemble: %v", err))
			}
			fmt.Print(m)
			fmt.Printf("training accuracy: %f\n", accuracy)
		},
	}
	config.addFlags(cmd, boostModel)
	return cmd
}
