package main

import (
	"context"
	"fmt"

	"github.com/pbanos/grove/tree"
	"github.com/spf13/cobra"
)

func treeCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &modelCmdConfig{inputCmdConfig: inputCmdConfig{rootCmdConfig: rootConfig}}
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Grow a decision tree from a set of data",
		Long:  `Grow a decision tree from a set of data to predict a certain attribute and print it along with its accuracy on that same data`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate(cmd)
			if err != nil {
				config.fail(1, err)
			}
			d, class, err := config.load(context.Background())
			if err != nil {
				config.fail(2, err)
			}
			m := tree.New(config.depth(d, class))
			config.Logf("Growing tree with maximum depth %d...", m.MaxDepth)
			err = m.Train(d, class)
			if err != nil {
				config.fail(3, fmt.Errorf("growing the tree: %v", err))
			}
			config.Logf("Done")
			accuracy, err := m.Test(d, class)
			if err != nil {
				config.fail(4, fmt.Errorf("testing the tree: %v", err))
			}
			fmt.Print(m)
			fmt.Printf("depth: %d, leaves: %d, training accuracy: %f\n", tree.Depth(m.Root()), tree.LeafCount(m.Root()), accuracy)
		},
	}
	config.addFlags(cmd, treeModel)
	return cmd
}
