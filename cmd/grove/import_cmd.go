package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

type importCmdConfig struct {
	inputCmdConfig
	dbOutput    string
	outputTable string
}

func importCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &importCmdConfig{inputCmdConfig: inputCmdConfig{rootCmdConfig: rootConfig}}
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import a set into a DB table",
		Long:  `Import a set of data into a table of an SQLite3 or PostgreSQL database, creating the table if needed`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				config.fail(1, err)
			}
			ctx := context.Background()
			d, err := config.loadDataset(ctx)
			if err != nil {
				config.fail(2, err)
			}
			table := config.outputTable
			if table == "" {
				table = d.Name
			}
			store, err := openStore(config.dbOutput)
			if err != nil {
				config.fail(3, fmt.Errorf("opening output DB: %v", err))
			}
			defer store.Close()
			config.Logf("Writing %d instances to table %s...", d.InstanceCount(), table)
			n, err := store.Write(ctx, table, d)
			if err != nil {
				store.Close()
				config.fail(4, err)
			}
			config.Logf("Done, %d instances written", n)
		},
	}
	config.addFlags(cmd)
	cmd.Flags().StringVarP(&(config.dbOutput), "output", "o", "", "path to an SQLite3 (.db) file or a PostgreSQL DB connection URL to import the set into (required)")
	cmd.Flags().StringVar(&(config.outputTable), "output-table", "", "name of the table to import the set into (defaults to the relation name of the set)")
	return cmd
}

func (icc *importCmdConfig) Validate() error {
	err := icc.inputCmdConfig.Validate()
	if err != nil {
		return err
	}
	if !isDBLocation(icc.dbOutput) {
		return fmt.Errorf("output flag must be an SQLite3 (.db) file or a PostgreSQL DB connection URL")
	}
	return nil
}
