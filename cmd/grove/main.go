package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type rootCmdConfig struct {
	verbose    bool
	logFile    string
	configFile string
	runID      string
	log        *zap.Logger
}

func main() {
	if err := cliParser().Execute(); err != nil {
		os.Exit(1)
	}
}

func cliParser() *cobra.Command {
	config := &rootCmdConfig{}
	rootCmd := &cobra.Command{
		Use:   "grove",
		Short: "grove is a tool to grow decision trees and boosted ensembles",
		Long:  `A tool to grow decision trees and boosted ensembles of them from nominal data, evaluate them and prepare the data sets they are grown from`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return config.setUp(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			config.tearDown()
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&(config.verbose), "verbose", "v", false, "log progress information to STDERR")
	rootCmd.PersistentFlags().StringVar(&(config.logFile), "log-file", "", "path to a file to which a debug log is written in JSON, rotated as it grows")
	rootCmd.PersistentFlags().StringVar(&(config.configFile), "config", "", "path to a YML file with default values for the flags of the command")
	rootCmd.AddCommand(
		versionCmd(),
		treeCmd(config),
		boostCmd(config),
		cvCmd(config),
		evalCmd(config),
		splitCmd(config),
		importCmd(config),
	)
	return rootCmd
}

func (rcc *rootCmdConfig) setUp(cmd *cobra.Command) error {
	if rcc.configFile != "" {
		err := applyRunConfigFile(cmd, rcc.configFile)
		if err != nil {
			return err
		}
	}
	rcc.runID = uuid.New().String()
	log, err := newLogger(rcc.verbose, rcc.logFile)
	if err != nil {
		return fmt.Errorf("setting up logging: %v", err)
	}
	rcc.log = log.With(zap.String("run", rcc.runID), zap.String("command", cmd.Name()))
	return nil
}

func (rcc *rootCmdConfig) tearDown() {
	if rcc.log != nil {
		rcc.log.Sync()
	}
}

// Logger returns the logger for the running command
func (rcc *rootCmdConfig) Logger() *zap.Logger {
	if rcc.log == nil {
		return zap.NewNop()
	}
	return rcc.log
}

// Logf logs an informative message
func (rcc *rootCmdConfig) Logf(format string, a ...interface{}) {
	rcc.Logger().Sugar().Infof(format, a...)
}

/*
fail prints the error on STDERR, flushes the log and exits with the given
code.
*/
func (rcc *rootCmdConfig) fail(code int, err error) {
	fmt.Fprintln(os.Stderr, err)
	rcc.Logger().Error("command failed", zap.Error(err), zap.Int("code", code))
	rcc.tearDown()
	os.Exit(code)
}
