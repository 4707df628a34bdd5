package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"payroll-engine/internal/config"
	"payroll-engine/internal/ratetables"
)

func newRootCmd() *cobra.Command {
	var configFile string

	root := &cobra.Command{
		Use:           "payroll-engine",
		Short:         "Italian net salary calculator",
		Long:          "Computes the net pay of an Italian employee from gross annual salary: INPS contributions, IRPEF with credits, regional and municipal surtaxes, and employer cost.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configFile, "config", "", "Path to a config file (default: payroll.yaml in ., ./configs or /etc/payroll-engine)")

	load := func() (*config.Config, *ratetables.Tables, error) {
		cfg, err := config.Load(configFile)
		if err != nil {
			return nil, nil, err
		}
		tables, err := ratetables.Get(cfg.Tables.Path)
		if err != nil {
			return nil, nil, err
		}
		return cfg, tables, nil
	}

	root.AddCommand(
		newServeCmd(load),
		newCalculateCmd(load),
		newTablesCmd(load),
	)
	return root
}

type loader func() (*config.Config, *ratetables.Tables, error)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
