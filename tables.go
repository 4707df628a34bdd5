package main

import (
	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

func newTablesCmd(load loader) *cobra.Command {
	return &cobra.Command{
		Use:   "tables",
		Short: "Print the active rate table catalog as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, tables, err := load()
			if err != nil {
				return err
			}
			out, err := json.MarshalIndent(tables.Catalog(), "", "  ")
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(append(out, '\n'))
			return err
		},
	}
}
