package cmd

import (
	"fmt"
	"strings"

	schema_registry "github.com/init-pkg/column-mapper/internal/app/mapping/registry"
	"github.com/spf13/cobra"
)

var industriesCmd = &cobra.Command{
	Use:   "industries",
	Short: "List registered industries and their canonical fields",
	RunE: func(cmd *cobra.Command, args []string) error {
		registry := schema_registry.Default()
		out := cmd.OutOrStdout()
		for _, name := range registry.Industries() {
			fmt.Fprintln(out, name)
			for _, field := range registry.CatalogueFor(name) {
				fmt.Fprintf(out, "  %-22s %-12s %s\n", field.TargetName, field.Category, strings.Join(field.Synonyms, ", "))
			}
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(industriesCmd)
}
