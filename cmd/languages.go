package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List registered language definitions",
	RunE:  runLanguages,
}

func init() {
	rootCmd.AddCommand(languagesCmd)
}

func runLanguages(cmd *cobra.Command, args []string) error {
	registry := loadRegistry()
	out := cmd.OutOrStdout()
	for _, name := range registry.Names() {
		def := registry.Get(name)
		fmt.Fprintf(out, "%-12s %v\n", name, def.Extensions)
	}
	return nil
}
