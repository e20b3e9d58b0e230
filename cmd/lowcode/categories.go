package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/corn12138/lowcode/internal/catalog"
)

func newCategoriesCmd(rootFlags *rootFlags) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List component categories in palette order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd, "list categories", rootFlags)
			if err != nil {
				return err
			}

			type categoryCount struct {
				Category   catalog.Category `json:"category"`
				Components int              `json:"components"`
			}
			categories := app.store.Categories()
			counts := make([]categoryCount, len(categories))
			for i, c := range categories {
				counts[i] = categoryCount{Category: c, Components: len(app.store.ComponentsByCategory(c))}
			}

			if jsonOutput {
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(counts)
			}

			writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(writer, "CATEGORY\tCOMPONENTS")
			for _, c := range counts {
				fmt.Fprintf(writer, "%s\t%d\n", c.Category, c.Components)
			}
			return writer.Flush()
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return cmd
}
