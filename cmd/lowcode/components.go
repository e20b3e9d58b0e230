package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/corn12138/lowcode/internal/catalog"
)

type componentsOptions struct {
	category   string
	jsonOutput bool
}

func newComponentsCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &componentsOptions{}

	cmd := &cobra.Command{
		Use:   "components",
		Short: "List registered component types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runComponents(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().StringVar(&opts.category, "category", "", "Only list components of this category")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runComponents(cmd *cobra.Command, rootFlags *rootFlags, opts *componentsOptions) error {
	app, err := loadApp(cmd, "list components", rootFlags)
	if err != nil {
		return err
	}

	regs := app.store.Components()
	if opts.category != "" {
		regs = app.store.ComponentsByCategory(catalog.Category(opts.category))
	}

	if opts.jsonOutput {
		return renderComponentsJSON(cmd, regs)
	}

	if len(regs) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No components in category %q.\n", opts.category)
		fmt.Fprintln(cmd.OutOrStdout(), "\nRun 'lowcode categories' to see the available categories.")
		return nil
	}

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "TYPE\tNAME\tCATEGORY\tCHILDREN\tDESCRIPTION")
	for _, reg := range regs {
		children := "no"
		if reg.AllowChildren {
			children = "yes"
		}
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\n", reg.Type, reg.Name, reg.Category, children, valueOrFallback(reg.Description, "-"))
	}
	return writer.Flush()
}

type componentSummary struct {
	Type          string           `json:"type"`
	Name          string           `json:"name"`
	Category      catalog.Category `json:"category"`
	Icon          string           `json:"icon,omitempty"`
	Description   string           `json:"description,omitempty"`
	AllowChildren bool             `json:"allowChildren"`
}

type componentsJSONPayload struct {
	Count      int                `json:"count"`
	Components []componentSummary `json:"components"`
}

func renderComponentsJSON(cmd *cobra.Command, regs []catalog.Registration) error {
	payload := componentsJSONPayload{
		Count:      len(regs),
		Components: make([]componentSummary, len(regs)),
	}
	for i, reg := range regs {
		payload.Components[i] = componentSummary{
			Type:          reg.Type,
			Name:          reg.Name,
			Category:      reg.Category,
			Icon:          reg.Icon,
			Description:   reg.Description,
			AllowChildren: reg.AllowChildren,
		}
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

func valueOrFallback(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
