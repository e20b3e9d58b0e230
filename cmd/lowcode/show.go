package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/corn12138/lowcode/internal/catalog"
	"github.com/corn12138/lowcode/internal/schema"
)

type showOptions struct {
	jsonOutput bool
	yamlOutput bool
}

func newShowCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &showOptions{}

	cmd := &cobra.Command{
		Use:   "show <type>",
		Short: "Show the registration of a component type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, rootFlags, args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output the registration as JSON")
	cmd.Flags().BoolVar(&opts.yamlOutput, "yaml", false, "Output the registration as YAML")
	cmd.MarkFlagsMutuallyExclusive("json", "yaml")

	return cmd
}

func runShow(cmd *cobra.Command, rootFlags *rootFlags, componentType string, opts *showOptions) error {
	if strings.TrimSpace(componentType) == "" {
		return newCommandError("show", "validating component type", errors.New("component type cannot be empty"), "Provide a type such as Grid or Button.")
	}

	app, err := loadApp(cmd, "show", rootFlags)
	if err != nil {
		return err
	}

	reg, ok := app.store.ComponentByType(componentType)
	if !ok {
		return newCommandError("show", fmt.Sprintf("looking up component %q", componentType), errors.New("component type is not registered"), "Run 'lowcode components' to view registered types.")
	}

	switch {
	case opts.jsonOutput:
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(reg)
	case opts.yamlOutput:
		encoder := yaml.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent(2)
		if err := encoder.Encode(reg); err != nil {
			return err
		}
		return encoder.Close()
	}

	return renderShowText(cmd, reg)
}

func renderShowText(cmd *cobra.Command, reg catalog.Registration) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Type:     %s\n", reg.Type)
	fmt.Fprintf(out, "Name:     %s\n", reg.Name)
	fmt.Fprintf(out, "Category: %s\n", reg.Category)
	fmt.Fprintf(out, "Icon:     %s\n", valueOrFallback(reg.Icon, "(none)"))
	fmt.Fprintf(out, "Children: %t\n", reg.AllowChildren)
	fmt.Fprintf(out, "\nDescription:\n  %s\n", valueOrFallback(reg.Description, "(none)"))

	fmt.Fprintln(out, "\nProps:")
	writeFields(cmd, reg.PropSchema, reg.DefaultProps)

	if !reg.StyleSchema.IsZero() {
		fmt.Fprintln(out, "\nStyle:")
		writeFields(cmd, reg.StyleSchema, reg.DefaultStyle)
	}
	return nil
}

func writeFields(cmd *cobra.Command, s schema.Schema, defaults map[string]any) {
	out := cmd.OutOrStdout()
	fields := s.Fields()
	if len(fields) == 0 {
		fmt.Fprintln(out, "  (none)")
		return
	}

	for _, f := range fields {
		line := fmt.Sprintf("  %s (%s): %s", f.Name, f.Property.Type, f.Property.Title)
		if value, ok := defaults[f.Name]; ok {
			line += fmt.Sprintf(" [default: %s]", formatValue(value))
		}
		fmt.Fprintln(out, line)

		if choices := f.Property.Choices(); len(choices) > 0 {
			parts := make([]string, len(choices))
			for i, c := range choices {
				parts[i] = fmt.Sprintf("%v=%s", c.Value, c.Label)
			}
			fmt.Fprintf(out, "      one of: %s\n", strings.Join(parts, ", "))
		}
		if f.Property.Minimum != nil || f.Property.Maximum != nil {
			fmt.Fprintf(out, "      range: %s..%s\n", bound(f.Property.Minimum), bound(f.Property.Maximum))
		}
	}

	var extra []string
	for key := range defaults {
		if _, ok := s.Lookup(key); !ok {
			extra = append(extra, key)
		}
	}
	sort.Strings(extra)
	for _, key := range extra {
		fmt.Fprintf(out, "  %s [default: %s]\n", key, formatValue(defaults[key]))
	}
}

func bound(v *float64) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(*v)
}

func formatValue(v any) string {
	switch value := v.(type) {
	case nil:
		return "null"
	case string:
		return fmt.Sprintf("%q", value)
	default:
		return fmt.Sprint(value)
	}
}
