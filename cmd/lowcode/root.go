package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	verbose    bool
	catalogs   []string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "lowcode",
		Short:         "Inspect, validate and render low-code page trees",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to lowcode.yaml")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringSliceVar(&flags.catalogs, "catalog", nil, "Extra component catalog file (repeatable)")

	cmd.AddCommand(newComponentsCmd(flags))
	cmd.AddCommand(newCategoriesCmd(flags))
	cmd.AddCommand(newShowCmd(flags))
	cmd.AddCommand(newNewCmd(flags))
	cmd.AddCommand(newValidateCmd(flags))
	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newPaletteCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
