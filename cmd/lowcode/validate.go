package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/corn12138/lowcode/internal/tree"
)

func newValidateCmd(rootFlags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <page>",
		Short: "Check a page document against the registered components",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd, "validate", rootFlags)
			if err != nil {
				return err
			}

			doc, err := tree.LoadDocument(args[0])
			if err != nil {
				return newCommandError("validate", "loading page "+args[0], err, "Ensure the file is valid YAML or JSON with a root node.")
			}

			if err := app.store.ValidateTree(doc.Root); err != nil {
				return newCommandError("validate", "checking page "+args[0], err, "Run 'lowcode show <type>' to see the accepted props of a component.")
			}

			nodes := 0
			_ = tree.Walk(doc.Root, func(string, *tree.Node) error {
				nodes++
				return nil
			})
			fmt.Fprintf(cmd.OutOrStdout(), "✓ %s is valid (%d nodes)\n", args[0], nodes)
			return nil
		},
	}

	return cmd
}
