package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/corn12138/lowcode/internal/tree"
)

type newOptions struct {
	id         string
	title      string
	jsonOutput bool
}

func newNewCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &newOptions{}

	cmd := &cobra.Command{
		Use:   "new <type>",
		Short: "Print a page document holding one fresh instance of a type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd, "create instance", rootFlags)
			if err != nil {
				return err
			}

			node, err := app.store.Instantiate(args[0], opts.id)
			if err != nil {
				return newCommandError("create instance", fmt.Sprintf("instantiating %q", args[0]), err, "Run 'lowcode components' to view registered types.")
			}

			format := tree.FormatYAML
			if opts.jsonOutput {
				format = tree.FormatJSON
			}
			doc := &tree.Document{Version: "1", Title: opts.title, Root: node}
			data, err := doc.Encode(format)
			if err != nil {
				return newCommandError("create instance", "encoding document", err, "Try the other output format.")
			}

			_, err = cmd.OutOrStdout().Write(data)
			if err == nil && format == tree.FormatJSON {
				fmt.Fprintln(cmd.OutOrStdout())
			}
			return err
		},
	}

	cmd.Flags().StringVar(&opts.id, "id", "", "Instance id")
	cmd.Flags().StringVar(&opts.title, "title", "", "Page title")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output JSON instead of YAML")

	return cmd
}
