package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/corn12138/lowcode/internal/preview"
	"github.com/corn12138/lowcode/internal/tree"
)

func newPreviewCmd(rootFlags *rootFlags) *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:   "preview <page>",
		Short: "Draw a page document as a terminal wireframe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd, "preview", rootFlags)
			if err != nil {
				return err
			}

			doc, err := tree.LoadDocument(args[0])
			if err != nil {
				return newCommandError("preview", "loading page "+args[0], err, "Ensure the file is valid YAML or JSON with a root node.")
			}

			if !cmd.Flags().Changed("width") {
				width = previewWidth(cmd, app.cfg.Preview.Width)
			}

			out, err := preview.New(app.store, width).Render(doc.Root)
			if err != nil {
				return newCommandError("preview", "drawing page "+args[0], err, "Run 'lowcode validate' on the page for details.")
			}

			if doc.Title != "" {
				fmt.Fprintln(cmd.OutOrStdout(), doc.Title)
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			fmt.Fprintln(cmd.OutOrStdout(), preview.Legend(app.store.Categories()))
			return nil
		},
	}

	cmd.Flags().IntVarP(&width, "width", "w", preview.DefaultWidth, "Wireframe width in columns")

	return cmd
}

// previewWidth prefers the terminal width when writing to a terminal that is
// narrower than the configured width.
func previewWidth(cmd *cobra.Command, configured int) int {
	if configured <= 0 {
		configured = preview.DefaultWidth
	}
	file, ok := cmd.OutOrStdout().(*os.File)
	if !ok || !isTerminal(file) {
		return configured
	}
	cols, _, err := term.GetSize(int(file.Fd()))
	if err != nil || cols <= 0 || cols >= configured {
		return configured
	}
	return cols
}
