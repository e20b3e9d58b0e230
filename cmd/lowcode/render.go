package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/corn12138/lowcode/internal/render"
	"github.com/corn12138/lowcode/internal/tree"
	"github.com/corn12138/lowcode/pkg/diff"
)

type renderOptions struct {
	output      string
	standalone  bool
	development bool
	skipCheck   bool
	check       bool
}

func newRenderCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render <page>",
		Short: "Render a page document to HTML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, rootFlags, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write HTML to this file instead of stdout")
	cmd.Flags().BoolVar(&opts.standalone, "standalone", false, "Wrap the fragment in a complete HTML page")
	cmd.Flags().BoolVar(&opts.development, "dev", false, "Warn about silently defaulted props")
	cmd.Flags().BoolVar(&opts.skipCheck, "no-validate", false, "Render without checking props against the schemas")
	cmd.Flags().BoolVar(&opts.check, "check", false, "Compare with the --output file instead of writing it")

	return cmd
}

func runRender(cmd *cobra.Command, rootFlags *rootFlags, path string, opts *renderOptions) error {
	if opts.check && opts.output == "" {
		return newCommandError("render", "checking output", errors.New("--check requires --output"), "Pass the previously rendered file with -o.")
	}

	app, err := loadApp(cmd, "render", rootFlags)
	if err != nil {
		return err
	}

	doc, err := tree.LoadDocument(path)
	if err != nil {
		return newCommandError("render", "loading page "+path, err, "Ensure the file is valid YAML or JSON with a root node.")
	}

	if !opts.skipCheck {
		if err := app.store.ValidateTree(doc.Root); err != nil {
			return newCommandError("render", "checking page "+path, err, "Fix the page or pass --no-validate to render anyway.")
		}
	}

	renderer := render.New(app.store, render.Options{
		Logger:      app.log,
		Development: opts.development || app.cfg.Render.Development,
		ClassPrefix: app.cfg.Render.ClassPrefix,
		Standalone:  opts.standalone || app.cfg.Render.Standalone,
	})

	html, err := renderer.RenderDocument(doc)
	if err != nil {
		return newCommandError("render", "rendering page "+path, err, "Run 'lowcode validate' on the page for details.")
	}

	if opts.output == "" {
		fmt.Fprintln(cmd.OutOrStdout(), html)
		return nil
	}

	rendered := []byte(html + "\n")
	previous, readErr := os.ReadFile(opts.output)
	if opts.check {
		if readErr != nil {
			return newCommandError("render", "reading "+opts.output, readErr, "Render the page once without --check.")
		}
		if out := diff.Unified(previous, rendered, opts.output, path); out != "" {
			fmt.Fprint(cmd.OutOrStdout(), out)
			return newCommandError("render", "checking "+opts.output, errors.New("rendered page differs from the output file"), "Re-run without --check to update it.")
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ %s is up to date\n", opts.output)
		return nil
	}

	if err := os.WriteFile(opts.output, rendered, 0o644); err != nil {
		return newCommandError("render", "writing "+opts.output, err, "Check that the output directory exists and is writable.")
	}

	fields := map[string]any{"page": path, "output": opts.output, "bytes": len(rendered)}
	if readErr == nil {
		added, removed := diff.Changed(previous, rendered)
		fields["added"] = added
		fields["removed"] = removed
	}
	app.log.WithFields(fields).Info("page rendered")
	return nil
}
