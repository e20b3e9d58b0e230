package main

import (
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/corn12138/lowcode/internal/palette"
)

func newPaletteCmd(rootFlags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "palette",
		Short: "Browse components interactively",
		Long:  `Launch the interactive palette: categories as tabs, components per category, and their defaults and editable fields.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal(cmd.OutOrStdout()) {
				return newCommandError("open palette", "checking terminal", errors.New("output is not a terminal"), "Run 'lowcode components' for non-interactive output.")
			}

			app, err := loadApp(cmd, "open palette", rootFlags)
			if err != nil {
				return err
			}

			program := tea.NewProgram(
				palette.NewModel(app.store),
				tea.WithAltScreen(),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			if _, err := program.Run(); err != nil {
				return newCommandError("open palette", "running interface", err, "Try resizing the terminal or use 'lowcode components'.")
			}
			return nil
		},
	}

	return cmd
}

func isTerminal(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
