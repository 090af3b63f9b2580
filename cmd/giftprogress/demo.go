package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/giftprogress/internal/tui"
)

var termIsTerminal = func(fd int) bool {
	return term.IsTerminal(fd)
}

func newDemoCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Launch the interactive terminal demo",
		Long:  `Show both bars in the terminal. Arrow keys move the gift bar, clicks move the space bar.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !termIsTerminal(int(os.Stdout.Fd())) {
				return fmt.Errorf("demo needs an interactive terminal")
			}

			cfg, err := root.config()
			if err != nil {
				return err
			}
			log, err := root.logger(cmd)
			if err != nil {
				return fmt.Errorf("create logger: %w", err)
			}

			m, err := tui.NewModel(cfg, log)
			if err != nil {
				return err
			}

			p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
			if _, err := p.Run(); err != nil {
				log.Error(err, "demo execution failed")
				return fmt.Errorf("failed to run demo: %w", err)
			}
			return nil
		},
	}

	return cmd
}
