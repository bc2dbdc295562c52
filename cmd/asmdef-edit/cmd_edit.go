package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/ruminaider/asmdef-edit/cmd/asmdef-edit/tui"
)

var editCmd = &cobra.Command{
	Use:   "edit <file.asmdef>...",
	Short: "Edit one or more assembly definitions interactively",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := loadSession(args)
		if err != nil {
			return err
		}

		p := tea.NewProgram(tui.NewEditor(sess), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("running editor: %w", err)
		}

		// The editor quits without writing when the user bails out with
		// pending edits; give them one last chance to commit.
		if !sess.Dirty() {
			return nil
		}
		var commit bool
		confirm := huh.NewConfirm().
			Title(fmt.Sprintf("Apply unsaved changes to %d record(s)?", len(sess.Records))).
			Affirmative("Apply").
			Negative("Discard").
			Value(&commit)
		if err := huh.NewForm(huh.NewGroup(confirm)).Run(); err != nil {
			return nil // aborted prompt discards
		}
		if !commit {
			return nil
		}
		return reportApply(sess)
	},
}
