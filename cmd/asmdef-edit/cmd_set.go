package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ruminaider/asmdef-edit/internal/commands"
)

var setCmd = &cobra.Command{
	Use:   "set <flag> <true|false> <file.asmdef>...",
	Short: "Set a boolean flag across the selected assembly definitions",
	Long: "Set one of allow-unsafe, override-references, auto-referenced, or use-guids " +
		"on every selected assembly definition and save.",
	Args: cobra.MinimumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := strconv.ParseBool(args[1])
		if err != nil {
			return fmt.Errorf("expected true or false, got %q", args[1])
		}

		sess, err := loadSession(args[2:])
		if err != nil {
			return err
		}
		if err := sess.SetFlag(args[0], value); err != nil {
			return err
		}
		return reportApply(sess)
	},
}

var nameCmd = &cobra.Command{
	Use:   "name <new-name> <file.asmdef>",
	Short: "Rename an assembly definition",
	Long:  "Rename a single assembly definition. Renaming across multiple selections is not supported.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := loadSession(args[1:])
		if err != nil {
			return err
		}
		if err := sess.SetName(args[0]); err != nil {
			return err
		}
		return reportApply(sess)
	},
}

// reportApply commits the session and prints per-record outcomes. Partial
// application is reported, never rolled back.
func reportApply(sess *commands.Session) error {
	var failed int
	for _, res := range sess.Apply() {
		if res.Err != nil {
			failed++
			fmt.Printf("✗ %s: %v\n", res.Path, res.Err)
		} else {
			fmt.Printf("✓ %s\n", res.Path)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d records failed to save", failed, len(sess.Records))
	}
	return nil
}
