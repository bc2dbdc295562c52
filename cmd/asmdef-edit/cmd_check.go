package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ruminaider/asmdef-edit/cmd/asmdef-edit/tui"
	"github.com/ruminaider/asmdef-edit/internal/commands"
)

var checkCmd = &cobra.Command{
	Use:   "check <file.asmdef>...",
	Short: "Validate assembly definitions without writing anything",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := buildDeps()
		if err != nil {
			return err
		}

		var bad int
		for _, res := range commands.Check(args, deps) {
			switch {
			case res.LoadErr != nil:
				bad++
				fmt.Printf("✗ %s\n", res.Path)
				fmt.Println(tui.ErrorStyle.Render("    " + res.LoadErr.Error()))
			case !res.Clean():
				bad++
				fmt.Printf("! %s\n", res.Path)
				for _, d := range res.Diags {
					fmt.Printf("    %s: %s\n", d.Entry, d.Message)
				}
				for _, p := range res.Problems {
					fmt.Printf("    %s\n", p)
				}
			default:
				fmt.Printf("✓ %s\n", res.Path)
			}
		}
		if bad > 0 {
			return fmt.Errorf("%d of %d records have problems", bad, len(args))
		}
		return nil
	},
}
