package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ruminaider/asmdef-edit/internal/assetdb"
)

var guidCmd = &cobra.Command{
	Use:   "guid",
	Short: "Inspect or assign asset identifiers",
}

var guidShowCmd = &cobra.Command{
	Use:   "show <file.asmdef>...",
	Short: "Print the guid recorded for each assembly",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := buildDeps()
		if err != nil {
			return err
		}
		for _, path := range args {
			guid, ok := deps.Resolver.GUIDForPath(path)
			if !ok {
				fmt.Printf("%s: no guid\n", path)
				continue
			}
			fmt.Printf("%s: %s\n", path, guid)
		}
		return nil
	},
}

var guidNewCmd = &cobra.Command{
	Use:   "new <file.asmdef>...",
	Short: "Assign a fresh guid to assemblies that lack one",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := buildDeps()
		if err != nil {
			return err
		}
		for _, path := range args {
			if _, err := os.Stat(path); err != nil {
				return fmt.Errorf("checking %s: %w", path, err)
			}
			if guid, ok := deps.Resolver.GUIDForPath(path); ok {
				fmt.Printf("%s: already has guid %s\n", path, guid)
				continue
			}
			guid := assetdb.NewGUID()
			if err := assetdb.WriteMeta(path, guid); err != nil {
				return err
			}
			fmt.Printf("%s: %s\n", path, guid)
		}
		return nil
	},
}

func init() {
	guidCmd.AddCommand(guidShowCmd)
	guidCmd.AddCommand(guidNewCmd)
}
