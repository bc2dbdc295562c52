package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var platformsCmd = &cobra.Command{
	Use:   "platforms",
	Short: "Edit platform compatibility",
}

var platformsAnyCmd = &cobra.Command{
	Use:   "any <true|false> <file.asmdef>...",
	Short: "Toggle compatibility with any platform",
	Long: "Set the any-platform flag. When the selection currently disagrees, every " +
		"record is first normalized to the new value with its platform set preserved.",
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := strconv.ParseBool(args[0])
		if err != nil {
			return fmt.Errorf("expected true or false, got %q", args[0])
		}
		sess, err := loadSession(args[1:])
		if err != nil {
			return err
		}
		if err := sess.SetAnyPlatform(value); err != nil {
			return err
		}
		return reportApply(sess)
	},
}

var platformsIncludeCmd = &cobra.Command{
	Use:   "include <platform> <file.asmdef>...",
	Short: "Mark a platform as compatible",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setPlatform(args[0], true, args[1:])
	},
}

var platformsExcludeCmd = &cobra.Command{
	Use:   "exclude <platform> <file.asmdef>...",
	Short: "Mark a platform as incompatible",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setPlatform(args[0], false, args[1:])
	},
}

var platformsAllCmd = &cobra.Command{
	Use:   "all <file.asmdef>...",
	Short: "Select every platform",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := loadSession(args)
		if err != nil {
			return err
		}
		sess.SelectAllPlatforms()
		return reportApply(sess)
	},
}

var platformsNoneCmd = &cobra.Command{
	Use:   "none <file.asmdef>...",
	Short: "Deselect every platform",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := loadSession(args)
		if err != nil {
			return err
		}
		sess.DeselectAllPlatforms()
		return reportApply(sess)
	},
}

var platformsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List known platforms",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := buildDeps()
		if err != nil {
			return err
		}
		for i := 0; i < deps.Platforms.Len(); i++ {
			p := deps.Platforms.At(i)
			fmt.Printf("%-22s %s\n", p.Name, p.DisplayName)
		}
		return nil
	},
}

func setPlatform(name string, included bool, files []string) error {
	sess, err := loadSession(files)
	if err != nil {
		return err
	}
	if err := sess.SetPlatform(name, included); err != nil {
		return err
	}
	return reportApply(sess)
}

func init() {
	platformsCmd.AddCommand(platformsAnyCmd)
	platformsCmd.AddCommand(platformsIncludeCmd)
	platformsCmd.AddCommand(platformsExcludeCmd)
	platformsCmd.AddCommand(platformsAllCmd)
	platformsCmd.AddCommand(platformsNoneCmd)
	platformsCmd.AddCommand(platformsListCmd)
}
