package main

import (
	"strconv"

	"github.com/spf13/cobra"
)

var refCmd = &cobra.Command{
	Use:   "ref",
	Short: "Edit assembly references",
}

var refAddCmd = &cobra.Command{
	Use:   "add <name-or-guid> <file.asmdef>...",
	Short: "Add a reference row to every selected assembly",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := loadSession(args[1:])
		if err != nil {
			return err
		}
		if err := sess.AddReference(args[0]); err != nil {
			return err
		}
		return reportApply(sess)
	},
}

var refRemoveCmd = &cobra.Command{
	Use:   "remove <row-index> <file.asmdef>...",
	Short: "Remove a reference row from every selected assembly",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}
		sess, err := loadSession(args[1:])
		if err != nil {
			return err
		}
		if err := sess.RemoveReference(index); err != nil {
			return err
		}
		return reportApply(sess)
	},
}

var precompiledCmd = &cobra.Command{
	Use:   "precompiled",
	Short: "Edit precompiled (DLL) references",
}

var precompiledAddCmd = &cobra.Command{
	Use:   "add <name.dll> <file.asmdef>...",
	Short: "Add a precompiled reference row to every selected assembly",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := loadSession(args[1:])
		if err != nil {
			return err
		}
		if err := sess.AddPrecompiled(args[0]); err != nil {
			return err
		}
		return reportApply(sess)
	},
}

var precompiledRemoveCmd = &cobra.Command{
	Use:   "remove <row-index> <file.asmdef>...",
	Short: "Remove a precompiled reference row from every selected assembly",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}
		sess, err := loadSession(args[1:])
		if err != nil {
			return err
		}
		if err := sess.RemovePrecompiled(index); err != nil {
			return err
		}
		return reportApply(sess)
	},
}

func init() {
	refCmd.AddCommand(refAddCmd)
	refCmd.AddCommand(refRemoveCmd)
	precompiledCmd.AddCommand(precompiledAddCmd)
	precompiledCmd.AddCommand(precompiledRemoveCmd)
}
