package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ruminaider/asmdef-edit/internal/versionexpr"
)

var defineCmd = &cobra.Command{
	Use:   "define",
	Short: "Edit define constraints",
}

var defineAddCmd = &cobra.Command{
	Use:   "add <symbol> <file.asmdef>...",
	Short: "Add a define constraint to every selected assembly",
	Long:  "Add a define constraint. Prefix the symbol with ! to require it to be undefined.",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := loadSession(args[1:])
		if err != nil {
			return err
		}
		if err := sess.AddDefineConstraint(args[0]); err != nil {
			return err
		}
		return reportApply(sess)
	},
}

var defineRemoveCmd = &cobra.Command{
	Use:   "remove <row-index> <file.asmdef>...",
	Short: "Remove a define constraint row from every selected assembly",
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
		if err := sess.RemoveDefineConstraint(index); err != nil {
			return err
		}
		return reportApply(sess)
	},
}

var versionDefineCmd = &cobra.Command{
	Use:   "versiondefine",
	Short: "Edit version defines",
}

var versionDefineAddCmd = &cobra.Command{
	Use:   "add <resource> <expression> <symbol> <file.asmdef>...",
	Short: "Add a version define to every selected assembly",
	Long: "Add a version define: when the named resource's version matches the " +
		"expression (e.g. \"1.2.0\", \"[1.2,2.0)\", \"[2.4.5]\"), the symbol is defined.",
	Args: cobra.MinimumNArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := loadSession(args[3:])
		if err != nil {
			return err
		}
		if err := sess.AddVersionDefine(args[0], args[1], args[2]); err != nil {
			return err
		}
		return reportApply(sess)
	},
}

var versionDefineRemoveCmd = &cobra.Command{
	Use:   "remove <row-index> <file.asmdef>...",
	Short: "Remove a version define row from every selected assembly",
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
		if err := sess.RemoveVersionDefine(index); err != nil {
			return err
		}
		return reportApply(sess)
	},
}

var versionDefineEvalCmd = &cobra.Command{
	Use:   "eval <expression> <version>",
	Short: "Test a version against a range expression",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ok, err := versionexpr.Evaluate(args[0], args[1])
		if err != nil {
			return err
		}
		if ok {
			fmt.Printf("%s matches %s\n", args[1], args[0])
		} else {
			fmt.Printf("%s does not match %s\n", args[1], args[0])
		}
		return nil
	},
}

func init() {
	defineCmd.AddCommand(defineAddCmd)
	defineCmd.AddCommand(defineRemoveCmd)
	versionDefineCmd.AddCommand(versionDefineAddCmd)
	versionDefineCmd.AddCommand(versionDefineRemoveCmd)
	versionDefineCmd.AddCommand(versionDefineEvalCmd)
}
