package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.3.1"

var rootCmd = &cobra.Command{
	Use:   "asmdef-edit",
	Short: "Edit assembly definition files, in bulk",
	Long: "asmdef-edit loads one or more assembly definition files into a combined view, " +
		"shows where they agree and disagree, and writes edits back to each file " +
		"without clobbering fields you did not touch.",
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("asmdef-edit %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagProjectRoot, "project", "", "project root scanned for asset identifiers (default: config or cwd)")
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(nameCmd)
	rootCmd.AddCommand(platformsCmd)
	rootCmd.AddCommand(refCmd)
	rootCmd.AddCommand(precompiledCmd)
	rootCmd.AddCommand(defineCmd)
	rootCmd.AddCommand(versionDefineCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(guidCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
