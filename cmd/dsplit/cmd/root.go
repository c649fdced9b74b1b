// Package cmd is the dsplit CLI, grounded on the teacher's cli/cmd
// (cli/cmd/root.go): a cobra root command with persistent flags shared by
// the subcommands, and an Execute entry point called from main.
package cmd

import (
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:          "dsplit",
		Short:        "dsplit",
		SilenceUsage: true,
		Long:         `Splits D source files (or a directory tree of them) into a tree of entities for an external delta-debugging reducer.`,
	}

	directory     string
	stripComments bool
	wordMode      bool
)

// Execute executes the root command.
func Execute() error {
	rootCmd.PersistentFlags().StringVarP(&directory, "path", "p", ".", "file or directory to load")
	rootCmd.PersistentFlags().BoolVar(&stripComments, "strip-comments", false, "elide comments from D files before splitting")
	rootCmd.PersistentFlags().BoolVar(&wordMode, "words", false, "use the word splitter instead of the scope parser for D files")
	return rootCmd.Execute()
}
