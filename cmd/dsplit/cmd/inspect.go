package cmd

import (
	"fmt"

	"github.com/alecthomas/repr"
	"github.com/dsplit/dsplit/loader"
	"github.com/dsplit/dsplit/splitter"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Dump the entity tree at --path for debugging",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := logrus.StandardLogger()

		opts, err := loader.LoadOptions(directory)
		if err != nil {
			return err
		}
		opts.StripComments = opts.StripComments || stripComments
		if wordMode {
			opts.Mode = loader.ModeWords
		}

		_, root, err := loader.Load(cmd.Context(), directory, opts, logger)
		if err != nil {
			return err
		}
		splitter.Optimize(root, logger)

		fmt.Println(repr.String(root))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
