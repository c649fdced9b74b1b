package cmd

import (
	"fmt"

	"github.com/dsplit/dsplit/loader"
	"github.com/dsplit/dsplit/splitter"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var splitCmd = &cobra.Command{
	Use:   "split",
	Short: "Split the file or directory at --path into an entity tree",
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

		adjusted, root, err := loader.Load(cmd.Context(), directory, opts, logger)
		if err != nil {
			return fmt.Errorf("loading %s: %w", directory, err)
		}

		splitter.Optimize(root, logger)
		if err := splitter.VerifyAcyclic(root); err != nil {
			return fmt.Errorf("splitting %s: %w", directory, err)
		}

		logger.WithField("path", adjusted).WithField("children", len(root.Children)).
			Info("split complete")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(splitCmd)
}
