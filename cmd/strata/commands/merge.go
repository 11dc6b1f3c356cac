package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newMergeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "merge [documents...]",
		Short: "Merge query result payloads into the cache",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			edited, err := c.app.Merge(cmd.Context(), args)
			if err != nil {
				return err
			}
			for _, id := range edited {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(id))
			}
			return nil
		},
	}
}
