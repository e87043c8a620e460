package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func newFetchCommand(ctx *commandContext) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Download and unpack the word list without searching",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := ctx.wordSource(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if force {
				err = source.Refresh(cmd.Context())
			} else {
				err = source.Ensure(cmd.Context())
			}
			if err != nil {
				return err
			}

			info, err := os.Stat(source.Path())
			if err != nil {
				return fmt.Errorf("stat word list: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Word list ready at %s (%s)\n", source.Path(), humanize.Bytes(uint64(info.Size())))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Download again even if the word list exists")
	return cmd
}
