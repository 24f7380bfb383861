package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the stored group parameters",
		RunE: func(cmd *cobra.Command, args []string) error {
			group, ok, err := appCtx.Groups.LoadGroup()
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("no group parameters stored; run \"safedh init\" first")
			}
			fmt.Printf("Stored group (%d bits):\n", group.Bits())
			printGroup(group)
			return nil
		},
	}
}
