package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Generate safe-prime group parameters and store them",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("Searching for a %d-bit safe prime...\n", appCtx.Bits)
			group, err := appCtx.Exchange.GenerateGroup(appCtx.Bits)
			if err != nil {
				return err
			}
			if err := appCtx.Groups.SaveGroup(group); err != nil {
				return err
			}
			fmt.Printf("Group parameters created (%d bits).\n", group.Bits())
			printGroup(group)
			return nil
		},
	}
}
