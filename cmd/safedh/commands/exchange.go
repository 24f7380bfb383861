package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"safedh/internal/domain"
)

func exchangeCmd() *cobra.Command {
	var fresh bool

	cmd := &cobra.Command{
		Use:   "exchange",
		Short: "Run a two-party key exchange and report agreement",
		RunE: func(cmd *cobra.Command, args []string) error {
			group, ok, err := appCtx.Groups.LoadGroup()
			if err != nil {
				return err
			}
			if fresh || !ok {
				fmt.Printf("Searching for a %d-bit safe prime...\n", appCtx.Bits)
				if group, err = appCtx.Exchange.GenerateGroup(appCtx.Bits); err != nil {
					return err
				}
				if err := appCtx.Groups.SaveGroup(group); err != nil {
					return err
				}
			}

			result, err := appCtx.Exchange.Run(group)
			if err != nil {
				return err
			}
			printResult(result)

			if !result.OK() {
				return fmt.Errorf("key exchange failed: derived values do not match")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&fresh, "fresh", false, "generate new group parameters even if some are stored")
	return cmd
}

func printGroup(g domain.Group) {
	fmt.Printf("P = %x\n", g.P)
	fmt.Printf("q = %x\n", g.Q)
	fmt.Printf("g = %x\n", g.G)
}

func printParty(p domain.PartyResult) {
	fmt.Printf("%s:\n", p.Name)
	fmt.Printf("  private key   = %x\n", p.Keys.Private)
	fmt.Printf("  public key    = %x\n", p.Keys.Public)
	fmt.Printf("  shared secret = %x\n", p.Secret)
	fmt.Printf("  encryption key     = %s\n", hex.EncodeToString(p.EncKey))
	fmt.Printf("  authentication key = %s\n", hex.EncodeToString(p.AuthKey))
}

func printResult(r domain.ExchangeResult) {
	printGroup(r.Group)
	printParty(r.Alice)
	printParty(r.Bob)
	fmt.Printf("shared secrets match:      %t\n", r.SecretsMatch)
	fmt.Printf("encryption keys match:     %t\n", r.EncKeysMatch)
	fmt.Printf("authentication keys match: %t\n", r.AuthKeysMatch)
}
