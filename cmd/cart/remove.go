package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jacksmith/rocketcart/internal/cli"
)

var removeCmd = &cobra.Command{
	Use:     "remove <product-id>",
	Aliases: []string{"rm"},
	Short:   "Remove a product from the cart",
	Long: `Remove a product line from the cart, whatever its amount.

Examples:
  cart remove 2
  cart rm 2`,
	Args:              cobra.ExactArgs(1),
	RunE:              runRemove,
	ValidArgsFunction: completeCartIDs,
}

func init() {
	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	productID, err := cli.ParseProductID(args[0])
	if err != nil {
		return err
	}

	ctx := commandContext(cmd)
	sess, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer sess.Close()

	if err := sess.store.RemoveProduct(ctx, productID); err != nil {
		return err
	}

	fmt.Printf("Removed product %d.\n", productID)
	return nil
}
