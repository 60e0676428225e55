package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jacksmith/rocketcart/internal/cart"
	"github.com/jacksmith/rocketcart/internal/cli"
)

var setCmd = &cobra.Command{
	Use:   "set <product-id> <amount>",
	Short: "Set the amount of a product in the cart",
	Long: `Set the amount of a product already in the cart.

The amount must be at least 1 and no more than the stock service reports as
available. Setting 0 does not remove the product; use ` + "`cart remove`" + ` for that.

Examples:
  cart set 5 7`,
	Args:              cobra.ExactArgs(2),
	RunE:              runSet,
	ValidArgsFunction: completeCartIDs,
}

func init() {
	rootCmd.AddCommand(setCmd)
}

func runSet(cmd *cobra.Command, args []string) error {
	productID, err := cli.ParseProductID(args[0])
	if err != nil {
		return err
	}
	amount, err := cli.ParseAmount(args[1])
	if err != nil {
		return err
	}

	ctx := commandContext(cmd)
	sess, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer sess.Close()

	req := cart.UpdateAmount{ProductID: productID, Amount: amount}
	if err := sess.store.UpdateProductAmount(ctx, req); err != nil {
		return err
	}

	fmt.Printf("Product %d amount set to %d.\n", productID, amount)
	return nil
}
