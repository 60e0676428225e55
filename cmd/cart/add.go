package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jacksmith/rocketcart/internal/cli"
)

var addCmd = &cobra.Command{
	Use:   "add <product-id>",
	Short: "Add one unit of a product",
	Long: `Add one unit of a product to the cart.

A product not yet in the cart is added with amount 1; otherwise its amount
goes up by one. Fails if the stock service has no more units available.

Examples:
  cart add 1
  cart add 3`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
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

	if err := sess.store.AddProduct(ctx, productID); err != nil {
		return err
	}

	entry, _ := sess.store.Cart().Find(productID)
	fmt.Printf("%s %s %s\n", cli.Green("Added"), entry.Title, cli.Gray(fmt.Sprintf("(x%d)", entry.Amount)))
	return nil
}
