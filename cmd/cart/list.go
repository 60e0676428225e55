package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jacksmith/rocketcart/internal/cli"
	"github.com/jacksmith/rocketcart/internal/model"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "Show the cart",
	Long: `Show the products in the cart in the order they were added.

Use --json to print the stored cart value instead of a table.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

var listJSON bool

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "print the cart as JSON")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	sess, err := openSession(commandContext(cmd))
	if err != nil {
		return err
	}
	defer sess.Close()

	c := sess.store.Cart()

	if listJSON {
		value, err := model.EncodeCart(c)
		if err != nil {
			return err
		}
		fmt.Println(value)
		return nil
	}

	if len(c) == 0 {
		fmt.Println("Cart is empty.")
		return nil
	}

	table := cli.NewTable()
	table.SetRightAlign(0)
	table.SetMaxWidth(1, cli.DefaultMaxTitleWidth)
	table.SetRightAlign(2)
	table.SetRightAlign(3)
	for _, e := range c {
		table.AddRow(
			strconv.Itoa(e.ID),
			e.Title,
			cli.Gray(strconv.FormatFloat(e.Price, 'f', 2, 64)),
			"x"+strconv.Itoa(e.Amount),
		)
	}
	table.Render(os.Stdout)

	fmt.Println(cli.Gray(fmt.Sprintf("%d products, %d units", len(c), c.TotalUnits())))
	return nil
}
