// Package main is the entry point for the cart CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/jacksmith/rocketcart/internal/cart"
	"github.com/jacksmith/rocketcart/internal/cli"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	args, err := cli.ExpandCommand(os.Args[1:], commandNames())
	if err != nil {
		fmt.Fprintln(os.Stderr, cli.FormatError(err))
		os.Exit(1)
	}
	rootCmd.SetArgs(args)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		// Store failures were already shown to the user as notifications.
		if !cart.Reported(err) {
			fmt.Fprintln(os.Stderr, cli.FormatError(err))
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cart",
	Short: "cart - a shopping cart that checks stock before every change",
	Long: `cart keeps a shopping cart for the RocketShoes store.

Every add and amount change is checked against the store's stock service,
and the cart is saved after each successful change. Run ` + "`cart init`" + ` once
to create the .cart/ workspace in the current directory.`,
	Version:       Version,
	SilenceErrors: true,
	SilenceUsage:  true,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetVersionTemplate("cart version {{.Version}}\n")
}

// commandNames lists the subcommands that may be abbreviated on the command line.
func commandNames() []string {
	names := []string{"help"}
	for _, c := range rootCmd.Commands() {
		if !c.Hidden {
			names = append(names, c.Name())
		}
	}
	return names
}

// commandContext returns the command's context, or Background when the
// command is invoked directly (as tests do).
func commandContext(cmd *cobra.Command) context.Context {
	if cmd != nil && cmd.Context() != nil {
		return cmd.Context()
	}
	return context.Background()
}
