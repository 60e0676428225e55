package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jacksmith/rocketcart/internal/storage"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new cart workspace",
	Long: `Create a .cart/ directory holding an empty cart.

Settings such as the stock service URL and the storage backend are read
from .cartconfig.yaml next to .cart/, and may be overridden with CART_*
environment variables or a .env file.

Fails if .cart/ already exists in the current directory.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	if _, err := storage.Init("."); err != nil {
		return err
	}

	fmt.Printf("Initialized empty cart in .cart/\n")
	return nil
}
