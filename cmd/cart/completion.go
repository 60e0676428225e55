package main

import (
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jacksmith/rocketcart/internal/cli"
	"github.com/jacksmith/rocketcart/internal/model"
	"github.com/jacksmith/rocketcart/internal/storage"
)

var completionCmd = &cobra.Command{
	Use:   "completion",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for cart.

To load completions:

Bash:
  $ source <(cart completion bash)
  # To load completions for each session, execute once:
  $ cart completion bash > /etc/bash_completion.d/cart

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc
  # To load completions for each session, execute once:
  $ cart completion zsh > "${fpath[1]}/_cart"

Fish:
  $ cart completion fish | source
  # To load completions for each session, execute once:
  $ cart completion fish > ~/.config/fish/completions/cart.fish
`,
}

var completionBashCmd = &cobra.Command{
	Use:   "bash",
	Short: "Generate bash completion script",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return rootCmd.GenBashCompletion(os.Stdout)
	},
}

var completionZshCmd = &cobra.Command{
	Use:   "zsh",
	Short: "Generate zsh completion script",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return rootCmd.GenZshCompletion(os.Stdout)
	},
}

var completionFishCmd = &cobra.Command{
	Use:   "fish",
	Short: "Generate fish completion script",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return rootCmd.GenFishCompletion(os.Stdout, true)
	},
}

func init() {
	completionCmd.AddCommand(completionBashCmd)
	completionCmd.AddCommand(completionZshCmd)
	completionCmd.AddCommand(completionFishCmd)
	rootCmd.AddCommand(completionCmd)
}

// completeCartIDs completes the first argument with the ids of products in
// the cart. It reads storage directly and never calls the stock service.
func completeCartIDs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	c, err := loadStoredCart(cmd)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var completions []string
	for _, e := range c {
		id := strconv.Itoa(e.ID)
		if strings.HasPrefix(id, toComplete) {
			completions = append(completions, id+"\t"+cli.Truncate(e.Title, 40)+" (x"+strconv.Itoa(e.Amount)+")")
		}
	}

	return completions, cobra.ShellCompDirectiveNoFileComp
}

func loadStoredCart(cmd *cobra.Command) (model.Cart, error) {
	ctx := commandContext(cmd)

	s, err := storage.Open(".")
	if err != nil {
		return nil, err
	}
	cfg, err := s.LoadConfig()
	if err != nil {
		return nil, err
	}
	kv, err := s.OpenKV(ctx, cfg)
	if err != nil {
		return nil, err
	}
	defer kv.Close()

	value, ok, err := kv.Get(ctx, cfg.StorageKey)
	if err != nil || !ok {
		return nil, err
	}
	return model.DecodeCart(value)
}
