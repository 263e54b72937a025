package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openzeppelin/ui-builder-cli/internal/network"
	"github.com/openzeppelin/ui-builder-cli/internal/ui"
)

var networksCmd = &cobra.Command{
	Use:   "networks",
	Short: "Manage target networks",
	RunE: func(cmd *cobra.Command, args []string) error {
		return networksListCmd.RunE(cmd, args)
	},
}

var networksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all supported networks",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg := network.NewRegistry()
		t := ui.NewTable([]ui.Column{
			{Title: "Name", Width: 18},
			{Title: "Display", Width: 22},
			{Title: "Ecosystem", Width: 10},
			{Title: "Chain ID", Width: 10},
			{Title: "Currency", Width: 10},
			{Title: "Testnet", Width: 8},
		})

		count := 0
		for _, n := range reg.All() {
			if testnet && !n.IsTestnet {
				continue
			}
			chainID := "—"
			if n.ChainID != 0 {
				chainID = fmt.Sprintf("%d", n.ChainID)
			}
			isTestnet := ""
			if n.IsTestnet {
				isTestnet = "yes"
			}
			t.AddRow(ui.Row{
				ui.NetworkName(n.Name),
				n.DisplayName,
				string(n.Ecosystem),
				chainID,
				n.NativeCurrency,
				isTestnet,
			})
			count++
		}

		fmt.Println(t.Render())
		fmt.Printf("%s\n", ui.Meta(fmt.Sprintf("%d networks · default: %s", count, cfg.DefaultNetwork)))
		return nil
	},
}

var networksUseCmd = &cobra.Command{
	Use:   "use <network>",
	Short: "Set the default network",
	Long: `Set the default network and persist it to config.

Examples:
  uibuilder networks use sepolia
  uibuilder networks use solana-devnet`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg := network.NewRegistry()
		name := args[0]

		if _, err := reg.GetByName(name); err != nil {
			return fmt.Errorf("unknown network %q — run `uibuilder networks list` to see all networks", name)
		}

		cfg.DefaultNetwork = name
		if err := cfg.Save(); err != nil {
			return err
		}

		fmt.Println(ui.Success(fmt.Sprintf("Default network set to %s", ui.NetworkName(name))))
		return nil
	},
}

func init() {
	networksCmd.AddCommand(networksListCmd, networksUseCmd)
}
