package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openzeppelin/ui-builder-cli/internal/builder"
	"github.com/openzeppelin/ui-builder-cli/internal/config"
	"github.com/openzeppelin/ui-builder-cli/internal/ui"
)

var (
	loadNetwork string
	loadSave    bool
)

var loadCmd = &cobra.Command{
	Use:   "load <address|definition|@file>",
	Short: "Load a contract and list its functions",
	Long: `Load a contract schema and show its callable functions.

The source is an on-chain address (fetched from a verified-source explorer),
a raw contract definition (ABI, IDL, or contract spec JSON), or @path to a
local definition file.

Examples:
  uibuilder load 0x6B175474E89094C44Da98b954EedeAC495271d0F --network ethereum
  uibuilder load @./artifacts/Token.json --network local
  uibuilder load @./target/idl/counter.json --network solana-devnet`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		net, err := resolveNetwork(loadNetwork)
		if err != nil {
			return err
		}
		a, err := newAdapters(net).Get(net.Ecosystem)
		if err != nil {
			return err
		}
		source, err := readSource(args[0])
		if err != nil {
			return err
		}

		sp := ui.NewSpinner("Loading contract…")
		sp.Start()
		schema, err := a.LoadContract(cmd.Context(), source)
		sp.Stop()
		if err != nil {
			return fmt.Errorf("loading contract: %w", err)
		}

		pairs := [][2]string{
			{"Contract", schema.Name},
			{"Network", net.DisplayName},
			{"Ecosystem", schema.Ecosystem},
		}
		if schema.Address != "" {
			pairs = append(pairs, [2]string{"Address", ui.TruncateAddr(schema.Address)})
		}
		fmt.Println(ui.KeyValueBlock("Contract loaded", pairs))

		t := ui.NewTable([]ui.Column{
			{Title: "Function ID", Width: 40},
			{Title: "Display", Width: 24},
			{Title: "Params", Width: 6},
			{Title: "Writes", Width: 6},
		})
		for _, fn := range schema.Functions {
			writes := ""
			if fn.ModifiesState {
				writes = "yes"
			}
			t.AddRow(ui.Row{fn.ID, fn.DisplayName, fmt.Sprintf("%d", len(fn.Inputs)), writes})
		}
		fmt.Println(t.Render())
		fmt.Println(ui.Meta(fmt.Sprintf("%d functions · export one with `uibuilder export`", len(schema.Functions))))

		if loadSave {
			if err := saveContract(schema, net.Name); err != nil {
				return fmt.Errorf("saving contract: %w", err)
			}
			fmt.Println(ui.Success(fmt.Sprintf("Saved %s to %s", schema.Name, "contracts.json")))
		}
		return nil
	},
}

// saveContract upserts the schema into contracts.json, keyed by contract
// name and network.
func saveContract(schema *builder.ContractSchema, networkName string) error {
	cf, err := cfg.LoadContracts()
	if err != nil {
		return err
	}
	entry := config.ContractEntry{
		Name:    schema.Name,
		Network: networkName,
		Address: schema.Address,
		Schema:  schema,
	}
	for i, e := range cf.Contracts {
		if e.Name == entry.Name && e.Network == entry.Network {
			cf.Contracts[i] = entry
			return cfg.SaveContracts(cf)
		}
	}
	cf.Contracts = append(cf.Contracts, entry)
	return cfg.SaveContracts(cf)
}

func init() {
	loadCmd.Flags().StringVar(&loadNetwork, "network", "", "target network (default: configured default)")
	loadCmd.Flags().BoolVar(&loadSave, "save", false, "remember the contract in contracts.json")
}
