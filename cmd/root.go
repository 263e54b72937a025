package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/openzeppelin/ui-builder-cli/internal/config"
)

// Version is the current release. Overridable via build ldflags:
//
//	go build -ldflags "-X github.com/openzeppelin/ui-builder-cli/cmd.Version=1.2.3" .
var Version = "1.0.0"

var (
	cfgDir  string
	cfg     *config.Config
	verbose bool
	testnet bool
)

// rootCmd is the top-level command.
var rootCmd = &cobra.Command{
	Use:   "uibuilder",
	Short: "Contract UI builder and exporter",
	Long: `uibuilder — Build transaction form UIs for smart contracts and export
them as ready-to-run React apps.

  Load a contract from an address or definition, pick a function, shape
  its form fields, and export a complete typescript-react-vite project —
  on EVM chains, Solana, Stellar, and Midnight.

Run "uibuilder build" for the interactive wizard, or use load/export for
scripted flows.`,
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Load config (skip for commands that don't need it).
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		var err error
		cfg, err = config.Load(cfgDir)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// UIBUILDER_CONFIG_DIR env var overrides --config flag.
	if envDir := os.Getenv("UIBUILDER_CONFIG_DIR"); envDir != "" {
		cfgDir = envDir
	}

	rootCmd.PersistentFlags().StringVar(&cfgDir, "config", cfgDir, "config directory (default: ~/.uibuilder)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&testnet, "testnet", false, "restrict network listings to testnets")

	rootCmd.AddCommand(
		networksCmd,
		loadCmd,
		exportCmd,
		buildCmd,
		configCmd,
	)
}
