package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openzeppelin/ui-builder-cli/internal/config"
	"github.com/openzeppelin/ui-builder-cli/internal/network"
	"github.com/openzeppelin/ui-builder-cli/internal/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage uibuilder configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		pairs := [][2]string{
			{"Config dir", cfg.Dir()},
			{"Default network", cfg.DefaultNetwork},
			{"Environment", cfg.Environment},
			{"Author", cfg.Author},
			{"License", cfg.License},
		}
		fmt.Println(ui.KeyValueBlock("Configuration", pairs))
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value and persist it.

Keys:
  default-network   network used when --network is omitted
  environment       export versioning policy: local | staging | production
  author            package.json author for exported projects
  license           package.json license for exported projects`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		switch key {
		case "default-network":
			if _, err := network.NewRegistry().GetByName(value); err != nil {
				return fmt.Errorf("unknown network %q", value)
			}
			cfg.DefaultNetwork = value
		case "environment":
			switch value {
			case "local", "staging", "production":
				cfg.Environment = value
			default:
				return fmt.Errorf("environment must be local, staging, or production")
			}
		case "author":
			cfg.Author = value
		case "license":
			cfg.License = value
		default:
			return fmt.Errorf("unknown config key %q", key)
		}
		if err := cfg.Save(); err != nil {
			return err
		}
		fmt.Println(ui.Success(fmt.Sprintf("%s set to %s", key, value)))
		return nil
	},
}

var configSetAPIKeyCmd = &cobra.Command{
	Use:   "set-api-key <provider> <key>",
	Short: "Store an explorer API key in the OS keychain",
	Long: `Store an explorer API key. The key goes to the OS keychain when one is
available, otherwise to the plain config file.

Example:
  uibuilder config set-api-key etherscan ABCD1234`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		provider, key := args[0], args[1]
		if err := cfg.SetExplorerAPIKey(provider, key, config.DefaultKeystore()); err != nil {
			return err
		}
		if err := cfg.Save(); err != nil {
			return err
		}
		fmt.Println(ui.Success(fmt.Sprintf("API key for %s stored", provider)))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd, configSetCmd, configSetAPIKeyCmd)
}
