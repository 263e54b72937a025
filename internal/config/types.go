package config

import "github.com/openzeppelin/ui-builder-cli/internal/builder"

// Config holds all uibuilder configuration.
type Config struct {
	DefaultNetwork string `json:"default_network"` // network registry name
	Environment    string `json:"environment"`     // "local" | "staging" | "production"
	Author         string `json:"author,omitempty"`
	License        string `json:"license,omitempty"`
	// ExplorerAPIKeys maps explorer provider names ("etherscan") to API
	// keys kept in plain config. Keys stored in the OS keychain via the
	// keystore take precedence.
	ExplorerAPIKeys map[string]string `json:"explorer_api_keys,omitempty"`

	// internal: config dir path used for Save()
	configDir string
}

// FormDraft is a saved in-progress form: the loaded contract plus the form
// configuration built for one of its functions.
type FormDraft struct {
	Name      string                     `json:"name"`
	Network   string                     `json:"network"`
	Schema    *builder.ContractSchema    `json:"schema"`
	Form      *builder.BuilderFormConfig `json:"form"`
	SavedAt   string                     `json:"saved_at"`
	UpdatedAt string                     `json:"updated_at,omitempty"`
}

// DraftsFile is the structure of drafts.json.
type DraftsFile struct {
	Drafts []FormDraft `json:"drafts"`
}

// ContractEntry is a contract the user has loaded before, kept so the
// wizard can offer it again without refetching.
type ContractEntry struct {
	Name    string                  `json:"name"`
	Network string                  `json:"network"`
	Address string                  `json:"address,omitempty"`
	Schema  *builder.ContractSchema `json:"schema"`
}

// ContractsFile is the structure of contracts.json.
type ContractsFile struct {
	Contracts []ContractEntry `json:"contracts"`
}
