package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/openzeppelin/ui-builder-cli/internal/adapter"
	"github.com/openzeppelin/ui-builder-cli/internal/builder"
	"github.com/openzeppelin/ui-builder-cli/internal/network"
)

// Environment selects the internal-package versioning policy for an export.
type Environment string

const (
	EnvLocal      Environment = "local"
	EnvStaging    Environment = "staging"
	EnvProduction Environment = "production"
)

// Internal package namespaces. UI-library packages ship from the monorepo;
// adapter packages ship per ecosystem.
const (
	internalScope     = "@openzeppelin/ui-"
	adapterScope      = "@openzeppelin/ui-adapter-"
	stagingAdapterTag = "rc"
)

// coreDependencies ship with every exported project regardless of ecosystem.
var coreDependencies = map[string]string{
	"react":                     "^18.3.1",
	"react-dom":                 "^18.3.1",
	"@openzeppelin/ui-renderer": "^1.0.0",
	"@openzeppelin/ui-types":    "^1.0.0",
}

var coreDevDependencies = map[string]string{
	"@types/react":     "^18.3.12",
	"@types/react-dom": "^18.3.1",
}

// PackageManager computes and rewrites the exported project's package.json.
type PackageManager struct {
	registry *adapter.Registry
}

// NewPackageManager creates a package manager over the adapter registry.
func NewPackageManager(reg *adapter.Registry) *PackageManager {
	return &PackageManager{registry: reg}
}

// adapterConfig resolves the ecosystem's export manifest. An unregistered
// ecosystem is not an error here (core-only export); a registered adapter
// that fails to produce its manifest is.
func (m *PackageManager) adapterConfig(eco network.Ecosystem) (*adapter.AdapterConfig, error) {
	a, err := m.registry.Get(eco)
	if err != nil {
		if errors.Is(err, adapter.ErrAdapterNotFound) {
			return nil, nil
		}
		return nil, err
	}
	cfg, err := a.ExportConfig()
	if err != nil {
		return nil, fmt.Errorf("resolving %s adapter export config: %w", eco, err)
	}
	return cfg, nil
}

// Dependencies returns the runtime dependency map for a form: the core set,
// the ecosystem adapter's runtime deps, and field-type-driven extras.
func (m *PackageManager) Dependencies(form *builder.BuilderFormConfig, eco network.Ecosystem) (map[string]string, error) {
	deps := make(map[string]string, len(coreDependencies)+8)
	for k, v := range coreDependencies {
		deps[k] = v
	}

	cfg, err := m.adapterConfig(eco)
	if err != nil {
		return nil, err
	}
	if cfg != nil {
		for k, v := range cfg.Dependencies.Runtime {
			deps[k] = v
		}
	}

	if form != nil && form.HasFieldType(builder.FieldTypeDate) {
		deps["react-datepicker"] = "^7.5.0"
	}
	return deps, nil
}

// DevDependencies mirrors Dependencies for dev packages.
func (m *PackageManager) DevDependencies(form *builder.BuilderFormConfig, eco network.Ecosystem) (map[string]string, error) {
	deps := make(map[string]string, len(coreDevDependencies)+4)
	for k, v := range coreDevDependencies {
		deps[k] = v
	}

	cfg, err := m.adapterConfig(eco)
	if err != nil {
		return nil, err
	}
	if cfg != nil {
		for k, v := range cfg.Dependencies.Dev {
			deps[k] = v
		}
		for k, v := range cfg.Dependencies.Build {
			deps[k] = v
		}
	}

	if form != nil && form.HasFieldType(builder.FieldTypeDate) {
		deps["@types/react-datepicker"] = "^7.0.0"
	}
	return deps, nil
}

// PatchedDependencies returns the ecosystem's pnpm patch map, or an empty
// map when the ecosystem contributes none.
func (m *PackageManager) PatchedDependencies(eco network.Ecosystem) (map[string]string, error) {
	cfg, err := m.adapterConfig(eco)
	if err != nil {
		return nil, err
	}
	if cfg == nil || len(cfg.PatchedDependencies) == 0 {
		return map[string]string{}, nil
	}
	out := make(map[string]string, len(cfg.PatchedDependencies))
	for k, v := range cfg.PatchedDependencies {
		out[k] = v
	}
	return out, nil
}

// packageJSON is the shape of the template's package.json. The template is
// ours, so the struct covers every key it contains.
type packageJSON struct {
	Name            string            `json:"name"`
	Description     string            `json:"description,omitempty"`
	Private         bool              `json:"private"`
	Version         string            `json:"version"`
	Type            string            `json:"type"`
	Author          string            `json:"author,omitempty"`
	License         string            `json:"license,omitempty"`
	Scripts         map[string]string `json:"scripts"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
	Pnpm            *pnpmSection      `json:"pnpm,omitempty"`
}

type pnpmSection struct {
	Overrides           map[string]string `json:"overrides,omitempty"`
	PatchedDependencies map[string]string `json:"patchedDependencies,omitempty"`
}

// UpdatePackageJSON rewrites the template package.json for one export:
// merges dependency maps, derives name/description from the function id
// unless overridden, applies author/license, injects pnpm sections only when
// non-empty, and applies the environment versioning policy to internal
// packages.
func (m *PackageManager) UpdatePackageJSON(raw []byte, form *builder.BuilderFormConfig, eco network.Ecosystem, functionID string, opts Options) ([]byte, error) {
	var pkg packageJSON
	if err := json.Unmarshal(raw, &pkg); err != nil {
		return nil, fmt.Errorf("parsing template package.json: %w", err)
	}

	deps, err := m.Dependencies(form, eco)
	if err != nil {
		return nil, err
	}
	devDeps, err := m.DevDependencies(form, eco)
	if err != nil {
		return nil, err
	}
	patches, err := m.PatchedDependencies(eco)
	if err != nil {
		return nil, err
	}
	cfg, err := m.adapterConfig(eco)
	if err != nil {
		return nil, err
	}

	if pkg.Dependencies == nil {
		pkg.Dependencies = map[string]string{}
	}
	if pkg.DevDependencies == nil {
		pkg.DevDependencies = map[string]string{}
	}
	for k, v := range deps {
		pkg.Dependencies[k] = v
	}
	for k, v := range devDeps {
		pkg.DevDependencies[k] = v
	}

	pkg.Name = opts.ProjectName
	if pkg.Name == "" {
		pkg.Name = ProjectName(functionID)
	}
	pkg.Description = opts.Description
	if pkg.Description == "" {
		pkg.Description = "Transaction form for " + functionNameFromForm(form, functionID)
	}
	if opts.Author != "" {
		pkg.Author = opts.Author
	}
	if opts.License != "" {
		pkg.License = opts.License
	}

	if pkg.Scripts == nil {
		pkg.Scripts = map[string]string{}
	}
	pkg.Scripts["dev"] = "vite"
	pkg.Scripts["build"] = "tsc && vite build"
	pkg.Scripts["update-renderer"] = "pnpm update @openzeppelin/ui-renderer @openzeppelin/ui-types"
	pkg.Scripts["check-deps"] = "pnpm outdated"

	applyVersionPolicy(pkg.Dependencies, opts.Environment)
	applyVersionPolicy(pkg.DevDependencies, opts.Environment)

	var overrides map[string]string
	if cfg != nil {
		overrides = cfg.Overrides
	}
	if len(patches) > 0 || len(overrides) > 0 {
		pkg.Pnpm = &pnpmSection{Overrides: overrides}
		if len(patches) > 0 {
			pkg.Pnpm.PatchedDependencies = patches
		}
	} else {
		pkg.Pnpm = nil
	}

	out, err := json.MarshalIndent(&pkg, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}

// applyVersionPolicy rewrites internal package versions per environment.
// External packages are never touched.
func applyVersionPolicy(deps map[string]string, env Environment) {
	for name := range deps {
		if !strings.HasPrefix(name, internalScope) {
			continue
		}
		switch env {
		case EnvLocal:
			if strings.HasPrefix(name, adapterScope) {
				deps[name] = "workspace:*"
			} else {
				deps[name] = "file:../../packages/" + strings.TrimPrefix(name, internalScope)
			}
		case EnvStaging:
			if strings.HasPrefix(name, adapterScope) {
				deps[name] = stagingAdapterTag
			}
			// UI-library packages keep their caret-stable versions.
		default:
			// Production keeps caret-stable versions across the board.
		}
	}
}

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// ProjectName derives a package-safe project name from a function id:
// "transfer_address_uint256" becomes "transfer-address-uint256-form".
func ProjectName(functionID string) string {
	slug := nonSlugChars.ReplaceAllString(strings.ToLower(functionID), "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = "contract"
	}
	return slug + "-form"
}

// functionNameFromForm recovers the bare function name from the id using the
// field parameter types; without fields the id itself is the name.
func functionNameFromForm(form *builder.BuilderFormConfig, functionID string) string {
	if form == nil || len(form.Fields) == 0 {
		return functionID
	}
	types := make([]string, len(form.Fields))
	for i, f := range form.Fields {
		types[i] = f.OriginalParameterType
	}
	return strings.TrimSuffix(functionID, "_"+strings.Join(types, "_"))
}
