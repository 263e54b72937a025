package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/openzeppelin/ui-builder-cli/internal/builder"
	"github.com/openzeppelin/ui-builder-cli/internal/export"
	"github.com/openzeppelin/ui-builder-cli/internal/ui"
)

var (
	exportNetwork string
	exportOutDir  string
	exportName    string
	exportEnv     string
	exportAuthor  string
	exportLicense string
)

var exportCmd = &cobra.Command{
	Use:   "export <address|definition|@file> <function>",
	Short: "Export a ready-to-run app for one contract function",
	Long: `Load a contract, build the default form for one function, and export a
complete typescript-react-vite project archive.

The function is matched by id first, then by bare name when unambiguous.

Examples:
  uibuilder export 0x6B17...1d0F transfer --network ethereum
  uibuilder export @./Token.json transfer_address_uint256 --env local -o ./out`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		net, err := resolveNetwork(exportNetwork)
		if err != nil {
			return err
		}
		adapters := newAdapters(net)
		a, err := adapters.Get(net.Ecosystem)
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

		fn, err := findFunction(schema, args[1])
		if err != nil {
			return err
		}

		fields := make([]builder.FormField, len(fn.Inputs))
		for i, in := range fn.Inputs {
			fields[i] = a.GenerateDefaultField(in)
		}
		form := builder.DefaultFormConfig(fn, fields)

		env := exportEnv
		if env == "" {
			env = cfg.Environment
		}
		author := exportAuthor
		if author == "" {
			author = cfg.Author
		}
		license := exportLicense
		if license == "" {
			license = cfg.License
		}

		exporter, err := export.NewExporter(adapters)
		if err != nil {
			return err
		}

		sp = ui.NewSpinner("Exporting project…")
		sp.Start()
		arch, err := exporter.ExportApp(cmd.Context(), form, schema, net, export.Options{
			ProjectName: exportName,
			Author:      author,
			License:     license,
			Environment: export.Environment(env),
		})
		sp.Stop()
		if err != nil {
			return fmt.Errorf("exporting: %w", err)
		}

		if err := os.MkdirAll(exportOutDir, 0o755); err != nil {
			return err
		}
		outPath := filepath.Join(exportOutDir, arch.FileName)
		if err := os.WriteFile(outPath, arch.Data, 0o644); err != nil {
			return fmt.Errorf("writing archive: %w", err)
		}

		fmt.Println(ui.Success(fmt.Sprintf("Exported %s (%d KiB)", outPath, len(arch.Data)/1024)))
		fmt.Println(ui.Meta("unzip it, then: pnpm install && pnpm dev"))
		return nil
	},
}

// findFunction matches by exact id first, then by bare name when exactly one
// function carries it.
func findFunction(schema *builder.ContractSchema, ref string) (*builder.ContractFunction, error) {
	if fn, err := schema.FunctionByID(ref); err == nil {
		return fn, nil
	}
	var matches []*builder.ContractFunction
	for i := range schema.Functions {
		if schema.Functions[i].Name == ref {
			matches = append(matches, &schema.Functions[i])
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return nil, fmt.Errorf("function %q not found — run `uibuilder load` to list functions", ref)
	default:
		ids := make([]string, len(matches))
		for i, fn := range matches {
			ids[i] = fn.ID
		}
		return nil, fmt.Errorf("function %q is overloaded, use a full id: %v", ref, ids)
	}
}

func init() {
	exportCmd.Flags().StringVar(&exportNetwork, "network", "", "target network (default: configured default)")
	exportCmd.Flags().StringVarP(&exportOutDir, "output", "o", ".", "output directory for the archive")
	exportCmd.Flags().StringVar(&exportName, "name", "", "project name (default: derived from the function)")
	exportCmd.Flags().StringVar(&exportEnv, "env", "", "versioning environment: local|staging|production")
	exportCmd.Flags().StringVar(&exportAuthor, "author", "", "package.json author")
	exportCmd.Flags().StringVar(&exportLicense, "license", "", "package.json license")
}
