package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/openzeppelin/ui-builder-cli/internal/config"
	"github.com/openzeppelin/ui-builder-cli/internal/export"
	"github.com/openzeppelin/ui-builder-cli/internal/network"
	"github.com/openzeppelin/ui-builder-cli/internal/ui"
)

var (
	buildOutDir string
	buildDraft  string
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Interactive wizard: network → contract → function → fields → export",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Print(ui.Banner())

		result, err := ui.RunWizard(network.NewRegistry(), newAdapters)
		if err != nil {
			return err
		}
		if result == nil {
			fmt.Println(ui.Meta("Cancelled."))
			return nil
		}

		if buildDraft != "" {
			err := cfg.UpsertDraft(config.FormDraft{
				Name:    buildDraft,
				Network: result.Network.Name,
				Schema:  result.Schema,
				Form:    result.Form,
			})
			if err != nil {
				return fmt.Errorf("saving draft: %w", err)
			}
			fmt.Println(ui.Success(fmt.Sprintf("Draft %q saved", buildDraft)))
		}

		exporter, err := export.NewExporter(newAdapters(result.Network))
		if err != nil {
			return err
		}

		sp := ui.NewSpinner("Exporting project…")
		sp.Start()
		arch, err := exporter.ExportApp(cmd.Context(), result.Form, result.Schema, result.Network, export.Options{
			ProjectName: result.ProjectName,
			Author:      cfg.Author,
			License:     cfg.License,
			Environment: export.Environment(result.Environment),
		})
		sp.Stop()
		if err != nil {
			return fmt.Errorf("exporting: %w", err)
		}

		if err := os.MkdirAll(buildOutDir, 0o755); err != nil {
			return err
		}
		outPath := filepath.Join(buildOutDir, arch.FileName)
		if err := os.WriteFile(outPath, arch.Data, 0o644); err != nil {
			return fmt.Errorf("writing archive: %w", err)
		}

		fmt.Println(ui.Success(fmt.Sprintf("Exported %s", outPath)))
		fmt.Println(ui.Meta("unzip it, then: pnpm install && pnpm dev"))
		return nil
	},
}

func init() {
	buildCmd.Flags().StringVarP(&buildOutDir, "output", "o", ".", "output directory for the archive")
	buildCmd.Flags().StringVar(&buildDraft, "draft", "", "also save the form as a named draft")
}
