// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

package generate

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/platform-engineering-labs/plansheet/internal/cli/cmd"
	"github.com/platform-engineering-labs/plansheet/internal/cli/config"
	"github.com/platform-engineering-labs/plansheet/internal/cli/display"
	"github.com/platform-engineering-labs/plansheet/internal/cli/renderer"
	"github.com/platform-engineering-labs/plansheet/internal/link"
	"github.com/platform-engineering-labs/plansheet/internal/logging"
	"github.com/platform-engineering-labs/plansheet/internal/plan"
	"github.com/platform-engineering-labs/plansheet/internal/report"
	"github.com/platform-engineering-labs/plansheet/internal/schema"
)

type GenerateOptions struct {
	PlanPath   string
	SchemaPath string
	OutputDir  string
	Format     string
}

func GenerateCmd() *cobra.Command {
	command := &cobra.Command{
		Use:   "generate",
		Short: "Generate parameter sheets from a plan file",
		PreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupClientLogging(fmt.Sprintf("%s/log/client.log", config.Config.DataDirectory()))
		},
		RunE: func(command *cobra.Command, args []string) error {
			opts := &GenerateOptions{}
			opts.PlanPath = command.Flags().Arg(0)
			opts.SchemaPath, _ = command.Flags().GetString("schema")
			opts.OutputDir, _ = command.Flags().GetString("output")
			opts.Format, _ = command.Flags().GetString("format")

			return runGenerate(opts)
		},
		Annotations: map[string]string{
			"type":     "Sheets",
			"examples": "{{.Name}} {{.Command}} ./plan.json  |  {{.Name}} {{.Command}} --schema ./schema.json --format both ./plan.json",
			"args":     "<plan file>",
		},
		SilenceErrors: true,
	}

	command.SetUsageTemplate(cmd.SimpleCmdUsageTemplate)

	command.Flags().StringP("output", "o", "output", "Directory the parameter sheets are written to")
	command.Flags().StringP("schema", "s", "", "Path to a provider schema file (terraform providers schema -json)")
	command.Flags().String("format", "html", "Output format: 'html', 'markdown' or 'both'")

	return command
}

func runGenerate(opts *GenerateOptions) error {
	err := validateGenerateOptions(opts)
	if err != nil {
		return err
	}

	display.PrintBanner()

	planDoc, err := plan.Load(opts.PlanPath)
	if err != nil {
		return err
	}

	var schemaDoc *schema.Document
	if opts.SchemaPath != "" {
		schemaDoc, err = schema.Load(opts.SchemaPath)
		if err != nil {
			return err
		}
	}

	resources := link.Attach(planDoc.Resources(), planDoc.Configuration())
	if len(resources) == 0 {
		fmt.Println("No resources found in plan")
		return nil
	}

	result := report.Build(resources, schemaDoc)
	for _, skipped := range result.Skipped {
		display.Warning(fmt.Sprintf("No table definition for resource type '%s', skipping", skipped))
	}

	var outputs []report.Output
	for _, format := range formats(opts.Format) {
		written, err := result.Write(opts.OutputDir, format)
		if err != nil {
			return err
		}
		outputs = append(outputs, written...)
	}

	if len(outputs) == 0 {
		fmt.Println("No supported resources found, nothing written")
		return nil
	}

	summary, err := renderer.SummaryTree(outputs)
	if err != nil {
		return fmt.Errorf("error rendering summary: %v", err)
	}
	fmt.Print(summary)

	display.Success(fmt.Sprintf("Successfully wrote %d parameter sheet(s) to '%s'", len(outputs), opts.OutputDir))

	return nil
}

func formats(format string) []report.Format {
	switch format {
	case "markdown":
		return []report.Format{report.FormatMarkdown}
	case "both":
		return []report.Format{report.FormatHTML, report.FormatMarkdown}
	default:
		return []report.Format{report.FormatHTML}
	}
}

func validateGenerateOptions(opts *GenerateOptions) error {
	if opts.PlanPath == "" {
		return cmd.FlagErrorf("plan file is required")
	}

	if _, err := os.Stat(opts.PlanPath); err != nil {
		return fmt.Errorf("cannot read plan file '%s': %v", opts.PlanPath, err)
	}

	if opts.SchemaPath != "" {
		if _, err := os.Stat(opts.SchemaPath); err != nil {
			return fmt.Errorf("cannot read schema file '%s': %v", opts.SchemaPath, err)
		}
	}

	switch opts.Format {
	case "html", "markdown", "both":
	default:
		return cmd.FlagErrorf("unsupported format '%s', must be 'html', 'markdown' or 'both'", opts.Format)
	}

	return nil
}
