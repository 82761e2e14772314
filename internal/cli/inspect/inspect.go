// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

package inspect

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/platform-engineering-labs/plansheet/internal/cli/cmd"
	"github.com/platform-engineering-labs/plansheet/internal/cli/config"
	"github.com/platform-engineering-labs/plansheet/internal/cli/display"
	"github.com/platform-engineering-labs/plansheet/internal/cli/renderer"
	"github.com/platform-engineering-labs/plansheet/internal/logging"
	"github.com/platform-engineering-labs/plansheet/internal/plan"
)

type InspectOptions struct {
	PlanPath string
}

func InspectCmd() *cobra.Command {
	command := &cobra.Command{
		Use:   "inspect",
		Short: "List the resources in a plan file and how they will be grouped",
		PreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupClientLogging(fmt.Sprintf("%s/log/client.log", config.Config.DataDirectory()))
		},
		RunE: func(command *cobra.Command, args []string) error {
			opts := &InspectOptions{}
			opts.PlanPath = command.Flags().Arg(0)

			return runInspect(opts)
		},
		Annotations: map[string]string{
			"type":     "Sheets",
			"examples": "{{.Name}} {{.Command}} ./plan.json",
			"args":     "<plan file>",
		},
		SilenceErrors: true,
	}

	command.SetUsageTemplate(cmd.SimpleCmdUsageTemplate)

	return command
}

func runInspect(opts *InspectOptions) error {
	if opts.PlanPath == "" {
		return cmd.FlagErrorf("plan file is required")
	}

	display.PrintBanner()

	planDoc, err := plan.Load(opts.PlanPath)
	if err != nil {
		return err
	}

	listing, err := renderer.ResourceTable(planDoc.Resources())
	if err != nil {
		return err
	}
	fmt.Print(listing)

	return nil
}
