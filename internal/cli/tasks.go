package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"mod-updater/internal/app"
	"mod-updater/internal/types"
)

type taskCommand struct {
	task  types.Task
	short string
}

var (
	taskUpdate = taskCommand{
		task:  types.TaskUpdate,
		short: "Resolve the latest versions and rewrite the dependency properties",
	}
	taskDeleteMappings = taskCommand{
		task:  types.TaskDeleteMappings,
		short: "Delete remapped sources left by a previous migration",
	}
	taskMigrateMappings = taskCommand{
		task:  types.TaskMigrateMappings,
		short: "Run the mappings migration for the resolved mappings version",
	}
	taskMoveMappings = taskCommand{
		task:  types.TaskMoveMappings,
		short: "Move remapped sources over the main source tree",
	}
)

type taskOptions struct {
	DryRun bool
}

func newTaskCommand(tc taskCommand) *cobra.Command {
	opts := taskOptions{}
	cmd := &cobra.Command{
		Use:   string(tc.task),
		Short: tc.short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTask(cmd.Context(), cmd, tc.task, opts)
		},
	}
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Report changes without touching the project")
	return cmd
}

func runTask(ctx context.Context, cmd *cobra.Command, task types.Task, opts taskOptions) error {
	service, err := newAppService()
	if err != nil {
		return err
	}
	result, err := service.Run(ctx, app.RunRequest{
		ProjectRequest: projectRequest(),
		Task:           task,
		DryRun:         resolveBool(cmd, opts.DryRun, "dry_run", "dry-run"),
	})
	if err != nil {
		return err
	}
	printRunResult(cmd.OutOrStdout(), result)
	return nil
}

func printRunResult(w io.Writer, result app.RunResult) {
	for _, report := range result.Reports {
		if !report.Applied {
			continue
		}
		for _, change := range report.Changes {
			fmt.Fprintf(w, "%s: %s %s -> %s (%s)\n", report.Path, change.Key, change.Old, change.New, change.Direction)
		}
	}
	fmt.Fprintf(w, "completed %d task(s) in %s\n", len(result.Tasks), result.Root)
}
