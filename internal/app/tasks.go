package app

import (
	"context"
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"mod-updater/internal/core"
	"mod-updater/internal/types"
)

// taskDependencies mirrors the task graph: each task runs after the one it
// depends on.
var taskDependencies = map[types.Task]types.Task{
	types.TaskMigrateMappings: types.TaskDeleteMappings,
	types.TaskMoveMappings:    types.TaskMigrateMappings,
	types.TaskUpdate:          types.TaskMoveMappings,
}

// Plan returns the ordered tasks needed to run target. The update task only
// depends on remapping when a platform target is configured.
func Plan(target types.Task, minecraft bool) ([]types.Task, error) {
	if _, ok := taskDependencies[target]; !ok && target != types.TaskDeleteMappings {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unknown task %q", target))
	}
	var plan []types.Task
	for task := target; ; {
		plan = append([]types.Task{task}, plan...)
		next, ok := taskDependencies[task]
		if !ok || (task == types.TaskUpdate && !minecraft) {
			break
		}
		task = next
	}
	return plan, nil
}

func (s Service) runTask(ctx context.Context, task types.Task, p project, dirs []string, dryRun bool, result *RunResult) error {
	logger := log.With().Str("task", string(task)).Logger()
	ns := p.namespace
	switch task {
	case types.TaskDeleteMappings:
		for _, dir := range dirs {
			if dryRun {
				logger.Info().Str("dir", dir).Msg("would delete remapped sources")
				continue
			}
			if err := s.Relocator.Clean(dir); err != nil {
				return err
			}
		}
	case types.TaskMigrateMappings:
		if !ns.IsMinecraft() {
			logger.Info().Msg("minecraft target not configured, skipping")
			return nil
		}
		mappings, ok := ns.Mappings()
		if !ok {
			return errbuilder.New().
				WithCode(errbuilder.CodeFailedPrecondition).
				WithMsg("mappings version is not resolved, cannot migrate")
		}
		if dryRun {
			logger.Info().Str("mappings", mappings).Msg("would migrate mappings")
			return nil
		}
		if err := s.Remapper.Migrate(ctx, p.root, mappings, string(ns.ModdingAPI())); err != nil {
			return err
		}
	case types.TaskMoveMappings:
		for _, dir := range dirs {
			if dryRun {
				logger.Info().Str("dir", dir).Msg("would move remapped sources")
				continue
			}
			if err := s.Relocator.Relocate(dir); err != nil {
				return errbuilder.New().
					WithCode(errbuilder.CodeInternal).
					WithMsg("failed to move remapped sources").
					WithCause(err)
			}
		}
	case types.TaskUpdate:
		template := ns.Template()
		for _, dir := range dirs {
			report, err := s.Writer.Apply(propertiesPath(dir, ns), template, dryRun)
			if err != nil {
				return err
			}
			report = core.AnnotateChanges(report)
			for _, change := range report.Changes {
				logger.Info().
					Str("file", report.Path).
					Str("key", change.Key).
					Str("from", change.Old).
					Str("to", change.New).
					Str("direction", string(change.Direction)).
					Bool("dry_run", dryRun).
					Msg("property updated")
			}
			result.Reports = append(result.Reports, report)
		}
	}
	result.Tasks = append(result.Tasks, task)
	return nil
}
