package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"mod-updater/internal/types"
)

// Run executes task and everything it depends on against the project found
// from req. Sub-projects are processed one after another.
func (s Service) Run(ctx context.Context, req RunRequest) (RunResult, error) {
	task := req.Task
	if task == "" {
		task = types.TaskUpdate
	}
	p, err := s.load(ctx, req.ProjectRequest, !req.DryRun)
	if err != nil {
		return RunResult{}, err
	}
	plan, err := Plan(task, p.namespace.IsMinecraft())
	if err != nil {
		return RunResult{}, err
	}
	dirs, err := p.projects(s)
	if err != nil {
		return RunResult{}, err
	}
	result := RunResult{Root: p.root, Projects: dirs}
	for _, step := range plan {
		log.Debug().Str("task", string(step)).Msg("running task")
		if err := s.runTask(ctx, step, p, dirs, req.DryRun, &result); err != nil {
			return result, err
		}
	}
	return result, nil
}
