package adapters

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"mod-updater/internal/ports"
	"mod-updater/internal/shared"
)

type GitAdapter struct {
	Run CommandRunner
}

func NewGitAdapter() GitAdapter {
	return GitAdapter{Run: execRunner}
}

func (a GitAdapter) Pull(ctx context.Context, root string) error {
	run := a.Run
	if run == nil {
		run = execRunner
	}
	log.Info().Str("dir", root).Msg("pulling before update")
	output, err := run(ctx, root, "git", "pull", "--ff-only")
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("git pull failed").
			WithCause(shared.CommandError(output, err))
	}
	log.Debug().Str("output", strings.TrimSpace(string(output))).Msg("git pull finished")
	return nil
}

var _ ports.VCSPort = GitAdapter{}
