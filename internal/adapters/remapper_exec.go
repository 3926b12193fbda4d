package adapters

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"mod-updater/internal/ports"
	"mod-updater/internal/shared"
	"mod-updater/internal/types"
)

// CommandRunner executes name with args in dir and returns its combined
// output.
type CommandRunner func(ctx context.Context, dir string, name string, args ...string) ([]byte, error)

func execRunner(ctx context.Context, dir string, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	return cmd.CombinedOutput()
}

// GradleRemapperAdapter runs the loom migrateMappings task through the
// project's Gradle wrapper when one is present.
type GradleRemapperAdapter struct {
	GOOS string
	Run  CommandRunner
}

func NewGradleRemapperAdapter() GradleRemapperAdapter {
	return GradleRemapperAdapter{GOOS: runtime.GOOS, Run: execRunner}
}

func (a GradleRemapperAdapter) Migrate(ctx context.Context, root string, mappings string, api string) error {
	if strings.TrimSpace(mappings) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("mappings version is not resolved, cannot migrate")
	}
	argv := remapCommand(a.goos(), root, mappings, api, fileExists)
	log.Info().Str("dir", root).Strs("command", argv).Msg("migrating mappings")
	run := a.Run
	if run == nil {
		run = execRunner
	}
	output, err := run(ctx, root, argv[0], argv[1:]...)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("migrateMappings failed").
			WithCause(shared.CommandError(output, err))
	}
	log.Debug().Str("output", strings.TrimSpace(string(output))).Msg("migrateMappings finished")
	return nil
}

func (a GradleRemapperAdapter) goos() string {
	if a.GOOS == "" {
		return runtime.GOOS
	}
	return a.GOOS
}

func remapCommand(goos string, root string, mappings string, api string, exists func(string) bool) []string {
	var argv []string
	windows := strings.EqualFold(goos, "windows")
	switch {
	case windows && exists(filepath.Join(root, "gradlew.bat")):
		argv = []string{"./gradlew.bat"}
	case !windows && exists(filepath.Join(root, "gradlew")):
		argv = []string{"sh", "./gradlew"}
	default:
		argv = []string{"gradle"}
	}
	argv = append(argv, "migrateMappings", "--mappings", mappings, "clean")
	if types.ModdingAPI(api) == types.ModdingAPIFabric {
		argv = append(argv, "cleanLoom")
	}
	return argv
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

var _ ports.RemapperPort = GradleRemapperAdapter{}
