package adapters

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"mod-updater/internal/ports"
)

type ProjectTreeAdapter struct{}

func NewProjectTreeAdapter() ProjectTreeAdapter {
	return ProjectTreeAdapter{}
}

// FindRoot returns dir when it holds configName, otherwise its parent, so
// the tool can be started from inside a sub-project.
func (a ProjectTreeAdapter) FindRoot(dir string, configName string) (string, error) {
	if strings.TrimSpace(dir) == "" {
		dir = "."
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to resolve project directory").
			WithCause(err)
	}
	if fileExists(filepath.Join(abs, configName)) {
		return abs, nil
	}
	return filepath.Dir(abs), nil
}

// SubProjects lists the immediate sub-directories of root that contain
// propertiesFile, sorted by name.
func (a ProjectTreeAdapter) SubProjects(root string, propertiesFile string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("failed to list project directory").
			WithCause(err)
	}
	var projects []string
	for _, entry := range entries {
		if !entry.IsDir() || shouldSkipProjectDir(entry.Name()) {
			continue
		}
		dir := filepath.Join(root, entry.Name())
		if fileExists(filepath.Join(dir, propertiesFile)) {
			projects = append(projects, dir)
		}
	}
	sort.Strings(projects)
	return projects, nil
}

func shouldSkipProjectDir(name string) bool {
	switch name {
	case ".git", ".gradle", "build", RemappedDir:
		return true
	default:
		return false
	}
}

var _ ports.ProjectTreePort = ProjectTreeAdapter{}
