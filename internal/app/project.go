package app

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"mod-updater/internal/core"
)

// project is a loaded updater configuration together with the directories
// it applies to.
type project struct {
	root      string
	namespace *core.Namespace
}

func (p project) projects(s Service) ([]string, error) {
	dirs := []string{p.root}
	if !p.namespace.Recursive() {
		return dirs, nil
	}
	subs, err := s.Tree.SubProjects(p.root, p.namespace.PropertiesFile())
	if err != nil {
		return nil, err
	}
	return append(dirs, subs...), nil
}

func (s Service) locate(req ProjectRequest) (string, string, error) {
	configName := strings.TrimSpace(req.ConfigName)
	if configName == "" {
		configName = DefaultConfigName
	}
	if s.Tree == nil {
		return "", "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("project tree not configured")
	}
	root, err := s.Tree.FindRoot(req.Dir, configName)
	if err != nil {
		return "", "", err
	}
	return root, filepath.Join(root, configName), nil
}

// load reads the configuration, pulls first when requested, and resolves
// the namespace.
func (s Service) load(ctx context.Context, req ProjectRequest, allowPull bool) (project, error) {
	root, configPath, err := s.locate(req)
	if err != nil {
		return project{}, err
	}
	entries, err := s.Config.LoadEntries(configPath)
	if err != nil {
		return project{}, err
	}
	if allowPull && core.PullFirst(entries) {
		if s.VCS == nil {
			return project{}, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("version control not configured")
		}
		if err := s.VCS.Pull(ctx, root); err != nil {
			return project{}, err
		}
		if entries, err = s.Config.LoadEntries(configPath); err != nil {
			return project{}, err
		}
	}
	ns, err := s.resolver().LoadEntries(ctx, entries)
	if err != nil {
		return project{}, err
	}
	log.Debug().Str("root", root).Int("template", len(ns.Template())).Msg("loaded updater properties")
	return project{root: root, namespace: ns}, nil
}

func propertiesPath(dir string, ns *core.Namespace) string {
	return filepath.Join(dir, ns.PropertiesFile())
}
