package app

import "mod-updater/internal/types"

// ProjectRequest locates the updater configuration. Dir defaults to the
// working directory and ConfigName to updater.properties.
type ProjectRequest struct {
	Dir        string
	ConfigName string
}

type ResolveRequest struct {
	ProjectRequest
	Output string
}

type ResolveResult struct {
	Root      string
	Namespace types.ResolvedNamespace
	Encoded   []byte
	Output    string
}

type LookupRequest struct {
	ProjectRequest
	Reference string
}

type LookupResult struct {
	Reference string
	Version   string
}

type RunRequest struct {
	ProjectRequest
	Task   types.Task
	DryRun bool
}

type RunResult struct {
	Root     string
	Tasks    []types.Task
	Projects []string
	Reports  []types.PropertiesReport
}
