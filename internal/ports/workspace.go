package ports

import "context"

// RelocatorPort moves a project's remapped sources back over its source
// root.
type RelocatorPort interface {
	Relocate(projectDir string) error
	Clean(projectDir string) error
}

// ProjectTreePort discovers the project root and its sub-projects.
type ProjectTreePort interface {
	FindRoot(dir string, configName string) (string, error)
	SubProjects(root string, propertiesFile string) ([]string, error)
}

// RemapperPort runs the external mapping migration in a project root.
type RemapperPort interface {
	Migrate(ctx context.Context, root string, mappings string, api string) error
}

// VCSPort updates the working tree before an update run.
type VCSPort interface {
	Pull(ctx context.Context, root string) error
}
