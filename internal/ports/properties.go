package ports

import "mod-updater/internal/types"

// ConfigSourcePort reads the ordered raw entries of an updater configuration
// file.
type ConfigSourcePort interface {
	LoadEntries(path string) ([]types.Entry, error)
}

// PropertiesWriterPort rewrites pre-existing keys of a dependency
// declaration file.
type PropertiesWriterPort interface {
	Apply(path string, template []types.Entry, dryRun bool) (types.PropertiesReport, error)
}
