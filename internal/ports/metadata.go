package ports

import (
	"context"

	"mod-updater/internal/types"
)

// MavenMetadataPort fetches the release version advertised by a
// maven-metadata.xml document.
type MavenMetadataPort interface {
	LatestRelease(ctx context.Context, metadataURL string) (string, error)
}

// PlatformMetaPort looks up the loader and mappings versions published for
// a platform target.
type PlatformMetaPort interface {
	LoaderVersions(ctx context.Context, target string) (types.PlatformVersions, error)
}

// LookupCache memoizes release versions by metadata URL.
type LookupCache interface {
	Get(key string) (string, bool)
	Add(key string, value string)
}
