package core

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"mod-updater/internal/ports"
	"mod-updater/internal/types"
)

const (
	DefaultPropertiesFile = "gradle.properties"
	CentralRepository     = "https://repo.maven.apache.org/maven2/"
	DefaultRepositoryKey  = "@default"
)

// Namespace is the fully resolved view of an updater configuration. It is
// immutable once returned by Resolver.Load.
type Namespace struct {
	metadata     map[string]string
	repositories map[string]string
	template     []types.Entry
	index        map[string]int

	minecraftTarget   string
	minecraftSnapshot string
	moddingAPI        types.ModdingAPI
	properties        string
	recursive         bool
	pullFirst         bool
	loader            string
	mappings          string

	maven ports.MavenMetadataPort
	cache ports.LookupCache
}

// Template returns a copy of the resolved template entries in file order.
func (n *Namespace) Template() []types.Entry {
	return append([]types.Entry(nil), n.template...)
}

// TemplateMap returns the resolved template keyed by entry name.
func (n *Namespace) TemplateMap() map[string]string {
	out := make(map[string]string, len(n.template))
	for _, entry := range n.template {
		out[entry.Key] = entry.Value
	}
	return out
}

func (n *Namespace) TemplateValue(key string) (string, bool) {
	i, ok := n.index[key]
	if !ok {
		return "", false
	}
	return n.template[i].Value, true
}

// Metadata returns a free-form $-scalar by its unsigiled name.
func (n *Namespace) Metadata(name string) (string, bool) {
	value, ok := n.metadata[name]
	return value, ok
}

func (n *Namespace) MetadataOr(name string, def string) string {
	if value, ok := n.metadata[name]; ok {
		return value
	}
	return def
}

// Repositories returns a copy of the resolved repository table. Keys keep
// their @ sigil.
func (n *Namespace) Repositories() map[string]string {
	out := make(map[string]string, len(n.repositories))
	for key, value := range n.repositories {
		out[key] = value
	}
	return out
}

func (n *Namespace) MinecraftTarget() (string, bool) {
	return n.minecraftTarget, n.minecraftTarget != ""
}

func (n *Namespace) MinecraftSnapshot() (string, bool) {
	return n.minecraftSnapshot, n.minecraftSnapshot != ""
}

func (n *Namespace) ModdingAPI() types.ModdingAPI { return n.moddingAPI }

func (n *Namespace) Loader() (string, bool) {
	return n.loader, n.loader != ""
}

func (n *Namespace) Mappings() (string, bool) {
	return n.mappings, n.mappings != ""
}

func (n *Namespace) PropertiesFile() string { return n.properties }

func (n *Namespace) Recursive() bool { return n.recursive }

func (n *Namespace) PullFirst() bool { return n.pullFirst }

// IsMinecraft reports whether a platform target is configured, which turns
// on the remapping tasks.
func (n *Namespace) IsMinecraft() bool { return n.minecraftTarget != "" }

// Snapshot renders the namespace for reporting.
func (n *Namespace) Snapshot() types.ResolvedNamespace {
	return types.ResolvedNamespace{
		MinecraftTarget:   n.minecraftTarget,
		MinecraftSnapshot: n.minecraftSnapshot,
		ModdingAPI:        string(n.moddingAPI),
		Loader:            n.loader,
		Mappings:          n.mappings,
		Properties:        n.properties,
		Recursive:         n.recursive,
		PullFirst:         n.pullFirst,
		Repositories:      n.Repositories(),
		Template:          n.Template(),
	}
}

// LookupDependency parses a raw `repo,group,artifact` reference and
// resolves it.
func (n *Namespace) LookupDependency(ctx context.Context, raw string) (string, error) {
	ref, err := ParseDependencyRef(raw)
	if err != nil {
		return "", err
	}
	return n.Dependency(ctx, ref)
}

// Dependency resolves the latest release of ref. Results are memoized by
// metadata URL.
func (n *Namespace) Dependency(ctx context.Context, ref types.DependencyRef) (string, error) {
	url := MetadataURL(n.repositoryBase(ref.Repo), ref.Group, ref.Artifact)
	if n.cache != nil {
		if version, ok := n.cache.Get(url); ok {
			log.Debug().Str("url", url).Str("version", version).Msg("metadata cache hit")
			return version, nil
		}
	}
	version, err := n.maven.LatestRelease(ctx, url)
	if err != nil {
		return "", err
	}
	if n.cache != nil {
		n.cache.Add(url, version)
	}
	log.Debug().Str("url", url).Str("version", version).Msg("resolved release")
	return version, nil
}

func (n *Namespace) repositoryBase(repo string) string {
	if repo == "" || repo[0] != types.RepositorySigil {
		return repo
	}
	if base, ok := n.repositories[repo]; ok {
		return base
	}
	if base, ok := n.repositories[DefaultRepositoryKey]; ok {
		log.Warn().Str("repository", repo).Str("fallback", DefaultRepositoryKey).Msg("repository not found, falling back to default")
		return base
	}
	log.Warn().Str("repository", repo).Str("fallback", CentralRepository).Msg("repository not found, falling back to Maven Central")
	return CentralRepository
}

// MetadataURL builds the maven-metadata.xml location of group:artifact
// under base.
func MetadataURL(base string, group string, artifact string) string {
	base = strings.TrimSuffix(base, "/")
	return base + "/" + strings.ReplaceAll(group, ".", "/") + "/" + artifact + "/maven-metadata.xml"
}
