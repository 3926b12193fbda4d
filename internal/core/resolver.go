package core

import (
	"context"
	"os"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"mod-updater/internal/ports"
	"mod-updater/internal/types"
)

// Environment variables that override $minecraft.target, in priority order.
const (
	EnvMinecraftTarget = "minecraft.target"
	EnvMCVersion       = "mc_version"
)

const (
	keyMinecraftTarget   = "$minecraft.target"
	keyMinecraftSnapshot = "$minecraft.snapshot"
	keyModdingAPI        = "$modding.api"
	keyProperties        = "$properties"
	keyRecursive         = "$recursive"
	keyPullFirst         = "$pull_first"
)

// Resolver turns an updater configuration into a resolved Namespace.
type Resolver struct {
	Source    ports.ConfigSourcePort
	Maven     ports.MavenMetadataPort
	Platform  ports.PlatformMetaPort
	Cache     ports.LookupCache
	LookupEnv func(string) (string, bool)
}

func NewResolver(source ports.ConfigSourcePort, maven ports.MavenMetadataPort, platform ports.PlatformMetaPort, cache ports.LookupCache) Resolver {
	return Resolver{
		Source:    source,
		Maven:     maven,
		Platform:  platform,
		Cache:     cache,
		LookupEnv: os.LookupEnv,
	}
}

// partition holds the raw namespaces split out of a configuration file.
type partition struct {
	repositories []types.Entry
	metadata     map[string]string
	template     []types.Entry

	minecraftTarget   string
	minecraftSnapshot string
	moddingAPI        string
	properties        string
	recursive         bool
	pullFirst         bool
}

func (r Resolver) Load(ctx context.Context, path string) (*Namespace, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("updater properties path is required")
	}
	if r.Source == nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("config source not configured")
	}
	entries, err := r.Source.LoadEntries(path)
	if err != nil {
		return nil, err
	}
	return r.LoadEntries(ctx, entries)
}

// LoadEntries runs partition, platform resolution and reference resolution
// over entries, in that order.
func (r Resolver) LoadEntries(ctx context.Context, entries []types.Entry) (*Namespace, error) {
	part, err := partitionEntries(entries)
	if err != nil {
		return nil, err
	}

	ns := &Namespace{
		metadata:          part.metadata,
		minecraftTarget:   r.platformTarget(part.minecraftTarget),
		minecraftSnapshot: part.minecraftSnapshot,
		moddingAPI:        types.ModdingAPI(part.moddingAPI),
		properties:        part.properties,
		recursive:         part.recursive,
		pullFirst:         part.pullFirst,
		maven:             r.Maven,
		cache:             r.Cache,
	}
	assert.NotEmpty(ctx, ns.properties, "properties filename must be resolved")

	if err := r.resolvePlatform(ctx, ns); err != nil {
		return nil, err
	}
	ns.repositories = resolveRepositories(part.repositories, part.metadata)
	if err := resolveTemplate(ctx, ns, part.template); err != nil {
		return nil, err
	}
	return ns, nil
}

func partitionEntries(entries []types.Entry) (partition, error) {
	part := partition{
		metadata:   map[string]string{},
		properties: DefaultPropertiesFile,
		recursive:  true,
	}
	repoIndex := map[string]int{}
	templateIndex := map[string]int{}
	for _, entry := range entries {
		namespace, err := ClassifyKey(entry.Key)
		if err != nil {
			return partition{}, err
		}
		switch namespace {
		case types.NamespaceRepository:
			part.repositories = upsertEntry(part.repositories, repoIndex, entry)
		case types.NamespaceMetadata:
			switch entry.Key {
			case keyMinecraftTarget:
				part.minecraftTarget = strings.TrimSpace(entry.Value)
			case keyMinecraftSnapshot:
				part.minecraftSnapshot = strings.TrimSpace(entry.Value)
			case keyModdingAPI:
				part.moddingAPI = strings.TrimSpace(entry.Value)
			case keyProperties:
				if value := strings.TrimSpace(entry.Value); value != "" {
					part.properties = value
				}
			case keyRecursive:
				part.recursive = entry.Value == "true"
			case keyPullFirst:
				part.pullFirst = entry.Value == "true"
			default:
				part.metadata[entry.Key[1:]] = entry.Value
			}
		default:
			part.template = upsertEntry(part.template, templateIndex, entry)
		}
	}
	return part, nil
}

func upsertEntry(list []types.Entry, index map[string]int, entry types.Entry) []types.Entry {
	if i, ok := index[entry.Key]; ok {
		list[i] = entry
		return list
	}
	index[entry.Key] = len(list)
	return append(list, entry)
}

func (r Resolver) platformTarget(fromFile string) string {
	lookup := r.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}
	for _, name := range []string{EnvMinecraftTarget, EnvMCVersion} {
		if value, ok := lookup(name); ok && strings.TrimSpace(value) != "" {
			return strings.TrimSpace(value)
		}
	}
	return fromFile
}

func (r Resolver) resolvePlatform(ctx context.Context, ns *Namespace) error {
	if ns.moddingAPI == types.ModdingAPINone || ns.minecraftTarget == "" {
		log.Info().Msg("minecraft target or modding api not configured, no mapping changes applied")
		return nil
	}
	switch ns.moddingAPI {
	case types.ModdingAPIFabric:
		if r.Platform == nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("platform metadata source not configured")
		}
		versions, err := r.Platform.LoaderVersions(ctx, ns.minecraftTarget)
		if err != nil {
			return err
		}
		ns.loader = versions.Loader
		ns.mappings = versions.Mappings
		log.Info().
			Str("target", ns.minecraftTarget).
			Str("loader", ns.loader).
			Str("mappings", ns.mappings).
			Msg("resolved platform versions")
	default:
		log.Warn().Str("api", string(ns.moddingAPI)).Msg("unsupported modding api, no mapping changes applied")
	}
	return nil
}

// resolveRepositories follows each alias or metadata reference exactly one
// hop against the raw table. Unresolvable references keep their raw value.
func resolveRepositories(raw []types.Entry, metadata map[string]string) map[string]string {
	rawTable := make(map[string]string, len(raw))
	for _, entry := range raw {
		rawTable[entry.Key] = entry.Value
	}
	resolved := make(map[string]string, len(raw))
	for _, entry := range raw {
		resolved[entry.Key] = entry.Value
		value := ParseRepositoryValue(entry.Value)
		switch value.Kind {
		case types.ValueKindRepoAlias:
			if target, ok := rawTable[value.Name]; ok {
				resolved[entry.Key] = target
			}
		case types.ValueKindMetaRef:
			if target, ok := metadata[value.Name]; ok {
				resolved[entry.Key] = target
			}
		}
	}
	return resolved
}

func resolveTemplate(ctx context.Context, ns *Namespace, raw []types.Entry) error {
	ns.template = make([]types.Entry, 0, len(raw))
	ns.index = make(map[string]int, len(raw))
	for _, entry := range raw {
		value, err := ParseTemplateValue(entry.Value)
		if err != nil {
			return err
		}
		resolved := entry.Value
		switch value.Kind {
		case types.ValueKindDependency:
			version, err := ns.Dependency(ctx, value.Ref)
			if err != nil {
				return err
			}
			resolved = version
		case types.ValueKindWellKnown:
			if v, ok := ns.wellKnown(value.WellKnown); ok {
				resolved = v
			}
		case types.ValueKindMetaRef:
			if v, ok := ns.metadata[value.Name]; ok {
				resolved = v
			}
		}
		ns.index[entry.Key] = len(ns.template)
		ns.template = append(ns.template, types.Entry{Key: entry.Key, Value: resolved})
	}
	return nil
}

func (n *Namespace) wellKnown(kind types.WellKnown) (string, bool) {
	switch kind {
	case types.WellKnownMinecraftRequired:
		return RequiredVersion(n.minecraftTarget, n.minecraftSnapshot)
	case types.WellKnownMinecraftTarget:
		return n.MinecraftTarget()
	case types.WellKnownMinecraftSnapshot:
		return n.MinecraftSnapshot()
	case types.WellKnownMappings:
		return n.Mappings()
	case types.WellKnownLoader:
		return n.Loader()
	case types.WellKnownProperties:
		return n.properties, true
	default:
		return "", false
	}
}

// PullFirst reports whether entries ask for a version control pull before
// the update runs.
func PullFirst(entries []types.Entry) bool {
	part, err := partitionEntries(entries)
	return err == nil && part.pullFirst
}
