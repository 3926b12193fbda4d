package core

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"mod-updater/internal/types"
)

var wellKnownRefs = map[string]types.WellKnown{
	string(types.WellKnownMinecraftRequired): types.WellKnownMinecraftRequired,
	string(types.WellKnownMinecraftTarget):   types.WellKnownMinecraftTarget,
	string(types.WellKnownMinecraftSnapshot): types.WellKnownMinecraftSnapshot,
	string(types.WellKnownMappings):          types.WellKnownMappings,
	string(types.WellKnownLoader):            types.WellKnownLoader,
	string(types.WellKnownProperties):        types.WellKnownProperties,
}

// ClassifyKey returns the namespace a raw configuration key belongs to.
func ClassifyKey(key string) (types.Namespace, error) {
	if key == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("updater properties contain an empty key")
	}
	switch key[0] {
	case types.RepositorySigil:
		return types.NamespaceRepository, nil
	case types.MetadataSigil:
		return types.NamespaceMetadata, nil
	default:
		return types.NamespaceTemplate, nil
	}
}

// ParseRepositoryValue parses the value of an @-key. Repository values are
// base URLs, aliases of other repositories or metadata references.
func ParseRepositoryValue(raw string) types.Value {
	if raw == "" {
		return types.Value{Kind: types.ValueKindLiteral, Raw: raw}
	}
	switch raw[0] {
	case types.RepositorySigil:
		return types.Value{Kind: types.ValueKindRepoAlias, Raw: raw, Name: raw}
	case types.MetadataSigil:
		return types.Value{Kind: types.ValueKindMetaRef, Raw: raw, Name: raw[1:]}
	default:
		return types.Value{Kind: types.ValueKindLiteral, Raw: raw}
	}
}

// ParseTemplateValue parses the value of a template entry.
func ParseTemplateValue(raw string) (types.Value, error) {
	if raw == "" {
		return types.Value{Kind: types.ValueKindLiteral, Raw: raw}, nil
	}
	switch raw[0] {
	case types.RepositorySigil:
		ref, err := ParseDependencyRef(raw)
		if err != nil {
			return types.Value{}, err
		}
		return types.Value{Kind: types.ValueKindDependency, Raw: raw, Ref: ref}, nil
	case types.MetadataSigil:
		name := raw[1:]
		if known, ok := wellKnownRefs[name]; ok {
			return types.Value{Kind: types.ValueKindWellKnown, Raw: raw, Name: name, WellKnown: known}, nil
		}
		return types.Value{Kind: types.ValueKindMetaRef, Raw: raw, Name: name}, nil
	default:
		return types.Value{Kind: types.ValueKindLiteral, Raw: raw}, nil
	}
}

// ParseDependencyRef splits a `repo,group,artifact` reference. Any extra
// fields after the artifact are ignored.
func ParseDependencyRef(raw string) (types.DependencyRef, error) {
	parts := strings.Split(raw, ",")
	if len(parts) < 3 {
		return types.DependencyRef{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("malformed dependency reference %q, expected repo,group,artifact", raw))
	}
	ref := types.DependencyRef{
		Repo:     strings.TrimSpace(parts[0]),
		Group:    strings.TrimSpace(parts[1]),
		Artifact: strings.TrimSpace(parts[2]),
	}
	if ref.Repo == "" || ref.Group == "" || ref.Artifact == "" {
		return types.DependencyRef{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("malformed dependency reference %q, empty field", raw))
	}
	return ref, nil
}
