package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mod-updater/internal/types"
)

func TestClassifyKey(t *testing.T) {
	tests := []struct {
		key  string
		want types.Namespace
	}{
		{key: "@maven", want: types.NamespaceRepository},
		{key: "$minecraft.target", want: types.NamespaceMetadata},
		{key: "$custom", want: types.NamespaceMetadata},
		{key: "loader_version", want: types.NamespaceTemplate},
		{key: "a@b", want: types.NamespaceTemplate},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, err := ClassifyKey(tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassifyKeyEmpty(t *testing.T) {
	_, err := ClassifyKey("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty key")
}

func TestParseRepositoryValue(t *testing.T) {
	assert.Equal(t, types.ValueKindLiteral, ParseRepositoryValue("https://maven.fabricmc.net/").Kind)
	alias := ParseRepositoryValue("@fabric")
	assert.Equal(t, types.ValueKindRepoAlias, alias.Kind)
	assert.Equal(t, "@fabric", alias.Name)
	meta := ParseRepositoryValue("$mirror")
	assert.Equal(t, types.ValueKindMetaRef, meta.Kind)
	assert.Equal(t, "mirror", meta.Name)
	assert.Equal(t, types.ValueKindLiteral, ParseRepositoryValue("").Kind)
}

func TestParseTemplateValue(t *testing.T) {
	dep, err := ParseTemplateValue("@fabric,net.fabricmc,fabric-loader")
	require.NoError(t, err)
	assert.Equal(t, types.ValueKindDependency, dep.Kind)
	assert.Equal(t, types.DependencyRef{Repo: "@fabric", Group: "net.fabricmc", Artifact: "fabric-loader"}, dep.Ref)
	assert.True(t, dep.Ref.IsAlias())

	known, err := ParseTemplateValue("$minecraft.required")
	require.NoError(t, err)
	assert.Equal(t, types.ValueKindWellKnown, known.Kind)
	assert.Equal(t, types.WellKnownMinecraftRequired, known.WellKnown)

	meta, err := ParseTemplateValue("$mod_version")
	require.NoError(t, err)
	assert.Equal(t, types.ValueKindMetaRef, meta.Kind)
	assert.Equal(t, "mod_version", meta.Name)

	literal, err := ParseTemplateValue("1.0.0")
	require.NoError(t, err)
	assert.Equal(t, types.ValueKindLiteral, literal.Kind)
}

func TestParseDependencyRefMalformed(t *testing.T) {
	for _, raw := range []string{"@fabric", "@fabric,net.fabricmc", "@fabric,,loader"} {
		_, err := ParseDependencyRef(raw)
		require.Error(t, err, raw)
	}
}

func TestParseDependencyRefLiteralURL(t *testing.T) {
	ref, err := ParseDependencyRef("https://maven.example.com/,com.example,lib")
	require.NoError(t, err)
	assert.False(t, ref.IsAlias())
	assert.Equal(t, "https://maven.example.com/", ref.Repo)
}

func TestRequiredVersion(t *testing.T) {
	got, ok := RequiredVersion("21w07a", "1.17")
	require.True(t, ok)
	assert.Equal(t, "1.17-alpha.21.07.a", got)

	_, ok = RequiredVersion("1.16.5", "1.17")
	assert.False(t, ok)

	_, ok = RequiredVersion("21w07a", "")
	assert.False(t, ok)

	_, ok = RequiredVersion("", "1.17")
	assert.False(t, ok)
}
