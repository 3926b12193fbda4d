package types

// Namespace is the class a raw configuration key belongs to, selected by
// the key's first character.
type Namespace string

const (
	NamespaceRepository Namespace = "repository"
	NamespaceMetadata   Namespace = "metadata"
	NamespaceTemplate   Namespace = "template"
)

const (
	RepositorySigil = '@'
	MetadataSigil   = '$'
)

type ModdingAPI string

const (
	ModdingAPINone   ModdingAPI = ""
	ModdingAPIFabric ModdingAPI = "fabric"
)

// ValueKind tags a parsed configuration value.
type ValueKind string

const (
	ValueKindLiteral    ValueKind = "literal"
	ValueKindRepoAlias  ValueKind = "repo-alias"
	ValueKindMetaRef    ValueKind = "meta-ref"
	ValueKindDependency ValueKind = "dependency"
	ValueKindWellKnown  ValueKind = "well-known"
)

// WellKnown names a built-in template substitution.
type WellKnown string

const (
	WellKnownMinecraftRequired WellKnown = "minecraft.required"
	WellKnownMinecraftTarget   WellKnown = "minecraft.target"
	WellKnownMinecraftSnapshot WellKnown = "minecraft.snapshot"
	WellKnownMappings          WellKnown = "mappings"
	WellKnownLoader            WellKnown = "loader"
	WellKnownProperties        WellKnown = "properties"
)

type ChangeDirection string

const (
	ChangeUpgrade   ChangeDirection = "upgrade"
	ChangeDowngrade ChangeDirection = "downgrade"
	ChangeChanged   ChangeDirection = "changed"
)

// Task names one step of the update pipeline.
type Task string

const (
	TaskDeleteMappings  Task = "delete-mappings"
	TaskMigrateMappings Task = "migrate-mappings"
	TaskMoveMappings    Task = "move-mappings"
	TaskUpdate          Task = "update"
)
