package types

// Entry is a single key/value pair as it appears in a properties file.
type Entry struct {
	Key   string `yaml:"key"`
	Value string `yaml:"value"`
}

// Value is a configuration value parsed once into its variant.
type Value struct {
	Kind      ValueKind
	Raw       string
	Name      string
	WellKnown WellKnown
	Ref       DependencyRef
}

// DependencyRef is the `repo,group,artifact` triple of a dependency value.
// Repo is either a repository alias (leading @) or a literal base URL.
type DependencyRef struct {
	Repo     string
	Group    string
	Artifact string
}

func (r DependencyRef) IsAlias() bool {
	return len(r.Repo) > 0 && r.Repo[0] == RepositorySigil
}

// PlatformVersions is the loader/mappings pair published for a platform
// target.
type PlatformVersions struct {
	Loader   string
	Mappings string
}
