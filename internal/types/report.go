package types

type PropertyChange struct {
	Key       string
	Old       string
	New       string
	Direction ChangeDirection
}

type PropertiesReport struct {
	Path    string
	Applied bool
	Changes []PropertyChange
}

type ResolvedNamespace struct {
	MinecraftTarget   string            `yaml:"minecraft_target,omitempty"`
	MinecraftSnapshot string            `yaml:"minecraft_snapshot,omitempty"`
	ModdingAPI        string            `yaml:"modding_api,omitempty"`
	Loader            string            `yaml:"loader,omitempty"`
	Mappings          string            `yaml:"mappings,omitempty"`
	Properties        string            `yaml:"properties"`
	Recursive         bool              `yaml:"recursive"`
	PullFirst         bool              `yaml:"pull_first"`
	Repositories      map[string]string `yaml:"repositories,omitempty"`
	Template          []Entry           `yaml:"template"`
}
