package app

import (
	"os"
	"time"

	"mod-updater/internal/adapters"
	"mod-updater/internal/core"
	"mod-updater/internal/ports"
)

const DefaultConfigName = "updater.properties"

type Service struct {
	Config    ports.ConfigSourcePort
	Writer    ports.PropertiesWriterPort
	Maven     ports.MavenMetadataPort
	Platform  ports.PlatformMetaPort
	Cache     ports.LookupCache
	Tree      ports.ProjectTreePort
	Relocator ports.RelocatorPort
	Remapper  ports.RemapperPort
	VCS       ports.VCSPort
	Report    ports.ReportPort
	LookupEnv func(string) (string, bool)
}

type ServiceOptions struct {
	HTTPTimeout   time.Duration
	HTTPAttempts  int
	FabricMetaURL string
	CacheSize     int
}

func NewService(opts ServiceOptions) (Service, error) {
	httpCfg := adapters.HTTPConfig{Timeout: opts.HTTPTimeout, Attempts: opts.HTTPAttempts}
	cache, err := adapters.NewLookupCacheAdapter(opts.CacheSize)
	if err != nil {
		return Service{}, err
	}
	properties := adapters.NewPropertiesFileAdapter()
	return Service{
		Config:    properties,
		Writer:    properties,
		Maven:     adapters.NewMavenMetadataAdapter(httpCfg),
		Platform:  adapters.NewFabricMetaAdapter(opts.FabricMetaURL, httpCfg),
		Cache:     cache,
		Tree:      adapters.NewProjectTreeAdapter(),
		Relocator: adapters.NewRelocatorAdapter(),
		Remapper:  adapters.NewGradleRemapperAdapter(),
		VCS:       adapters.NewGitAdapter(),
		Report:    adapters.NewNamespaceReportAdapter(),
		LookupEnv: os.LookupEnv,
	}, nil
}

func (s Service) resolver() core.Resolver {
	resolver := core.NewResolver(s.Config, s.Maven, s.Platform, s.Cache)
	if s.LookupEnv != nil {
		resolver.LookupEnv = s.LookupEnv
	}
	return resolver
}
