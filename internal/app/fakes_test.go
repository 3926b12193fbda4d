package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/require"

	"mod-updater/internal/adapters"
	"mod-updater/internal/types"
)

type fakeMaven struct {
	releases map[string]string
	calls    int
}

func (f *fakeMaven) LatestRelease(_ context.Context, url string) (string, error) {
	f.calls++
	version, ok := f.releases[url]
	if !ok {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("lookup failed: " + url)
	}
	return version, nil
}

type fakePlatform struct {
	versions types.PlatformVersions
}

func (f fakePlatform) LoaderVersions(context.Context, string) (types.PlatformVersions, error) {
	return f.versions, nil
}

type migrateCall struct {
	root     string
	mappings string
	api      string
}

type fakeRemapper struct {
	calls []migrateCall
	err   error
}

func (f *fakeRemapper) Migrate(_ context.Context, root string, mappings string, api string) error {
	f.calls = append(f.calls, migrateCall{root: root, mappings: mappings, api: api})
	return f.err
}

// fakeVCS rewrites the updater configuration on pull, standing in for an
// upstream change.
type fakeVCS struct {
	pulled  []string
	rewrite func(root string)
}

func (f *fakeVCS) Pull(_ context.Context, root string) error {
	f.pulled = append(f.pulled, root)
	if f.rewrite != nil {
		f.rewrite(root)
	}
	return nil
}

func writeFile(t *testing.T, path string, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

type testService struct {
	Service
	maven    *fakeMaven
	remapper *fakeRemapper
	vcs      *fakeVCS
}

func newTestService(t *testing.T, releases map[string]string) testService {
	t.Helper()
	cache, err := adapters.NewLookupCacheAdapter(0)
	require.NoError(t, err)
	maven := &fakeMaven{releases: releases}
	remapper := &fakeRemapper{}
	vcs := &fakeVCS{}
	props := adapters.NewPropertiesFileAdapter()
	svc := Service{
		Config:    props,
		Writer:    props,
		Maven:     maven,
		Platform:  fakePlatform{versions: types.PlatformVersions{Loader: "0.11.3", Mappings: "1.16.5+build.5"}},
		Cache:     cache,
		Tree:      adapters.NewProjectTreeAdapter(),
		Relocator: adapters.NewRelocatorAdapter(),
		Remapper:  remapper,
		VCS:       vcs,
		Report:    adapters.NewNamespaceReportAdapter(),
		LookupEnv: func(string) (string, bool) { return "", false },
	}
	return testService{Service: svc, maven: maven, remapper: remapper, vcs: vcs}
}
