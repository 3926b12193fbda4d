package core

import (
	"context"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"mod-updater/internal/types"
)

type fakeMaven struct {
	releases map[string]string
	calls    map[string]int
}

func newFakeMaven(releases map[string]string) *fakeMaven {
	return &fakeMaven{releases: releases, calls: map[string]int{}}
}

func (f *fakeMaven) LatestRelease(_ context.Context, url string) (string, error) {
	f.calls[url]++
	version, ok := f.releases[url]
	if !ok {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("lookup failed: " + url)
	}
	return version, nil
}

func (f *fakeMaven) total() int {
	n := 0
	for _, count := range f.calls {
		n += count
	}
	return n
}

type fakePlatform struct {
	versions types.PlatformVersions
	err      error
	targets  []string
}

func (f *fakePlatform) LoaderVersions(_ context.Context, target string) (types.PlatformVersions, error) {
	f.targets = append(f.targets, target)
	if f.err != nil {
		return types.PlatformVersions{}, f.err
	}
	return f.versions, nil
}

type mapCache map[string]string

func (c mapCache) Get(key string) (string, bool) {
	value, ok := c[key]
	return value, ok
}

func (c mapCache) Add(key string, value string) {
	c[key] = value
}

func noEnv(string) (string, bool) { return "", false }

func envOf(values map[string]string) func(string) (string, bool) {
	return func(name string) (string, bool) {
		value, ok := values[name]
		return value, ok
	}
}

func entries(pairs ...string) []types.Entry {
	out := make([]types.Entry, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, types.Entry{Key: pairs[i], Value: pairs[i+1]})
	}
	return out
}
