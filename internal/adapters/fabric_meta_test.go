package adapters

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mod-updater/internal/types"
)

const fabricListing = `[
  {"loader": {"version": "0.11.3", "stable": true}, "mappings": {"version": "1.16.5+build.5", "gameVersion": "1.16.5"}},
  {"loader": {"version": "0.11.2", "stable": true}, "mappings": {"version": "1.16.5+build.4", "gameVersion": "1.16.5"}}
]`

func TestFabricMetaAdapter_LoaderVersions(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(fabricListing))
	}))
	defer server.Close()

	adapter := NewFabricMetaAdapter(server.URL+"/", HTTPConfig{})
	versions, err := adapter.LoaderVersions(t.Context(), "1.16.5")
	require.NoError(t, err)
	assert.Equal(t, "/v1/versions/loader/1.16.5", gotPath)
	assert.Equal(t, types.PlatformVersions{Loader: "0.11.3", Mappings: "1.16.5+build.5"}, versions)
}

func TestFabricMetaAdapter_DefaultBaseURL(t *testing.T) {
	adapter := NewFabricMetaAdapter("", HTTPConfig{})
	assert.Equal(t, DefaultFabricMetaURL, adapter.BaseURL)
}

func TestFabricMetaAdapter_EmptyTarget(t *testing.T) {
	adapter := NewFabricMetaAdapter("http://127.0.0.1:1", HTTPConfig{})
	_, err := adapter.LoaderVersions(t.Context(), "")
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestParseFabricLoaderVersions(t *testing.T) {
	tests := []struct {
		name string
		body string
		code errbuilder.ErrCode
		msg  string
	}{
		{name: "empty listing", body: `[]`, code: errbuilder.CodeInvalidArgument, msg: "no info was returned"},
		{name: "missing loader", body: `[{"mappings": {"version": "m"}}]`, code: errbuilder.CodeFailedPrecondition, msg: "no loader was returned"},
		{name: "missing mappings", body: `[{"loader": {"version": "l"}}]`, code: errbuilder.CodeFailedPrecondition, msg: "no mappings was returned"},
		{name: "not json", body: `<html>`, code: errbuilder.CodeInternal, msg: "malformed fabric meta response"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseFabricLoaderVersions([]byte(tt.body), "endpoint")
			require.Error(t, err)
			assert.Equal(t, tt.code, errbuilder.CodeOf(err))
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}
