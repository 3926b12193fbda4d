package adapters

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const loaderMetadata = `<?xml version="1.0" encoding="UTF-8"?>
<metadata>
  <groupId>net.fabricmc</groupId>
  <artifactId>fabric-loader</artifactId>
  <versioning>
    <latest>0.11.4-beta</latest>
    <release>0.11.3</release>
    <versions>
      <version>0.11.2</version>
      <version>0.11.3</version>
    </versions>
  </versioning>
</metadata>`

func TestMavenMetadataAdapter_LatestRelease(t *testing.T) {
	var paths []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		assert.Equal(t, userAgent, r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte(loaderMetadata))
	}))
	defer server.Close()

	adapter := NewMavenMetadataAdapter(HTTPConfig{})
	version, err := adapter.LatestRelease(t.Context(), server.URL+"/net/fabricmc/fabric-loader/maven-metadata.xml")
	require.NoError(t, err)
	assert.Equal(t, "0.11.3", version)
	assert.Equal(t, []string{"/net/fabricmc/fabric-loader/maven-metadata.xml"}, paths)
}

func TestMavenMetadataAdapter_NotFound(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	adapter := NewMavenMetadataAdapter(HTTPConfig{})
	_, err := adapter.LatestRelease(t.Context(), server.URL+"/missing/maven-metadata.xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}

func TestMavenMetadataAdapter_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	adapter := NewMavenMetadataAdapter(HTTPConfig{})
	_, err := adapter.LatestRelease(t.Context(), url+"/maven-metadata.xml")
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInternal, errbuilder.CodeOf(err))
}

func TestParseMavenRelease(t *testing.T) {
	_, err := parseMavenRelease([]byte("<metadata><versioning>"), "u")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed maven metadata")

	_, err = parseMavenRelease([]byte("<metadata><versioning><latest>1</latest></versioning></metadata>"), "u")
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))

	version, err := parseMavenRelease([]byte("<metadata><versioning><release> 2.0 </release></versioning></metadata>"), "u")
	require.NoError(t, err)
	assert.Equal(t, "2.0", version)
}
