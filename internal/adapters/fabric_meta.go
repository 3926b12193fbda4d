package adapters

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"mod-updater/internal/ports"
	"mod-updater/internal/types"
)

const DefaultFabricMetaURL = "https://meta.fabricmc.net"

// FabricMetaAdapter reads loader and yarn versions from the Fabric meta
// service.
type FabricMetaAdapter struct {
	BaseURL string
	HTTP    HTTPConfig
}

func NewFabricMetaAdapter(baseURL string, cfg HTTPConfig) FabricMetaAdapter {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultFabricMetaURL
	}
	return FabricMetaAdapter{BaseURL: baseURL, HTTP: cfg}
}

type fabricLoaderEntry struct {
	Loader   *fabricComponent `json:"loader"`
	Mappings *fabricComponent `json:"mappings"`
}

type fabricComponent struct {
	Version string `json:"version"`
}

func (a FabricMetaAdapter) LoaderVersions(ctx context.Context, target string) (types.PlatformVersions, error) {
	if strings.TrimSpace(target) == "" {
		return types.PlatformVersions{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("minecraft target is empty")
	}
	endpoint := strings.TrimRight(a.BaseURL, "/") + "/v1/versions/loader/" + url.PathEscape(target)
	body, err := fetch(ctx, endpoint, "application/json", a.HTTP)
	if err != nil {
		return types.PlatformVersions{}, err
	}
	return parseFabricLoaderVersions(body, endpoint)
}

// parseFabricLoaderVersions takes the first, most recent, entry of the
// listing.
func parseFabricLoaderVersions(body []byte, endpoint string) (types.PlatformVersions, error) {
	var listing []fabricLoaderEntry
	if err := json.Unmarshal(body, &listing); err != nil {
		return types.PlatformVersions{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("lookup failed: malformed fabric meta response " + endpoint).
			WithCause(err)
	}
	if len(listing) == 0 {
		return types.PlatformVersions{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("bad Minecraft version, no info was returned")
	}
	first := listing[0]
	if first.Loader == nil || strings.TrimSpace(first.Loader.Version) == "" {
		return types.PlatformVersions{}, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("something is not right, no loader was returned")
	}
	if first.Mappings == nil || strings.TrimSpace(first.Mappings.Version) == "" {
		return types.PlatformVersions{}, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("something is not right, no mappings was returned")
	}
	return types.PlatformVersions{
		Loader:   strings.TrimSpace(first.Loader.Version),
		Mappings: strings.TrimSpace(first.Mappings.Version),
	}, nil
}

var _ ports.PlatformMetaPort = FabricMetaAdapter{}
