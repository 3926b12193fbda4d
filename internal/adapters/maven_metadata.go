package adapters

import (
	"context"
	"encoding/xml"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"mod-updater/internal/ports"
)

type MavenMetadataAdapter struct {
	HTTP HTTPConfig
}

func NewMavenMetadataAdapter(cfg HTTPConfig) MavenMetadataAdapter {
	return MavenMetadataAdapter{HTTP: cfg}
}

type mavenMetadata struct {
	GroupID    string          `xml:"groupId"`
	ArtifactID string          `xml:"artifactId"`
	Versioning mavenVersioning `xml:"versioning"`
}

type mavenVersioning struct {
	Latest   string   `xml:"latest"`
	Release  string   `xml:"release"`
	Versions []string `xml:"versions>version"`
}

func (a MavenMetadataAdapter) LatestRelease(ctx context.Context, metadataURL string) (string, error) {
	body, err := fetch(ctx, metadataURL, "application/xml", a.HTTP)
	if err != nil {
		return "", err
	}
	return parseMavenRelease(body, metadataURL)
}

func parseMavenRelease(body []byte, metadataURL string) (string, error) {
	var metadata mavenMetadata
	if err := xml.Unmarshal(body, &metadata); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("lookup failed: malformed maven metadata " + metadataURL).
			WithCause(err)
	}
	release := strings.TrimSpace(metadata.Versioning.Release)
	if release == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("lookup failed: no release in " + metadataURL)
	}
	return release, nil
}

var _ ports.MavenMetadataPort = MavenMetadataAdapter{}
