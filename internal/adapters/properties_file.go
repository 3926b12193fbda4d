package adapters

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/magiconair/properties"

	"mod-updater/internal/ports"
	"mod-updater/internal/types"
)

// PropertiesFileAdapter reads and rewrites Java-style .properties files,
// keeping key order and key comments.
type PropertiesFileAdapter struct{}

func NewPropertiesFileAdapter() PropertiesFileAdapter {
	return PropertiesFileAdapter{}
}

func (a PropertiesFileAdapter) LoadEntries(path string) ([]types.Entry, error) {
	props, err := loadProperties(path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("failed to read updater properties").
			WithCause(err)
	}
	keys := props.Keys()
	out := make([]types.Entry, 0, len(keys))
	for _, key := range keys {
		value, _ := props.Get(key)
		out = append(out, types.Entry{Key: key, Value: value})
	}
	return out, nil
}

// Apply overwrites the keys of path that also appear in template. Keys only
// present in template are not added. A missing file is left alone.
func (a PropertiesFileAdapter) Apply(path string, template []types.Entry, dryRun bool) (types.PropertiesReport, error) {
	report := types.PropertiesReport{Path: path}
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return report, nil
	}
	if err != nil {
		return report, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to stat properties file").
			WithCause(err)
	}
	props, err := loadProperties(path)
	if err != nil {
		return report, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse properties file").
			WithCause(err)
	}
	report.Applied = true
	values := make(map[string]string, len(template))
	for _, entry := range template {
		values[entry.Key] = entry.Value
	}
	for _, key := range props.Keys() {
		next, ok := values[key]
		if !ok {
			continue
		}
		prev, _ := props.Get(key)
		if prev == next {
			continue
		}
		if _, _, err := props.Set(key, next); err != nil {
			return report, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to set property " + key).
				WithCause(err)
		}
		report.Changes = append(report.Changes, types.PropertyChange{Key: key, Old: prev, New: next})
	}
	if dryRun || len(report.Changes) == 0 {
		return report, nil
	}
	var buf bytes.Buffer
	if _, err := props.WriteComment(&buf, "# ", properties.UTF8); err != nil {
		return report, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode properties file").
			WithCause(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), info.Mode().Perm()); err != nil {
		return report, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write properties file").
			WithCause(err)
	}
	return report, nil
}

func loadProperties(path string) (*properties.Properties, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("properties path is empty")
	}
	loader := properties.Loader{Encoding: properties.UTF8, DisableExpansion: true}
	props, err := loader.LoadFile(path)
	if err != nil {
		return nil, err
	}
	props.WriteSeparator = "="
	return props, nil
}

var _ ports.ConfigSourcePort = PropertiesFileAdapter{}
var _ ports.PropertiesWriterPort = PropertiesFileAdapter{}
