package adapters

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"mod-updater/internal/ports"
	"mod-updater/internal/types"
)

type NamespaceReportAdapter struct{}

func NewNamespaceReportAdapter() NamespaceReportAdapter {
	return NamespaceReportAdapter{}
}

func (a NamespaceReportAdapter) Encode(ns types.ResolvedNamespace) ([]byte, error) {
	data, err := yaml.Marshal(ns)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to marshal resolved namespace").
			WithCause(err)
	}
	return data, nil
}

func (a NamespaceReportAdapter) Write(path string, ns types.ResolvedNamespace) error {
	if strings.TrimSpace(path) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output path is required")
	}
	data, err := a.Encode(ns)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create output directory").
			WithCause(err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write resolved namespace").
			WithCause(err)
	}
	return nil
}

var _ ports.ReportPort = NamespaceReportAdapter{}
