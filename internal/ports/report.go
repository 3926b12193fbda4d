package ports

import "mod-updater/internal/types"

type ReportPort interface {
	Encode(ns types.ResolvedNamespace) ([]byte, error)
	Write(path string, ns types.ResolvedNamespace) error
}
