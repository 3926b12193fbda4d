package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// Lookup resolves a single `repo,group,artifact` reference against the
// project's repositories.
func (s Service) Lookup(ctx context.Context, req LookupRequest) (LookupResult, error) {
	reference := strings.TrimSpace(req.Reference)
	if reference == "" {
		return LookupResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("dependency reference is required")
	}
	p, err := s.load(ctx, req.ProjectRequest, false)
	if err != nil {
		return LookupResult{}, err
	}
	version, err := p.namespace.LookupDependency(ctx, reference)
	if err != nil {
		return LookupResult{}, err
	}
	return LookupResult{Reference: reference, Version: version}, nil
}
