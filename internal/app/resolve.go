package app

import (
	"context"
	"strings"
)

// Resolve loads the namespace without touching the project tree.
func (s Service) Resolve(ctx context.Context, req ResolveRequest) (ResolveResult, error) {
	p, err := s.load(ctx, req.ProjectRequest, false)
	if err != nil {
		return ResolveResult{}, err
	}
	snapshot := p.namespace.Snapshot()
	result := ResolveResult{Root: p.root, Namespace: snapshot}
	if output := strings.TrimSpace(req.Output); output != "" {
		if err := s.Report.Write(output, snapshot); err != nil {
			return ResolveResult{}, err
		}
		result.Output = output
		return result, nil
	}
	encoded, err := s.Report.Encode(snapshot)
	if err != nil {
		return ResolveResult{}, err
	}
	result.Encoded = encoded
	return result, nil
}
