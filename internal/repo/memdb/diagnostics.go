package memdb

import "context"

type DiagnosticsRepo struct{}

func NewDiagnosticsRepo() *DiagnosticsRepo {
	return &DiagnosticsRepo{}
}

func (r *DiagnosticsRepo) Ping(_ context.Context) error {
	return nil
}
