package firestoredb

import (
	"context"

	"bbl-admins-portal/pkg/fsclient"

	"google.golang.org/api/iterator"
)

type DiagnosticsRepo struct {
	*fsclient.Client
}

func NewDiagnosticsRepo(client *fsclient.Client) *DiagnosticsRepo {
	return &DiagnosticsRepo{client}
}

// Ping issues a minimal read to confirm the store answers.
func (r *DiagnosticsRepo) Ping(ctx context.Context) error {
	_, err := r.Firestore.Collections(ctx).Next()
	if err != nil && err != iterator.Done {
		return err
	}

	return nil
}
