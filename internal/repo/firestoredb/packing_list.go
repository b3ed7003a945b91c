package firestoredb

import (
	"context"

	"bbl-admins-portal/internal/entity"
	"bbl-admins-portal/internal/repo/repo_errors"
	"bbl-admins-portal/pkg/fsclient"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	packingListCollection    = "packingListForms"
	submissionsSubcollection = "submissions"
)

type PackingListRepo struct {
	*fsclient.Client
}

func NewPackingListRepo(client *fsclient.Client) *PackingListRepo {
	return &PackingListRepo{client}
}

func (r *PackingListRepo) col() *firestore.CollectionRef {
	return r.Firestore.Collection(packingListCollection)
}

func (r *PackingListRepo) CreateForm(ctx context.Context, form *entity.PackingListForm) (string, error) {
	ref := r.col().NewDoc()
	form.Id = ref.ID

	if _, err := ref.Create(ctx, form); err != nil {
		return "", err
	}

	return ref.ID, nil
}

// GetFormById loads the form together with its submissions, newest first.
func (r *PackingListRepo) GetFormById(ctx context.Context, id string) (*entity.PackingListForm, error) {
	snap, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}

	return r.formFromSnap(ctx, snap)
}

func (r *PackingListRepo) ListForms(ctx context.Context) ([]entity.PackingListForm, error) {
	iter := r.col().OrderBy("createdAt", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	forms := make([]entity.PackingListForm, 0)
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		form, err := r.formFromSnap(ctx, snap)
		if err != nil {
			return nil, err
		}
		forms = append(forms, *form)
	}

	return forms, nil
}

func (r *PackingListRepo) AddSubmission(ctx context.Context, formId string, submission *entity.PackingListSubmission) (string, error) {
	formRef := r.col().Doc(formId)
	if _, err := formRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return "", repo_errors.ErrNotFound
		}

		return "", err
	}

	ref := formRef.Collection(submissionsSubcollection).NewDoc()
	submission.Id = ref.ID
	submission.FormId = formId

	if _, err := ref.Create(ctx, submission); err != nil {
		return "", err
	}

	return ref.ID, nil
}

// DeleteSubmissions removes the given submissions in one atomic batch write.
func (r *PackingListRepo) DeleteSubmissions(ctx context.Context, formId string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	subs := r.col().Doc(formId).Collection(submissionsSubcollection)
	batch := r.Firestore.Batch()
	for _, id := range ids {
		batch.Delete(subs.Doc(id))
	}
	_, err := batch.Commit(ctx)

	return err
}

func (r *PackingListRepo) formFromSnap(ctx context.Context, snap *firestore.DocumentSnapshot) (*entity.PackingListForm, error) {
	var form entity.PackingListForm
	if err := snap.DataTo(&form); err != nil {
		return nil, err
	}
	form.Id = snap.Ref.ID

	subIter := snap.Ref.Collection(submissionsSubcollection).
		OrderBy("date", firestore.Desc).
		Documents(ctx)
	defer subIter.Stop()

	form.Submissions = make([]entity.PackingListSubmission, 0)
	for {
		subSnap, err := subIter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var submission entity.PackingListSubmission
		if err := subSnap.DataTo(&submission); err != nil {
			return nil, err
		}
		submission.Id = subSnap.Ref.ID
		submission.FormId = form.Id
		form.Submissions = append(form.Submissions, submission)
	}

	return &form, nil
}
