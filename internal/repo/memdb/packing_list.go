package memdb

import (
	"context"
	"sort"

	"bbl-admins-portal/internal/entity"
	"bbl-admins-portal/internal/repo/repo_errors"

	"github.com/google/uuid"
)

type PackingListRepo struct {
	store *Store
}

func NewPackingListRepo(store *Store) *PackingListRepo {
	return &PackingListRepo{store}
}

func (r *PackingListRepo) CreateForm(_ context.Context, form *entity.PackingListForm) (string, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	form.Id = uuid.NewString()
	r.store.forms[form.Id] = cloneForm(form)

	return form.Id, nil
}

func (r *PackingListRepo) GetFormById(_ context.Context, id string) (*entity.PackingListForm, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	form, ok := r.store.forms[id]
	if !ok {
		return nil, repo_errors.ErrNotFound
	}
	copied := cloneForm(&form)
	sortSubmissions(copied.Submissions)

	return &copied, nil
}

func (r *PackingListRepo) ListForms(_ context.Context) ([]entity.PackingListForm, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	forms := make([]entity.PackingListForm, 0, len(r.store.forms))
	for _, form := range r.store.forms {
		copied := cloneForm(&form)
		sortSubmissions(copied.Submissions)
		forms = append(forms, copied)
	}
	sort.Slice(forms, func(i, j int) bool { return forms[i].CreatedAt.After(forms[j].CreatedAt) })

	return forms, nil
}

func (r *PackingListRepo) AddSubmission(_ context.Context, formId string, submission *entity.PackingListSubmission) (string, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	form, ok := r.store.forms[formId]
	if !ok {
		return "", repo_errors.ErrNotFound
	}

	submission.Id = uuid.NewString()
	submission.FormId = formId
	form.Submissions = append(form.Submissions, *submission)
	r.store.forms[formId] = form

	return submission.Id, nil
}

func (r *PackingListRepo) DeleteSubmissions(_ context.Context, formId string, ids []string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	form, ok := r.store.forms[formId]
	if !ok {
		return repo_errors.ErrNotFound
	}

	remove := make(map[string]bool, len(ids))
	for _, id := range ids {
		remove[id] = true
	}

	kept := form.Submissions[:0]
	for _, submission := range form.Submissions {
		if !remove[submission.Id] {
			kept = append(kept, submission)
		}
	}
	form.Submissions = kept
	r.store.forms[formId] = form

	return nil
}

func sortSubmissions(submissions []entity.PackingListSubmission) {
	sort.Slice(submissions, func(i, j int) bool {
		return submissions[i].Date.After(submissions[j].Date)
	})
}

func cloneForm(form *entity.PackingListForm) entity.PackingListForm {
	copied := *form
	copied.Fields = append([]entity.FormField(nil), form.Fields...)
	copied.Submissions = append([]entity.PackingListSubmission(nil), form.Submissions...)
	if form.TrackingNumber != nil {
		ref := *form.TrackingNumber
		copied.TrackingNumber = &ref
	}

	return copied
}
