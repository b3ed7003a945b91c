package memdb

import (
	"context"
	"sort"

	"bbl-admins-portal/internal/entity"
	"bbl-admins-portal/internal/repo/repo_errors"

	"github.com/google/uuid"
)

type AdminRepo struct {
	store *Store
}

func NewAdminRepo(store *Store) *AdminRepo {
	return &AdminRepo{store}
}

func (r *AdminRepo) CreateAdmin(_ context.Context, admin *entity.AdminUser) (string, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if admin.Id == "" {
		admin.Id = uuid.NewString()
	}
	r.store.admins[admin.Id] = cloneAdmin(admin)

	return admin.Id, nil
}

func (r *AdminRepo) GetAdminById(_ context.Context, id string) (*entity.AdminUser, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	admin, ok := r.store.admins[id]
	if !ok {
		return nil, repo_errors.ErrNotFound
	}
	copied := cloneAdmin(&admin)

	return &copied, nil
}

func (r *AdminRepo) GetAdminByEmail(_ context.Context, email string) (*entity.AdminUser, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, admin := range r.store.admins {
		if admin.Email == email {
			copied := cloneAdmin(&admin)
			return &copied, nil
		}
	}

	return nil, repo_errors.ErrNotFound
}

func (r *AdminRepo) ListAdmins(_ context.Context) ([]entity.AdminUser, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	admins := make([]entity.AdminUser, 0, len(r.store.admins))
	for _, admin := range r.store.admins {
		admins = append(admins, cloneAdmin(&admin))
	}
	sort.Slice(admins, func(i, j int) bool { return admins[i].Name < admins[j].Name })

	return admins, nil
}

func (r *AdminRepo) UpdateAdmin(_ context.Context, admin *entity.AdminUser) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.admins[admin.Id]; !ok {
		return repo_errors.ErrNotFound
	}
	r.store.admins[admin.Id] = cloneAdmin(admin)

	return nil
}

func (r *AdminRepo) UpdateAdminTx(_ context.Context, id string, mutate func(*entity.AdminUser) error) (*entity.AdminUser, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	admin, ok := r.store.admins[id]
	if !ok {
		return nil, repo_errors.ErrNotFound
	}

	if err := mutate(&admin); err != nil {
		return nil, err
	}
	r.store.admins[id] = cloneAdmin(&admin)

	return &admin, nil
}

func (r *AdminRepo) DeleteAdmin(_ context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	delete(r.store.admins, id)

	return nil
}

func cloneAdmin(a *entity.AdminUser) entity.AdminUser {
	copied := *a
	copied.Permissions = append([]entity.Permission(nil), a.Permissions...)

	return copied
}
