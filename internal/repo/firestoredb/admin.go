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

const adminCollection = "admins"

type AdminRepo struct {
	*fsclient.Client
}

func NewAdminRepo(client *fsclient.Client) *AdminRepo {
	return &AdminRepo{client}
}

func (r *AdminRepo) col() *firestore.CollectionRef {
	return r.Firestore.Collection(adminCollection)
}

func (r *AdminRepo) CreateAdmin(ctx context.Context, admin *entity.AdminUser) (string, error) {
	ref := r.col().NewDoc()
	if admin.Id != "" {
		// fixed ids are used for seeded accounts
		ref = r.col().Doc(admin.Id)
	}
	admin.Id = ref.ID

	if _, err := ref.Create(ctx, admin); err != nil {
		return "", err
	}

	return ref.ID, nil
}

func (r *AdminRepo) GetAdminById(ctx context.Context, id string) (*entity.AdminUser, error) {
	snap, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}

	return adminFromSnap(snap)
}

func (r *AdminRepo) GetAdminByEmail(ctx context.Context, email string) (*entity.AdminUser, error) {
	iter := r.col().Where("email", "==", email).Limit(1).Documents(ctx)
	defer iter.Stop()

	snap, err := iter.Next()
	if err == iterator.Done {
		return nil, repo_errors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return adminFromSnap(snap)
}

func (r *AdminRepo) ListAdmins(ctx context.Context) ([]entity.AdminUser, error) {
	iter := r.col().OrderBy("name", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	admins := make([]entity.AdminUser, 0)
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		admin, err := adminFromSnap(snap)
		if err != nil {
			return nil, err
		}
		admins = append(admins, *admin)
	}

	return admins, nil
}

func (r *AdminRepo) UpdateAdmin(ctx context.Context, admin *entity.AdminUser) error {
	_, err := r.col().Doc(admin.Id).Set(ctx, admin)

	return err
}

func (r *AdminRepo) UpdateAdminTx(ctx context.Context, id string, mutate func(*entity.AdminUser) error) (*entity.AdminUser, error) {
	var updated entity.AdminUser

	ref := r.col().Doc(id)
	err := r.Firestore.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return repo_errors.ErrNotFound
			}

			return err
		}

		var admin entity.AdminUser
		if err := snap.DataTo(&admin); err != nil {
			return err
		}
		admin.Id = snap.Ref.ID

		if err := mutate(&admin); err != nil {
			return err
		}

		updated = admin

		return tx.Set(ref, &admin)
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

func (r *AdminRepo) DeleteAdmin(ctx context.Context, id string) error {
	_, err := r.col().Doc(id).Delete(ctx)

	return err
}

func adminFromSnap(snap *firestore.DocumentSnapshot) (*entity.AdminUser, error) {
	var admin entity.AdminUser
	if err := snap.DataTo(&admin); err != nil {
		return nil, err
	}
	admin.Id = snap.Ref.ID

	return &admin, nil
}
