package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"bbl-admins-portal/internal/auth"
	"bbl-admins-portal/internal/entity"
	"bbl-admins-portal/internal/repo"
	"bbl-admins-portal/internal/repo/repo_errors"
)

// InvitationTTL is how long a set-password link stays valid. The check
// happens when the link is consumed, not in the store.
const InvitationTTL = 2 * time.Minute

type AdminService struct {
	adminRepo repo.Admin
	hasher    auth.PasswordHasher
	notifier  Notifier
}

func NewAdminService(repos *repo.Repositories, hasher auth.PasswordHasher, notifier Notifier) *AdminService {
	return &AdminService{
		adminRepo: repos.Admin,
		hasher:    hasher,
		notifier:  notifier,
	}
}

func (s *AdminService) GetAdmins(ctx context.Context) ([]entity.AdminOutputModel, error) {
	admins, err := s.adminRepo.ListAdmins(ctx)
	if err != nil {
		return nil, err
	}

	return mapAdmins(admins), nil
}

func (s *AdminService) GetAdminById(ctx context.Context, id string) (*entity.AdminOutputModel, error) {
	admin, err := s.getAdmin(ctx, id)
	if err != nil {
		return nil, err
	}

	return mapAdmin(admin), nil
}

// Invite creates a Pending record without a password. Re-inviting an admin
// who is still pending without a password only refreshes the invitation
// timestamp; any other existing record is a duplicate.
func (s *AdminService) Invite(ctx context.Context, input *entity.InviteAdminInput) (*entity.AdminOutputModel, error) {
	email := strings.ToLower(input.Email)

	existing, err := s.adminRepo.GetAdminByEmail(ctx, email)
	if err != nil && !errors.Is(err, repo_errors.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		if existing.Role != entity.RolePending || existing.PasswordHash != "" {
			return nil, ErrDuplicateEmail
		}

		existing.InvitationGeneratedAt = time.Now().UTC()
		if err := s.adminRepo.UpdateAdmin(ctx, existing); err != nil {
			return nil, err
		}
		s.notifier.SetPasswordInvite(existing.Email, setPasswordLink(existing.Id))

		return mapAdmin(existing), nil
	}

	admin := &entity.AdminUser{
		Name:                  input.Name,
		Email:                 email,
		Role:                  entity.RolePending,
		Permissions:           make([]entity.Permission, 0),
		AvatarUrl:             placeholderAvatar(input.Name),
		InvitationGeneratedAt: time.Now().UTC(),
	}

	id, err := s.adminRepo.CreateAdmin(ctx, admin)
	if err != nil {
		return nil, err
	}
	s.notifier.SetPasswordInvite(email, setPasswordLink(id))

	return mapAdmin(admin), nil
}

func (s *AdminService) GetInvitation(ctx context.Context, id string) (*entity.AdminOutputModel, error) {
	admin, err := s.getAdmin(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := checkInvitation(admin); err != nil {
		return nil, err
	}

	return mapAdmin(admin), nil
}

func (s *AdminService) SetPassword(ctx context.Context, id string, password string) (*entity.AdminOutputModel, error) {
	admin, err := s.getAdmin(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := checkInvitation(admin); err != nil {
		return nil, err
	}

	hash, err := s.hasher.HashPassword(password)
	if err != nil {
		return nil, err
	}

	admin.PasswordHash = hash
	admin.InvitationGeneratedAt = time.Time{}
	if err := s.adminRepo.UpdateAdmin(ctx, admin); err != nil {
		return nil, err
	}

	s.notifier.ReadyForApproval(admin.Email)

	return mapAdmin(admin), nil
}

// Approve promotes a pending admin whose password is set. Only the default
// permission subset is granted; anything broader is a separate action.
func (s *AdminService) Approve(ctx context.Context, id string) (*entity.AdminOutputModel, error) {
	updated, err := s.adminRepo.UpdateAdminTx(ctx, id, func(admin *entity.AdminUser) error {
		if admin.PasswordHash == "" {
			return ErrPasswordNotSet
		}
		if admin.Role != entity.RolePending {
			return ErrAlreadyApproved
		}

		admin.Role = entity.RoleAdmin
		admin.Permissions = append([]entity.Permission(nil), entity.DefaultPermissions...)

		return nil
	})
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrAdminNotFound
		}

		return nil, err
	}

	s.notifier.AdminApproved(updated.Email)

	return mapAdmin(updated), nil
}

func (s *AdminService) UpdatePermissions(ctx context.Context, id string, permissions []entity.Permission) (*entity.AdminOutputModel, error) {
	for _, p := range permissions {
		if !entity.ValidPermission(p) {
			return nil, ErrInvalidPermission
		}
	}

	updated, err := s.adminRepo.UpdateAdminTx(ctx, id, func(admin *entity.AdminUser) error {
		admin.Permissions = append([]entity.Permission(nil), permissions...)

		return nil
	})
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrAdminNotFound
		}

		return nil, err
	}

	return mapAdmin(updated), nil
}

func (s *AdminService) Remove(ctx context.Context, id string) error {
	return s.adminRepo.DeleteAdmin(ctx, id)
}

func (s *AdminService) UpdateMyProfile(ctx context.Context, id string, input *entity.UpdateProfileInput) (*entity.AdminOutputModel, error) {
	admin, err := s.getAdmin(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Password != "" {
		ok, err := s.hasher.VerifyPassword(input.CurrentPassword, admin.PasswordHash)
		if err != nil || !ok {
			return nil, ErrWrongPassword
		}

		hash, err := s.hasher.HashPassword(input.Password)
		if err != nil {
			return nil, err
		}
		admin.PasswordHash = hash
	}

	if input.Name != "" {
		admin.Name = input.Name
	}
	if input.AvatarUrl != "" {
		admin.AvatarUrl = input.AvatarUrl
	}

	if err := s.adminRepo.UpdateAdmin(ctx, admin); err != nil {
		return nil, err
	}

	return mapAdmin(admin), nil
}

// Authenticate verifies a login. Only approved admins may sign in; all
// failures look the same to the caller except the not-yet-approved case.
func (s *AdminService) Authenticate(ctx context.Context, email, password string) (*entity.AdminOutputModel, error) {
	admin, err := s.adminRepo.GetAdminByEmail(ctx, strings.ToLower(email))
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}

		return nil, err
	}

	if admin.PasswordHash == "" {
		return nil, ErrInvalidCredentials
	}

	ok, err := s.hasher.VerifyPassword(password, admin.PasswordHash)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}

	if admin.Role != entity.RoleAdmin {
		return nil, ErrNotApproved
	}

	return mapAdmin(admin), nil
}

// SeedDefaultAdmin creates the super admin account on first startup.
func (s *AdminService) SeedDefaultAdmin(ctx context.Context, name, email, password string) error {
	email = strings.ToLower(email)

	_, err := s.adminRepo.GetAdminByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repo_errors.ErrNotFound) {
		return err
	}

	hash, err := s.hasher.HashPassword(password)
	if err != nil {
		return err
	}

	admin := &entity.AdminUser{
		Id:           "default-super-admin-bbl",
		Name:         name,
		Email:        email,
		Role:         entity.RoleAdmin,
		PasswordHash: hash,
		AvatarUrl:    placeholderAvatar(name),
		Permissions:  append([]entity.Permission(nil), entity.AllPermissions...),
	}

	_, err = s.adminRepo.CreateAdmin(ctx, admin)

	return err
}

func (s *AdminService) getAdmin(ctx context.Context, id string) (*entity.AdminUser, error) {
	admin, err := s.adminRepo.GetAdminById(ctx, id)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrAdminNotFound
		}

		return nil, err
	}

	return admin, nil
}

func checkInvitation(admin *entity.AdminUser) error {
	if admin.InvitationGeneratedAt.IsZero() {
		return ErrInvitationExpired
	}
	if time.Since(admin.InvitationGeneratedAt) > InvitationTTL {
		return ErrInvitationExpired
	}

	return nil
}

func setPasswordLink(id string) string {
	return "/set-password/" + id
}

func placeholderAvatar(name string) string {
	initial := "A"
	if name != "" {
		// first rune, not first byte
		r, _ := utf8.DecodeRuneInString(name)
		initial = strings.ToUpper(string(r))
	}

	return fmt.Sprintf("https://placehold.co/100x100/7C3AED/FFFFFF/png?text=%s", initial)
}
