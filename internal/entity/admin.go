package entity

import (
	"time"
)

type AdminRole string

const (
	RolePending AdminRole = "Pending"
	RoleAdmin   AdminRole = "Admin"
)

type Permission string

const (
	PermissionDashboard      Permission = "dashboard"
	PermissionTracking       Permission = "tracking"
	PermissionPackingList    Permission = "packing-list"
	PermissionAuctionListing Permission = "auction-listing"
	PermissionChat           Permission = "chat"
	PermissionSettings       Permission = "settings"
)

var AllPermissions = []Permission{
	PermissionDashboard, PermissionTracking, PermissionPackingList,
	PermissionAuctionListing, PermissionChat, PermissionSettings,
}

// DefaultPermissions is what approval grants; anything broader is a separate
// explicit grant by a settings admin.
var DefaultPermissions = []Permission{PermissionDashboard, PermissionChat}

func ValidPermission(p Permission) bool {
	for _, known := range AllPermissions {
		if p == known {
			return true
		}
	}

	return false
}

// db model. PasswordHash is empty until the invitee sets a password;
// InvitationGeneratedAt is non-zero only while an invitation is outstanding.
type AdminUser struct {
	Id                    string       `json:"id" firestore:"id"`
	Name                  string       `json:"name" firestore:"name"`
	Email                 string       `json:"email" firestore:"email"`
	Role                  AdminRole    `json:"role" firestore:"role"`
	PasswordHash          string       `json:"-" firestore:"passwordHash"`
	AvatarUrl             string       `json:"avatarUrl,omitempty" firestore:"avatarUrl"`
	Permissions           []Permission `json:"permissions" firestore:"permissions"`
	InvitationGeneratedAt time.Time    `json:"invitationGeneratedAt,omitempty" firestore:"invitationGeneratedAt"`
}

func (a *AdminUser) HasPermission(p Permission) bool {
	for _, granted := range a.Permissions {
		if granted == p {
			return true
		}
	}

	return false
}

// service + repo input model
type InviteAdminInput struct {
	Name  string
	Email string
}

// service input model for self-service profile edits. Changing the password
// requires the current one.
type UpdateProfileInput struct {
	Name            string
	AvatarUrl       string
	Password        string
	CurrentPassword string
}

// controller model; never carries the password hash.
type AdminOutputModel struct {
	Id                    string       `json:"id"`
	Name                  string       `json:"name"`
	Email                 string       `json:"email"`
	Role                  string       `json:"role"`
	AvatarUrl             string       `json:"avatarUrl,omitempty"`
	Permissions           []Permission `json:"permissions"`
	PasswordSet           bool         `json:"passwordSet"`
	InvitationGeneratedAt string       `json:"invitationGeneratedAt,omitempty"`
}
