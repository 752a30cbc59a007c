package models

import (
	"slices"
	"time"
)

// Role is a user role name
type Role string

// Role constants
const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// User represents a user account in the relational store
type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never serialize password hash
	Roles        []Role    `json:"roles"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// HasRole reports whether the user holds the given role
func (u *User) HasRole(role Role) bool {
	return slices.Contains(u.Roles, role)
}

// Principal is the authenticated identity resolved from an access token
type Principal struct {
	ID       int
	Username string
	Roles    []Role
}

// HasRole reports whether the principal holds the given role
func (p *Principal) HasRole(role Role) bool {
	return slices.Contains(p.Roles, role)
}

// CanModify reports whether the principal may modify a resource authored by
// authorID. Admins can modify anything, users only their own resources.
func (p *Principal) CanModify(authorID int) bool {
	if p.HasRole(RoleAdmin) {
		return true
	}
	return p.ID == authorID
}

// RoleNames converts a role slice to plain strings for token claims and responses
func RoleNames(roles []Role) []string {
	names := make([]string, 0, len(roles))
	for _, role := range roles {
		names = append(names, string(role))
	}
	return names
}

// RolesFromNames converts claim strings back to roles
func RolesFromNames(names []string) []Role {
	roles := make([]Role, 0, len(names))
	for _, name := range names {
		roles = append(roles, Role(name))
	}
	return roles
}
