// Package policy holds the pure authorization checks. They run only after
// authentication has resolved a user and never touch the stores.
package policy

import "csvvault/app/models"

// CanAccess allows the resource owner and any admin.
func CanAccess(u *models.User, resourceOwnerID uint) bool {
	if u == nil {
		return false
	}
	return u.IsAdmin() || u.ID == resourceOwnerID
}

// RequireAdmin allows admins only.
func RequireAdmin(u *models.User) bool {
	return u != nil && u.IsAdmin()
}
