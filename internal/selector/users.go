package selector

import (
	"strings"

	"adminconsole/internal/domain/entity"
)

// FilterUsers applies the user list filters. Empty or "all" role and status
// match everything; search matches username or email, ignoring case.
func FilterUsers(users []entity.User, f entity.UserFilters) []entity.User {
	search := strings.ToLower(strings.TrimSpace(f.Search))
	out := []entity.User{}
	for _, u := range users {
		if f.Role != "" && f.Role != entity.StatusAll && string(u.Role) != f.Role {
			continue
		}
		switch f.Status {
		case entity.StatusActive:
			if !u.IsActive {
				continue
			}
		case entity.StatusInactive:
			if u.IsActive {
				continue
			}
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(u.Username), search) &&
			!strings.Contains(strings.ToLower(u.Email), search) {
			continue
		}
		out = append(out, u)
	}
	return out
}

// RoleCount counts users with role.
func RoleCount(users []entity.User, role entity.Role) int {
	n := 0
	for _, u := range users {
		if u.Role == role {
			n++
		}
	}
	return n
}

// ActiveUserCount counts users whose account is active.
func ActiveUserCount(users []entity.User) int {
	n := 0
	for _, u := range users {
		if u.IsActive {
			n++
		}
	}
	return n
}
