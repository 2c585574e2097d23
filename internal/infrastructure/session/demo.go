package session

import (
	"strconv"
	"strings"
	"time"

	"adminconsole/internal/domain/entity"
)

const (
	DemoTokenPrefix = "demo-token-"
	DemoEmail       = "admin@example.com"
	DemoPassword    = "admin123"
)

// IsDemoToken reports whether token was minted locally for a demo session.
func IsDemoToken(token string) bool {
	return strings.HasPrefix(token, DemoTokenPrefix)
}

// NewDemoToken mints a demo token stamped with now.
func NewDemoToken(now time.Time) string {
	return DemoTokenPrefix + strconv.FormatInt(now.UnixMilli(), 10)
}

// IsDemoCredentials reports whether c are the fixed demo credentials.
func IsDemoCredentials(c entity.Credentials) bool {
	return c.Email == DemoEmail && c.Password == DemoPassword
}

// DemoUser returns the profile of the demo administrator.
func DemoUser() *entity.User {
	return &entity.User{
		ID:       "1",
		Name:     "Admin User",
		Email:    DemoEmail,
		Username: "admin",
		Role:     entity.RoleAdmin,
		IsActive: true,
		Avatar:   "https://via.placeholder.com/40x40/3B82F6/FFFFFF?text=AU",
	}
}

// DemoLogin synthesizes the session used when the backend cannot be reached.
func DemoLogin(now time.Time) *entity.AuthResult {
	return &entity.AuthResult{
		Token: NewDemoToken(now),
		User:  DemoUser(),
	}
}
