package repository

import (
	"context"

	"adminconsole/internal/domain/entity"
)

type AuthRepository interface {
	Login(ctx context.Context, credentials entity.Credentials) (*entity.AuthResult, error)
	GetProfile(ctx context.Context) (*entity.User, error)
	UpdateProfile(ctx context.Context, input entity.ProfileInput) (*entity.User, error)
	ChangePassword(ctx context.Context, input entity.PasswordChange) error
}
