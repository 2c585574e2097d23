package repository

import (
	"context"
	"net/http"

	"adminconsole/internal/domain/entity"
	"adminconsole/internal/domain/repository"
	"adminconsole/internal/infrastructure/httpclient"
	"adminconsole/pkg/errors"
	"adminconsole/pkg/response"
)

type restAuthRepository struct {
	client *httpclient.Client
}

func NewRestAuthRepository(client *httpclient.Client) repository.AuthRepository {
	return &restAuthRepository{
		client: client,
	}
}

func (r *restAuthRepository) Login(ctx context.Context, credentials entity.Credentials) (*entity.AuthResult, error) {
	resp, err := r.client.Do(ctx, httpclient.Request{
		Method: http.MethodPost,
		Path:   "auth/admin/login",
		Body:   credentials,
		Public: true,
	})
	if err != nil {
		return nil, err
	}

	var result entity.AuthResult
	if err := response.Decode(resp.Data(), &result); err != nil {
		return nil, err
	}
	if result.Token == "" {
		return nil, errors.Internal("Login response did not include a token", nil)
	}
	return &result, nil
}

func (r *restAuthRepository) GetProfile(ctx context.Context) (*entity.User, error) {
	resp, err := r.client.Get(ctx, "auth/profile", nil)
	if err != nil {
		return nil, err
	}
	return decodeOne[entity.User](resp.Body, "user")
}

func (r *restAuthRepository) UpdateProfile(ctx context.Context, input entity.ProfileInput) (*entity.User, error) {
	resp, err := r.client.Put(ctx, "auth/profile", input)
	if err != nil {
		return nil, err
	}
	return decodeOne[entity.User](resp.Body, "user")
}

func (r *restAuthRepository) ChangePassword(ctx context.Context, input entity.PasswordChange) error {
	_, err := r.client.Put(ctx, "auth/change-password", input)
	return err
}
