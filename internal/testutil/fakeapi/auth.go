package fakeapi

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"adminconsole/internal/domain/entity"
	"adminconsole/pkg/errors"
	"adminconsole/pkg/response"
)

func (s *Server) login(c echo.Context) error {
	var req entity.Credentials
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email != req.Email {
			continue
		}
		if s.passwords[u.ID] != req.Password || u.Role != entity.RoleAdmin {
			break
		}
		token, err := s.issue(u.ID)
		if err != nil {
			return response.Error(c, errors.Internal("Failed to issue token", err))
		}
		if s.bareLogin {
			return response.Success(c, map[string]string{"token": token})
		}
		return response.Success(c, entity.AuthResult{Token: token, User: &u})
	}
	return response.Error(c, errors.BadRequest("Invalid email or password", nil))
}

func (s *Server) getProfile(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.users, c.Get("uid").(string))
	if i < 0 {
		return response.Error(c, errors.NotFound("User", nil))
	}
	return response.Success(c, s.users[i])
}

func (s *Server) updateProfile(c echo.Context) error {
	var req entity.ProfileInput
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.users, c.Get("uid").(string))
	if i < 0 {
		return response.Error(c, errors.NotFound("User", nil))
	}
	u := &s.users[i]
	if req.Name != "" {
		u.Name = req.Name
	}
	if req.Username != "" {
		u.Username = req.Username
	}
	if req.Email != "" {
		u.Email = req.Email
	}
	if req.Avatar != "" {
		u.Avatar = req.Avatar
	}
	return response.Success(c, map[string]interface{}{"user": *u})
}

func (s *Server) changePassword(c echo.Context) error {
	var req entity.PasswordChange
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	uid := c.Get("uid").(string)
	if s.passwords[uid] != req.CurrentPassword {
		return response.Error(c, errors.BadRequest("Current password is incorrect", nil))
	}
	s.passwords[uid] = req.NewPassword
	return response.Success(c, map[string]string{"message": "Password changed"})
}

func (s *Server) registerUser(c echo.Context) error {
	var req entity.UserInput
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == req.Email || u.Username == req.Username {
			return response.Error(c, errors.Conflict("User already exists"))
		}
	}
	u := entity.User{
		ID:        uuid.NewString(),
		Username:  req.Username,
		Email:     req.Email,
		Role:      req.Role,
		IsActive:  req.IsActive == nil || *req.IsActive,
		CreatedAt: s.now(),
	}
	s.users = append(s.users, u)
	if req.Password != "" {
		s.passwords[u.ID] = req.Password
	}
	return response.Created(c, map[string]interface{}{"user": u})
}

type identifiable interface {
	GetID() string
}

func indexOf[T identifiable](items []T, id string) int {
	for i, item := range items {
		if item.GetID() == id {
			return i
		}
	}
	return -1
}

func without[T identifiable](items []T, id string) ([]T, bool) {
	i := indexOf(items, id)
	if i < 0 {
		return items, false
	}
	return append(items[:i:i], items[i+1:]...), true
}
