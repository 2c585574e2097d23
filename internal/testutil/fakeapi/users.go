package fakeapi

import (
	"github.com/labstack/echo/v4"

	"adminconsole/internal/domain/entity"
	"adminconsole/pkg/errors"
	"adminconsole/pkg/response"
)

func (s *Server) listUsers(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return response.Success(c, s.users)
}

func (s *Server) getUser(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.users, c.Param("id"))
	if i < 0 {
		return response.Error(c, errors.NotFound("User", nil))
	}
	return response.Success(c, map[string]interface{}{"user": s.users[i]})
}

func (s *Server) updateUser(c echo.Context) error {
	var req entity.UserInput
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.users, c.Param("id"))
	if i < 0 {
		return response.Error(c, errors.NotFound("User", nil))
	}
	u := &s.users[i]
	u.Username = req.Username
	u.Email = req.Email
	u.Role = req.Role
	if req.IsActive != nil {
		u.IsActive = *req.IsActive
	}
	return response.Success(c, map[string]interface{}{"user": *u})
}

func (s *Server) deleteUser(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var ok bool
	if s.users, ok = without(s.users, c.Param("id")); !ok {
		return response.Error(c, errors.NotFound("User", nil))
	}
	return response.Success(c, map[string]string{"message": "User deleted"})
}
