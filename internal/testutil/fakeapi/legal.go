package fakeapi

import (
	"github.com/labstack/echo/v4"

	"adminconsole/internal/domain/entity"
	"adminconsole/pkg/errors"
	"adminconsole/pkg/response"
)

type legalRequest struct {
	Type    string `json:"type"`
	Content string `json:"content" validate:"required"`
}

func (s *Server) listLegal(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]entity.LegalDocument, len(s.legal))
	for t, doc := range s.legal {
		out[t.String()] = doc
	}
	return response.Success(c, out)
}

func (s *Server) getLegal(c echo.Context) error {
	t, err := entity.ParseDocumentType(c.Param("type"))
	if err != nil {
		return response.Error(c, errors.NotFound("Legal document", err))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.legal[t]
	if !ok {
		return response.Error(c, errors.NotFound("Legal document", nil))
	}
	return response.Success(c, doc)
}

func (s *Server) updateLegal(c echo.Context) error {
	t, err := entity.ParseDocumentType(c.Param("type"))
	if err != nil {
		return response.Error(c, errors.NotFound("Legal document", err))
	}
	var req legalRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}
	return s.saveLegal(c, t, req.Content)
}

func (s *Server) createLegal(c echo.Context) error {
	var req legalRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}
	t, err := entity.ParseDocumentType(req.Type)
	if err != nil {
		return response.Error(c, errors.BadRequest(err.Error(), err))
	}
	return s.saveLegal(c, t, req.Content)
}

func (s *Server) saveLegal(c echo.Context, t entity.DocumentType, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	doc := entity.LegalDocument{Type: t, Content: content, LastUpdated: &now}
	s.legal[t] = doc
	return response.Success(c, doc)
}
