package fakeapi

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"adminconsole/internal/domain/entity"
	"adminconsole/pkg/errors"
	"adminconsole/pkg/response"
)

type bannerRequest struct {
	Title       string     `json:"title" form:"title"`
	Description string     `json:"description" form:"description"`
	Link        string     `json:"link" form:"link"`
	ButtonText  string     `json:"buttonText" form:"buttonText"`
	IsActive    *bool      `json:"isActive"`
	Order       *int       `json:"order"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	image       string
}

// readBanner accepts the multipart form or a JSON body.
func readBanner(c echo.Context) (*bannerRequest, error) {
	req := &bannerRequest{}
	if !strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		if err := c.Bind(req); err != nil {
			return nil, errors.BadRequest("Invalid request body", err)
		}
		return req, nil
	}

	req.Title = c.FormValue("title")
	req.Description = c.FormValue("description")
	req.Link = c.FormValue("link")
	req.ButtonText = c.FormValue("buttonText")
	if v := c.FormValue("isActive"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, errors.BadRequest("isActive must be a boolean", err)
		}
		req.IsActive = &b
	}
	if v := c.FormValue("order"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, errors.BadRequest("order must be a number", err)
		}
		req.Order = &n
	}
	for name, dst := range map[string]**time.Time{"startDate": &req.StartDate, "endDate": &req.EndDate} {
		if v := c.FormValue(name); v != "" {
			t, err := time.Parse("2006-01-02", v)
			if err != nil {
				return nil, errors.BadRequest(name+" must be a date", err)
			}
			*dst = &t
		}
	}
	if fh, err := c.FormFile("image"); err == nil {
		req.image = "/uploads/banners/" + uuid.NewString() + "-" + fh.Filename
	}
	return req, nil
}

func (r *bannerRequest) apply(b *entity.Banner) {
	if r.Title != "" {
		b.Title = r.Title
	}
	if r.Description != "" {
		b.Description = r.Description
	}
	if r.Link != "" {
		b.Link = r.Link
	}
	if r.ButtonText != "" {
		b.ButtonText = r.ButtonText
	}
	if r.IsActive != nil {
		b.IsActive = *r.IsActive
	}
	if r.Order != nil {
		b.Order = *r.Order
	}
	if r.StartDate != nil {
		b.StartDate = r.StartDate
	}
	if r.EndDate != nil {
		b.EndDate = r.EndDate
	}
	if r.image != "" {
		b.Image = r.image
	}
}

func (s *Server) sortedBanners() []entity.Banner {
	out := append([]entity.Banner{}, s.banners...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

func (s *Server) listBanners(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return response.Success(c, s.sortedBanners())
}

func (s *Server) getBanner(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.banners, c.Param("id"))
	if i < 0 {
		return response.Error(c, errors.NotFound("Banner", nil))
	}
	return response.Success(c, s.banners[i])
}

func (s *Server) createBanner(c echo.Context) error {
	req, err := readBanner(c)
	if err != nil {
		return response.Error(c, err)
	}
	if req.Title == "" {
		return response.Error(c, errors.BadRequest("Title is required", nil))
	}
	if req.image == "" {
		return response.Error(c, errors.BadRequest("Banner image is required", nil))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	b := entity.Banner{
		ID:         uuid.NewString(),
		ButtonText: entity.DefaultButtonText,
		IsActive:   true,
		Order:      len(s.banners),
		CreatedAt:  s.now(),
	}
	req.apply(&b)
	s.banners = append(s.banners, b)
	return response.Created(c, b)
}

func (s *Server) updateBanner(c echo.Context) error {
	req, err := readBanner(c)
	if err != nil {
		return response.Error(c, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.banners, c.Param("id"))
	if i < 0 {
		return response.Error(c, errors.NotFound("Banner", nil))
	}
	req.apply(&s.banners[i])
	return response.Success(c, s.banners[i])
}

func (s *Server) deleteBanner(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var ok bool
	if s.banners, ok = without(s.banners, c.Param("id")); !ok {
		return response.Error(c, errors.NotFound("Banner", nil))
	}
	return response.Success(c, map[string]string{"message": "Banner deleted"})
}

func (s *Server) toggleBanner(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.banners, c.Param("id"))
	if i < 0 {
		return response.Error(c, errors.NotFound("Banner", nil))
	}
	s.banners[i].IsActive = !s.banners[i].IsActive
	return response.Success(c, s.banners[i])
}

type reorderRequest struct {
	BannerOrders []entity.BannerOrder `json:"bannerOrders" validate:"required,dive"`
}

func (s *Server) reorderBanners(c echo.Context) error {
	var req reorderRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, o := range req.BannerOrders {
		i := indexOf(s.banners, o.ID)
		if i < 0 {
			return response.Error(c, errors.NotFound("Banner", nil))
		}
		s.banners[i].Order = o.Order
	}
	return response.Success(c, s.sortedBanners())
}
