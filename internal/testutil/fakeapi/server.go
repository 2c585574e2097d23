// Package fakeapi is an in-memory stand-in for the admin REST API, used by
// package tests. It serves the same routes under /api with the same envelopes.
package fakeapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/shopspring/decimal"

	"adminconsole/internal/adapter/validation"
	"adminconsole/internal/domain/entity"
)

const (
	AdminEmail    = "admin@example.com"
	AdminPassword = "admin123"

	tokenTTL = time.Hour
)

// RecordedRequest is what the fake saw of one incoming request.
type RecordedRequest struct {
	Method        string
	Path          string
	Query         string
	Authorization string
	ContentType   string
	// Parts maps multipart field names to the content type of that part.
	Parts map[string]string
}

type failure struct {
	status  int
	message string
}

// Server is a running fake API.
type Server struct {
	echo   *echo.Echo
	server *httptest.Server
	secret []byte
	now    func() time.Time

	mu         sync.Mutex
	requests   []RecordedRequest
	tokens     map[string]string
	passwords  map[string]string
	users      []entity.User
	products   []entity.Product
	categories []entity.Category
	orders     []entity.Order
	banners    []entity.Banner
	legal      map[entity.DocumentType]entity.LegalDocument
	failNext   *failure
	delayNext  time.Duration
	bareLogin  bool
	uploads    int
}

// New starts a fake seeded with an admin account and a small catalog.
func New() *Server {
	s := &Server{
		secret:    []byte(uuid.NewString()),
		now:       time.Now,
		tokens:    make(map[string]string),
		passwords: make(map[string]string),
		legal:     make(map[entity.DocumentType]entity.LegalDocument),
	}
	s.seed()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = validation.New()
	e.Use(middleware.Recover())
	e.Use(s.record)
	s.routes(e)

	s.echo = e
	s.server = httptest.NewServer(e)
	return s
}

// URL is the API base URL, including the /api prefix.
func (s *Server) URL() string {
	return s.server.URL + "/api"
}

// Close shuts the fake down.
func (s *Server) Close() {
	s.server.Close()
}

// Requests returns every request seen so far, oldest first.
func (s *Server) Requests() []RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]RecordedRequest(nil), s.requests...)
}

// RequestCount returns how many requests reached the fake.
func (s *Server) RequestCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

// LastRequest returns the most recent request, if any.
func (s *Server) LastRequest() (RecordedRequest, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return RecordedRequest{}, false
	}
	return s.requests[len(s.requests)-1], true
}

// RevokeSessions invalidates every issued token, so the next call gets a 401.
func (s *Server) RevokeSessions() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens = make(map[string]string)
}

// FailNext makes the next request after authentication fail with status and message.
func (s *Server) FailNext(status int, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failNext = &failure{status: status, message: message}
}

// DelayNext holds the next incoming request for d before handling it.
func (s *Server) DelayNext(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.delayNext = d
}

// LoginWithoutUser makes sign-in answer with the token alone, as some
// deployments do, so clients have to fetch the profile themselves.
func (s *Server) LoginWithoutUser() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bareLogin = true
}

// IssueToken signs a token for the seeded admin without going through login.
func (s *Server) IssueToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	token, _ := s.issue(s.users[0].ID)
	return token
}

func (s *Server) issue(userID string) (string, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", err
	}
	s.tokens[token] = userID
	return token, nil
}

func (s *Server) record(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		rec := RecordedRequest{
			Method:        req.Method,
			Path:          strings.TrimPrefix(req.URL.Path, "/api"),
			Query:         req.URL.RawQuery,
			Authorization: req.Header.Get("Authorization"),
			ContentType:   req.Header.Get("Content-Type"),
		}
		if strings.HasPrefix(rec.ContentType, echo.MIMEMultipartForm) {
			if form, err := c.MultipartForm(); err == nil {
				rec.Parts = make(map[string]string)
				for name := range form.Value {
					rec.Parts[name] = ""
				}
				for name, files := range form.File {
					if len(files) > 0 {
						rec.Parts[name] = files[0].Header.Get("Content-Type")
					}
				}
			}
		}

		s.mu.Lock()
		s.requests = append(s.requests, rec)
		delay := s.delayNext
		s.delayNext = 0
		s.mu.Unlock()

		if delay > 0 {
			time.Sleep(delay)
		}
		return next(c)
	}
}

// authenticate mirrors the bearer check of the real API.
func (s *Server) authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is required")
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
		}

		claims := &jwt.RegisteredClaims{}
		_, err := jwt.ParseWithClaims(parts[1], claims, func(t *jwt.Token) (interface{}, error) {
			return s.secret, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
		}

		s.mu.Lock()
		uid, ok := s.tokens[parts[1]]
		fail := s.failNext
		s.failNext = nil
		s.mu.Unlock()
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
		}
		if fail != nil {
			return c.JSON(fail.status, map[string]interface{}{"success": false, "message": fail.message})
		}

		c.Set("uid", uid)
		return next(c)
	}
}

func (s *Server) seed() {
	now := s.now()
	admin := entity.User{
		ID:        uuid.NewString(),
		Name:      "Admin User",
		Username:  "admin",
		Email:     AdminEmail,
		Role:      entity.RoleAdmin,
		IsActive:  true,
		CreatedAt: now,
	}
	customer := entity.User{
		ID:        uuid.NewString(),
		Username:  "jane",
		Email:     "jane@example.com",
		Role:      entity.RoleCustomer,
		IsActive:  true,
		CreatedAt: now,
	}
	s.users = []entity.User{admin, customer}
	s.passwords[admin.ID] = AdminPassword

	electronics := entity.Category{ID: uuid.NewString(), Name: "Electronics", IsActive: true, CreatedAt: now}
	books := entity.Category{ID: uuid.NewString(), Name: "Books", IsActive: true, CreatedAt: now}
	s.categories = []entity.Category{electronics, books}

	for i, p := range []struct {
		name   string
		price  string
		cat    entity.Category
		stock  int
		active bool
	}{
		{"Phone", "499.99", electronics, 25, true},
		{"Headphones", "79.50", electronics, 4, true},
		{"Novel", "12.00", books, 0, false},
	} {
		s.products = append(s.products, entity.Product{
			ID:        uuid.NewString(),
			Name:      p.name,
			Price:     decimal.RequireFromString(p.price),
			Category:  entity.CategoryRef{ID: p.cat.ID, Name: p.cat.Name},
			Stock:     p.stock,
			Images:    []string{},
			IsActive:  p.active,
			CreatedAt: now.Add(time.Duration(i) * time.Minute),
			UpdatedAt: now.Add(time.Duration(i) * time.Minute),
		})
	}

	for i, st := range []entity.OrderStatus{entity.OrderPending, entity.OrderShipped, entity.OrderPending} {
		s.orders = append(s.orders, entity.Order{
			ID:          uuid.NewString(),
			OrderNumber: "ORD-" + string(rune('A'+i)),
			Status:      st,
			Amount:      decimal.NewFromInt(int64(100 * (i + 1))),
			Customer:    entity.CustomerRef{ID: customer.ID, Username: customer.Username, Email: customer.Email},
			CreatedAt:   now.Add(time.Duration(i) * time.Minute),
		})
	}

	for i, title := range []string{"Summer Sale", "New Arrivals"} {
		s.banners = append(s.banners, entity.Banner{
			ID:         uuid.NewString(),
			Title:      title,
			Image:      "/uploads/banner-" + uuid.NewString() + ".png",
			ButtonText: entity.DefaultButtonText,
			IsActive:   true,
			Order:      i,
			CreatedAt:  now,
		})
	}

	updated := now.Add(-24 * time.Hour)
	for _, t := range entity.DocumentTypes {
		s.legal[t] = entity.LegalDocument{
			Type:        t,
			Content:     "<p>" + t.String() + "</p>",
			LastUpdated: &updated,
		}
	}
}
