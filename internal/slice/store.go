package slice

import (
	"sync"

	"adminconsole/internal/domain/repository"
	"adminconsole/internal/infrastructure/session"
	"adminconsole/pkg/logger"
)

// Repositories are the gateways the slices talk to.
type Repositories struct {
	Auth       repository.AuthRepository
	Products   repository.ProductRepository
	Categories repository.CategoryRepository
	Orders     repository.OrderRepository
	Users      repository.UserRepository
	Banners    repository.BannerRepository
	Legal      repository.LegalRepository
}

// Store aggregates every slice and fans their changes out to subscribers.
type Store struct {
	Auth       *AuthSlice
	Products   *ProductSlice
	Categories *CategorySlice
	Orders     *OrderSlice
	Users      *UserSlice
	Banners    *BannerSlice
	Legal      *LegalSlice
	UI         *UISlice

	mu          sync.Mutex
	subscribers map[int]func()
	nextID      int
}

// NewStore wires every slice to its repository and the shared session.
func NewStore(repos Repositories, sess *session.Session, opts AuthOptions) *Store {
	ui := NewUISlice()
	s := &Store{
		Auth:        NewAuthSlice(repos.Auth, sess, ui, opts),
		Products:    NewProductSlice(repos.Products, ui),
		Categories:  NewCategorySlice(repos.Categories, ui),
		Orders:      NewOrderSlice(repos.Orders, ui),
		Users:       NewUserSlice(repos.Users, ui),
		Banners:     NewBannerSlice(repos.Banners, ui),
		Legal:       NewLegalSlice(repos.Legal, ui),
		UI:          ui,
		subscribers: make(map[int]func()),
	}

	for _, h := range []*changeHook{
		&s.Auth.hook,
		&s.Products.hook,
		&s.Categories.hook,
		&s.Orders.hook,
		&s.Users.hook,
		&s.Banners.hook,
		&s.Legal.hook,
		&s.UI.hook,
	} {
		h.set(s.publish)
	}
	return s
}

// Subscribe registers fn to run after every state change and returns the
// function that removes it. fn runs on the goroutine that made the change.
func (s *Store) Subscribe(fn func()) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subscribers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
	}
}

func (s *Store) publish() {
	s.mu.Lock()
	fns := make([]func(), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Reset returns every data slice to its initial state. The UI keeps its theme.
func (s *Store) Reset() {
	s.Products.Reset()
	s.Categories.Reset()
	s.Orders.Reset()
	s.Users.Reset()
	s.Banners.Reset()
	s.Legal.Reset()
	s.UI.ResetUI()
}

// Logout signs out locally and drops all server-derived state.
func (s *Store) Logout() {
	s.Reset()
	s.Auth.Logout()
}

// HandleUnauthorized is installed as the HTTP client's 401 hook. The client
// has already cleared the credential; this drops the user and every slice's data.
func (s *Store) HandleUnauthorized() {
	logger.Warn("Session expired, returning to sign-in")
	s.Auth.signOut()
	s.Reset()
	s.UI.Error("Session expired, please sign in again")
}
