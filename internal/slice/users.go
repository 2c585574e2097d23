package slice

import (
	"context"
	"strings"

	"adminconsole/internal/adapter/validation"
	"adminconsole/internal/domain/entity"
	"adminconsole/internal/domain/repository"
)

// UserState is a snapshot of the user slice.
type UserState struct {
	Items   []entity.User
	Current *entity.User
	Total   int
	Filters entity.UserFilters
	Task    Task
}

// UserSlice holds the user accounts and the list filters.
type UserSlice struct {
	base
	repo repository.UserRepository

	items   []entity.User
	current *entity.User
	total   int
	filters entity.UserFilters
}

// NewUserSlice creates a user slice with default filters.
func NewUserSlice(repo repository.UserRepository, notifier Notifier) *UserSlice {
	s := &UserSlice{repo: repo}
	s.init("users", notifier)
	s.reset()
	return s
}

func (s *UserSlice) reset() {
	s.items = []entity.User{}
	s.current = nil
	s.total = 0
	s.filters = entity.UserFilters{Role: entity.StatusAll, Status: entity.StatusAll}
	s.task = Task{}
}

// Reset returns the slice to its initial state.
func (s *UserSlice) Reset() {
	s.update(s.reset)
}

// State returns a copy of the current user state.
func (s *UserSlice) State() UserState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return UserState{
		Items:   copyItems(s.items),
		Current: copyPtr(s.current),
		Total:   s.total,
		Filters: s.filters,
		Task:    s.task,
	}
}

// FetchUsers replaces the loaded users with the server's list.
func (s *UserSlice) FetchUsers(ctx context.Context) error {
	_, err := run(ctx, &s.base, "Failed to fetch users",
		func(ctx context.Context) ([]entity.User, error) {
			return s.repo.List(ctx)
		},
		func(items []entity.User) {
			s.items = copyItems(items)
			s.total = len(items)
		})
	return err
}

// FetchUserByID loads one user into Current.
func (s *UserSlice) FetchUserByID(ctx context.Context, id string) (*entity.User, error) {
	return run(ctx, &s.base, "Failed to fetch user",
		func(ctx context.Context) (*entity.User, error) {
			return s.repo.GetByID(ctx, id)
		},
		func(u *entity.User) {
			s.current = copyPtr(u)
		})
}

// CreateUser registers an account and appends it locally.
func (s *UserSlice) CreateUser(ctx context.Context, input entity.UserInput) (*entity.User, error) {
	input = trimUserInput(input)
	u, err := run(ctx, &s.base, "Failed to add user",
		func(ctx context.Context) (*entity.User, error) {
			if err := validation.Struct(input); err != nil {
				return nil, err
			}
			return s.repo.Create(ctx, input)
		},
		func(u *entity.User) {
			s.items = append(s.items, *u)
			s.total++
		})
	if err == nil {
		s.notifier.Success("User added successfully!")
	}
	return u, err
}

// UpdateUser saves an account and replaces the loaded copy.
func (s *UserSlice) UpdateUser(ctx context.Context, id string, input entity.UserInput) (*entity.User, error) {
	input = trimUserInput(input)
	u, err := run(ctx, &s.base, "Failed to update user",
		func(ctx context.Context) (*entity.User, error) {
			if err := validation.Struct(input); err != nil {
				return nil, err
			}
			return s.repo.Update(ctx, id, input)
		},
		func(u *entity.User) {
			replaceByID(s.items, *u)
			if s.current != nil && s.current.ID == u.ID {
				s.current = copyPtr(u)
			}
		})
	if err == nil {
		s.notifier.Success("User updated successfully!")
	}
	return u, err
}

// DeleteUser removes an account.
func (s *UserSlice) DeleteUser(ctx context.Context, id string) error {
	_, err := run(ctx, &s.base, "Failed to delete user",
		func(ctx context.Context) (string, error) {
			return id, s.repo.Delete(ctx, id)
		},
		func(id string) {
			var removed bool
			if s.items, removed = removeByID(s.items, id); removed {
				s.total = decrement(s.total)
			}
			if s.current != nil && s.current.ID == id {
				s.current = nil
			}
		})
	if err == nil {
		s.notifier.Success("User deleted successfully!")
	}
	return err
}

// SetFilters stores the client-side list filters; see selector.FilterUsers.
func (s *UserSlice) SetFilters(f entity.UserFilters) {
	s.update(func() { s.filters = f })
}

// SetCurrent selects u for editing.
func (s *UserSlice) SetCurrent(u *entity.User) {
	s.update(func() { s.current = copyPtr(u) })
}

// ClearCurrent drops the selected user.
func (s *UserSlice) ClearCurrent() {
	s.SetCurrent(nil)
}

func trimUserInput(in entity.UserInput) entity.UserInput {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)
	return in
}
