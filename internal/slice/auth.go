package slice

import (
	"context"
	"time"

	"adminconsole/internal/adapter/validation"
	"adminconsole/internal/domain/entity"
	"adminconsole/internal/domain/repository"
	"adminconsole/internal/infrastructure/session"
	apperrors "adminconsole/pkg/errors"
	"adminconsole/pkg/logger"
)

// AuthState is a snapshot of the auth slice.
type AuthState struct {
	User            *entity.User
	Token           string
	IsAuthenticated bool
	IsDemo          bool
	Task            Task
}

// AuthSlice is the only writer of the session credential besides the HTTP
// client's 401 handler.
type AuthSlice struct {
	base
	repo     repository.AuthRepository
	session  *session.Session
	demoMode bool
	now      func() time.Time

	user *entity.User
}

// AuthOptions configures the auth slice.
type AuthOptions struct {
	// DemoMode enables the local demo session when the backend is unreachable.
	DemoMode bool
	Now      func() time.Time
}

// NewAuthSlice creates the auth slice over the shared session.
func NewAuthSlice(repo repository.AuthRepository, sess *session.Session, notifier Notifier, opts AuthOptions) *AuthSlice {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	s := &AuthSlice{
		repo:     repo,
		session:  sess,
		demoMode: opts.DemoMode,
		now:      now,
	}
	s.init("auth", notifier)
	return s
}

// State returns a copy of the current auth state.
func (s *AuthSlice) State() AuthState {
	token := s.session.Token()

	s.mu.RLock()
	defer s.mu.RUnlock()
	return AuthState{
		User:            copyPtr(s.user),
		Token:           token,
		IsAuthenticated: token != "",
		IsDemo:          session.IsDemoToken(token),
		Task:            s.task,
	}
}

// Login signs in against the server and loads the profile when the response
// carries only a token. With demo mode on, the fixed demo credentials still
// succeed when the server cannot be reached.
func (s *AuthSlice) Login(ctx context.Context, credentials entity.Credentials) (*entity.AuthResult, error) {
	result, err := run(ctx, &s.base, "Login failed",
		func(ctx context.Context) (*entity.AuthResult, error) {
			if err := validation.Struct(credentials); err != nil {
				return nil, err
			}
			result, err := s.repo.Login(ctx, credentials)
			if err != nil {
				if !s.demoMode || !apperrors.Is(err, apperrors.CodeTransport) || !session.IsDemoCredentials(credentials) {
					return nil, err
				}
				logger.Warn("Backend unreachable, starting demo session")
				result = session.DemoLogin(s.now())
			}
			if err := s.session.Set(result.Token); err != nil {
				return nil, apperrors.Internal("Failed to store session", err)
			}
			if result.User == nil {
				user, err := s.repo.GetProfile(ctx)
				if err != nil {
					if clearErr := s.session.Clear(); clearErr != nil {
						logger.Error("Failed to clear session: %v", clearErr)
					}
					return nil, err
				}
				result.User = user
			}
			return result, nil
		},
		func(result *entity.AuthResult) {
			s.user = copyPtr(result.User)
		})
	if err != nil {
		return nil, err
	}

	if session.IsDemoToken(result.Token) {
		s.notifier.Success("Login successful! (Demo mode)")
	} else {
		s.notifier.Success("Login successful!")
	}
	return result, nil
}

// FetchProfile loads the signed-in user. Demo sessions resolve locally. A
// failure while a token is held means the session is invalid, so it is dropped.
func (s *AuthSlice) FetchProfile(ctx context.Context) (*entity.User, error) {
	s.begin()

	token := s.session.Token()
	var (
		user *entity.User
		err  error
	)
	switch {
	case token == "":
		err = apperrors.Unauthorized("No token available", nil)
	case session.IsDemoToken(token):
		user = session.DemoUser()
	default:
		user, err = s.repo.GetProfile(ctx)
	}

	if err != nil {
		task := failedTask(err, "Failed to get profile")
		if s.session.Token() != "" {
			if clearErr := s.session.Clear(); clearErr != nil {
				logger.Error("Failed to clear session: %v", clearErr)
			}
		}
		s.update(func() {
			s.user = nil
			s.task = task
		})
		logger.Warn("Profile fetch failed, session cleared: %s", task.Message)
		s.notifier.Error(task.Message)
		return nil, err
	}

	s.update(func() {
		s.user = copyPtr(user)
		s.task = succeededTask()
	})
	return user, nil
}

// UpdateProfile saves the signed-in user's profile. Demo sessions update locally.
func (s *AuthSlice) UpdateProfile(ctx context.Context, input entity.ProfileInput) (*entity.User, error) {
	demo := s.session.IsDemo()
	user, err := run(ctx, &s.base, "Profile update failed",
		func(ctx context.Context) (*entity.User, error) {
			if err := validation.Struct(input); err != nil {
				return nil, err
			}
			if demo {
				s.mu.RLock()
				current := copyPtr(s.user)
				s.mu.RUnlock()
				return mergeProfile(current, input), nil
			}
			return s.repo.UpdateProfile(ctx, input)
		},
		func(u *entity.User) {
			s.user = copyPtr(u)
		})
	if err != nil {
		return nil, err
	}
	if demo {
		s.notifier.Success("Profile updated successfully! (Demo mode)")
	} else {
		s.notifier.Success("Profile updated successfully!")
	}
	return user, nil
}

// ChangePassword changes the signed-in user's password.
func (s *AuthSlice) ChangePassword(ctx context.Context, input entity.PasswordChange) error {
	demo := s.session.IsDemo()
	_, err := run(ctx, &s.base, "Password change failed",
		func(ctx context.Context) (struct{}, error) {
			if err := validation.Struct(input); err != nil {
				return struct{}{}, err
			}
			if demo {
				if input.CurrentPassword != session.DemoPassword {
					return struct{}{}, apperrors.BadRequest("Current password is incorrect", nil)
				}
				return struct{}{}, nil
			}
			return struct{}{}, s.repo.ChangePassword(ctx, input)
		},
		func(struct{}) {})
	if err != nil {
		return err
	}
	if demo {
		s.notifier.Success("Password changed successfully! (Demo mode)")
	} else {
		s.notifier.Success("Password changed successfully!")
	}
	return nil
}

// Logout is local only and always succeeds.
func (s *AuthSlice) Logout() {
	s.signOut()
	s.notifier.Success("Logged out successfully")
}

// signOut drops the credential, the user and any error.
func (s *AuthSlice) signOut() {
	if err := s.session.Clear(); err != nil {
		logger.Error("Failed to clear session: %v", err)
	}
	s.update(func() {
		s.user = nil
		s.task = Task{}
	})
}

func mergeProfile(current *entity.User, in entity.ProfileInput) *entity.User {
	u := session.DemoUser()
	if current != nil {
		u = copyPtr(current)
	}
	if in.Name != "" {
		u.Name = in.Name
	}
	if in.Username != "" {
		u.Username = in.Username
	}
	if in.Email != "" {
		u.Email = in.Email
	}
	if in.Avatar != "" {
		u.Avatar = in.Avatar
	}
	return u
}
