package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/rs/xid"

	"github.com/sakif/achievement-society/internal/apperror"
	"github.com/sakif/achievement-society/internal/auth"
	"github.com/sakif/achievement-society/internal/model"
	"github.com/sakif/achievement-society/internal/storage"
)

// Status is the identity store's session state.
type Status string

const (
	// StatusLoading — initial state, the durable-storage lookup has not
	// completed yet.
	StatusLoading Status = "loading"
	// StatusAuthenticated — a user is bound to the session.
	StatusAuthenticated Status = "authenticated"
	// StatusUnauthenticated — no user is bound.
	StatusUnauthenticated Status = "unauthenticated"
)

// account pairs a directory record with its optional password hash. Seeded
// accounts have no hash, so any password signs them in — the demonstration
// stub the sample data depends on. Accounts created through SignUp carry a
// bcrypt hash and get real verification.
type account struct {
	user         model.User
	passwordHash string
}

// Identity holds the signed-in user and session status, and owns the
// backing member directory that authorization checks elsewhere rely on.
type Identity struct {
	mu     sync.RWMutex
	kv     storage.KV
	hasher *auth.PasswordHasher
	logger *slog.Logger

	accounts []account
	current  *model.User
	status   Status
}

// NewIdentity creates the identity store over the given directory of
// existing users (the seeded member list). The store starts in
// StatusLoading; call Load to resolve the persisted session.
func NewIdentity(kv storage.KV, hasher *auth.PasswordHasher, users []model.User, logger *slog.Logger) *Identity {
	accounts := make([]account, 0, len(users))
	for _, u := range users {
		accounts = append(accounts, account{user: u})
	}
	return &Identity{
		kv:       kv,
		hasher:   hasher,
		logger:   logger,
		accounts: accounts,
		status:   StatusLoading,
	}
}

// Load resolves the initial session from durable storage: a valid persisted
// user record transitions to authenticated, anything else to
// unauthenticated.
func (s *Identity) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var user model.User
	ok, err := storage.LoadJSON(ctx, s.kv, storage.KeySession, &user)
	if err != nil {
		s.status = StatusUnauthenticated
		return fmt.Errorf("store: loading session: %w", err)
	}
	if !ok {
		s.status = StatusUnauthenticated
		return nil
	}

	s.current = &user
	s.status = StatusAuthenticated
	s.logger.Info("session restored", slog.String("userID", user.ID), slog.String("username", user.Username))
	return nil
}

// Current returns the bound user (nil when not authenticated) and the
// session status. The returned record is a copy.
func (s *Identity) Current() (*model.User, Status) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil, s.status
	}
	u := *s.current
	return &u, s.status
}

// SignIn authenticates by email. An unknown email fails with
// ErrInvalidCredentials; so does a wrong password for accounts that carry a
// hash. On success the full user record is persisted as the session and the
// store transitions to authenticated.
func (s *Identity) SignIn(ctx context.Context, email, password string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = StatusLoading

	acct := s.findByEmail(email)
	if acct == nil {
		s.status = StatusUnauthenticated
		return nil, apperror.InvalidCredentials()
	}
	if acct.passwordHash != "" {
		if err := s.hasher.Verify(acct.passwordHash, password); err != nil {
			if errors.Is(err, auth.ErrPasswordMismatch) {
				s.status = StatusUnauthenticated
				return nil, apperror.InvalidCredentials()
			}
			s.status = StatusUnauthenticated
			return nil, fmt.Errorf("store: verifying password: %w", err)
		}
	}

	if err := storage.SaveJSON(ctx, s.kv, storage.KeySession, acct.user); err != nil {
		s.status = StatusUnauthenticated
		return nil, fmt.Errorf("store: persisting session: %w", err)
	}

	u := acct.user
	s.current = &u
	s.status = StatusAuthenticated
	s.logger.Info("user signed in", slog.String("userID", u.ID), slog.String("username", u.Username))

	out := u
	return &out, nil
}

// SignUp registers a new account. Fails with ErrEmailInUse on an email
// collision and ErrValidation on a taken username or invalid input. On
// success the new record joins the backing directory (hash attached),
// the session is persisted, and the store transitions to authenticated.
func (s *Identity) SignUp(ctx context.Context, input model.SignUpInput, password string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = StatusLoading

	if err := validate.Struct(input); err != nil {
		s.status = StatusUnauthenticated
		return nil, validationError(err)
	}
	if password == "" {
		s.status = StatusUnauthenticated
		return nil, apperror.ValidationFailed("password", "password is required")
	}
	if s.findByEmail(input.Email) != nil {
		s.status = StatusUnauthenticated
		return nil, apperror.EmailInUse(input.Email)
	}
	if s.findByUsername(input.Username) != nil {
		s.status = StatusUnauthenticated
		return nil, apperror.ValidationFailed("username", fmt.Sprintf("username %s is already taken", input.Username))
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		s.status = StatusUnauthenticated
		return nil, fmt.Errorf("store: hashing password: %w", err)
	}

	user := model.User{
		ID:             xid.New().String(),
		Username:       input.Username,
		FullName:       input.FullName,
		Email:          input.Email,
		ProfilePicture: input.ProfilePicture,
		Bio:            input.Bio,
		College:        input.College,
		Course:         input.Course,
		GradYear:       input.GradYear,
		CreatedAt:      time.Now(),
	}

	if err := storage.SaveJSON(ctx, s.kv, storage.KeySession, user); err != nil {
		s.status = StatusUnauthenticated
		return nil, fmt.Errorf("store: persisting session: %w", err)
	}

	s.accounts = append(s.accounts, account{user: user, passwordHash: hash})
	u := user
	s.current = &u
	s.status = StatusAuthenticated
	s.logger.Info("user signed up", slog.String("userID", user.ID), slog.String("username", user.Username))

	out := user
	return &out, nil
}

// SignOut clears the persisted session and the in-memory binding. The
// transition to unauthenticated is unconditional; a storage error is still
// reported but does not keep the user signed in.
func (s *Identity) SignOut(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = nil
	s.status = StatusUnauthenticated

	if err := s.kv.Delete(ctx, storage.KeySession); err != nil {
		return fmt.Errorf("store: clearing session: %w", err)
	}
	s.logger.Info("user signed out")
	return nil
}

// UpdateProfile merges the patch into the bound user, persists the updated
// session record, and keeps the backing directory in sync. Fails with
// ErrNotAuthenticated when no user is bound.
func (s *Identity) UpdateProfile(ctx context.Context, patch model.UserPatch) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil, apperror.NotAuthenticated("update your profile")
	}
	if err := validate.Struct(patch); err != nil {
		return nil, validationError(err)
	}

	updated := *s.current
	patch.Apply(&updated)

	if err := storage.SaveJSON(ctx, s.kv, storage.KeySession, updated); err != nil {
		return nil, fmt.Errorf("store: persisting session: %w", err)
	}

	s.current = &updated
	for i := range s.accounts {
		if s.accounts[i].user.ID == updated.ID {
			s.accounts[i].user = updated
			break
		}
	}
	s.logger.Info("profile updated", slog.String("userID", updated.ID))

	out := updated
	return &out, nil
}

// UserByID looks up a directory member by id.
func (s *Identity) UserByID(id string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.accounts {
		if s.accounts[i].user.ID == id {
			u := s.accounts[i].user
			return &u, nil
		}
	}
	return nil, apperror.NotFound("user", id)
}

// UserByUsername looks up a directory member by username (profile URLs use
// the username as the key).
func (s *Identity) UserByUsername(username string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.accounts {
		if s.accounts[i].user.Username == username {
			u := s.accounts[i].user
			return &u, nil
		}
	}
	return nil, apperror.NotFound("user", username)
}

// Users returns a snapshot of the member directory.
func (s *Identity) Users() []model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.User, 0, len(s.accounts))
	for i := range s.accounts {
		out = append(out, s.accounts[i].user)
	}
	return out
}

func (s *Identity) findByEmail(email string) *account {
	for i := range s.accounts {
		if s.accounts[i].user.Email == email {
			return &s.accounts[i]
		}
	}
	return nil
}

func (s *Identity) findByUsername(username string) *account {
	for i := range s.accounts {
		if s.accounts[i].user.Username == username {
			return &s.accounts[i]
		}
	}
	return nil
}
