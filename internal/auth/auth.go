// Package auth represents "who is signed in" for the current client
// session. Authentication is deliberately mock: passwords are accepted
// unconditionally and registration never persists past the session.
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/luxeshop/storefront/internal/entity"
	"github.com/luxeshop/storefront/internal/messaging"
	"github.com/luxeshop/storefront/internal/session"
)

// Session holds the current identity and persists it across restarts the
// same way the cart does.
type Session struct {
	mu            sync.Mutex
	user          *entity.User
	authenticated bool

	directory []entity.User
	latency   time.Duration
	store     session.Store
	publisher messaging.Publisher
	now       func() time.Time
}

// New creates an auth session over the fixed user directory, restoring any
// snapshot previously saved to store. latency simulates the network delay
// of the login and register calls; zero disables it. publisher may be nil.
func New(directory []entity.User, store session.Store, publisher messaging.Publisher, latency time.Duration) *Session {
	s := &Session{
		directory: directory,
		latency:   latency,
		store:     store,
		publisher: publisher,
		now:       time.Now,
	}

	var snap entity.AuthSession
	found, err := store.Load(session.AuthKey, &snap)
	if err != nil {
		slog.Error("Failed to restore auth snapshot", "err", err)
	}
	if found {
		s.user = snap.User
		s.authenticated = snap.Authenticated
	}
	return s
}

// Login matches email exactly against the user directory. The password is
// not checked; any value is accepted. On a match the session becomes
// authenticated; otherwise it is left untouched and the absent result is
// reported through the bool. The error is non-nil only when ctx is
// cancelled before the simulated latency elapses.
func (s *Session) Login(ctx context.Context, email, password string) (entity.User, bool, error) {
	_ = password // accepted unconditionally

	if err := s.wait(ctx); err != nil {
		return entity.User{}, false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.directory {
		if u.Email == email {
			user := u
			s.user = &user
			s.authenticated = true
			s.persist()
			s.publish(ctx, entity.UserLoggedIn{UserID: u.ID, Email: u.Email})
			return u, true, nil
		}
	}
	return entity.User{}, false, nil
}

// Register fabricates a new user with role "user" and a timestamp-derived
// id and signs the session in as them. It never checks for email
// collisions, and the new account does not outlive the session.
func (s *Session) Register(ctx context.Context, email, password, name string) (entity.User, error) {
	_ = password

	if err := s.wait(ctx); err != nil {
		return entity.User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user := entity.User{
		ID:    fmt.Sprintf("user-%d", s.now().UnixMilli()),
		Email: email,
		Name:  name,
		Role:  "user",
	}
	s.user = &user
	s.authenticated = true
	s.persist()
	s.publish(ctx, entity.UserRegistered{UserID: user.ID, Email: user.Email})
	return user, nil
}

// Logout clears the current user and the authenticated flag.
func (s *Session) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var userID string
	if s.user != nil {
		userID = s.user.ID
	}
	s.user = nil
	s.authenticated = false
	s.persist()
	if userID != "" {
		s.publish(ctx, entity.UserLoggedOut{UserID: userID})
	}
}

// Current returns the signed-in user, if any.
func (s *Session) Current() (entity.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.authenticated || s.user == nil {
		return entity.User{}, false
	}
	return *s.user, true
}

// wait blocks for the configured simulated latency, honoring cancellation.
func (s *Session) wait(ctx context.Context) error {
	if s.latency <= 0 {
		return nil
	}
	timer := time.NewTimer(s.latency)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Session) persist() {
	snap := entity.AuthSession{User: s.user, Authenticated: s.authenticated}
	if err := s.store.Save(session.AuthKey, snap); err != nil {
		slog.Error("Failed to persist auth snapshot", "err", err)
	}
}

func (s *Session) publish(ctx context.Context, event entity.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishEvent(ctx, messaging.TopicAuthEvents, event.EventType(), event); err != nil {
		slog.Error("Failed to publish auth event", "event", event.EventType(), "err", err)
	}
}

// SeedUsers returns the fixed user directory.
func SeedUsers() []entity.User {
	return []entity.User{
		{
			ID:     "1",
			Email:  "admin@example.com",
			Name:   "Admin User",
			Role:   "admin",
			Avatar: "https://images.pexels.com/photos/220453/pexels-photo-220453.jpeg?auto=compress&cs=tinysrgb&w=600",
		},
		{
			ID:     "2",
			Email:  "user@example.com",
			Name:   "John Doe",
			Role:   "user",
			Avatar: "https://images.pexels.com/photos/2379004/pexels-photo-2379004.jpeg?auto=compress&cs=tinysrgb&w=600",
		},
	}
}
