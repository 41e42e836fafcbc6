package auth

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/SDhinakar/Interview-Prep-Frontend/internal/domain"
)

// State is the lifecycle state of the user context.
type State int

const (
	// StateUnresolved is the initial state: either no token exists yet, or a
	// token exists and the profile fetch has not completed.
	StateUnresolved State = iota
	// StateAuthenticated means a user object is populated.
	StateAuthenticated
	// StateAnonymous means no user: no token, a failed fetch, or a logout.
	StateAnonymous
)

func (s State) String() string {
	switch s {
	case StateUnresolved:
		return "unresolved"
	case StateAuthenticated:
		return "authenticated"
	case StateAnonymous:
		return "anonymous"
	default:
		return "unknown"
	}
}

// ProfileFetcher fetches the authenticated user's profile. Satisfied by the
// API client.
type ProfileFetcher interface {
	Profile(ctx context.Context) (*domain.User, error)
}

// Context holds the authenticated user for the whole app. It replaces the
// original ambient global with an explicitly injected store: created at app
// start, torn down on logout.
type Context struct {
	mu       sync.Mutex
	state    State
	user     *domain.User
	tokens   *TokenStore
	profiles ProfileFetcher
}

// NewContext creates an unresolved user context.
func NewContext(tokens *TokenStore, profiles ProfileFetcher) *Context {
	return &Context{
		state:    StateUnresolved,
		tokens:   tokens,
		profiles: profiles,
	}
}

// Resolve performs the startup transition: with no stored token it goes
// straight to anonymous; with one it fetches the profile, becoming
// authenticated on success. A failed fetch evicts the stale token and leaves
// the context anonymous.
func (c *Context) Resolve(ctx context.Context) error {
	token := c.tokens.Token()
	if token == "" {
		c.setAnonymous()
		return nil
	}

	user, err := c.profiles.Profile(ctx)
	if err != nil {
		log.Printf("profile fetch failed, clearing stored token: %v", err)
		if clearErr := c.tokens.Clear(); clearErr != nil {
			log.Printf("failed to clear token: %v", clearErr)
		}
		c.setAnonymous()
		return fmt.Errorf("resolve user: %w", err)
	}

	user.Token = token

	c.mu.Lock()
	c.state = StateAuthenticated
	c.user = user
	c.mu.Unlock()
	return nil
}

// UpdateUser replaces the user wholesale. A payload carrying a token persists
// it for subsequent requests; without one the previously stored token is
// retained. A nil payload clears the context, as logout does.
func (c *Context) UpdateUser(user *domain.User) error {
	if user == nil {
		return c.Clear()
	}

	if user.Token != "" {
		if err := c.tokens.Save(user.Token); err != nil {
			return fmt.Errorf("persist token: %w", err)
		}
	} else {
		user.Token = c.tokens.Token()
	}

	c.mu.Lock()
	c.state = StateAuthenticated
	c.user = user
	c.mu.Unlock()
	return nil
}

// Clear logs the user out: the token is evicted and the context becomes
// anonymous.
func (c *Context) Clear() error {
	err := c.tokens.Clear()
	c.setAnonymous()
	return err
}

// State returns the current lifecycle state.
func (c *Context) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// User returns a copy of the current user, or nil when not authenticated.
func (c *Context) User() *domain.User {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.user == nil {
		return nil
	}
	u := *c.user
	return &u
}

func (c *Context) setAnonymous() {
	c.mu.Lock()
	c.state = StateAnonymous
	c.user = nil
	c.mu.Unlock()
}
