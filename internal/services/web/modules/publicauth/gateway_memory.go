package publicauth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	apperrors "github.com/louisbranch/sip/internal/services/web/platform/errors"
	"golang.org/x/crypto/bcrypt"
)

// MemoryGateway keeps accounts and sessions in process memory. Passwords are
// stored as bcrypt hashes and usernames are unique regardless of case.
type MemoryGateway struct {
	cost int

	mu       sync.RWMutex
	accounts map[string]account
	sessions map[string]string
}

type account struct {
	username string
	email    string
	hash     []byte
}

// NewMemoryGateway returns an empty in-memory account back end.
func NewMemoryGateway() *MemoryGateway {
	return newMemoryGateway(bcrypt.DefaultCost)
}

func newMemoryGateway(cost int) *MemoryGateway {
	return &MemoryGateway{
		cost:     cost,
		accounts: make(map[string]account),
		sessions: make(map[string]string),
	}
}

func accountKey(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// Register creates an account and signs it in.
func (g *MemoryGateway) Register(ctx context.Context, reg Registration) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", apperrors.Wrap(apperrors.KindUnavailable, "flash.auth_unavailable", err)
	}
	username := strings.TrimSpace(reg.Username)
	key := accountKey(username)
	if key == "" {
		return "", apperrors.Invalid(fieldUsername, "form.required", "username is required")
	}
	if g.taken(key) {
		return "", errUsernameTaken()
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), g.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", apperrors.Invalid(fieldPassword1, "form.password_too_long", "password exceeds 72 bytes")
		}
		return "", fmt.Errorf("hash password: %w", err)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	// Re-check: another registration may have won while hashing.
	if _, ok := g.accounts[key]; ok {
		return "", errUsernameTaken()
	}
	g.accounts[key] = account{username: username, email: strings.TrimSpace(reg.Email), hash: hash}
	return g.startSessionLocked(key), nil
}

// Login verifies credentials and starts a new session.
func (g *MemoryGateway) Login(ctx context.Context, username, password string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", apperrors.Wrap(apperrors.KindUnavailable, "flash.auth_unavailable", err)
	}
	key := accountKey(username)
	g.mu.RLock()
	acct, ok := g.accounts[key]
	g.mu.RUnlock()
	if !ok || bcrypt.CompareHashAndPassword(acct.hash, []byte(password)) != nil {
		return "", apperrors.E(apperrors.KindUnauthorized, "invalid username or password")
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	return g.startSessionLocked(key), nil
}

// Viewer resolves a session id to its account.
func (g *MemoryGateway) Viewer(_ context.Context, sessionID string) (Viewer, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	key, ok := g.sessions[strings.TrimSpace(sessionID)]
	if !ok {
		return Viewer{}, false
	}
	acct, ok := g.accounts[key]
	if !ok {
		return Viewer{}, false
	}
	return Viewer{Username: acct.username}, true
}

// Logout revokes a session. Unknown sessions are ignored.
func (g *MemoryGateway) Logout(_ context.Context, sessionID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.sessions, strings.TrimSpace(sessionID))
	return nil
}

func (g *MemoryGateway) taken(key string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.accounts[key]
	return ok
}

func (g *MemoryGateway) startSessionLocked(key string) string {
	id := uuid.NewString()
	g.sessions[id] = key
	return id
}

func errUsernameTaken() error {
	return apperrors.Invalid(fieldUsername, "form.username_taken", "username already registered")
}
