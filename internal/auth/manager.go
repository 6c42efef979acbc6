package auth

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/tbourn/go-wellness-backend/internal/domain"
	"github.com/tbourn/go-wellness-backend/internal/store"
)

// State is the lifecycle position of a Manager.
type State int

const (
	Uninitialized State = iota
	Loading
	Anonymous
	Authenticated
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Loading:
		return "loading"
	case Anonymous:
		return "anonymous"
	case Authenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Manager owns the current session of a single-user client and persists it
// under the "authUser" key so it survives restarts.
type Manager struct {
	dir   *Directory
	store *store.Store

	mu    sync.RWMutex
	state State
	user  *domain.User
}

// NewManager returns an Uninitialized manager. Call Init before reading the
// session.
func NewManager(s *store.Store, dir *Directory) *Manager {
	return &Manager{dir: dir, store: s}
}

// Init restores a stored session. A corrupted record is discarded and the
// manager ends Anonymous. Calling Init again is a no-op.
func (m *Manager) Init(ctx context.Context) State {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != Uninitialized {
		return m.state
	}
	m.state = Loading

	u := store.Read[*domain.User](ctx, m.store, store.KeyAuthUser, nil)
	if u == nil || u.ID == "" {
		m.user, m.state = nil, Anonymous
		return m.state
	}
	m.user, m.state = u, Authenticated
	log.Debug().Str("user_id", u.ID).Msg("session restored")
	return m.state
}

// State returns the current lifecycle state.
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// User returns the signed-in user, or nil.
func (m *Manager) User() *domain.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.user == nil {
		return nil
	}
	u := *m.user
	return &u
}

// Login authenticates and persists the session.
func (m *Manager) Login(ctx context.Context, email, password string) (domain.User, error) {
	u, err := m.dir.Authenticate(ctx, email, password)
	if err != nil {
		return domain.User{}, err
	}
	if err := m.begin(ctx, u); err != nil {
		return domain.User{}, err
	}
	return u, nil
}

// Signup registers a new user and signs them in.
func (m *Manager) Signup(ctx context.Context, email, password string) (domain.User, error) {
	u, err := m.dir.Register(ctx, email, password)
	if err != nil {
		return domain.User{}, err
	}
	if err := m.begin(ctx, u); err != nil {
		return domain.User{}, err
	}
	return u, nil
}

// Logout clears the session. Logging out while anonymous succeeds.
func (m *Manager) Logout(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.user, m.state = nil, Anonymous
	return m.store.Remove(ctx, store.KeyAuthUser)
}

// begin persists u as the session and only then switches to Authenticated,
// so a failed write leaves the previous state in place.
func (m *Manager) begin(ctx context.Context, u domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := store.Write(ctx, m.store, store.KeyAuthUser, u); err != nil {
		return err
	}
	m.user, m.state = &u, Authenticated
	return nil
}
