package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"hrdesk/internal/core/domain"
	"hrdesk/internal/core/store"
	"hrdesk/internal/pkg/clock"
	"hrdesk/internal/pkg/logger"
)

// Workspace is one browser's store and auth flow
type Workspace struct {
	ID    string
	Store *store.Store
	Flow  *AuthFlow

	mu       sync.Mutex
	lastSeen time.Time
}

func (w *Workspace) touch(now time.Time) {
	w.mu.Lock()
	w.lastSeen = now
	w.mu.Unlock()
}

// LastSeen is when the workspace was last used
func (w *Workspace) LastSeen() time.Time {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastSeen
}

// WorkspaceRegistry keeps one workspace per client ID
type WorkspaceRegistry struct {
	namespace string
	persister store.Persister
	identity  IdentityProvider
	directory EmployeeDirectory
	clock     clock.Clock
	log       *logger.Logger

	mu    sync.Mutex
	items map[string]*Workspace
}

// NewWorkspaceRegistry creates a registry. persister may be nil.
func NewWorkspaceRegistry(namespace string, persister store.Persister, identity IdentityProvider, directory EmployeeDirectory, clk clock.Clock, log *logger.Logger) *WorkspaceRegistry {
	if clk == nil {
		clk = clock.Real()
	}
	if log == nil {
		log = logger.Nop()
	}
	return &WorkspaceRegistry{
		namespace: namespace,
		persister: persister,
		identity:  identity,
		directory: directory,
		clock:     clk,
		log:       log,
		items:     make(map[string]*Workspace),
	}
}

// NewWorkspaceID returns a fresh client ID
func NewWorkspaceID() string {
	return uuid.NewString()
}

// Get returns the workspace for id, creating and hydrating it on first use
func (r *WorkspaceRegistry) Get(ctx context.Context, id string) (*Workspace, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.NewValidationError("client_id", "format")
	}

	r.mu.Lock()
	ws, ok := r.items[id]
	r.mu.Unlock()
	if ok {
		ws.touch(r.clock.Now())
		return ws, nil
	}

	st := store.New(r.namespace, id, r.persister, r.clock)
	if err := st.Hydrate(ctx); err != nil {
		r.log.Warn().Err(err).Str("workspace", id).Msg("hydrate failed, starting empty")
	}
	r.dropExpiredSession(ctx, st)

	created := &Workspace{
		ID:       id,
		Store:    st,
		Flow:     NewAuthFlow(st, r.identity, r.directory, r.clock, r.log.Component("authflow")),
		lastSeen: r.clock.Now(),
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.items[id]; ok {
		return existing, nil
	}
	r.items[id] = created
	return created, nil
}

// dropExpiredSession clears a hydrated session whose token the identity provider rejects
func (r *WorkspaceRegistry) dropExpiredSession(ctx context.Context, st *store.Store) {
	sess := st.Session()
	if sess == nil || r.identity == nil {
		return
	}
	_, err := r.identity.ValidateToken(ctx, sess.Token)
	if err == nil {
		return
	}
	if errors.Is(err, domain.ErrAuth) {
		if err := st.Reset(ctx); err != nil {
			r.log.Warn().Err(err).Msg("clear expired session failed")
		}
		return
	}
	r.log.Warn().Err(err).Msg("could not validate restored session")
}

// Len returns the number of live workspaces
func (r *WorkspaceRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

// EvictIdle removes workspaces unused for longer than ttl. Persisted
// sessions survive and are hydrated again on the next request.
func (r *WorkspaceRegistry) EvictIdle(ttl time.Duration) int {
	cutoff := r.clock.Now().Add(-ttl)

	r.mu.Lock()
	defer r.mu.Unlock()
	evicted := 0
	for id, ws := range r.items {
		if ws.LastSeen().Before(cutoff) {
			delete(r.items, id)
			evicted++
		}
	}
	return evicted
}

// Session returns the authenticated session of the workspace
func (w *Workspace) Session() (*domain.Session, error) {
	sess := w.Store.Session()
	if !sess.Authenticated() {
		return nil, domain.ErrNotAuthenticated
	}
	return sess, nil
}

// approverRoles may decide leave requests
var approverRoles = []string{domain.RoleSuperAdmin, domain.RoleAdmin, domain.RoleHR, domain.RoleManager}

func isApprover(sess *domain.Session) bool {
	for _, r := range approverRoles {
		if sess.HasRole(r) {
			return true
		}
	}
	return false
}
