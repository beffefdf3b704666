package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"business-chat-be/pkg/store"
)

// SessionRepository keeps session state in an expiring in-memory
// cache. A session not saved for the TTL window is swept by the cache
// itself; every Save refreshes the window. Expiry never interrupts an
// in-flight operation because operations hold the per-session lock and
// work on their own session pointer.
type SessionRepository struct {
	cache *cache.Cache

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewSessionRepository(ttl time.Duration) *SessionRepository {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	c := cache.New(ttl, 10*time.Minute)

	// Lock entries outlive cache eviction on purpose: dropping a mutex
	// that an in-flight operation still holds would let a concurrent
	// request mint a second lock for the same session.
	return &SessionRepository{
		cache: c,
		locks: make(map[string]*sync.Mutex),
	}
}

// GetOrCreate returns the known session for sessionID, or mints a
// fresh one with a new opaque ID when sessionID is empty or unknown.
func (r *SessionRepository) GetOrCreate(sessionID string) *store.Session {
	if sessionID != "" {
		if session, found := r.Get(sessionID); found {
			return session
		}
	}

	now := time.Now()
	session := &store.Session{
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.Save(session)
	return session
}

func (r *SessionRepository) Get(sessionID string) (*store.Session, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*store.Session), true
	}
	return nil, false
}

func (r *SessionRepository) Save(session *store.Session) {
	r.cache.Set(session.ID, session, cache.DefaultExpiration)
}

func (r *SessionRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}

// Lock serializes ingest/answer for one session ID. Sessions lock
// independently; there is no global lock across sessions.
func (r *SessionRepository) Lock(sessionID string) {
	r.sessionLock(sessionID).Lock()
}

func (r *SessionRepository) Unlock(sessionID string) {
	r.sessionLock(sessionID).Unlock()
}

func (r *SessionRepository) sessionLock(sessionID string) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()
	lock, ok := r.locks[sessionID]
	if !ok {
		lock = &sync.Mutex{}
		r.locks[sessionID] = lock
	}
	return lock
}
