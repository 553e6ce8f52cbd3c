package memory

import (
	"time"

	"echomart-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

// SessionRepository keeps live conversation sessions in process memory.
// Sessions are ephemeral by design; only finalized orders reach the
// database.
type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository(idleExpiry time.Duration) *SessionRepository {
	if idleExpiry <= 0 {
		idleExpiry = time.Hour
	}
	c := cache.New(idleExpiry, 10*time.Minute)
	return &SessionRepository{
		cache: c,
	}
}

func (r *SessionRepository) Save(session *store.Session) {
	r.cache.Set(session.ID, session, cache.DefaultExpiration)
}

func (r *SessionRepository) Get(sessionID string) (*store.Session, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*store.Session), true
	}
	return nil, false
}

func (r *SessionRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}
