package memory

import (
	"time"

	"github.com/patrickmn/go-cache"

	"catalog-assistant-be/pkg/dialog"
)

// SessionRepository keeps conversation sessions in memory only. Sessions die
// with the process (or after the idle TTL); there is no durable storage.
type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository() *SessionRepository {
	// Create a cache with a default expiration time of 1 hour, and which
	// purges expired items every 10 minutes
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &SessionRepository{
		cache: c,
	}
}

func (r *SessionRepository) Save(session *dialog.Session) {
	r.cache.Set(session.ID.String(), session, cache.DefaultExpiration)
}

func (r *SessionRepository) Get(sessionID string) (*dialog.Session, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*dialog.Session), true
	}
	return nil, false
}

func (r *SessionRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}
