package history

import (
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
)

// Store keeps a bounded, chronological turn log per session. Turns alternate
// user/assistant by position, oldest first.
type Store struct {
	mu       sync.Mutex
	locks    map[string]*sync.Mutex
	sessions *cache.Cache
	maxTurns int
}

// NewStore creates a store bounded to 2*maxTurns entries per session. When
// ttl is positive, idle sessions are evicted by the cache after that long;
// zero keeps them until an explicit Clear.
func NewStore(maxTurns int, ttl time.Duration) *Store {
	expiration := cache.NoExpiration
	sweep := time.Duration(0)
	if ttl > 0 {
		expiration = ttl
		sweep = 10 * time.Minute
	}
	return &Store{
		locks:    make(map[string]*sync.Mutex),
		sessions: cache.New(expiration, sweep),
		maxTurns: maxTurns,
	}
}

// lockFor returns the mutex owning the session's read-modify-write cycle.
func (s *Store) lockFor(sessionID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[sessionID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[sessionID] = lock
	}
	return lock
}

func (s *Store) get(sessionID string) []string {
	if x, found := s.sessions.Get(sessionID); found {
		return x.([]string)
	}
	return nil
}

// Get returns a copy of the session's turn log, empty for unknown sessions.
func (s *Store) Get(sessionID string) []string {
	lock := s.lockFor(sessionID)
	lock.Lock()
	defer lock.Unlock()

	turns := s.get(sessionID)
	out := make([]string, len(turns))
	copy(out, turns)
	return out
}

// Append adds turns to the session log in order. Before each turn is
// appended, a full log is trimmed to its most recent 2*maxTurns-2 entries so
// there is always room for the incoming user/assistant pair. The whole call
// holds the session's lock, so a turn pair lands atomically.
func (s *Store) Append(sessionID string, turns ...string) {
	lock := s.lockFor(sessionID)
	lock.Lock()
	defer lock.Unlock()

	log := s.get(sessionID)
	for _, turn := range turns {
		if len(log) >= 2*s.maxTurns {
			log = log[len(log)-(2*s.maxTurns-2):]
		}
		log = append(log, turn)
	}
	s.sessions.Set(sessionID, log, cache.DefaultExpiration)
}

// Clear removes the session entirely. Clearing an unknown session is a
// no-op, not an error.
func (s *Store) Clear(sessionID string) {
	lock := s.lockFor(sessionID)
	lock.Lock()
	s.sessions.Delete(sessionID)
	lock.Unlock()

	s.mu.Lock()
	delete(s.locks, sessionID)
	s.mu.Unlock()
}
