// Package store holds generated report artifacts behind expiring download
// tokens.
//
// The store is the only stateful component in the service. Entries live in
// memory for a fixed TTL and are cleaned up opportunistically: every
// Register and Lookup call sweeps expired entries before doing its own
// work, so no background goroutine is required. Contents do not survive a
// process restart, which is intentional — download links are short-lived
// by contract.
package store

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned by Lookup when no artifact exists for the
	// token. The token either never existed or its artifact was already
	// removed.
	ErrNotFound = errors.New("download token not found")

	// ErrExpired is returned by Lookup exactly once per artifact: on the
	// access that observes the expiry. The entry is removed at that point
	// and later lookups report ErrNotFound.
	ErrExpired = errors.New("download link expired")
)

// Artifact is the caller-visible view of a stored report. Payload is a
// copy; holding it past the Lookup call is safe.
type Artifact struct {
	Payload   []byte
	Filename  string
	MediaType string
	ExpiresAt time.Time
}

type entry struct {
	payload   []byte
	filename  string
	mediaType string
	expiresAt time.Time
}

// Store is a concurrency-safe, token-keyed container of expiring
// artifacts. All exported methods may be called from concurrent requests.
type Store struct {
	ttl time.Duration
	now func() time.Time

	mu      sync.Mutex
	entries map[string]entry
}

// New creates an empty store whose artifacts expire ttl after
// registration.
func New(ttl time.Duration) *Store {
	return &Store{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]entry),
	}
}

// Register stores a copy of data under a fresh unguessable token and
// returns the token. The artifact becomes unavailable once its TTL
// elapses.
func (s *Store) Register(data []byte, filename, mediaType string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.sweepLocked(now)

	token := uuid.NewString()
	for _, exists := s.entries[token]; exists; _, exists = s.entries[token] {
		// Astronomically unlikely, but tokens must never collide with a
		// live entry.
		token = uuid.NewString()
	}

	payload := make([]byte, len(data))
	copy(payload, data)

	s.entries[token] = entry{
		payload:   payload,
		filename:  filename,
		mediaType: mediaType,
		expiresAt: now.Add(s.ttl),
	}
	return token
}

// Lookup returns the artifact registered under token. It returns
// ErrNotFound for unknown tokens and ErrExpired when the access observes
// the expiry (removing the entry as a side effect). A successful Lookup
// does not consume the token; the same report can be downloaded repeatedly
// until it expires.
func (s *Store) Lookup(token string) (Artifact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()

	// Read the target before the sweep so that the access observing an
	// expiry reports ErrExpired rather than ErrNotFound.
	e, ok := s.entries[token]
	s.sweepLocked(now)

	if !ok {
		return Artifact{}, ErrNotFound
	}
	if !e.expiresAt.After(now) {
		return Artifact{}, ErrExpired
	}

	payload := make([]byte, len(e.payload))
	copy(payload, e.payload)
	return Artifact{
		Payload:   payload,
		Filename:  e.filename,
		MediaType: e.mediaType,
		ExpiresAt: e.expiresAt,
	}, nil
}

// Len reports the number of live entries. Expired entries that have not
// been swept yet are not counted.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	n := 0
	for _, e := range s.entries {
		if e.expiresAt.After(now) {
			n++
		}
	}
	return n
}

// sweepLocked removes every entry whose expiry has passed. Callers must
// hold s.mu.
func (s *Store) sweepLocked(now time.Time) {
	for token, e := range s.entries {
		if !e.expiresAt.After(now) {
			delete(s.entries, token)
		}
	}
}
