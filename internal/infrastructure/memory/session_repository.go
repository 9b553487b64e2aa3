package memory

import (
	"context"
	"time"

	"github.com/jhoicas/EmployeePortal-api/internal/domain/entity"
	"github.com/jhoicas/EmployeePortal-api/internal/domain/repository"
)

var _ repository.SessionRepository = (*SessionRepo)(nil)

// SessionRepo SessionRepository en memoria.
type SessionRepo struct {
	s *Store
}

// NewSessionRepository construye el repo sobre el store.
func NewSessionRepository(s *Store) *SessionRepo {
	return &SessionRepo{s: s}
}

func (r *SessionRepo) Create(_ context.Context, sess *entity.Session) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.sessions[sess.ID] = cloneSession(sess)
	return nil
}

func (r *SessionRepo) GetByID(_ context.Context, id string) (*entity.Session, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	sess, ok := r.s.sessions[id]
	if !ok {
		return nil, nil
	}
	cp := *sess
	return &cp, nil
}

func (r *SessionRepo) Touch(_ context.Context, id string, at time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if sess, ok := r.s.sessions[id]; ok && !sess.Revoked {
		sess.LastSeenAt = at
	}
	return nil
}

func (r *SessionRepo) Revoke(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if sess, ok := r.s.sessions[id]; ok {
		sess.Revoked = true
	}
	return nil
}

func (r *SessionRepo) DeleteInactive(_ context.Context, before time.Time) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for id, sess := range r.s.sessions {
		if sess.Revoked || sess.LastSeenAt.Before(before) {
			delete(r.s.sessions, id)
			n++
		}
	}
	return n, nil
}
