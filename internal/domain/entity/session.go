package entity

import "time"

// Session es el registro del lado del servidor que liga un navegador a una identidad y rol.
// Expira por inactividad: LastSeenAt + idle < now.
type Session struct {
	ID         string
	UserID     string
	Username   string
	Role       string
	RememberMe bool
	CreatedAt  time.Time
	LastSeenAt time.Time
	Revoked    bool
}

// Expired indica si la sesión superó el tiempo de inactividad en el instante now.
func (s *Session) Expired(now time.Time, idle time.Duration) bool {
	return now.Sub(s.LastSeenAt) > idle
}

// Active indica si la sesión sigue utilizable.
func (s *Session) Active(now time.Time, idle time.Duration) bool {
	return s != nil && !s.Revoked && !s.Expired(now, idle) && s.Username != "" && s.Role != ""
}
