package entity

import "time"

// Session sesión de servidor asociada a un usuario autenticado.
type Session struct {
	ID        string // uuid
	UserID    int64
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired indica si la sesión venció respecto a now.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
