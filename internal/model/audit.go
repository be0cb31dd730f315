package model

import "time"

// GenerationEvent records that passwords were generated. It never holds the
// passwords themselves.
type GenerationEvent struct {
	ID        string
	Length    int
	Classes   uint8
	Score     int
	Rating    string
	Count     int
	CreatedAt time.Time
}

// AuditStats summarizes recorded generation events.
type AuditStats struct {
	Events    int64            `json:"events"`
	Passwords int64            `json:"passwords"`
	ByRating  map[string]int64 `json:"by_rating"`
}

// TokenRequest exchanges the admin secret for a bearer token.
type TokenRequest struct {
	Secret string `json:"secret"`
}

// TokenResponse carries a signed bearer token.
type TokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
