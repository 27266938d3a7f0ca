package model

// SessionResponse is returned after a successful sign-in or sign-up. Next is
// the preserved destination the client should navigate back to.
type SessionResponse struct {
	User      *User  `json:"user"`
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"` // Seconds until the session token expires
	Next      string `json:"next,omitempty"`
}
