package domain

import "time"

// Session is the decoded content of the session cookie. It is carried
// client-side as a signed token; the server only keeps a revocation mark
// after logout. A session is identity, not authorization: role and account
// status are re-checked against the database on every authenticated request.
type Session struct {
	TokenID   string
	UserID    string
	Email     string
	Role      Role
	LoggedIn  bool
	IssuedAt  time.Time
	ExpiresAt time.Time
	IP        string
	UserAgent string
}
