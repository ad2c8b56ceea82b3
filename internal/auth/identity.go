package auth

import "time"

// Identity is the authenticated user as seen by the rest of the service.
// Consumers hold it as a foreign key and never modify it.
type Identity struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// Session binds a bearer token to an identity.
type Session struct {
	Token    string
	Identity Identity
}

// SignUpResult reports that the account exists but is waiting for email
// confirmation. The token is what the confirmation link would carry.
type SignUpResult struct {
	PendingConfirmation bool
	ConfirmationToken   string
}
