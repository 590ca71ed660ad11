package permission

import "context"

// Session is the read-only, session-scoped authorization context resolved once
// per request. Grants maps permission keys (fine-grained or legacy) to booleans.
type Session struct {
	UserID string          `json:"user_id"`
	Name   string          `json:"name"`
	Role   Role            `json:"role"`
	Grants map[string]bool `json:"grants"`
}

// Resolver resolves an opaque session token to a Session.
// Returns nil, nil when the token is unknown.
type Resolver interface {
	Resolve(ctx context.Context, token string) (*Session, error)
}

// StaticResolver is an in-memory Resolver for tests and local development.
type StaticResolver struct {
	sessions map[string]*Session
}

// NewStaticResolver creates a resolver with predefined token-session mappings.
func NewStaticResolver() *StaticResolver {
	return &StaticResolver{sessions: make(map[string]*Session)}
}

// Set assigns a session to a token.
func (r *StaticResolver) Set(token string, s *Session) {
	r.sessions[token] = s
}

// Resolve returns the session for the given token.
func (r *StaticResolver) Resolve(_ context.Context, token string) (*Session, error) {
	return r.sessions[token], nil
}
