package auth

import "bookclient/internal/entity"

// Session holds the current token and its decoded identity for the life of
// the run. State is in-memory only; a new run starts signed out.
type Session struct {
	token string
	user  *entity.User
}

func NewSession() *Session {
	return &Session{}
}

// SetToken decodes and stores a token. An undecodable token leaves the
// session unchanged.
func (s *Session) SetToken(token string) error {
	user, err := DecodeToken(token)
	if err != nil {
		return err
	}
	s.token = token
	s.user = user
	return nil
}

// Token implements api.TokenSource.
func (s *Session) Token() (string, bool) {
	if s.token == "" {
		return "", false
	}
	return s.token, true
}

// User returns the decoded identity, or nil when signed out.
func (s *Session) User() *entity.User {
	return s.user
}

func (s *Session) Clear() {
	s.token = ""
	s.user = nil
}
