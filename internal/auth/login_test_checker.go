package auth

import "context"

var _ Checker = (*LoginTestChecker)(nil)

// LoginTestChecker is used in tests that need a deterministic checker
// without a running redis.
type LoginTestChecker struct {
	LoggedSessions map[string]bool
}

func NewLoginTestChecker() *LoginTestChecker {
	return &LoginTestChecker{
		LoggedSessions: map[string]bool{},
	}
}

func (tc *LoginTestChecker) IsLogged(_ context.Context, token string) (bool, error) {
	return tc.LoggedSessions[token], nil
}
