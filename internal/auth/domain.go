package auth

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
)

// User represents a registered account.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// NormalizeEmail trims surrounding whitespace and case-folds the address.
// Every lookup and every stored email goes through this, so the identity
// namespace is case-insensitive. A Caser is stateful, so one is built per
// call rather than shared.
func NormalizeEmail(email string) string {
	return cases.Fold().String(strings.TrimSpace(email))
}
