package auth

import "time"

// EmployeeLogin holds the credentials of one employee. It is created on first login.
type EmployeeLogin struct {
	ID           string
	EmployeeID   string
	PasswordHash string

	// LoginToken identifies the current session; nil when logged out.
	LoginToken *string

	FailedAttempts int
	LastFailedAt   *time.Time
	LastLoginAt    *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsBlocked reports whether maxAttempts failures happened and the last one is less than
// window ago.
func (l EmployeeLogin) IsBlocked(now time.Time, maxAttempts int, window time.Duration) bool {
	if l.FailedAttempts < maxAttempts || l.LastFailedAt == nil {
		return false
	}
	return now.Sub(*l.LastFailedAt) < window
}

// NextFailedAttempts returns the counter after one more failure. A failure after the block
// window starts a new count.
func (l EmployeeLogin) NextFailedAttempts(now time.Time, window time.Duration) int {
	if l.LastFailedAt != nil && now.Sub(*l.LastFailedAt) >= window {
		return 1
	}
	return l.FailedAttempts + 1
}
