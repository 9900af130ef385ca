package domain

import "time"

type CodePurpose string

const (
	PurposeRegistration CodePurpose = "registration"
	PurposeRecovery     CodePurpose = "recovery"
)

// ConfirmationCode is a single-use emailed code. Only its fingerprint is
// stored; a user has at most one live code per purpose.
type ConfirmationCode struct {
	UserID    string
	Purpose   CodePurpose
	CodeHash  string
	ExpiresAt time.Time
	UsedAt    *time.Time
	CreatedAt time.Time
}
